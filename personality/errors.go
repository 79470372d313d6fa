package personality

import (
	"errors"
	"fmt"
)

var (
	ErrPathNotFound      = errors.New("the provided path does not exist")
	ErrNotADirectory     = errors.New("the provided path is not a folder")
	ErrMissingConfigFile = errors.New("the provided folder does not contain a config.yaml file")
	ErrConfigParse       = errors.New("failed to parse personality config")
)

// ConfigParseError wraps a read or parse failure of a personality config file.
type ConfigParseError struct {
	Path string
	Err  error
}

func (e *ConfigParseError) Error() string {
	return fmt.Sprintf("failed to parse personality config %s: %v", e.Path, e.Err)
}

func (e *ConfigParseError) Unwrap() error {
	return e.Err
}

func (e *ConfigParseError) Is(target error) bool {
	return target == ErrConfigParse
}
