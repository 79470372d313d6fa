package config

import (
	"fmt"
	"github.com/kardolus/aipersonality/internal"
	"github.com/kardolus/aipersonality/internal/fsio"
	"gopkg.in/yaml.v3"
	"os"
	"path/filepath"
	"sort"
)

const (
	defaultLogoMode = "working-dir"
	defaultLogLevel = "info"
	defaultOutput   = "text"
	configFileName  = "config.yaml"
)

//go:generate mockgen -destination=configmocks_test.go -package=config_test github.com/kardolus/aipersonality/config ConfigStore

type ConfigStore interface {
	List() ([]string, error)
	Read() (Config, error)
	ReadDefaults() Config
	Write(Config) error
}

// Ensure FileIO implements ConfigStore interface
var _ ConfigStore = &FileIO{}

type FileIO struct {
	fs                    fsio.ReadWriter
	configFilePath        string
	personalitiesFilePath string
}

func New() *FileIO {
	configHome, _ := internal.GetConfigHome()
	personalitiesHome, _ := internal.GetPersonalitiesHome()

	return &FileIO{
		fs:                    fsio.NewOS(),
		configFilePath:        filepath.Join(configHome, configFileName),
		personalitiesFilePath: personalitiesHome,
	}
}

func (f *FileIO) WithFS(fs fsio.ReadWriter) *FileIO {
	f.fs = fs
	return f
}

func (f *FileIO) WithConfigPath(configFilePath string) *FileIO {
	f.configFilePath = configFilePath
	return f
}

func (f *FileIO) WithPersonalitiesPath(personalitiesPath string) *FileIO {
	f.personalitiesFilePath = personalitiesPath
	return f
}

// List returns the names of the personality directories found in the
// personalities home, sorted alphabetically.
func (f *FileIO) List() ([]string, error) {
	dir, err := f.fs.Open(f.personalitiesFilePath)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	entries, err := dir.Readdir(-1)
	if err != nil {
		return nil, err
	}

	var result []string
	for _, entry := range entries {
		if entry.IsDir() {
			result = append(result, entry.Name())
		}
	}
	sort.Strings(result)

	return result, nil
}

func (f *FileIO) Read() (Config, error) {
	return parseFile(f.fs, f.configFilePath)
}

func (f *FileIO) ReadDefaults() Config {
	return Config{
		LogoMode: defaultLogoMode,
		LogLevel: defaultLogLevel,
		Output:   defaultOutput,
	}
}

func (f *FileIO) Write(config Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	if err := f.fs.MkdirAll(filepath.Dir(f.configFilePath), 0755); err != nil {
		return fmt.Errorf("failed to create config home: %w", err)
	}

	return f.fs.WriteFile(f.configFilePath, data, os.FileMode(0644))
}

func parseFile(fs fsio.Reader, fileName string) (Config, error) {
	var result Config

	buf, err := fs.ReadFile(fileName)
	if err != nil {
		return Config{}, err
	}

	if err := yaml.Unmarshal(buf, &result); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", fileName, err)
	}

	return result, nil
}
