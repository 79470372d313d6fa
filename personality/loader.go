package personality

import (
	"fmt"
	"github.com/kardolus/aipersonality/internal/fsio"
	"github.com/kardolus/aipersonality/types"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
	"path/filepath"
)

type Loader struct {
	reader  fsio.Reader
	decoder LogoDecoder
	mode    LogoMode
	logger  *zap.Logger
}

type Option func(*Loader)

func WithFS(reader fsio.Reader) Option {
	return func(l *Loader) { l.reader = reader }
}

func WithDecoder(decoder LogoDecoder) Option {
	return func(l *Loader) { l.decoder = decoder }
}

func WithLogoMode(mode LogoMode) Option {
	return func(l *Loader) { l.mode = mode }
}

func WithLogger(logger *zap.Logger) Option {
	return func(l *Loader) { l.logger = logger }
}

// New returns a Loader backed by the OS filesystem unless overridden. When no
// decoder is supplied, an ImageDecoder reading through the same filesystem is used.
func New(opts ...Option) *Loader {
	l := &Loader{mode: LogoModeWorkingDir}
	for _, opt := range opts {
		opt(l)
	}

	if l.reader == nil {
		l.reader = fsio.NewOS()
	}
	if l.decoder == nil {
		l.decoder = NewImageDecoder(l.reader)
	}
	if l.logger == nil {
		l.logger = zap.L()
	}

	return l
}

// LoadPackage validates dir and loads dir/config.yaml. An empty dir yields
// the defaults without touching the filesystem.
func (l *Loader) LoadPackage(dir string) (types.Personality, error) {
	p, _, err := l.LoadPackageRaw(dir)
	return p, err
}

// LoadPackageRaw is LoadPackage that also returns the raw top-level mapping.
// The mapping is empty when dir is empty.
func (l *Loader) LoadPackageRaw(dir string) (types.Personality, map[string]any, error) {
	if dir == "" {
		return Defaults(), map[string]any{}, nil
	}

	configFile, err := l.validate(dir)
	if err != nil {
		return types.Personality{}, nil, err
	}

	return l.Load(configFile)
}

func (l *Loader) validate(dir string) (string, error) {
	exists, err := fsio.Exists(l.reader, dir)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !exists {
		return "", fmt.Errorf("%w: %s", ErrPathNotFound, dir)
	}

	isDir, err := fsio.IsDir(l.reader, dir)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", dir, err)
	}
	if !isDir {
		return "", fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	configFile := filepath.Join(dir, ConfigFileName)
	if !fsio.IsRegularFile(l.reader, configFile) {
		return "", fmt.Errorf("%w: %s", ErrMissingConfigFile, dir)
	}

	return configFile, nil
}

// Load parses configFilePath into a Personality and also returns every
// top-level key of the document mapped to its generic value.
func (l *Loader) Load(configFilePath string) (types.Personality, map[string]any, error) {
	buf, err := l.reader.ReadFile(configFilePath)
	if err != nil {
		return types.Personality{}, nil, &ConfigParseError{Path: configFilePath, Err: err}
	}

	var root yaml.Node
	if err := yaml.Unmarshal(buf, &root); err != nil {
		return types.Personality{}, nil, &ConfigParseError{Path: configFilePath, Err: err}
	}

	doc, raw, err := topLevel(&root)
	if err != nil {
		return types.Personality{}, nil, &ConfigParseError{Path: configFilePath, Err: err}
	}

	p := apply(l.logger, doc)
	p.Logo = l.loadLogo(filepath.Dir(configFilePath))

	return p, raw, nil
}

// LogoPath returns where the logo is looked up for a personality stored in dir.
func (l *Loader) LogoPath(dir string) string {
	if l.mode == LogoModePackageDir {
		return filepath.Join(dir, AssetsDirName, LogoFileName)
	}
	return filepath.Join(AssetsDirName, LogoFileName)
}

func (l *Loader) loadLogo(dir string) *types.Logo {
	path := l.LogoPath(dir)

	logo, err := decodeLogo(l.decoder, path)
	if err != nil {
		l.logger.Debug("personality has no usable logo", zap.String("path", path), zap.Error(err))
		return nil
	}

	return logo
}

func topLevel(root *yaml.Node) (document, map[string]any, error) {
	doc := make(document)
	raw := make(map[string]any)

	node := root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return doc, raw, nil
		}
		node = node.Content[0]
	}

	switch {
	case node.Kind == 0:
		return doc, raw, nil
	case node.Kind == yaml.ScalarNode && node.ShortTag() == nullTag:
		return doc, raw, nil
	case node.Kind != yaml.MappingNode:
		return nil, nil, fmt.Errorf("line %d: expected a mapping at the top level", node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var v any
		if err := value.Decode(&v); err != nil {
			return nil, nil, fmt.Errorf("key %q: %w", key.Value, err)
		}

		doc[key.Value] = value
		raw[key.Value] = v
	}

	return doc, raw, nil
}
