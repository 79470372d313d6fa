package personality

import (
	"bytes"
	"fmt"
	"github.com/kardolus/aipersonality/internal"
	"github.com/kardolus/aipersonality/internal/fsio"
	"github.com/kardolus/aipersonality/types"
	"gopkg.in/yaml.v3"
	"image/png"
	"path/filepath"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

type Saver struct {
	fs fsio.Writer
}

func NewSaver(fs fsio.Writer) *Saver {
	return &Saver{fs: fs}
}

// Save writes p as dir/config.yaml and, when p carries a logo, dir/assets/logo.png.
// The config file is replaced atomically. Nothing is written when the
// personality cannot be encoded.
func (s *Saver) Save(dir string, p types.Personality) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal personality: %w", err)
	}

	logo, err := encodeLogo(p.Logo)
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	target := filepath.Join(dir, ConfigFileName)
	tmp := filepath.Join(dir, internal.GenerateUniqueSlug("."+ConfigFileName+".tmp-"))

	if err := s.fs.WriteFile(tmp, data, filePerm); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, target); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", target, err)
	}

	assets := filepath.Join(dir, AssetsDirName)
	if err := s.fs.MkdirAll(assets, dirPerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", assets, err)
	}

	if logo == nil {
		return nil
	}

	return s.fs.WriteFile(filepath.Join(assets, LogoFileName), logo, filePerm)
}

func encodeLogo(logo *types.Logo) ([]byte, error) {
	if logo == nil {
		return nil, nil
	}

	img, err := logo.Image()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode logo: %w", err)
	}

	return buf.Bytes(), nil
}
