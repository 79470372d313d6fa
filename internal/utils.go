package internal

import (
	"github.com/adrg/xdg"
	"github.com/google/uuid"
	"os"
	"path/filepath"
)

const (
	ConfigHomeEnv        = "AIPERSONALITY_CONFIG_HOME"
	PersonalitiesHomeEnv = "AIPERSONALITY_PERSONALITIES_HOME"
	DefaultConfigDir     = "aipersonality"
	DefaultPersonalities = "personalities"
	SlugPostfixLength    = 8
)

func GenerateUniqueSlug(prefix string) string {
	guid := uuid.New()
	return prefix + guid.String()[:SlugPostfixLength]
}

func GetConfigHome() (string, error) {
	if tmp := os.Getenv(ConfigHomeEnv); tmp != "" {
		return tmp, nil
	}

	return filepath.Join(xdg.ConfigHome, DefaultConfigDir), nil
}

func GetPersonalitiesHome() (string, error) {
	if tmp := os.Getenv(PersonalitiesHomeEnv); tmp != "" {
		return tmp, nil
	}

	configHome, err := GetConfigHome()
	if err != nil {
		return "", err
	}

	return filepath.Join(configHome, DefaultPersonalities), nil
}
