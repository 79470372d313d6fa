package config

import (
	"fmt"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
	"reflect"
	"strings"
)

const EnvPrefix = "AIPERSONALITY"

type Manager struct {
	configStore ConfigStore
	Config      Config
}

func NewManager(cs ConfigStore) *Manager {
	configuration := cs.ReadDefaults()

	userConfig, err := cs.Read()
	if err == nil {
		configuration = replaceByConfigFile(configuration, userConfig)
	}

	return &Manager{configStore: cs, Config: configuration}
}

// WithEnvironment overrides every field whose AIPERSONALITY_<YAML_KEY>
// environment variable is set.
func (c *Manager) WithEnvironment() *Manager {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	c.Config = replaceByEnvironment(c.Config, v)
	return c
}

// ListPersonalities returns the personalities installed in the personalities
// home. The configured default is marked with an asterisk (*).
func (c *Manager) ListPersonalities() ([]string, error) {
	var result []string

	names, err := c.configStore.List()
	if err != nil {
		return nil, err
	}

	current := ""
	if c.Config.PersonalityPath != "" {
		current = lastElement(c.Config.PersonalityPath)
	}

	for _, name := range names {
		if name != current {
			result = append(result, fmt.Sprintf("- %s", name))
			continue
		}
		result = append(result, fmt.Sprintf("* %s (current)", name))
	}

	return result, nil
}

// ShowConfig serializes the current configuration to a YAML string.
func (c *Manager) ShowConfig() (string, error) {
	data, err := yaml.Marshal(c.Config)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func (c *Manager) Save() error {
	return c.configStore.Write(c.Config)
}

func replaceByConfigFile(defaultConfig, userConfig Config) Config {
	t := reflect.TypeOf(defaultConfig)
	vDefault := reflect.ValueOf(&defaultConfig).Elem()
	vUser := reflect.ValueOf(userConfig)

	for i := 0; i < t.NumField(); i++ {
		defaultField := vDefault.Field(i)
		userField := vUser.Field(i)

		if defaultField.Kind() == reflect.String {
			if userStr := userField.String(); userStr != "" {
				defaultField.SetString(userStr)
			}
		}
	}

	return defaultConfig
}

func replaceByEnvironment(configuration Config, v *viper.Viper) Config {
	t := reflect.TypeOf(configuration)
	rv := reflect.ValueOf(&configuration).Elem()

	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")

		if value := v.GetString(tag); value != "" {
			field := rv.Field(i)
			if field.Kind() == reflect.String {
				field.SetString(value)
			}
		}
	}

	return configuration
}

func lastElement(path string) string {
	path = strings.TrimRight(path, "/\\")
	if idx := strings.LastIndexAny(path, "/\\"); idx >= 0 {
		return path[idx+1:]
	}
	return path
}
