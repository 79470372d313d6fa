package config

type Config struct {
	PersonalityPath string `yaml:"personality_path"`
	LogoMode        string `yaml:"logo_mode"`
	LogLevel        string `yaml:"log_level"`
	Output          string `yaml:"output"`
}
