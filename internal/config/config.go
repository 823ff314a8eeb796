package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default config location relative to the binary.
const ConfigPath = "config.yaml"

// FileConfig represents configuration loaded from YAML.
type FileConfig struct {
	Port                   string  `yaml:"port"`
	SavePath               string  `yaml:"savePath"`
	LogLevel               string  `yaml:"logLevel"`
	OllamaBaseURL          string  `yaml:"ollamaBaseURL"`
	GenerationModel        string  `yaml:"generationModel"`
	GenerateTimeoutSeconds int     `yaml:"generateTimeoutSeconds"`
	Temperature            float32 `yaml:"temperature"`
	MaxTokens              int     `yaml:"maxTokens"`
}

// Load reads config from path (defaults to config.yaml).
func Load(path string) (FileConfig, error) {
	cfg := FileConfig{}
	if path == "" {
		path = ConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	// Override with environment variables
	if v := os.Getenv("FD_SAVE_PATH"); v != "" {
		cfg.SavePath = v
	}
	if v := os.Getenv("FD_PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("OLLAMA_BASE_URL"); v != "" {
		cfg.OllamaBaseURL = v
	}
	if v := os.Getenv("FD_GENERATION_MODEL"); v != "" {
		cfg.GenerationModel = v
	}
	if err := validateConfig(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func validateConfig(cfg FileConfig) error {
	if cfg.Port == "" {
		return errors.New("config: port is required (set in config.yaml or FD_PORT)")
	}
	if cfg.SavePath == "" {
		return errors.New("config: savePath is required (set in config.yaml or FD_SAVE_PATH)")
	}
	return nil
}
