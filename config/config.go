package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`

	JWT struct {
		Secret string `yaml:"secret"`
		Expiry int    `yaml:"expiry"` // Token expiry in minutes
	} `yaml:"jwt"`

	Quiz struct {
		QuestionTimeLimit int `yaml:"questionTimeLimit"` // seconds per question
		ToastDuration     int `yaml:"toastDuration"`     // seconds a toast stays queued
	} `yaml:"quiz"`
}

// LoadConfig reads the configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = "gemini-2.5-flash"
	}
	if cfg.Quiz.QuestionTimeLimit == 0 {
		cfg.Quiz.QuestionTimeLimit = 20
	}
	if cfg.Quiz.ToastDuration == 0 {
		cfg.Quiz.ToastDuration = 4
	}

	return &cfg, nil
}
