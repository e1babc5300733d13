package config

import (
	"fmt"
	"io/ioutil"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Cors struct {
		AllowOrigins []string `yaml:"allowOrigins"`
	} `yaml:"cors"`

	Database struct {
		URI string `yaml:"uri"`
	} `yaml:"database"`

	Committee struct {
		ID      string `yaml:"id"`
		GslTime int    `yaml:"gslTime"`
		ModTime int    `yaml:"modTime"`
	} `yaml:"committee"`
}

// LoadConfig reads the configuration file
func LoadConfig(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 3000
	}
	if cfg.Committee.ID == "" {
		cfg.Committee.ID = "main"
	}
	if cfg.Committee.GslTime <= 0 {
		cfg.Committee.GslTime = 90
	}
	if cfg.Committee.ModTime <= 0 {
		cfg.Committee.ModTime = 45
	}
	if len(cfg.Cors.AllowOrigins) == 0 {
		cfg.Cors.AllowOrigins = []string{"http://localhost:5173"}
	}
}
