package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file kept at the root of a data directory.
const FileName = "ipon.yaml"

// Config represents the top-level ipon.yaml configuration.
type Config struct {
	Profile ProfileConfig `yaml:"profile"`
	Git     GitConfig     `yaml:"git"`
	Log     LogConfig     `yaml:"log"`
}

// ProfileConfig identifies the ledger owner.
type ProfileConfig struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email,omitempty"`
}

// GitConfig controls git versioning of the data directory.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// LogConfig controls the diagnostic channel.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Load reads an ipon.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new data
// directory.
func Default(name, email string) *Config {
	if name == "" {
		name = "User"
	}
	return &Config{
		Profile: ProfileConfig{
			Name:  name,
			Email: email,
		},
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  name,
			AuthorEmail: email,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
