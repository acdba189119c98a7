package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the complete CLI configuration.
type Config struct {
	Data      DataConfig      `json:"data" yaml:"data"`
	Journal   JournalConfig   `json:"journal" yaml:"journal"`
	Statement StatementConfig `json:"statement" yaml:"statement"`
}

// DataConfig locates the customer record files.
type DataConfig struct {
	Dir string `json:"dir" yaml:"dir"`
}

// JournalConfig selects the transaction journal backend.
type JournalConfig struct {
	Type   string `json:"type" yaml:"type"` // "text" or "sqlite"
	Dir    string `json:"dir,omitempty" yaml:"dir,omitempty"`
	DBPath string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// StatementConfig locates exported statements.
type StatementConfig struct {
	Dir string `json:"dir" yaml:"dir"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on
// content; YAML is tried first).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on
// extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is required")
	}
	if c.Journal.Type != "text" && c.Journal.Type != "sqlite" {
		return fmt.Errorf("journal.type must be 'text' or 'sqlite'")
	}
	if c.Journal.Type == "text" && c.Journal.Dir == "" {
		return fmt.Errorf("journal.dir required for text type")
	}
	if c.Journal.Type == "sqlite" && c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path required for sqlite type")
	}
	if c.Statement.Dir == "" {
		return fmt.Errorf("statement.dir is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults, matching the
// directory layout the interactive console used.
func Default() *Config {
	return &Config{
		Data: DataConfig{
			Dir: "./customer_data",
		},
		Journal: JournalConfig{
			Type: "text",
			Dir:  "./transaction_history",
		},
		Statement: StatementConfig{
			Dir: "./statements",
		},
	}
}
