package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Arena holds all configuration for the battle runner.
type Arena struct {
	LogLevel string `yaml:"log_level"`

	// Roster file declaring parties and characters.
	Roster string `yaml:"roster"`

	// Battles
	Battles      int `yaml:"battles"`
	Parallel     int `yaml:"parallel"`
	MaxRounds    int `yaml:"max_rounds"`
	EquipmentCap int `yaml:"equipment_cap"`

	// Persist battle records to the database.
	Record   bool           `yaml:"record"`
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultArena returns Arena config with sensible defaults.
func DefaultArena() Arena {
	return Arena{
		LogLevel:     "info",
		Roster:       "config/roster.yaml",
		Battles:      1,
		Parallel:     4,
		MaxRounds:    100,
		EquipmentCap: 3,
		Record:       false,
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "tussle",
			Password: "tussle",
			DBName:   "tussle",
			SSLMode:  "disable",
		},
	}
}

// LoadArena loads arena config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadArena(path string) (Arena, error) {
	cfg := DefaultArena()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values the runner cannot work with.
func (a Arena) Validate() error {
	switch {
	case a.Battles < 1:
		return fmt.Errorf("battles must be positive, got %d", a.Battles)
	case a.Parallel < 1:
		return fmt.Errorf("parallel must be positive, got %d", a.Parallel)
	case a.MaxRounds < 1:
		return fmt.Errorf("max_rounds must be positive, got %d", a.MaxRounds)
	case a.EquipmentCap < 0:
		return fmt.Errorf("equipment_cap must not be negative, got %d", a.EquipmentCap)
	}
	return nil
}
