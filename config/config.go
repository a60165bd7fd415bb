package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings. Every field can be set in the
// YAML config file and overridden through the environment.
type Config struct {
	Port         string `yaml:"port"`
	DatabasePath string `yaml:"database_path"`
	StorePath    string `yaml:"store_path"`
	APIBaseURL   string `yaml:"api_base_url"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Port:         "5000",
		DatabasePath: "./bookings.db",
		StorePath:    defaultStorePath(),
		APIBaseURL:   "http://localhost:5000",
	}
}

func defaultStorePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "bookings.json"
	}
	return filepath.Join(home, ".bookbrick", "bookings.json")
}

// Load reads the config file at path on top of the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("cannot parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	if v, err := GetSecret("BOOKBRICK_PORT"); err == nil {
		cfg.Port = v
	}
	if v, err := GetSecret("BOOKBRICK_DATABASE"); err == nil {
		cfg.DatabasePath = v
	}
	if v, err := GetSecret("BOOKBRICK_STORE"); err == nil {
		cfg.StorePath = v
	}
	if v, err := GetSecret("BOOKBRICK_API_URL"); err == nil {
		cfg.APIBaseURL = v
	}

	return cfg, nil
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}
