// Package config loads the data service configuration.
package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenAddr string `yaml:"listen_addr"`
	DBPath     string `yaml:"db_path"`
	Seed       bool   `yaml:"seed"`
}

// Load reads config.yaml (or $WELLWATCH_CONFIG) and fills defaults for
// anything missing. A missing file is not an error; defaults apply.
func Load() Config {
	cfg := Config{
		ListenAddr: ":8000",
		DBPath:     "wellwatch.db",
		Seed:       true,
	}

	path := "config.yaml"
	if envPath := os.Getenv("WELLWATCH_CONFIG"); envPath != "" {
		path = envPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("Error parsing %s: %v", path, err)
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8000"
	}
	if cfg.DBPath == "" {
		cfg.DBPath = "wellwatch.db"
	}
	log.Printf("Loaded config from %s", path)
	return cfg
}
