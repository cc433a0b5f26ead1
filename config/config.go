package config

import (
	"encoding/json"
	"os"
	"strconv"
	"sync"
)

type Config struct {
	Port          int    `json:"port"`
	DatabasePath  string `json:"databasePath"`
	RetentionDays int    `json:"retentionDays"`
	OpenBrowser   bool   `json:"openBrowser"`
}

var (
	cfg Config
	mu  sync.RWMutex
)

const configFilePath = "./kasir_config.json"

func defaults() Config {
	return Config{
		Port:          8080,
		DatabasePath:  "./kasir.db",
		RetentionDays: 90,
		OpenBrowser:   true,
	}
}

// LoadConfig reads kasir_config.json, falling back to defaults when the
// file is absent. PORT and KASIR_DB environment variables (optionally
// from a .env file loaded by main) override the file.
func LoadConfig() (Config, error) {
	mu.Lock()
	defer mu.Unlock()

	loaded := defaults()
	file, err := os.ReadFile(configFilePath)
	if err == nil {
		var tempCfg Config
		if err := json.Unmarshal(file, &tempCfg); err != nil {
			return Config{}, err
		}
		loaded = tempCfg
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	applyDefaults(&loaded)
	applyEnv(&loaded)
	cfg = loaded
	return cfg, nil
}

func SaveConfig(newCfg Config) error {
	mu.Lock()
	defer mu.Unlock()

	applyDefaults(&newCfg)
	file, err := json.MarshalIndent(newCfg, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(configFilePath, file, 0644); err != nil {
		return err
	}
	cfg = newCfg
	return nil
}

func GetConfig() Config {
	mu.RLock()
	defer mu.RUnlock()
	return cfg
}

func applyDefaults(c *Config) {
	d := defaults()
	if c.Port == 0 {
		c.Port = d.Port
	}
	if c.DatabasePath == "" {
		c.DatabasePath = d.DatabasePath
	}
	if c.RetentionDays == 0 {
		c.RetentionDays = d.RetentionDays
	}
}

func applyEnv(c *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("KASIR_DB"); v != "" {
		c.DatabasePath = v
	}
}
