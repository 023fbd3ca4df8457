package config

import (
	"encoding/json"
	"fmt"

	_ "github.com/colourlab/go-colourmetric/env"
)

// ParseConfig parses the raw JSON configuration.
func ParseConfig(raw []byte) (config Config, err error) {
	err = json.Unmarshal(raw, &config)
	if err != nil {
		return config, fmt.Errorf("unmarshal config: %v", err)
	}
	config.setDefaults()
	return config, nil
}

// Default returns the configuration used when no file is given.
func Default() (config Config) {
	config.LogLevel = LogLevelInfo
	config.setDefaults()
	return config
}

type Config struct {
	Metric   Metric   `json:"metric"`
	Grid     Grid     `json:"grid"`
	Store    Store    `json:"store"`
	LogLevel LogLevel `json:"log_level"`
}

type Store struct {
	Sqlite string `json:"sqlite"`
}

func (c *Config) setDefaults() {
	c.Metric.setDefaults()
	c.Grid.setDefaults()
	if c.Store.Sqlite == "" {
		c.Store.Sqlite = "./tensorfields.db"
	}
}
