package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config supplies defaults for flags left unset. Read from
// tictac.yaml in the working directory when the file exists.
type Config struct {
	Dataset   string `yaml:"dataset"`
	Opponent  string `yaml:"opponent"`
	Neighbors int    `yaml:"neighbors"`
	Addr      string `yaml:"addr"`
	Seed      int64  `yaml:"seed"`
}

const configPath = "tictac.yaml"

var config = Config{
	Opponent:  "minimax",
	Neighbors: 5,
	Addr:      ":8080",
}

func loadConfig() error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %v: %w", configPath, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return fmt.Errorf("parse %v: %w", configPath, err)
	}
	return nil
}
