package main

import (
	"os"

	"github.com/bytedance/sonic"
)

type Config struct {
	APIKey   string `json:"api_key"`
	BaseURL  string `json:"base_url"`
	Model    string `json:"model"`
	Language string `json:"language"`
}

func loadConfig(path string) (*Config, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var conf Config
	if err := sonic.Unmarshal(file, &conf); err != nil {
		return nil, err
	}
	if conf.Language == "" {
		conf.Language = "de"
	}
	return &conf, nil
}
