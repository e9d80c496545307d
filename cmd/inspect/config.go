package main

import "github.com/kelseyhightower/envconfig"

type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH"`
	// INSPECT_COLOURS enables a colorized header for better readability
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
