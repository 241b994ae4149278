package main

import "github.com/kelseyhightower/envconfig"

type Config struct {
	SnapshotDir string `envconfig:"SNAPSHOT_DIR" required:"true"`
	// INSPECT_COLOURS enables colored expiry markers
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
