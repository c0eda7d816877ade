// Package config holds the runtime settings of dimstat, read from environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Version of dimstat
const Version = "0.1.2"

const envPrefix = "dimstat"

// Config ...
type Config struct {
	InputDir  string `envconfig:"INPUT_DIR" default:"augmented"`
	OutputDir string `envconfig:"OUTPUT_DIR" default:"augmented_256"`
	Width     uint   `envconfig:"WIDTH" default:"256"`
	Height    uint   `envconfig:"HEIGHT" default:"256"`
	Chart     string `envconfig:"CHART"` // histogram png, empty to skip
	Interp    string `envconfig:"INTERP" default:"bilinear"`
	Develop   bool   `envconfig:"DEVELOP"`
	SentryDSN string `envconfig:"SENTRY_DSN"`
}

// Current loaded at startup, zero valued when the environment is invalid
var Current = new(Config)

func init() {
	if c, err := Load(); err == nil {
		Current = c
	}
}

// Load reads a fresh Config from environment
func Load() (*Config, error) {
	c := new(Config)
	if err := envconfig.Process(envPrefix, c); err != nil {
		return nil, err
	}
	return c, nil
}

// InDevelop ...
func InDevelop() bool {
	return Current.Develop
}
