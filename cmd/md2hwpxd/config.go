package main

import (
	"fmt"
	"os"

	"github.com/alnah/go-md2hwpx/internal/yamlutil"
)

// serverConfig is the YAML configuration for the daemon.
type serverConfig struct {
	Addr    string `yaml:"addr"`
	Workers int    `yaml:"workers"` // 0 = derive from CPU count
	MaxSize int64  `yaml:"maxSize"` // max upload bytes, 0 = default
}

const defaultMaxUpload = 10 << 20 // 10MB

func defaultConfig() *serverConfig {
	return &serverConfig{
		Addr:    ":8000",
		MaxSize: defaultMaxUpload,
	}
}

// loadConfig reads a strict YAML config file; unknown fields are errors.
func loadConfig(path string) (*serverConfig, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := defaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = defaultMaxUpload
	}
	return cfg, nil
}
