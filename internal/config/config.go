// Package config handles service configuration loading and management.
package config

import "time"

// Config holds all service settings.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Image   ImageConfig   `yaml:"image"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Listen          string        `yaml:"listen"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// ImageConfig holds placeholder image settings. Max dimensions may be
// lowered below the encoder's 4096 hard limit but never raised above it.
type ImageConfig struct {
	MaxWidth      int    `yaml:"max_width"`
	MaxHeight     int    `yaml:"max_height"`
	DefaultWidth  int    `yaml:"default_width"`
	DefaultHeight int    `yaml:"default_height"`
	DefaultColor  string `yaml:"default_color"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen:          ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Image: ImageConfig{
			MaxWidth:      4096,
			MaxHeight:     4096,
			DefaultWidth:  300,
			DefaultHeight: 200,
			DefaultColor:  "cccccc",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
