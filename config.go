package mimekit

import (
	"github.com/gobeaver/beaver-kit/config"
)

type Config struct {
	// Detection cache settings. The cache stores detection results keyed
	// by a hash of the sniffed bytes; useful when the same payloads are
	// classified repeatedly.
	CacheEnabled bool `env:"MIMEKIT_CACHE_ENABLED,default:true"`
	CacheSize    int  `env:"MIMEKIT_CACHE_SIZE,default:1024"`

	// Fallback returned by the CLI and helpers when nothing matches.
	FallbackMIME string `env:"MIMEKIT_FALLBACK_MIME,default:application/octet-stream"`

	// Logging configuration for the command-line tool.
	LogLevel  string `env:"MIMEKIT_LOG_LEVEL,default:info"`
	LogFormat string `env:"MIMEKIT_LOG_FORMAT,default:text"` // text or json
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := config.Load(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig returns a config with default values, without consulting
// the environment.
func DefaultConfig() *Config {
	return &Config{
		CacheEnabled: true,
		CacheSize:    1024,
		FallbackMIME: "application/octet-stream",
		LogLevel:     "info",
		LogFormat:    "text",
	}
}
