package config

import (
	"errors"
	"time"
)

type (
	NET struct {
		// ReadBufferSize is the scratch buffer capacity in bytes. It is the
		// granularity of every read issued against a connection and thereby
		// bounds the worst-case number of reads a body of a given size
		// takes. Must be positive.
		ReadBufferSize int
		// ReadTimeout limits how long a single read may stall before the
		// connection is considered gone. Zero disables the deadline.
		ReadTimeout time.Duration
	}

	HTTP struct {
		// SessionPoolSize caps how many idle request/response pairs are
		// kept around for future connections.
		SessionPoolSize int
	}
)

type Config struct {
	NET  NET
	HTTP HTTP
}

// Default returns the settings used unless overridden via App.Tune.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize: 4096,
			ReadTimeout:    90 * time.Second,
		},
		HTTP: HTTP{
			SessionPoolSize: 128,
		},
	}
}

func (c *Config) Validate() error {
	if c.NET.ReadBufferSize <= 0 {
		return errors.New("config: NET.ReadBufferSize must be positive")
	}

	if c.HTTP.SessionPoolSize < 0 {
		return errors.New("config: HTTP.SessionPoolSize must not be negative")
	}

	return nil
}
