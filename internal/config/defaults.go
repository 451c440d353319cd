package config

import (
	"time"

	"github.com/kirbygold/goldsuite/internal/viewstate"
)

// DefaultPath is the config file looked up in the working directory.
const DefaultPath = ".goldsuite.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:           8080,
			RequestTimeout: 60 * time.Second,
		},
		Auth: AuthConfig{
			Password:       viewstate.DefaultPassword,
			JewelerMarkers: append([]string(nil), viewstate.DefaultJewelerMarkers...),
			TokenTTL:       12 * time.Hour,
		},
		Feed: FeedConfig{
			Interval: 2 * time.Second,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Authenticator builds the login rules described by the auth section.
func (c *Config) Authenticator() viewstate.Authenticator {
	return viewstate.Authenticator{
		Password:       c.Auth.Password,
		JewelerMarkers: c.Auth.JewelerMarkers,
	}
}
