package config

import "time"

// Config is the top-level goldsuite configuration, corresponding to .goldsuite.yml.
type Config struct {
	Server   ServerConfig   `yaml:"server" koanf:"server"`
	Auth     AuthConfig     `yaml:"auth" koanf:"auth"`
	Fixtures FixturesConfig `yaml:"fixtures" koanf:"fixtures"`
	Feed     FeedConfig     `yaml:"feed" koanf:"feed"`
	Log      LogConfig      `yaml:"log" koanf:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	RequestTimeout  time.Duration `yaml:"request_timeout" koanf:"request_timeout"`
}

// AuthConfig holds the simulated login rules and the session cookie signing
// settings. An empty TokenSecret makes the server generate one per process.
type AuthConfig struct {
	Password       string        `yaml:"password" koanf:"password"`
	JewelerMarkers []string      `yaml:"jeweler_markers" koanf:"jeweler_markers"`
	TokenSecret    string        `yaml:"token_secret" koanf:"token_secret"`
	TokenTTL       time.Duration `yaml:"token_ttl" koanf:"token_ttl"`
}

// FixturesConfig selects where page data comes from. File overrides the
// embedded fixture set; Database, when set, serves from a seeded SQLite file.
type FixturesConfig struct {
	File     string `yaml:"file" koanf:"file"`
	Database string `yaml:"database" koanf:"database"`
}

// FeedConfig controls the quote stream.
type FeedConfig struct {
	Interval time.Duration `yaml:"interval" koanf:"interval"`
}

// LogConfig controls logger output.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
