/*
Package config holds the TOML configuration of wildcard-search.

Every key is optional; missing keys keep their built-in defaults:

	[documents]
	dir = "."
	count = 10
	drop_stopwords = false
	lemmatize = false
	language = "en"

	[queries]
	input_file = "input.txt"
	result_file = "result.txt"
	time_file = "time.txt"
	workers = 1

	[log]
	level = "info"
	timestamp = false
*/
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrParsingConfig = errors.New("error parsing config")
)

type Config struct {
	Documents DocumentsConfig `toml:"documents"`
	Queries   QueriesConfig   `toml:"queries"`
	Log       LogConfig       `toml:"log"`
}

// DocumentsConfig describes where the corpus lives and how words are
// normalized before indexing.
type DocumentsConfig struct {
	Dir           string `toml:"dir"`
	Count         int    `toml:"count"`
	DropStopwords bool   `toml:"drop_stopwords"`
	Lemmatize     bool   `toml:"lemmatize"`
	Language      string `toml:"language"`
}

type QueriesConfig struct {
	InputFile  string `toml:"input_file"`
	ResultFile string `toml:"result_file"`
	TimeFile   string `toml:"time_file"`
	Workers    int    `toml:"workers"`
}

type LogConfig struct {
	Level     string `toml:"level"`
	Timestamp bool   `toml:"timestamp"`
}

func DefaultConfig() *Config {
	return &Config{
		Documents: DocumentsConfig{
			Dir:      ".",
			Count:    10,
			Language: "en",
		},
		Queries: QueriesConfig{
			InputFile:  "input.txt",
			ResultFile: "result.txt",
			TimeFile:   "time.txt",
			Workers:    1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadConfig overlays the TOML file at path on the defaults. An empty path
// returns the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	meta, err := toml.DecodeFile(path, config)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrParsingConfig, path, err)
	}
	for _, key := range meta.Undecoded() {
		log.Warnf("Unknown config key %q in %s", key.String(), path)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) Validate() error {
	if c.Documents.Count < 1 {
		return fmt.Errorf("%w: documents.count must be at least 1, got %d", ErrInvalidConfig, c.Documents.Count)
	}
	if c.Queries.Workers < 0 {
		return fmt.Errorf("%w: queries.workers must not be negative, got %d", ErrInvalidConfig, c.Queries.Workers)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err)
	}
	return nil
}

// LogLevel returns the configured level, falling back to info.
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
