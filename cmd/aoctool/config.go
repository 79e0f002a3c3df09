package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML configuration read from --config.
type Config struct {
	LogLevel string     `yaml:"log_level"`
	Grid     GridConfig `yaml:"grid"`
}

// GridConfig names the runes used by the path command.
type GridConfig struct {
	Walls    string `yaml:"walls"`
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Diagonal bool   `yaml:"diagonal"`
}

// DefaultConfig is used when no file is given; a loaded file overrides
// only the fields it sets.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Grid: GridConfig{
			Walls: "#",
			Start: "S",
			End:   "E",
		},
	}
}

// LoadConfig decodes YAML from r over DefaultConfig. An empty document is
// not an error.
func LoadConfig(r io.Reader) (Config, error) {
	c := DefaultConfig()
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}

	return c, nil
}

// loadConfigFile reads path, or returns DefaultConfig if path is empty.
func loadConfigFile(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	return LoadConfig(f)
}

func (c Config) validate() error {
	if c.Grid.Walls == "" {
		return errors.New("config: grid.walls must not be empty")
	}
	for _, f := range [...]struct{ name, val string }{
		{"grid.start", c.Grid.Start},
		{"grid.end", c.Grid.End},
	} {
		if utf8.RuneCountInString(f.val) != 1 {
			return fmt.Errorf("config: %s must be a single character, got %q", f.name, f.val)
		}
	}

	return nil
}

func (g GridConfig) startRune() rune {
	r, _ := utf8.DecodeRuneInString(g.Start)

	return r
}

func (g GridConfig) endRune() rune {
	r, _ := utf8.DecodeRuneInString(g.End)

	return r
}
