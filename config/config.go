// Package config reads the optional fieldboard configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	BackendDir    = "dir"
	BackendSQLite = "sqlite"
)

type Store struct {
	Backend  string `yaml:"backend"`
	Dir      string `yaml:"dir"`
	Database string `yaml:"database"`
}

type Config struct {
	Store  Store  `yaml:"store"`
	Glyphs string `yaml:"glyphs"`
	Listen string `yaml:"listen"`
}

func Default() Config {
	return Config{
		Store: Store{
			Backend:  BackendDir,
			Dir:      "saved-chessboards",
			Database: "fieldboard.db",
		},
		Glyphs: "ascii",
		Listen: ":55430",
	}
}

// Parse overlays the YAML document in data onto the defaults.
func Parse(data []byte) (Config, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Load reads path. A missing file yields the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, err
	}
	c, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendDir:
		if c.Store.Dir == "" {
			return errors.New("store.dir is required for the dir backend")
		}
	case BackendSQLite:
		if c.Store.Database == "" {
			return errors.New("store.database is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown store backend: %q", c.Store.Backend)
	}
	switch c.Glyphs {
	case "ascii", "unicode":
	default:
		return fmt.Errorf("unknown glyph set: %q", c.Glyphs)
	}
	return nil
}

func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
