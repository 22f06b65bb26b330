package opt

import (
	"flag"
	"fmt"

	"github.com/nelhage/fieldboard/cli"
	"github.com/nelhage/fieldboard/config"
	"github.com/nelhage/fieldboard/store"
)

// Store holds the flags shared by every subcommand that touches saved
// boards. Flags override the configuration file.
type Store struct {
	Config   string
	Backend  string
	Dir      string
	Database string
	Unicode  bool
}

func (o *Store) AddFlags(flags *flag.FlagSet) {
	flags.StringVar(&o.Config, "config", "fieldboard.yaml", "configuration file")
	flags.StringVar(&o.Backend, "store", "", "save backend: dir or sqlite")
	flags.StringVar(&o.Dir, "dir", "", "directory for saved boards")
	flags.StringVar(&o.Database, "db", "", "sqlite database for saved boards")
	flags.BoolVar(&o.Unicode, "unicode", false, "render board with utf8 glyphs")
}

// Build loads the configuration file and applies flag overrides.
func (o *Store) Build() (config.Config, error) {
	c, err := config.Load(o.Config)
	if err != nil {
		return config.Config{}, err
	}
	if o.Backend != "" {
		c.Store.Backend = o.Backend
	}
	if o.Dir != "" {
		c.Store.Dir = o.Dir
	}
	if o.Database != "" {
		c.Store.Database = o.Database
	}
	if o.Unicode {
		c.Glyphs = "unicode"
	}
	if err := c.Validate(); err != nil {
		return config.Config{}, err
	}
	return c, nil
}

// Open returns the configured store and a function that releases it.
func Open(c config.Config) (store.Store, func(), error) {
	switch c.Store.Backend {
	case config.BackendDir:
		return store.NewDirStore(c.Store.Dir), func() {}, nil
	case config.BackendSQLite:
		st, err := store.Open(c.Store.Database)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", c.Store.Database, err)
		}
		return st, func() { st.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend: %q", c.Store.Backend)
}

func Glyphs(c config.Config) *cli.Glyphs {
	g, err := cli.ParseGlyphs(c.Glyphs)
	if err != nil {
		return &cli.DefaultGlyphs
	}
	return g
}
