package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/segmentio/columnar"
	"github.com/segmentio/columnar/internal/logutil"
)

// config is the content of the TOML configuration file. Flags passed on the
// command line take precedence over it.
type config struct {
	Count  countConfig       `toml:"count"`
	Source sourceConfig      `toml:"source"`
	Log    logutil.LogConfig `toml:"log"`
}

type countConfig struct {
	Nulls      columnar.NullPolicy   `toml:"nulls"`
	NaN        columnar.NaNPolicy    `toml:"nan"`
	NullsEqual columnar.NullEquality `toml:"nulls-equal"`
	Each       bool                  `toml:"each"`
	Workers    int                   `toml:"workers"`
	Grain      int                   `toml:"grain"`
}

type sourceConfig struct {
	Schema    string   `toml:"schema"`
	NullValue string   `toml:"null-value"`
	Columns   []string `toml:"columns"`
}

func loadConfig(path string) (*config, error) {
	c := new(config)
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, errors.Wrapf(err, "loading configuration from %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		return nil, errors.Errorf("unknown configuration key in %s: %s", path, undecoded[0])
	}
	return c, nil
}
