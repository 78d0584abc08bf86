package main

import (
	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	flag "github.com/spf13/pflag"
)

type config struct {
	// Specs are normalized in addition to the positional arguments.
	Specs    []string `koanf:"specs"`
	Add      string   `koanf:"add"`
	Remove   string   `koanf:"remove"`
	Contains []string `koanf:"contains"`
	Expand   bool     `koanf:"expand"`
	Limit    int      `koanf:"limit"`
	LogLevel string   `koanf:"log-level"`
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("rangectl", flag.ContinueOnError)
	fs.String("config", "", "YAML file holding defaults for the flags below")
	fs.String("add", "", "range spec added to every set")
	fs.String("remove", "", "range spec removed from every set")
	fs.StringSlice("contains", nil, "values looked up in every set")
	fs.Bool("expand", false, "print the values of every set")
	fs.Int("limit", 100, "maximum number of values printed by --expand, negative for all")
	fs.String("log-level", "warn", "log level: debug, info, warn or error")
	return fs
}

// loadConfig parses args and merges them over the optional config file.
func loadConfig(args []string) (*config, []string, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	k := koanf.New(".")
	if path, _ := fs.GetString("config"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, nil, errors.Wrapf(err, "loading config %s", path)
		}
	}
	if err := k.Load(posflag.Provider(fs, ".", k), nil); err != nil {
		return nil, nil, errors.Wrap(err, "loading flags")
	}

	cfg := &config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, nil, errors.Wrap(err, "decoding config")
	}
	return cfg, fs.Args(), nil
}
