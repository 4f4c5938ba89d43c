package app

import (
	"io/ioutil"

	urfave "github.com/urfave/cli/v2"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v2"
)

// Config is the configuration of the application. It mirrors the global flags
// so that the same settings can be kept in a file.
type Config struct {
	Server   string `yaml:"server"`
	Cache    string `yaml:"cache"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	RootKey  string `yaml:"rootKey"`
	Tracing  bool   `yaml:"tracing"`
}

// LoadConfig reads the configuration from a yaml file.
func LoadConfig(path string) (Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return Config{}, xerrors.Errorf("failed to read file: %v", err)
	}

	cfg := Config{}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, xerrors.Errorf("failed to unmarshal config: %v", err)
	}

	return cfg, nil
}

// resolveConfig builds the effective configuration of a command, starting
// from the file when one is given and overriding its values with the flags
// set on the command line.
func resolveConfig(ctx *urfave.Context) (Config, error) {
	cfg := Config{}

	if ctx.String("config") != "" {
		var err error

		cfg, err = LoadConfig(ctx.String("config"))
		if err != nil {
			return cfg, xerrors.Errorf("failed to load '%s': %v", ctx.String("config"), err)
		}
	}

	if ctx.IsSet("server") || cfg.Server == "" {
		cfg.Server = ctx.String("server")
	}

	if ctx.IsSet("cache") {
		cfg.Cache = ctx.String("cache")
	}

	if ctx.IsSet("user") {
		cfg.User = ctx.String("user")
	}

	if ctx.IsSet("password") {
		cfg.Password = ctx.String("password")
	}

	if ctx.IsSet("key") {
		cfg.RootKey = ctx.String("key")
	}

	if ctx.IsSet("tracing") {
		cfg.Tracing = ctx.Bool("tracing")
	}

	return cfg, nil
}
