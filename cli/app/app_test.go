package app

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	urfave "github.com/urfave/cli/v2"
)

func TestNewApp(t *testing.T) {
	app := NewApp()

	require.Equal(t, "veristore", app.Name)
	require.Len(t, app.Commands, 6)
	require.Len(t, app.Flags, 7)
}

func TestApp_ArgumentCheck(t *testing.T) {
	err := NewApp().Run([]string{"veristore", "get"})
	require.EqualError(t, err, "expect exactly one argument: KEY")

	err = NewApp().Run([]string{"veristore", "set", "key"})
	require.EqualError(t, err, "expect exactly two arguments: KEY VALUE")

	err = NewApp().Run([]string{"veristore", "set-batch", "key"})
	require.EqualError(t, err,
		"expect an even number of arguments: KEY VALUE [KEY VALUE...]")

	err = NewApp().Run([]string{"veristore", "safe-get"})
	require.EqualError(t, err, "expect exactly one argument: KEY")

	err = NewApp().Run([]string{"veristore", "safe-set", "key"})
	require.EqualError(t, err, "expect exactly two arguments: KEY VALUE")
}

func TestLoadConfig(t *testing.T) {
	dir, err := ioutil.TempDir(os.TempDir(), "veristore")
	require.NoError(t, err)

	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yml")

	data := "server: example.com:3322\ncache: /tmp/roots.db\nuser: bob\ntracing: true\n"

	err = ioutil.WriteFile(path, []byte(data), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "example.com:3322", cfg.Server)
	require.Equal(t, "/tmp/roots.db", cfg.Cache)
	require.Equal(t, "bob", cfg.User)
	require.True(t, cfg.Tracing)

	_, err = LoadConfig(filepath.Join(dir, "unknown.yml"))
	require.Error(t, err)

	err = ioutil.WriteFile(path, []byte("\tnot yaml"), 0644)
	require.NoError(t, err)

	_, err = LoadConfig(path)
	require.Error(t, err)
}

func TestResolveConfig(t *testing.T) {
	cfg := resolve(t)
	require.Equal(t, "127.0.0.1:3322", cfg.Server)
	require.Equal(t, "", cfg.Cache)

	cfg = resolve(t, "--server", "example.com:3322", "--user", "bob",
		"--password", "s3cret", "--cache", "/tmp/roots.db", "--key", "dead", "--tracing")
	require.Equal(t, "example.com:3322", cfg.Server)
	require.Equal(t, "bob", cfg.User)
	require.Equal(t, "s3cret", cfg.Password)
	require.Equal(t, "/tmp/roots.db", cfg.Cache)
	require.Equal(t, "dead", cfg.RootKey)
	require.True(t, cfg.Tracing)
}

func TestResolveConfig_File(t *testing.T) {
	dir, err := ioutil.TempDir(os.TempDir(), "veristore")
	require.NoError(t, err)

	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "config.yml")

	data := "server: example.com:3322\nuser: bob\n"

	err = ioutil.WriteFile(path, []byte(data), 0644)
	require.NoError(t, err)

	cfg := resolve(t, "--config", path)
	require.Equal(t, "example.com:3322", cfg.Server)
	require.Equal(t, "bob", cfg.User)

	// The flag takes precedence over the file.
	cfg = resolve(t, "--config", path, "--server", "other.com:3322")
	require.Equal(t, "other.com:3322", cfg.Server)
	require.Equal(t, "bob", cfg.User)

	err = runCapture(t, nil, "--config", filepath.Join(dir, "unknown.yml"))
	require.Error(t, err)
}

// -----------------------------------------------------------------------------
// Utility functions

func resolve(t *testing.T, args ...string) Config {
	cfg := Config{}

	err := runCapture(t, &cfg, args...)
	require.NoError(t, err)

	return cfg
}

func runCapture(t *testing.T, out *Config, args ...string) error {
	var resolveErr error

	app := NewApp()
	app.Commands = append(app.Commands, &urfave.Command{
		Name: "capture",
		Action: func(ctx *urfave.Context) error {
			cfg, err := resolveConfig(ctx)
			if err != nil {
				resolveErr = err
				return nil
			}

			if out != nil {
				*out = cfg
			}

			return nil
		},
	})

	err := app.Run(append(append([]string{"veristore"}, args...), "capture"))
	require.NoError(t, err)

	return resolveErr
}
