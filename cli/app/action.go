package app

import (
	"context"
	"encoding/hex"
	"fmt"

	urfave "github.com/urfave/cli/v2"
	"go.dedis.ch/veristore/client"
	"go.dedis.ch/veristore/client/grpcclient"
	"go.dedis.ch/veristore/core/roots"
	"go.dedis.ch/veristore/core/types"
	"golang.org/x/xerrors"
)

func rootAction(ctx *urfave.Context) error {
	c, clean, err := makeClient(ctx)
	if err != nil {
		return err
	}

	defer clean()

	root, err := c.CurrentRoot(context.Background())
	if err != nil {
		return xerrors.Errorf("failed to get root: %v", err)
	}

	fmt.Fprintln(ctx.App.Writer, root.String())

	return nil
}

func getAction(ctx *urfave.Context) error {
	if ctx.NArg() != 1 {
		return xerrors.New("expect exactly one argument: KEY")
	}

	c, clean, err := makeClient(ctx)
	if err != nil {
		return err
	}

	defer clean()

	value, err := c.Get(context.Background(), []byte(ctx.Args().Get(0)))
	if err != nil {
		return xerrors.Errorf("failed to get: %v", err)
	}

	fmt.Fprintln(ctx.App.Writer, string(value))

	return nil
}

func setAction(ctx *urfave.Context) error {
	if ctx.NArg() != 2 {
		return xerrors.New("expect exactly two arguments: KEY VALUE")
	}

	c, clean, err := makeClient(ctx)
	if err != nil {
		return err
	}

	defer clean()

	key := []byte(ctx.Args().Get(0))
	value := []byte(ctx.Args().Get(1))

	err = c.Set(context.Background(), key, value)
	if err != nil {
		return xerrors.Errorf("failed to set: %v", err)
	}

	return nil
}

func setBatchAction(ctx *urfave.Context) error {
	if ctx.NArg() == 0 || ctx.NArg()%2 != 0 {
		return xerrors.New("expect an even number of arguments: KEY VALUE [KEY VALUE...]")
	}

	c, clean, err := makeClient(ctx)
	if err != nil {
		return err
	}

	defer clean()

	kvs := types.NewKVSet()
	for i := 0; i < ctx.NArg(); i += 2 {
		kvs = kvs.Add([]byte(ctx.Args().Get(i)), []byte(ctx.Args().Get(i+1)))
	}

	err = c.SetBatch(context.Background(), kvs)
	if err != nil {
		return xerrors.Errorf("failed to set batch: %v", err)
	}

	return nil
}

func safeGetAction(ctx *urfave.Context) error {
	if ctx.NArg() != 1 {
		return xerrors.New("expect exactly one argument: KEY")
	}

	c, clean, err := makeClient(ctx)
	if err != nil {
		return err
	}

	defer clean()

	value, err := c.SafeGet(context.Background(), []byte(ctx.Args().Get(0)))
	if err != nil {
		return xerrors.Errorf("failed to safe get: %v", err)
	}

	fmt.Fprintln(ctx.App.Writer, string(value))

	return nil
}

func safeSetAction(ctx *urfave.Context) error {
	if ctx.NArg() != 2 {
		return xerrors.New("expect exactly two arguments: KEY VALUE")
	}

	c, clean, err := makeClient(ctx)
	if err != nil {
		return err
	}

	defer clean()

	key := []byte(ctx.Args().Get(0))
	value := []byte(ctx.Args().Get(1))

	err = c.SafeSet(context.Background(), key, value)
	if err != nil {
		return xerrors.Errorf("failed to safe set: %v", err)
	}

	return nil
}

// makeClient assembles a client from the effective configuration. The cleanup
// function closes the connection and the root cache when one is open.
func makeClient(ctx *urfave.Context) (*client.Client, func(), error) {
	cfg, err := resolveConfig(ctx)
	if err != nil {
		return nil, nil, xerrors.Errorf("failed to resolve config: %v", err)
	}

	opts := []grpcclient.Option{}
	if cfg.Tracing {
		opts = append(opts, grpcclient.WithTracing())
	}

	conn, err := grpcclient.NewClient(cfg.Server, opts...)
	if err != nil {
		return nil, nil, xerrors.Errorf("failed to connect to '%s': %v", cfg.Server, err)
	}

	clientCfg := client.Config{Transport: conn}

	var disk *roots.Disk
	if cfg.Cache != "" {
		disk, err = roots.NewDisk(cfg.Cache)
		if err != nil {
			conn.Close()
			return nil, nil, xerrors.Errorf("failed to open cache: %v", err)
		}

		clientCfg.Roots = disk
	}

	clean := func() {
		conn.Close()

		if disk != nil {
			disk.Close()
		}
	}

	if cfg.RootKey != "" {
		key, err := hex.DecodeString(cfg.RootKey)
		if err != nil {
			clean()
			return nil, nil, xerrors.Errorf("failed to decode key: %v", err)
		}

		clientCfg.RootKey = key
	}

	c, err := client.NewClient(clientCfg)
	if err != nil {
		clean()
		return nil, nil, xerrors.Errorf("failed to make client: %v", err)
	}

	if cfg.User != "" {
		err = c.Login(context.Background(), cfg.User, cfg.Password)
		if err != nil {
			clean()
			return nil, nil, xerrors.Errorf("failed to login: %v", err)
		}
	}

	return c, clean, nil
}
