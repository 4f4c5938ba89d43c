// Package app provides the command line application of the verified store
// client.
//
// The connection parameters can be given by flags, or by a yaml configuration
// file. A flag always takes precedence over the file.
//
// Documentation Last Review: 13.01.2021
//
package app

import (
	urfave "github.com/urfave/cli/v2"
)

// NewApp creates the command line application.
func NewApp() *urfave.App {
	app := &urfave.App{
		Name:  "veristore",
		Usage: "client for a tamper-evident key/value store",
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:  "server",
				Usage: "address of the store server",
				Value: "127.0.0.1:3322",
			},
			&urfave.StringFlag{
				Name:  "config",
				Usage: "path to a yaml configuration file",
			},
			&urfave.StringFlag{
				Name:  "cache",
				Usage: "path to the file persisting the trusted root",
			},
			&urfave.StringFlag{
				Name:  "user",
				Usage: "user of the session",
			},
			&urfave.StringFlag{
				Name:  "password",
				Usage: "password of the session",
			},
			&urfave.StringFlag{
				Name:  "key",
				Usage: "public key of the server in hexadecimal, to authenticate the bootstrap",
			},
			&urfave.BoolFlag{
				Name:  "tracing",
				Usage: "report the calls to the jaeger agent configured in the environment",
			},
		},
		Commands: []*urfave.Command{
			{
				Name:   "root",
				Usage:  "print the trusted root",
				Action: rootAction,
			},
			{
				Name:      "get",
				Usage:     "read a value without verification",
				ArgsUsage: "KEY",
				Action:    getAction,
			},
			{
				Name:      "set",
				Usage:     "write a pair without verification",
				ArgsUsage: "KEY VALUE",
				Action:    setAction,
			},
			{
				Name:      "set-batch",
				Usage:     "write several pairs in one request, without verification",
				ArgsUsage: "KEY VALUE [KEY VALUE...]",
				Action:    setBatchAction,
			},
			{
				Name:      "safe-get",
				Usage:     "read a value and verify the proof of the response",
				ArgsUsage: "KEY",
				Action:    safeGetAction,
			},
			{
				Name:      "safe-set",
				Usage:     "write a pair and verify the proof of the response",
				ArgsUsage: "KEY VALUE",
				Action:    safeSetAction,
			},
		},
	}

	return app
}
