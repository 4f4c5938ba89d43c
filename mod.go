// Package veristore defines the client of a tamper-evident, append-only
// key/value store. The client keeps a local trusted root of the server's
// authenticated log and accepts the result of a verified operation only after
// the server's cryptographic proof has been recomputed and matched locally.
//
// The root package is used to provide the global settings of the module.
package veristore

import (
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

var logout = zerolog.ConsoleWriter{
	Out:        os.Stdout,
	TimeFormat: time.RFC3339,
}

// Logger is a globally available logger instance.
var Logger = zerolog.New(logout).
	With().Timestamp().Logger().
	With().Caller().Logger().
	Level(zerolog.DebugLevel)

// PromCollectors exposes the Prometheus collectors created in the module. The
// caller is free to register them to one or multiple registries.
var PromCollectors []prometheus.Collector
