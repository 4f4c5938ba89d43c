package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.dedis.ch/veristore"
)

// defines prometheus metrics
var (
	promVerified = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "veristore_client_verified_ops_total",
		Help: "total number of successfully verified operations",
	}, []string{"op"})

	promFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "veristore_client_verification_failures_total",
		Help: "total number of proofs rejected by the local verification",
	})

	promRootIndex = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "veristore_client_root_index",
		Help: "index of the trusted root",
	})
)

func init() {
	veristore.PromCollectors = append(veristore.PromCollectors,
		promVerified, promFailures, promRootIndex)
}
