// Package tracing maintains the opentracing tracers of the module, keyed by
// the target of the connection they report for. The tracers are configured
// from the environment, see the documentation of the jaeger client.
package tracing

import (
	"io"
	"sync"

	otgrpc "github.com/opentracing-contrib/go-grpc"
	opentracing "github.com/opentracing/opentracing-go"
	_ "github.com/uber/jaeger-client-go"
	jaegercfg "github.com/uber/jaeger-client-go/config"
	"golang.org/x/xerrors"
	"google.golang.org/grpc"
)

type closableTracer struct {
	tracer opentracing.Tracer
	closer io.Closer
}

type tracerCatalog struct {
	sync.Mutex
	tracerByTarget map[string]closableTracer
}

var catalog = tracerCatalog{
	tracerByTarget: make(map[string]closableTracer),
}

// GetTracerForTarget returns an opentracing.Tracer instance for the given
// connection target. Since the tracers are cached, it returns an existing one
// if it has been initialized before.
func GetTracerForTarget(target string) (opentracing.Tracer, error) {
	catalog.Lock()
	defer catalog.Unlock()

	tc, ok := catalog.tracerByTarget[target]
	if ok {
		return tc.tracer, nil
	}

	cfg, err := jaegercfg.FromEnv()
	if err != nil {
		return nil, xerrors.Errorf("error parsing jaeger configuration from environment: %v", err)
	}

	cfg.ServiceName = target

	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		return nil, xerrors.Errorf("error creating new tracer: %v", err)
	}

	catalog.tracerByTarget[target] = closableTracer{
		tracer: tracer,
		closer: closer,
	}

	return tracer, nil
}

// UnaryClientInterceptor returns a grpc interceptor that reports the calls of
// a connection to the tracer of its target.
func UnaryClientInterceptor(target string) (grpc.UnaryClientInterceptor, error) {
	tracer, err := GetTracerForTarget(target)
	if err != nil {
		return nil, xerrors.Errorf("failed to get tracer: %v", err)
	}

	return otgrpc.OpenTracingClientInterceptor(tracer), nil
}

// CloseAll closes all the tracer instances.
func CloseAll() error {
	catalog.Lock()
	defer catalog.Unlock()

	for _, tc := range catalog.tracerByTarget {
		err := tc.closer.Close()
		if err != nil {
			return err
		}
	}

	catalog.tracerByTarget = make(map[string]closableTracer)

	return nil
}
