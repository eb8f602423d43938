// Package cmd holds the startup plumbing shared by buildspace command mains.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"slices"
	"time"

	"github.com/louisbranch/buildspace/internal/platform/branding"
	"github.com/louisbranch/buildspace/internal/platform/config"
	"github.com/louisbranch/buildspace/internal/platform/otel"
	"github.com/louisbranch/buildspace/internal/platform/timeouts"
)

// Command names. They double as the OTel service suffix.
const (
	ServiceWeb    = "web"
	ServiceExport = "export"
)

var services = []string{ServiceWeb, ServiceExport}

// Load fills cfg from environment defaults, lets bind register flags that
// default to those values, then parses args. Flags win over env.
func Load[T any](cfg *T, fs *flag.FlagSet, args []string, bind func(*flag.FlagSet, *T)) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	if fs == nil {
		return errors.New("flag set is required")
	}
	if err := config.ParseEnv(cfg); err != nil {
		return fmt.Errorf("read env: %w", err)
	}
	if bind != nil {
		bind(fs, cfg)
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// TelemetryName is the OTel service name reported for a command.
func TelemetryName(service string) string {
	return branding.ServiceSlug + "-" + service
}

// Run sets up tracing for service, runs fn and flushes spans afterwards.
// Start, stop and elapsed time are logged through the standard logger.
func Run(ctx context.Context, service string, fn func(context.Context) error) error {
	if !slices.Contains(services, service) {
		return fmt.Errorf("unknown service %q", service)
	}
	if fn == nil {
		return errors.New("run function is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	shutdown, err := otel.Setup(ctx, TelemetryName(service))
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), timeouts.TelemetryFlush)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("telemetry flush service=%s err=%v", service, err)
		}
	}()

	started := time.Now()
	log.Printf("starting service=%s", service)
	err = fn(ctx)
	log.Printf("stopped service=%s elapsed=%s", service, time.Since(started).Round(time.Millisecond))
	return err
}
