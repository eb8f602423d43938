// Package web parses web command flags and starts the web server.
package web

import (
	"context"
	"flag"
	"fmt"

	entrypoint "github.com/louisbranch/buildspace/internal/platform/cmd"
	"github.com/louisbranch/buildspace/internal/services/web"
)

// Config holds web command configuration.
type Config struct {
	HTTPAddr     string `env:"BUILDSPACE_WEB_HTTP_ADDR"      envDefault:"localhost:8080"`
	AssetBaseURL string `env:"BUILDSPACE_WEB_ASSET_BASE_URL"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.Load(&cfg, fs, args, bindFlags); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "base URL prefixed to static asset links")
}

// Run starts the web server and blocks until ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.Run(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:     cfg.HTTPAddr,
			AssetBaseURL: cfg.AssetBaseURL,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
