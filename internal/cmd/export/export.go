// Package export parses export command flags and writes the static site.
package export

import (
	"context"
	"flag"
	"fmt"
	"log"

	entrypoint "github.com/louisbranch/buildspace/internal/platform/cmd"
	"github.com/louisbranch/buildspace/internal/services/web"
	webexport "github.com/louisbranch/buildspace/internal/services/web/export"
	"github.com/louisbranch/buildspace/internal/services/web/modules"
	webstatic "github.com/louisbranch/buildspace/internal/services/web/static"
)

// Config holds export command configuration.
type Config struct {
	OutDir       string `env:"BUILDSPACE_EXPORT_OUT_DIR"        envDefault:"dist"`
	AssetBaseURL string `env:"BUILDSPACE_EXPORT_ASSET_BASE_URL"`
	Workers      int    `env:"BUILDSPACE_EXPORT_WORKERS"        envDefault:"4"`
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
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "base URL prefixed to static asset links")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent page renders")
}

// Run renders every static page into cfg.OutDir.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.Run(ctx, entrypoint.ServiceExport, func(ctx context.Context) error {
		handler, err := web.NewHandler(web.Config{AssetBaseURL: cfg.AssetBaseURL})
		if err != nil {
			return fmt.Errorf("init web handler: %w", err)
		}
		result, err := webexport.Run(ctx, webexport.Options{
			OutDir:  cfg.OutDir,
			Handler: handler,
			Paths:   modules.StaticPaths(),
			Assets:  webstatic.FS,
			Workers: cfg.Workers,
		})
		if err != nil {
			return fmt.Errorf("export site: %w", err)
		}
		log.Printf("export complete out=%s pages=%d assets=%d", cfg.OutDir, result.Pages, result.Assets)
		return nil
	})
}
