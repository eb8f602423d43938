// Package web hosts the browser-facing service: localized landing and
// workspace pages, static assets, health and metrics.
package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"strings"

	"github.com/louisbranch/buildspace/internal/platform/i18n/catalog"
	"github.com/louisbranch/buildspace/internal/platform/timeouts"
	webapp "github.com/louisbranch/buildspace/internal/services/web/app"
	module "github.com/louisbranch/buildspace/internal/services/web/module"
	"github.com/louisbranch/buildspace/internal/services/web/modules"
	"github.com/louisbranch/buildspace/internal/services/web/platform/httpx"
	"github.com/louisbranch/buildspace/internal/services/web/platform/observability"
	"github.com/louisbranch/buildspace/internal/services/web/platform/weberror"
	"github.com/louisbranch/buildspace/internal/services/web/routepath"
	webstatic "github.com/louisbranch/buildspace/internal/services/web/static"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr     string
	AssetBaseURL string
	// Metrics receives request collectors; nil uses a private registry.
	Metrics *prometheus.Registry
	// TracerProvider starts request spans; nil uses the global provider.
	TracerProvider trace.TracerProvider
	// Logger receives request and panic logs; nil uses log.Default().
	Logger *log.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	deps := module.Dependencies{AssetBaseURL: strings.TrimSpace(cfg.AssetBaseURL)}.WithDefaults()
	composed, err := webapp.Composer{}.Compose(webapp.ComposeInput{
		Modules: modules.DefaultModules(deps),
	})
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	logCatalogGaps(logger, catalog.Default())
	metrics := observability.NewHTTPMetrics(cfg.Metrics)

	rootMux := http.NewServeMux()
	rootMux.Handle(http.MethodGet+" "+routepath.StaticPrefix, staticHandler(webstatic.FS, deps))
	rootMux.Handle(routepath.StaticPrefix, httpx.MethodNotAllowed(http.MethodGet+", HEAD"))
	rootMux.Handle(http.MethodGet+" "+routepath.Metrics, metrics.Handler())
	rootMux.Handle(routepath.Root, composed)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Tracing(cfg.TracerProvider),
		observability.RequestLogger(logger),
		metrics.Middleware(),
	), nil
}

// logCatalogGaps reports locales missing base keys. Those keys render the
// base locale text until translated.
func logCatalogGaps(logger *log.Logger, bundle *catalog.Bundle) {
	for _, lang := range bundle.Locales() {
		missing := bundle.MissingKeys(lang)
		if len(missing) == 0 {
			continue
		}
		logger.Printf("i18n untranslated locale=%s fallback=%s count=%d keys=%s", lang, catalog.BaseLocale, len(missing), strings.Join(missing, ","))
	}
}

// staticHandler serves embedded assets without directory listings.
func staticHandler(assets fs.FS, deps module.Dependencies) http.Handler {
	files := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(assets)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(r.URL.Path, routepath.StaticPrefix)
		if name == "" || strings.HasSuffix(name, "/") {
			weberror.WriteNotFound(w, r, deps)
			return
		}
		if _, err := fs.Stat(assets, name); err != nil {
			weberror.WriteNotFound(w, r, deps)
			return
		}
		files.ServeHTTP(w, r)
	})
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
