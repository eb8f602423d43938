// Package learn serves the per-project workspace pages.
package learn

import (
	"net/http"

	module "github.com/louisbranch/buildspace/internal/services/web/module"
	"github.com/louisbranch/buildspace/internal/services/web/locale"
	"github.com/louisbranch/buildspace/internal/services/web/routepath"
)

// Module serves one locale's workspace routes.
type Module struct {
	deps   module.Dependencies
	locale locale.Locale
}

// New returns the workspace module for loc.
func New(deps module.Dependencies, loc locale.Locale) Module {
	return Module{deps: deps.WithDefaults(), locale: loc}
}

// ID returns a stable module id.
func (m Module) ID() string {
	return "learn-" + m.locale.String()
}

// Mount returns the module handler under the locale's learn prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps))
	return module.Mount{
		Prefix:  routepath.Home(m.locale.String()) + routepath.LearnSegment + "/",
		Handler: mux,
	}, nil
}
