// Package public serves locale-independent routes: the root redirect, the
// health check and the not-found fallback.
package public

import (
	"net/http"

	module "github.com/louisbranch/buildspace/internal/services/web/module"
	"github.com/louisbranch/buildspace/internal/services/web/routepath"
)

// Module provides unlocalized root routes.
type Module struct {
	deps module.Dependencies
}

// New returns the public module.
func New(deps module.Dependencies) Module {
	return Module{deps: deps.WithDefaults()}
}

// ID returns a stable module id.
func (Module) ID() string {
	return "public"
}

// Mount returns the module handler at the site root.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
