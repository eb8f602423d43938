// Package module defines the feature contract used by web composition.
package module

import (
	"net/http"

	"github.com/louisbranch/buildspace/internal/platform/icons"
	"github.com/louisbranch/buildspace/internal/services/web/workspace"
)

// Dependencies carries shared inputs handed to every module constructor.
type Dependencies struct {
	// AssetBaseURL prefixes static asset links; empty serves them from this host.
	AssetBaseURL string
	Icons        icons.Provider
	Panels       workspace.Panels
}

// WithDefaults fills unset dependencies with the built-in implementations.
func (d Dependencies) WithDefaults() Dependencies {
	d.Icons = icons.ProviderOrDefault(d.Icons)
	if len(d.Panels) == 0 {
		d.Panels = workspace.DefaultPanels(d.Icons)
	}
	return d
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
