package templates

//go:generate go run github.com/a-h/templ/cmd/templ generate

import (
	"strings"

	"github.com/louisbranch/buildspace/internal/platform/icons"
	"github.com/louisbranch/buildspace/internal/services/web/routepath"
	"github.com/louisbranch/buildspace/internal/services/web/sidebar"
)

// MainContentID is the element HTMX swaps on partial navigation.
const MainContentID = "main"

const htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4/dist/htmx.min.js"

// Page carries document-level inputs shared by every full-page response.
type Page struct {
	Title        string
	Description  string
	AssetBaseURL string
	Nav          sidebar.Nav
	Icons        icons.Provider
	Loc          Localizer
}

// AssetURL joins the configured asset base with a static asset name.
func AssetURL(base, name string) string {
	return strings.TrimRight(strings.TrimSpace(base), "/") + routepath.Static(name)
}
