// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root         = "/"
	Health       = "/up"
	Metrics      = "/metrics"
	StaticPrefix = "/static/"
	LearnSegment = "learn"

	LocalePattern      = "/{locale}"
	LocalePrefix       = "/{locale}/"
	LocaleRestPattern  = "/{locale}/{rest...}"
	LearnPrefix        = "/{locale}/learn/"
	LearnPattern       = "/{locale}/learn/{project}"
	LearnSlashPattern  = "/{locale}/learn/{project}/{$}"
	LearnRestPattern   = "/{locale}/learn/{rest...}"
	CatchAllPattern    = "/{rest...}"
	NotFoundExportPath = "/404.html"
)

// Query keys carrying per-view UI state.
const (
	QueryTab = "tab"
	QueryAI  = "ai"
	QueryNav = "nav"
)

// Home returns the localized landing page route.
func Home(locale string) string {
	return "/" + escapeSegment(locale) + "/"
}

// Learn returns the localized workspace route for a project.
func Learn(locale, project string) string {
	return "/" + escapeSegment(locale) + "/" + LearnSegment + "/" + escapeSegment(project)
}

// Static returns the route for an embedded asset.
func Static(name string) string {
	return StaticPrefix + strings.TrimPrefix(strings.TrimSpace(name), "/")
}

// WithQuery appends non-empty query values to path in sorted key order.
func WithQuery(path string, values url.Values) string {
	clean := url.Values{}
	for key, list := range values {
		for _, value := range list {
			if strings.TrimSpace(value) != "" {
				clean.Add(key, value)
			}
		}
	}
	if len(clean) == 0 {
		return path
	}
	return path + "?" + clean.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
