package templates

import (
	"github.com/louisbranch/buildspace/internal/platform/branding"
	webi18n "github.com/louisbranch/buildspace/internal/services/web/platform/i18n"
)

// Localizer provides translated strings for web components.
type Localizer = webi18n.Localizer

const appNameKey = "common.app_name"

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key string, args ...any) string {
	return webi18n.T(loc, key, args...)
}

// AppName returns the localized product name, or the canonical one when the
// catalog has no entry.
func AppName(loc Localizer) string {
	if name := T(loc, appNameKey); name != "" && name != appNameKey {
		return name
	}
	return branding.AppName
}

// PageTitle suffixes title with the application name.
func PageTitle(title string, loc Localizer) string {
	app := AppName(loc)
	if title == "" || title == app {
		return app
	}
	return title + " | " + app
}
