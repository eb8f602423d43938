// Package i18n binds request locales to translation printers for web handlers.
package i18n

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/louisbranch/buildspace/internal/services/web/locale"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for templ components.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}

// ForLocale returns the localizer bound to loc.
func ForLocale(loc locale.Locale) Localizer {
	return locale.Bind(loc)
}

// RouteLocale returns the locale named by the request's "locale" path value.
func RouteLocale(r *http.Request) (locale.Locale, bool) {
	if r == nil {
		return "", false
	}
	return locale.Resolve(r.PathValue("locale"))
}

// RequestLocale picks a locale for requests that may not carry a valid locale
// segment, such as not-found pages: the leading path segment when it is a
// supported locale, else the Accept-Language preference.
func RequestLocale(r *http.Request) locale.Locale {
	if r == nil {
		return locale.Default
	}
	if loc, ok := RouteLocale(r); ok {
		return loc
	}
	first, _, _ := strings.Cut(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if loc, ok := locale.Resolve(first); ok {
		return loc
	}
	return locale.Negotiate(r.Header.Get("Accept-Language"))
}

// ResolveLocalizer returns the localizer and locale for r.
func ResolveLocalizer(r *http.Request) (Localizer, locale.Locale) {
	loc := RequestLocale(r)
	return ForLocale(loc), loc
}
