// Package locale resolves route locales and binds translations for a request.
package locale

import (
	"strings"

	"github.com/louisbranch/buildspace/internal/platform/i18n/catalog"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Locale is a supported page locale, also the first path segment of every
// localized route.
type Locale string

const (
	EN Locale = "en"
	ZH Locale = "zh"
)

// Default is used when no locale can be derived from the request.
const Default = EN

var supported = []Locale{EN, ZH}

var matcher = language.NewMatcher([]language.Tag{language.English, language.Chinese})

// Supported returns every supported locale in toggle order.
func Supported() []Locale {
	out := make([]Locale, len(supported))
	copy(out, supported)
	return out
}

// Resolve maps a route segment to a supported locale. Matching is exact after
// trimming surrounding whitespace.
func Resolve(routeLocale string) (Locale, bool) {
	candidate := Locale(strings.TrimSpace(routeLocale))
	for _, loc := range supported {
		if loc == candidate {
			return loc, true
		}
	}
	return "", false
}

// Toggle returns the other supported locale.
func Toggle(loc Locale) Locale {
	if loc == ZH {
		return EN
	}
	return ZH
}

// TogglePath rewrites pathname so it points at the same page in the toggled
// locale. Only the leading locale segment changes; a path without one gets the
// toggled locale prefixed. Query strings and fragments are dropped.
func TogglePath(current Locale, pathname string) string {
	target := string(Toggle(current))
	pathname = stripQuery(strings.TrimSpace(pathname))
	rest := strings.TrimPrefix(pathname, "/")
	if rest == "" {
		return "/" + target + "/"
	}
	first, tail, hasTail := strings.Cut(rest, "/")
	if _, ok := Resolve(first); ok {
		if !hasTail {
			return "/" + target
		}
		return "/" + target + "/" + tail
	}
	return "/" + target + "/" + rest
}

func stripQuery(pathname string) string {
	if idx := strings.IndexAny(pathname, "?#"); idx >= 0 {
		return pathname[:idx]
	}
	return pathname
}

// Negotiate picks the best supported locale for an Accept-Language header.
func Negotiate(acceptLanguage string) Locale {
	header := strings.TrimSpace(acceptLanguage)
	if header == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= len(supported) {
		return Default
	}
	return supported[idx]
}

// Tag returns the BCP 47 tag for loc.
func (loc Locale) Tag() language.Tag {
	if loc == ZH {
		return language.Chinese
	}
	return language.English
}

// String returns the route segment form.
func (loc Locale) String() string {
	return string(loc)
}

// Bind returns a printer for loc backed by the embedded catalog. A key the
// locale lacks renders the base (en) text; a key no catalog has renders as
// the key itself.
func Bind(loc Locale) *message.Printer {
	return BindBundle(catalog.Default(), loc)
}

// BindBundle is Bind against an explicit bundle.
func BindBundle(bundle *catalog.Bundle, loc Locale) *message.Printer {
	return bundle.Printer(string(loc))
}
