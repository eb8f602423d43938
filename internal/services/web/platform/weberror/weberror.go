// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	module "github.com/louisbranch/buildspace/internal/services/web/module"
	apperrors "github.com/louisbranch/buildspace/internal/services/web/platform/errors"
	webi18n "github.com/louisbranch/buildspace/internal/services/web/platform/i18n"
	"github.com/louisbranch/buildspace/internal/services/web/platform/pagerender"
	"github.com/louisbranch/buildspace/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/buildspace/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage returns the localized message keyed by err, or an empty
// string when err carries no key the catalog knows.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil || loc == nil {
		return ""
	}
	key := apperrors.LocalizationKey(err)
	if key == "" {
		return ""
	}
	if localized := strings.TrimSpace(loc.Sprintf(key)); localized != key {
		return localized
	}
	return ""
}

// WriteAppError writes a localized error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	writeAppError(w, r, statusCode, nil, deps)
}

func writeAppError(w http.ResponseWriter, r *http.Request, statusCode int, cause error, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, lang := webi18n.ResolveLocalizer(r)
	err := pagerender.WriteModulePage(w, r, deps, pagerender.ModulePage{
		Title:      webtemplates.AppErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Locale:     lang,
		Fragment:   webtemplates.AppErrorState(statusCode, routepath.Home(lang.String()), PublicMessage(loc, cause), loc),
	})
	if err != nil {
		log.Printf("render error page status=%d err=%v", statusCode, err)
	}
}

// WriteNotFound writes the localized not-found page.
func WriteNotFound(w http.ResponseWriter, r *http.Request, deps module.Dependencies) {
	WriteAppError(w, r, http.StatusNotFound, deps)
}

// WriteModuleError renders the error page for the kind of err, showing the
// localized message err carries when it has one.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	writeAppError(w, r, apperrors.HTTPStatus(err), err, deps)
}
