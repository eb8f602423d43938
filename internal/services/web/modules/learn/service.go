package learn

import (
	"github.com/louisbranch/buildspace/internal/services/web/locale"
	apperrors "github.com/louisbranch/buildspace/internal/services/web/platform/errors"
	"github.com/louisbranch/buildspace/internal/services/web/projects"
)

// Params is one precomputable workspace route.
type Params struct {
	Locale  locale.Locale
	Project string
}

// StaticParams enumerates every supported locale crossed with every
// registered project.
func StaticParams() []Params {
	locales := locale.Supported()
	ids := projects.IDs()
	out := make([]Params, 0, len(locales)*len(ids))
	for _, loc := range locales {
		for _, id := range ids {
			out = append(out, Params{Locale: loc, Project: id})
		}
	}
	return out
}

// resolvePage validates route values. Either an unsupported locale or an
// unregistered project is a not-found outcome.
func resolvePage(routeLocale, routeProject string) (locale.Locale, projects.Project, error) {
	lang, ok := locale.Resolve(routeLocale)
	if !ok {
		return "", projects.Project{}, apperrors.EK(apperrors.KindNotFound, "error.message_not_found", "locale not supported")
	}
	project, ok := projects.Lookup(routeProject)
	if !ok {
		return "", projects.Project{}, apperrors.EK(apperrors.KindNotFound, "error.message_not_found", "project not found")
	}
	return lang, project, nil
}
