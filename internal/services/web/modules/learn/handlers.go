package learn

import (
	"log"
	"net/http"

	module "github.com/louisbranch/buildspace/internal/services/web/module"
	webi18n "github.com/louisbranch/buildspace/internal/services/web/platform/i18n"
	"github.com/louisbranch/buildspace/internal/services/web/platform/pagerender"
	"github.com/louisbranch/buildspace/internal/services/web/platform/weberror"
	"github.com/louisbranch/buildspace/internal/services/web/projects"
	webtemplates "github.com/louisbranch/buildspace/internal/services/web/templates"
	"github.com/louisbranch/buildspace/internal/services/web/workspace"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleLearn(w http.ResponseWriter, r *http.Request) {
	lang, project, err := resolvePage(r.PathValue("locale"), r.PathValue("project"))
	if err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	loc := webi18n.ForLocale(lang)
	name := webtemplates.T(loc, projects.NameKey(project.ID))
	view := workspace.NewView(loc, project.ID, workspace.StateFromQuery(r.URL.Query()), r.URL, h.deps.Panels)
	err = pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:           name,
		Description:     webtemplates.T(loc, projects.DescriptionKey(project.ID)),
		Locale:          lang,
		ActiveProjectID: project.ID,
		Fragment:        webtemplates.WorkspaceFragment(name, view, h.deps.Icons, loc),
	})
	if err != nil {
		log.Printf("render learn locale=%s project=%s err=%v", lang, project.ID, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteNotFound(w, r, h.deps)
}
