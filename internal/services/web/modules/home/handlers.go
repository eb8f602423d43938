package home

import (
	"log"
	"net/http"

	module "github.com/louisbranch/buildspace/internal/services/web/module"
	"github.com/louisbranch/buildspace/internal/services/web/locale"
	webi18n "github.com/louisbranch/buildspace/internal/services/web/platform/i18n"
	"github.com/louisbranch/buildspace/internal/services/web/platform/pagerender"
	"github.com/louisbranch/buildspace/internal/services/web/platform/weberror"
	"github.com/louisbranch/buildspace/internal/services/web/projects"
	"github.com/louisbranch/buildspace/internal/services/web/routepath"
	webtemplates "github.com/louisbranch/buildspace/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleHome(w http.ResponseWriter, r *http.Request) {
	lang, ok := webi18n.RouteLocale(r)
	if !ok {
		weberror.WriteNotFound(w, r, h.deps)
		return
	}
	loc := webi18n.ForLocale(lang)
	err := pagerender.WriteModulePage(w, r, h.deps, pagerender.ModulePage{
		Title:       webtemplates.T(loc, "home.page_title"),
		Description: webtemplates.T(loc, "home.meta_description"),
		Locale:      lang,
		Fragment:    webtemplates.HomeFragment(buildView(lang, loc), h.deps.Icons),
	})
	if err != nil {
		log.Printf("render home locale=%s err=%v", lang, err)
	}
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteNotFound(w, r, h.deps)
}

func buildView(lang locale.Locale, loc webi18n.Localizer) webtemplates.HomeView {
	groups := projects.Groups()
	sections := make([]webtemplates.HomeSection, 0, len(groups))
	for _, listing := range groups {
		section := webtemplates.HomeSection{
			Group:   listing.Group,
			Heading: webtemplates.T(loc, projects.GroupKey(listing.Group)),
			Cards:   make([]webtemplates.HomeCard, 0, len(listing.Projects)),
		}
		for _, project := range listing.Projects {
			section.Cards = append(section.Cards, webtemplates.HomeCard{
				ID:          project.ID,
				Name:        webtemplates.T(loc, projects.NameKey(project.ID)),
				Description: webtemplates.T(loc, projects.DescriptionKey(project.ID)),
				Href:        routepath.Learn(lang.String(), project.ID),
				Icon:        project.Icon,
			})
		}
		sections = append(sections, section)
	}
	return webtemplates.HomeView{
		Title:          webtemplates.T(loc, "home.title"),
		Subtitle:       webtemplates.T(loc, "home.subtitle"),
		CTALabel:       webtemplates.T(loc, "home.start_project"),
		CTAHref:        routepath.Learn(lang.String(), projects.First().ID),
		DirectoryLabel: webtemplates.T(loc, "home.directory_label"),
		Sections:       sections,
	}
}
