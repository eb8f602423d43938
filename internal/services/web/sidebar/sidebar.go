// Package sidebar builds the grouped project navigation shown beside every
// page, plus the open/closed state of its mobile sheet.
package sidebar

import (
	"net/url"
	"strings"

	"github.com/louisbranch/buildspace/internal/platform/icons"
	"github.com/louisbranch/buildspace/internal/services/web/locale"
	webi18n "github.com/louisbranch/buildspace/internal/services/web/platform/i18n"
	"github.com/louisbranch/buildspace/internal/services/web/projects"
	"github.com/louisbranch/buildspace/internal/services/web/routepath"
)

// Entry is one project link.
type Entry struct {
	ID     string
	Name   string
	Href   string
	Icon   icons.ID
	Active bool
}

// Section is a translated group heading and its entries.
type Section struct {
	Group   projects.Group
	Heading string
	Entries []Entry
}

// LocaleToggle is the footer link that switches the page locale.
type LocaleToggle struct {
	// Label names the target locale in its own language.
	Label     string
	AriaLabel string
	Href      string
	Target    locale.Locale
}

// Nav is the sidebar view model.
type Nav struct {
	Locale   locale.Locale
	AppName  string
	HomeHref string
	Label    string
	Sections []Section
	Toggle   LocaleToggle
	Sheet    Sheet
	// OpenHref and CloseHref reload the current view with the sheet state
	// changed and every other query key untouched.
	OpenHref  string
	CloseHref string
}

// Build assembles the navigation for lang. Exactly the entry whose id equals
// activeProjectID is marked active; an empty or unknown id marks none.
func Build(lang locale.Locale, activeProjectID string, current *url.URL) Nav {
	loc := webi18n.ForLocale(lang)
	if current == nil {
		current = &url.URL{Path: routepath.Home(lang.String())}
	}
	activeProjectID = strings.TrimSpace(activeProjectID)

	sections := make([]Section, 0, len(projects.GroupOrder()))
	for _, listing := range projects.Groups() {
		section := Section{
			Group:   listing.Group,
			Heading: webi18n.T(loc, projects.GroupKey(listing.Group)),
			Entries: make([]Entry, 0, len(listing.Projects)),
		}
		for _, project := range listing.Projects {
			section.Entries = append(section.Entries, Entry{
				ID:     project.ID,
				Name:   webi18n.T(loc, projects.NameKey(project.ID)),
				Href:   routepath.Learn(lang.String(), project.ID),
				Icon:   project.Icon,
				Active: activeProjectID != "" && project.ID == activeProjectID,
			})
		}
		sections = append(sections, section)
	}

	target := locale.Toggle(lang)
	sheet := SheetFromQuery(current.Query())
	return Nav{
		Locale:   lang,
		AppName:  webi18n.T(loc, "common.app_name"),
		HomeHref: routepath.Home(lang.String()),
		Label:    webi18n.T(loc, "common.navigation"),
		Sections: sections,
		Toggle: LocaleToggle{
			Label:     webi18n.T(webi18n.ForLocale(target), "common.locale_label"),
			AriaLabel: webi18n.T(loc, "common.switch_language"),
			Href:      locale.TogglePath(lang, current.Path),
			Target:    target,
		},
		Sheet:     sheet,
		OpenHref:  sheet.Open().Href(current),
		CloseHref: sheet.Close().Href(current),
	}
}

// ActiveEntries returns the entries marked active.
func (n Nav) ActiveEntries() []Entry {
	var active []Entry
	for _, section := range n.Sections {
		for _, entry := range section.Entries {
			if entry.Active {
				active = append(active, entry)
			}
		}
	}
	return active
}
