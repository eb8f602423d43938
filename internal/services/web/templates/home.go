package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/buildspace/internal/platform/icons"
	"github.com/louisbranch/buildspace/internal/services/web/projects"
)

// HomeCard is one project in the landing page directory.
type HomeCard struct {
	ID          string
	Name        string
	Description string
	Href        string
	Icon        icons.ID
}

// HomeSection is one group of the landing page directory.
type HomeSection struct {
	Group   projects.Group
	Heading string
	Cards   []HomeCard
}

// HomeView is the landing page view model.
type HomeView struct {
	Title          string
	Subtitle       string
	CTALabel       string
	CTAHref        string
	DirectoryLabel string
	Sections       []HomeSection
}

// HomeFragment renders the hero, call to action and grouped directory.
func HomeFragment(view HomeView, provider icons.Provider) templ.Component {
	return homeView(view, icons.ProviderOrDefault(provider))
}
