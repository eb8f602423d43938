package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/buildspace/internal/platform/icons"
	"github.com/louisbranch/buildspace/internal/services/web/workspace"
)

const aiDockBodyID = "ai-dock-body"

// WorkspaceFragment renders both workspace layouts. The split layout shows
// code and visualization side by side over the docked assistant; the tabbed
// layout shows the active tab's panel and keeps the others hidden. CSS picks
// one per breakpoint, and app.js switches tabs and the dock in place.
func WorkspaceFragment(title string, view workspace.View, provider icons.Provider, loc Localizer) templ.Component {
	return workspaceView(title, view, icons.ProviderOrDefault(provider), loc)
}

func tabID(tab workspace.Tab) string {
	return "tab-" + string(tab)
}

func tabPanelID(tab workspace.Tab) string {
	return "tabpanel-" + string(tab)
}
