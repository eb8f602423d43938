package workspace

import (
	"net/url"

	"github.com/louisbranch/buildspace/internal/platform/icons"
	webi18n "github.com/louisbranch/buildspace/internal/services/web/platform/i18n"
)

// TabLink is one entry of the mobile tab strip.
type TabLink struct {
	Tab    Tab
	Label  string
	Icon   icons.ID
	Href   string
	Active bool
	// Panel is the panel shown while this tab is active.
	Panel PanelID
}

// AIToggle is the header button of the docked assistant panel.
type AIToggle struct {
	Label     string
	AriaLabel string
	// ExpandLabel and CollapseLabel are the aria labels of the two states, so
	// the browser can flip the toggle without a round trip.
	ExpandLabel   string
	CollapseLabel string
	Href          string
	// Icon is the chevron: down while collapsed (expands), up while expanded
	// (collapses).
	Icon     icons.ID
	Expanded bool
}

// View is the workspace view model for one request.
type View struct {
	ProjectID  string
	State      State
	Tabs       []TabLink
	AIToggle   AIToggle
	Panels     Panels
	PanelLabel string
}

var tabMeta = map[Tab]struct {
	label string
	icon  icons.ID
	panel PanelID
}{
	TabCode: {label: "workspace.code_editor", icon: icons.Code, panel: PanelCode},
	TabViz:  {label: "workspace.visualization", icon: icons.Visualization, panel: PanelViz},
	TabAI:   {label: "workspace.ai_assistant", icon: icons.Assistant, panel: PanelAI},
}

// NewView derives tab and toggle links from state. Every link keeps the
// current path and changes only its own query key.
func NewView(loc webi18n.Localizer, projectID string, state State, current *url.URL, panels Panels) View {
	if current == nil {
		current = &url.URL{}
	}
	tabs := make([]TabLink, 0, len(tabOrder))
	for _, tab := range tabOrder {
		meta := tabMeta[tab]
		tabs = append(tabs, TabLink{
			Tab:    tab,
			Label:  webi18n.T(loc, meta.label),
			Icon:   meta.icon,
			Href:   state.SelectTab(tab).Href(current),
			Active: state.Tab == tab,
			Panel:  meta.panel,
		})
	}

	toggle := AIToggle{
		Label:         webi18n.T(loc, "workspace.ai_assistant"),
		ExpandLabel:   webi18n.T(loc, "workspace.expand_ai"),
		CollapseLabel: webi18n.T(loc, "workspace.collapse_ai"),
		Href:          state.ToggleAI().Href(current),
		Expanded:      state.IsAIExpanded(),
	}
	if toggle.Expanded {
		toggle.Icon = icons.Collapse
		toggle.AriaLabel = toggle.CollapseLabel
	} else {
		toggle.Icon = icons.Expand
		toggle.AriaLabel = toggle.ExpandLabel
	}

	return View{
		ProjectID:  projectID,
		State:      state,
		Tabs:       tabs,
		AIToggle:   toggle,
		Panels:     panels,
		PanelLabel: webi18n.T(loc, "workspace.panels_label"),
	}
}
