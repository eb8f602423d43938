package workspace

//go:generate go run github.com/a-h/templ/cmd/templ generate

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/buildspace/internal/platform/icons"
	webi18n "github.com/louisbranch/buildspace/internal/services/web/platform/i18n"
)

// PanelID identifies a workspace panel.
type PanelID string

const (
	PanelCode PanelID = "code"
	PanelViz  PanelID = "viz"
	PanelAI   PanelID = "ai"
)

// Panel is one independently rendered workspace region.
type Panel interface {
	ID() PanelID
	Render(loc webi18n.Localizer) templ.Component
}

// Panels indexes the panels hosted by a workspace.
type Panels map[PanelID]Panel

// Get returns the panel registered under id, or an empty placeholder.
func (p Panels) Get(id PanelID) Panel {
	if panel, ok := p[id]; ok && panel != nil {
		return panel
	}
	return Placeholder{PanelID: id}
}

// Placeholder stands in for a panel whose feature is not built yet.
type Placeholder struct {
	PanelID PanelID
	Icon    icons.ID
	TextKey string
	Icons   icons.Provider
}

// ID returns the panel id.
func (p Placeholder) ID() PanelID {
	return p.PanelID
}

// Render draws an icon above the localized placeholder text.
func (p Placeholder) Render(loc webi18n.Localizer) templ.Component {
	provider := icons.ProviderOrDefault(p.Icons)
	text := ""
	if p.TextKey != "" {
		text = webi18n.T(loc, p.TextKey)
	}
	return placeholderPanel(p.PanelID, provider.IconFor(p.Icon), text)
}

// DefaultPanels returns placeholder code, visualization and assistant panels.
func DefaultPanels(provider icons.Provider) Panels {
	return Panels{
		PanelCode: Placeholder{PanelID: PanelCode, Icon: icons.Code, TextKey: "workspace.code_placeholder", Icons: provider},
		PanelViz:  Placeholder{PanelID: PanelViz, Icon: icons.Visualization, TextKey: "workspace.viz_placeholder", Icons: provider},
		PanelAI:   Placeholder{PanelID: PanelAI, Icon: icons.Assistant, TextKey: "workspace.ai_placeholder", Icons: provider},
	}
}
