// Package workspace models the three-panel project workspace: the tab and AI
// panel state of one page view and the panels it hosts.
package workspace

import (
	"net/url"
	"strings"

	"github.com/louisbranch/buildspace/internal/services/web/routepath"
)

// Tab names the panel shown in the single-panel (mobile) layout.
type Tab string

const (
	TabCode Tab = "code"
	TabViz  Tab = "viz"
	TabAI   Tab = "ai"
)

var tabOrder = []Tab{TabCode, TabViz, TabAI}

// Tabs returns every tab in display order.
func Tabs() []Tab {
	out := make([]Tab, len(tabOrder))
	copy(out, tabOrder)
	return out
}

// ParseTab maps a query value to a tab. Unknown values select the code tab.
func ParseTab(raw string) Tab {
	candidate := Tab(strings.ToLower(strings.TrimSpace(raw)))
	for _, tab := range tabOrder {
		if tab == candidate {
			return tab
		}
	}
	return TabCode
}

// AIPanel is the docked assistant state in the split (desktop) layout.
type AIPanel string

const (
	AICollapsed AIPanel = "collapsed"
	AIExpanded  AIPanel = "expanded"
)

// ParseAIPanel maps a query value to a panel state, defaulting to collapsed.
func ParseAIPanel(raw string) AIPanel {
	if AIPanel(strings.ToLower(strings.TrimSpace(raw))) == AIExpanded {
		return AIExpanded
	}
	return AICollapsed
}

// State is the per-view UI state. The zero value is not valid; use
// InitialState.
type State struct {
	Tab Tab
	AI  AIPanel
}

// InitialState is the state of a freshly opened workspace.
func InitialState() State {
	return State{Tab: TabCode, AI: AICollapsed}
}

// StateFromQuery reads the view state from the query string.
func StateFromQuery(values url.Values) State {
	return State{
		Tab: ParseTab(values.Get(routepath.QueryTab)),
		AI:  ParseAIPanel(values.Get(routepath.QueryAI)),
	}
}

// SelectTab returns s with tab selected. Selecting the active tab is a no-op.
func (s State) SelectTab(tab Tab) State {
	s.Tab = ParseTab(string(tab))
	return s
}

// ToggleAI flips the assistant panel. The active tab is unchanged.
func (s State) ToggleAI() State {
	if s.AI == AIExpanded {
		return s.CollapseAI()
	}
	return s.ExpandAI()
}

// ExpandAI opens the assistant panel.
func (s State) ExpandAI() State {
	s.AI = AIExpanded
	return s
}

// CollapseAI closes the assistant panel.
func (s State) CollapseAI() State {
	s.AI = AICollapsed
	return s
}

// IsAIExpanded reports whether the assistant panel is open.
func (s State) IsAIExpanded() bool {
	return s.AI == AIExpanded
}

// Href returns current with the tab and ai query keys replaced by s. Default
// values are omitted and all other keys are kept.
func (s State) Href(current *url.URL) string {
	if current == nil {
		return ""
	}
	values := current.Query()
	values.Del(routepath.QueryTab)
	values.Del(routepath.QueryAI)
	if s.Tab != TabCode && s.Tab != "" {
		values.Set(routepath.QueryTab, string(s.Tab))
	}
	if s.AI == AIExpanded {
		values.Set(routepath.QueryAI, string(AIExpanded))
	}
	return routepath.WithQuery(current.Path, values)
}
