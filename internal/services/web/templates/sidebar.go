package templates

import (
	"github.com/a-h/templ"
	"github.com/louisbranch/buildspace/internal/platform/icons"
	"github.com/louisbranch/buildspace/internal/services/web/sidebar"
)

const sheetID = "sidebar-sheet"

// Sidebar renders the desktop rail, the mobile trigger and the mobile sheet.
// The sheet is always present and hidden while closed; app.js opens and
// closes it in place, and the query links are the fallback without script.
func Sidebar(nav sidebar.Nav, provider icons.Provider, loc Localizer) templ.Component {
	return sidebarView(nav, icons.ProviderOrDefault(provider), loc)
}
