package sidebar

import (
	"net/url"

	"github.com/louisbranch/buildspace/internal/services/web/routepath"
)

// Sheet is the mobile navigation overlay state. It starts closed and never
// reaches a terminal state.
type Sheet string

const (
	SheetClosed Sheet = "closed"
	SheetOpen   Sheet = "open"
)

const sheetOpenValue = "open"

// SheetFromQuery reads the sheet state from the view query.
func SheetFromQuery(values url.Values) Sheet {
	if values.Get(routepath.QueryNav) == sheetOpenValue {
		return SheetOpen
	}
	return SheetClosed
}

// Open moves the sheet to open.
func (Sheet) Open() Sheet {
	return SheetOpen
}

// Close moves the sheet to closed.
func (Sheet) Close() Sheet {
	return SheetClosed
}

// Toggle flips the sheet state.
func (s Sheet) Toggle() Sheet {
	if s.IsOpen() {
		return SheetClosed
	}
	return SheetOpen
}

// IsOpen reports whether the overlay is shown.
func (s Sheet) IsOpen() bool {
	return s == SheetOpen
}

// Href returns current with the nav query key set to s.
func (s Sheet) Href(current *url.URL) string {
	if current == nil {
		return ""
	}
	values := current.Query()
	values.Del(routepath.QueryNav)
	if s.IsOpen() {
		values.Set(routepath.QueryNav, sheetOpenValue)
	}
	return routepath.WithQuery(current.Path, values)
}
