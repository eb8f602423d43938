package icons

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Provider resolves an icon identifier to a renderable symbol.
type Provider interface {
	IconFor(id ID) templ.Component
}

// Lucide renders icons as references into the Lucide sprite. The sprite itself
// must be emitted once per document (see LucideSprite).
type Lucide struct {
	// Class is applied to every rendered svg element.
	Class string
}

// IconFor returns an inline svg that references the sprite symbol for id.
func (l Lucide) IconFor(id ID) templ.Component {
	symbol := LucideSymbolID(LucideNameOrDefault(id))
	class := strings.TrimSpace(l.Class)
	if class == "" {
		class = "icon"
	}
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<svg class="`+templ.EscapeString(class)+`" aria-hidden="true" focusable="false"><use href="#`+templ.EscapeString(symbol)+`"></use></svg>`)
		return err
	})
}

// ProviderOrDefault returns p, or the Lucide provider when p is nil.
func ProviderOrDefault(p Provider) Provider {
	if p == nil {
		return Lucide{}
	}
	return p
}
