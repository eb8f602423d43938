package module

import (
	"testing"

	"github.com/louisbranch/buildspace/internal/platform/icons"
	"github.com/louisbranch/buildspace/internal/services/web/workspace"
)

func TestDependenciesWithDefaults(t *testing.T) {
	t.Parallel()

	deps := Dependencies{}.WithDefaults()
	if deps.Icons == nil {
		t.Fatalf("Icons = nil, want default provider")
	}
	if len(deps.Panels) != 3 {
		t.Fatalf("Panels = %d, want 3", len(deps.Panels))
	}

	custom := workspace.Panels{workspace.PanelCode: workspace.Placeholder{PanelID: workspace.PanelCode}}
	deps = Dependencies{Icons: icons.Lucide{Class: "x"}, Panels: custom}.WithDefaults()
	if len(deps.Panels) != 1 {
		t.Fatalf("custom panels replaced: %d", len(deps.Panels))
	}
	if got, ok := deps.Icons.(icons.Lucide); !ok || got.Class != "x" {
		t.Fatalf("custom icons replaced: %#v", deps.Icons)
	}
}
