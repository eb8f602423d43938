package sidebar

import (
	"net/url"
	"testing"

	"github.com/louisbranch/buildspace/internal/services/web/locale"
	"github.com/louisbranch/buildspace/internal/services/web/projects"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u
}

func TestBuildMarksExactlyOneActiveEntryForRegisteredProject(t *testing.T) {
	t.Parallel()

	for _, id := range projects.IDs() {
		nav := Build(locale.EN, id, mustURL(t, "/en/learn/"+id))
		active := nav.ActiveEntries()
		if len(active) != 1 {
			t.Fatalf("active entries for %q = %d, want 1", id, len(active))
		}
		if active[0].ID != id {
			t.Fatalf("active entry = %q, want %q", active[0].ID, id)
		}
	}
}

func TestBuildMarksNothingForHomeOrUnknownProject(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"", "not-a-project"} {
		nav := Build(locale.EN, id, mustURL(t, "/en/"))
		if got := len(nav.ActiveEntries()); got != 0 {
			t.Fatalf("active entries for %q = %d, want 0", id, got)
		}
	}
}

func TestBuildTranslatesGroupsAndNames(t *testing.T) {
	t.Parallel()

	nav := Build(locale.ZH, "", mustURL(t, "/zh/"))
	if len(nav.Sections) != 4 {
		t.Fatalf("sections = %d, want 4", len(nav.Sections))
	}
	if got := nav.Sections[0].Heading; got != "编程语言" {
		t.Fatalf("first heading = %q, want %q", got, "编程语言")
	}
	if got := nav.Sections[0].Entries[0].Href; got != "/zh/learn/tiny-interpreter" {
		t.Fatalf("first href = %q, want %q", got, "/zh/learn/tiny-interpreter")
	}
	if nav.HomeHref != "/zh/" {
		t.Fatalf("HomeHref = %q, want %q", nav.HomeHref, "/zh/")
	}
	enNav := Build(locale.EN, "", mustURL(t, "/en/"))
	if got := enNav.Sections[2].Heading; got != "Data Systems" {
		t.Fatalf("data heading = %q, want %q", got, "Data Systems")
	}
}

func TestBuildLocaleToggle(t *testing.T) {
	t.Parallel()

	nav := Build(locale.ZH, "", mustURL(t, "/zh/"))
	if nav.Toggle.Href != "/en/" {
		t.Fatalf("toggle href = %q, want %q", nav.Toggle.Href, "/en/")
	}
	if nav.Toggle.Label != "English" {
		t.Fatalf("toggle label = %q, want %q", nav.Toggle.Label, "English")
	}

	nav = Build(locale.EN, "mini-os", mustURL(t, "/en/learn/mini-os?tab=viz&nav=open"))
	if nav.Toggle.Href != "/zh/learn/mini-os" {
		t.Fatalf("toggle href = %q, want %q", nav.Toggle.Href, "/zh/learn/mini-os")
	}
	if nav.Toggle.Target != locale.ZH {
		t.Fatalf("toggle target = %q, want %q", nav.Toggle.Target, locale.ZH)
	}
}

func TestSheetTransitions(t *testing.T) {
	t.Parallel()

	var sheet Sheet = SheetClosed
	if got := sheet.Open(); got != SheetOpen {
		t.Fatalf("Open() = %q, want %q", got, SheetOpen)
	}
	if got := SheetOpen.Close(); got != SheetClosed {
		t.Fatalf("Close() = %q, want %q", got, SheetClosed)
	}
	if got := SheetOpen.Open(); got != SheetOpen {
		t.Fatalf("Open() on open = %q, want %q", got, SheetOpen)
	}
	if got := sheet.Toggle().Toggle(); got != sheet {
		t.Fatalf("Toggle twice = %q, want %q", got, sheet)
	}
}

func TestSheetFromQueryDefaultsClosed(t *testing.T) {
	t.Parallel()

	if got := SheetFromQuery(url.Values{}); got != SheetClosed {
		t.Fatalf("SheetFromQuery(empty) = %q, want %q", got, SheetClosed)
	}
	if got := SheetFromQuery(url.Values{"nav": {"bogus"}}); got != SheetClosed {
		t.Fatalf("SheetFromQuery(bogus) = %q, want %q", got, SheetClosed)
	}
	if got := SheetFromQuery(url.Values{"nav": {"open"}}); got != SheetOpen {
		t.Fatalf("SheetFromQuery(open) = %q, want %q", got, SheetOpen)
	}
}

func TestSheetHrefsPreserveOtherQueryKeys(t *testing.T) {
	t.Parallel()

	nav := Build(locale.EN, "mini-os", mustURL(t, "/en/learn/mini-os?tab=viz"))
	if nav.Sheet != SheetClosed {
		t.Fatalf("sheet = %q, want %q", nav.Sheet, SheetClosed)
	}
	if nav.OpenHref != "/en/learn/mini-os?nav=open&tab=viz" {
		t.Fatalf("OpenHref = %q, want %q", nav.OpenHref, "/en/learn/mini-os?nav=open&tab=viz")
	}
	if nav.CloseHref != "/en/learn/mini-os?tab=viz" {
		t.Fatalf("CloseHref = %q, want %q", nav.CloseHref, "/en/learn/mini-os?tab=viz")
	}
}
