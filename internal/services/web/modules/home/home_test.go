package home

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	module "github.com/louisbranch/buildspace/internal/services/web/module"
	"github.com/louisbranch/buildspace/internal/services/web/locale"
	webi18n "github.com/louisbranch/buildspace/internal/services/web/platform/i18n"
	"github.com/louisbranch/buildspace/internal/services/web/projects"
)

func serve(t *testing.T, loc locale.Locale, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := New(module.Dependencies{}, loc).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, req)
	return rr
}

func TestMountPrefixFollowsLocale(t *testing.T) {
	t.Parallel()

	for loc, want := range map[locale.Locale]string{locale.EN: "/en/", locale.ZH: "/zh/"} {
		m := New(module.Dependencies{}, loc)
		mount, err := m.Mount()
		if err != nil {
			t.Fatalf("Mount() error = %v", err)
		}
		if mount.Prefix != want {
			t.Fatalf("Prefix = %q, want %q", mount.Prefix, want)
		}
		if got := m.ID(); got != "home-"+loc.String() {
			t.Fatalf("ID() = %q, want %q", got, "home-"+loc.String())
		}
	}
}

func TestHomeRendersHeroAndDirectory(t *testing.T) {
	t.Parallel()

	rr := serve(t, locale.EN, "/en/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		"Learn systems by building them",
		`class="button button--primary hero__cta" href="/en/learn/tiny-interpreter"`,
		`<html lang="en"`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
	for _, group := range projects.GroupOrder() {
		if !strings.Contains(body, `data-group="`+string(group)+`"`) {
			t.Fatalf("body missing group %q", group)
		}
	}
	for _, id := range projects.IDs() {
		if !strings.Contains(body, `href="/en/learn/`+id+`" data-project="`+id+`"`) {
			t.Fatalf("body missing directory card %q", id)
		}
	}
	if strings.Contains(body, `aria-current="page"`) {
		t.Fatalf("home page should not highlight a sidebar entry")
	}
}

func TestHomeRendersChineseTranslations(t *testing.T) {
	t.Parallel()

	rr := serve(t, locale.ZH, "/zh/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	want := webi18n.T(webi18n.ForLocale(locale.ZH), "home.title")
	if !strings.Contains(body, want) {
		t.Fatalf("body missing translated title %q", want)
	}
	if !strings.Contains(body, `href="/en/"`) {
		t.Fatalf("body missing locale toggle to /en/")
	}
}

func TestHomeHTMXReturnsMainOnly(t *testing.T) {
	t.Parallel()

	rr := serve(t, locale.EN, "/en/", http.Header{"Hx-Request": {"true"}})
	body := rr.Body.String()
	if strings.Contains(body, "<!doctype html>") {
		t.Fatalf("HTMX response should not include the document shell")
	}
	if !strings.Contains(body, `id="main"`) {
		t.Fatalf("HTMX response missing main region")
	}
}

func TestHomeUnknownPathNotFound(t *testing.T) {
	t.Parallel()

	rr := serve(t, locale.EN, "/en/nope", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if !strings.Contains(rr.Body.String(), `data-status="404"`) {
		t.Fatalf("body missing not-found state")
	}
}

func TestHomeRejectsUnsupportedRouteLocale(t *testing.T) {
	t.Parallel()

	rr := serve(t, locale.EN, "/fr/", nil)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRejectsNonGET(t *testing.T) {
	t.Parallel()

	mount, err := New(module.Dependencies{}, locale.EN).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/en/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
	}
}
