package web

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/louisbranch/buildspace/internal/platform/i18n/catalog"
	"github.com/louisbranch/buildspace/internal/services/web/projects"
	"github.com/prometheus/client_golang/prometheus"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func get(h http.Handler, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestLearnRouteMountsWorkspaceAndHighlightsProject(t *testing.T) {
	t.Parallel()

	rr := get(newTestHandler(t, Config{}), "/en/learn/tiny-interpreter")
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		`class="workspace" data-project="tiny-interpreter"`,
		`class="sidebar__link is-active" href="/en/learn/tiny-interpreter"`,
		`aria-current="page"`,
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
}

func TestLearnRouteUnknownProjectIsNotFound(t *testing.T) {
	t.Parallel()

	rr := get(newTestHandler(t, Config{}), "/en/learn/not-a-project")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	if strings.Contains(rr.Body.String(), `class="workspace"`) {
		t.Fatalf("not-found response rendered a workspace")
	}
}

func TestEveryRegisteredProjectRenders(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	for _, loc := range []string{"en", "zh"} {
		for _, id := range projects.IDs() {
			rr := get(h, "/"+loc+"/learn/"+id)
			if rr.Code != http.StatusOK {
				t.Fatalf("GET /%s/learn/%s status = %d, want %d", loc, id, rr.Code, http.StatusOK)
			}
		}
	}
}

func TestLocaleRoutes(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	for _, tc := range []struct {
		path     string
		status   int
		location string
	}{
		{path: "/", status: http.StatusFound, location: "/en/"},
		{path: "/en", status: http.StatusMovedPermanently, location: "/en/"},
		{path: "/zh", status: http.StatusMovedPermanently, location: "/zh/"},
		{path: "/en/", status: http.StatusOK},
		{path: "/zh/", status: http.StatusOK},
		{path: "/fr/", status: http.StatusNotFound},
		{path: "/fr/learn/consensus", status: http.StatusNotFound},
		{path: "/en/unknown", status: http.StatusNotFound},
		{path: "/up", status: http.StatusOK},
	} {
		rr := get(h, tc.path)
		if rr.Code != tc.status {
			t.Fatalf("GET %s status = %d, want %d", tc.path, rr.Code, tc.status)
		}
		if tc.location != "" {
			if got := rr.Header().Get("Location"); got != tc.location {
				t.Fatalf("GET %s Location = %q, want %q", tc.path, got, tc.location)
			}
		}
	}
}

func TestChineseHomeTogglesToEnglishHome(t *testing.T) {
	t.Parallel()

	rr := get(newTestHandler(t, Config{}), "/zh/")
	if !strings.Contains(rr.Body.String(), `class="locale-toggle" href="/en/"`) {
		t.Fatalf("body missing locale toggle to /en/")
	}
}

func TestLocaleToggleKeepsProjectAndDropsViewState(t *testing.T) {
	t.Parallel()

	rr := get(newTestHandler(t, Config{}), "/en/learn/consensus?tab=viz&nav=open")
	body := rr.Body.String()
	if !strings.Contains(body, `class="locale-toggle" href="/zh/learn/consensus"`) {
		t.Fatalf("body missing locale toggle to /zh/learn/consensus")
	}
	if !strings.Contains(body, `class="sidebar-mobile" data-sheet data-state="open"`) {
		t.Fatalf("body missing open navigation sheet")
	}
}

func TestStaticAssets(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	for _, tc := range []struct {
		path   string
		status int
	}{
		{path: "/static/app.css", status: http.StatusOK},
		{path: "/static/app.js", status: http.StatusOK},
		{path: "/static/favicon.svg", status: http.StatusOK},
		{path: "/static/", status: http.StatusNotFound},
		{path: "/static/missing.css", status: http.StatusNotFound},
	} {
		rr := get(h, tc.path)
		if rr.Code != tc.status {
			t.Fatalf("GET %s status = %d, want %d", tc.path, rr.Code, tc.status)
		}
	}
}

func TestStaticAssetsRejectNonGET(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t, Config{}).ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/static/app.css", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
	}
}

func TestAssetBaseURLPrefixesAssetLinks(t *testing.T) {
	t.Parallel()

	rr := get(newTestHandler(t, Config{AssetBaseURL: "https://cdn.example.com/"}), "/en/")
	if !strings.Contains(rr.Body.String(), `href="https://cdn.example.com/static/app.css"`) {
		t.Fatalf("body missing CDN stylesheet link")
	}
}

func TestMetricsRecordMatchedRoute(t *testing.T) {
	t.Parallel()

	registry := prometheus.NewRegistry()
	h := newTestHandler(t, Config{Metrics: registry})
	get(h, "/en/learn/mini-os")
	get(h, "/en/learn/nope")

	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	counts := map[string]float64{}
	for _, family := range families {
		if family.GetName() != "buildspace_web_requests_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, pair := range metric.GetLabel() {
				labels[pair.GetName()] = pair.GetValue()
			}
			counts[labels["route"]+" "+labels["status"]] += metric.GetCounter().GetValue()
		}
	}
	if got := counts["GET /{locale}/learn/{project} 200"]; got != 1 {
		t.Fatalf("ok count = %v, want 1 (counts %v)", got, counts)
	}
	if got := counts["GET /{locale}/learn/{project} 404"]; got != 1 {
		t.Fatalf("not-found count = %v, want 1 (counts %v)", got, counts)
	}

	rr := get(h, "/metrics")
	if rr.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "buildspace_web_requests_total") {
		t.Fatalf("metrics body missing request counter")
	}
}

func TestTracingNamesSpanAfterRoute(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	get(newTestHandler(t, Config{TracerProvider: provider}), "/zh/learn/dist-kv")
	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("ended spans = %d, want 1", len(spans))
	}
	if got := spans[0].Name(); got != "GET /{locale}/learn/{project}" {
		t.Fatalf("span name = %q, want %q", got, "GET /{locale}/learn/{project}")
	}
}

func TestRequestLoggerWritesOneLinePerRequest(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	h := newTestHandler(t, Config{Logger: log.New(&buffer, "", 0)})
	get(h, "/en/")
	line := buffer.String()
	for _, marker := range []string{"method=GET", "path=/en/", "status=200"} {
		if !strings.Contains(line, marker) {
			t.Fatalf("log line missing %q: %q", marker, line)
		}
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{}); err == nil {
		t.Fatalf("expected missing address error")
	}
	server, err := NewServer(context.Background(), Config{HTTPAddr: " 127.0.0.1:0 "})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	defer server.Close()
	if got := server.Addr(); got != "127.0.0.1:0" {
		t.Fatalf("Addr() = %q, want %q", got, "127.0.0.1:0")
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	t.Parallel()

	server, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := server.ListenAndServe(ctx); err != nil {
		t.Fatalf("ListenAndServe() error = %v", err)
	}
}

func TestLogCatalogGapsReportsUntranslatedKeys(t *testing.T) {
	t.Parallel()

	bundle, err := catalog.LoadFromFS(fstest.MapFS{
		"locales/en/nav.yaml": {Data: []byte("locale: \"en\"\nnamespace: \"nav\"\nmessages:\n  \"nav.a\": \"alpha\"\n  \"nav.b\": \"beta\"\n")},
		"locales/zh/nav.yaml": {Data: []byte("locale: \"zh\"\nnamespace: \"nav\"\nmessages:\n  \"nav.a\": \"甲\"\n")},
	})
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}
	var buf bytes.Buffer
	logCatalogGaps(log.New(&buf, "", 0), bundle)
	if got := strings.TrimSpace(buf.String()); got != "i18n untranslated locale=zh fallback=en count=1 keys=nav.b" {
		t.Fatalf("log = %q", got)
	}

	buf.Reset()
	logCatalogGaps(log.New(&buf, "", 0), catalog.Default())
	if buf.Len() != 0 {
		t.Fatalf("embedded catalogs reported gaps: %q", buf.String())
	}
}
