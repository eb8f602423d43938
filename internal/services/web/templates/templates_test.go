package templates

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/louisbranch/buildspace/internal/platform/icons"
	"github.com/louisbranch/buildspace/internal/services/web/locale"
	webi18n "github.com/louisbranch/buildspace/internal/services/web/platform/i18n"
	"github.com/louisbranch/buildspace/internal/services/web/sidebar"
	"github.com/louisbranch/buildspace/internal/services/web/workspace"
	"golang.org/x/net/html"
)

func render(t *testing.T, c templ.Component, ctx context.Context) string {
	t.Helper()
	if ctx == nil {
		ctx = context.Background()
	}
	var buf bytes.Buffer
	if err := c.Render(ctx, &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func parse(t *testing.T, body string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func findAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && match(node) {
			out = append(out, node)
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(n)
	return out
}

func TestLayoutRendersDocumentAroundChildren(t *testing.T) {
	t.Parallel()

	current, _ := url.Parse("/zh/")
	loc := webi18n.ForLocale(locale.ZH)
	page := Page{
		Title:        "Home",
		Description:  "desc",
		AssetBaseURL: "https://cdn.example.com/",
		Nav:          sidebar.Build(locale.ZH, "", current),
		Loc:          loc,
	}
	child := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p id="child">hi</p>`)
		return err
	})
	body := render(t, Layout(page), templ.WithChildren(context.Background(), child))
	doc := parse(t, body)

	htmlNodes := findAll(doc, func(n *html.Node) bool { return n.Data == "html" })
	if len(htmlNodes) != 1 || attr(htmlNodes[0], "lang") != "zh" {
		t.Fatalf("expected html lang=zh")
	}
	mains := findAll(doc, func(n *html.Node) bool { return n.Data == "main" })
	if len(mains) != 1 || attr(mains[0], "id") != MainContentID {
		t.Fatalf("main regions = %d, want 1", len(mains))
	}
	if !strings.Contains(body, `<p id="child">hi</p>`) {
		t.Fatalf("child content missing")
	}
	if !strings.Contains(body, `href="https://cdn.example.com/static/app.css"`) {
		t.Fatalf("stylesheet not rooted at asset base")
	}
	if !strings.Contains(body, `<body hx-boost="true">`) {
		t.Fatalf("body should boost navigation")
	}
	if !strings.Contains(body, `id="lucide-book-open"`) {
		t.Fatalf("icon sprite missing")
	}
	if !strings.Contains(body, "<title>Home | 从零构建系统</title>") {
		t.Fatalf("title missing")
	}
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func TestSidebarSheetHiddenWhileClosed(t *testing.T) {
	t.Parallel()

	loc := webi18n.ForLocale(locale.EN)
	closedURL, _ := url.Parse("/en/learn/mini-os")
	closed := parse(t, render(t, Sidebar(sidebar.Build(locale.EN, "mini-os", closedURL), nil, loc), nil))
	dialogs := findAll(closed, func(n *html.Node) bool { return attr(n, "role") == "dialog" })
	if len(dialogs) != 1 || !hasAttr(dialogs[0], "hidden") {
		t.Fatalf("closed sheet should be rendered hidden")
	}
	triggers := findAll(closed, func(n *html.Node) bool { return attr(n, "data-action") == "open-sheet" })
	if len(triggers) != 1 {
		t.Fatalf("sheet triggers = %d, want 1", len(triggers))
	}
	if got := attr(triggers[0], "href"); got != "/en/learn/mini-os?nav=open" {
		t.Fatalf("trigger href = %q, want %q", got, "/en/learn/mini-os?nav=open")
	}
	if got := attr(triggers[0], "hx-boost"); got != "false" {
		t.Fatalf("trigger hx-boost = %q, want %q", got, "false")
	}

	openURL, _ := url.Parse("/en/learn/mini-os?nav=open")
	open := parse(t, render(t, Sidebar(sidebar.Build(locale.EN, "mini-os", openURL), nil, loc), nil))
	dialogs = findAll(open, func(n *html.Node) bool { return attr(n, "role") == "dialog" })
	if len(dialogs) != 1 || hasAttr(dialogs[0], "hidden") {
		t.Fatalf("open sheet should be visible")
	}
	closers := findAll(open, func(n *html.Node) bool { return attr(n, "data-action") == "close-sheet" })
	if len(closers) != 2 {
		t.Fatalf("close controls = %d, want 2 (backdrop and button)", len(closers))
	}
	for _, closer := range closers {
		if got := attr(closer, "href"); got != "/en/learn/mini-os" {
			t.Fatalf("close href = %q, want %q", got, "/en/learn/mini-os")
		}
	}
	current := findAll(open, func(n *html.Node) bool { return attr(n, "aria-current") == "page" })
	if len(current) != 2 {
		t.Fatalf("aria-current links = %d, want 2 (rail and sheet)", len(current))
	}
}

func TestSidebarTriggerKeepsWorkspaceQuery(t *testing.T) {
	t.Parallel()

	current, _ := url.Parse("/en/learn/mini-os?tab=viz&ai=expanded")
	doc := parse(t, render(t, Sidebar(sidebar.Build(locale.EN, "mini-os", current), nil, webi18n.ForLocale(locale.EN)), nil))
	triggers := findAll(doc, func(n *html.Node) bool { return attr(n, "data-action") == "open-sheet" })
	if len(triggers) != 1 {
		t.Fatalf("sheet triggers = %d, want 1", len(triggers))
	}
	if got := attr(triggers[0], "href"); got != "/en/learn/mini-os?ai=expanded&nav=open&tab=viz" {
		t.Fatalf("trigger href = %q, want %q", got, "/en/learn/mini-os?ai=expanded&nav=open&tab=viz")
	}
	if got := attr(triggers[0], "data-query-link"); got != "nav" {
		t.Fatalf("trigger data-query-link = %q, want %q", got, "nav")
	}
	toggles := findAll(doc, func(n *html.Node) bool { return attr(n, "class") == "locale-toggle" })
	if len(toggles) != 2 || attr(toggles[0], "hx-boost") != "false" {
		t.Fatalf("locale toggles must opt out of boosting")
	}
}

func TestWorkspaceTabbedLayoutHidesInactivePanels(t *testing.T) {
	t.Parallel()

	loc := webi18n.ForLocale(locale.EN)
	current, _ := url.Parse("/en/learn/dist-kv?tab=ai")
	view := workspace.NewView(loc, "dist-kv", workspace.StateFromQuery(current.Query()), current, workspace.DefaultPanels(icons.Lucide{}))
	doc := parse(t, render(t, WorkspaceFragment("Distributed KV Store", view, nil, loc), nil))

	panels := findAll(doc, func(n *html.Node) bool { return attr(n, "role") == "tabpanel" })
	if len(panels) != 3 {
		t.Fatalf("tabpanels = %d, want 3", len(panels))
	}
	var visible []*html.Node
	for _, panel := range panels {
		if !hasAttr(panel, "hidden") {
			visible = append(visible, panel)
		}
	}
	if len(visible) != 1 || attr(visible[0], "data-tab-panel") != "ai" {
		t.Fatalf("visible tabpanels = %d, want only ai", len(visible))
	}
	inPanel := findAll(visible[0], func(n *html.Node) bool { return attr(n, "data-panel") != "" })
	if len(inPanel) != 1 || attr(inPanel[0], "data-panel") != "ai" {
		t.Fatalf("visible tabpanel content = %d panels, want only ai", len(inPanel))
	}
	selected := findAll(doc, func(n *html.Node) bool { return attr(n, "aria-selected") == "true" })
	if len(selected) != 1 || attr(selected[0], "id") != "tab-ai" {
		t.Fatalf("selected tabs = %d, want tab-ai only", len(selected))
	}
	for _, tab := range findAll(doc, func(n *html.Node) bool { return attr(n, "role") == "tab" }) {
		if attr(tab, "data-action") != "select-tab" || attr(tab, "hx-boost") != "false" {
			t.Fatalf("tab %q is not a client-side control", attr(tab, "id"))
		}
		if attr(tab, "aria-controls") != "tabpanel-"+attr(tab, "data-tab-target") {
			t.Fatalf("tab %q controls %q", attr(tab, "id"), attr(tab, "aria-controls"))
		}
	}
	bodies := findAll(doc, func(n *html.Node) bool { return attr(n, "id") == "ai-dock-body" })
	if len(bodies) != 1 || !hasAttr(bodies[0], "hidden") {
		t.Fatalf("collapsed ai dock body should be rendered hidden")
	}
}

func TestWorkspaceExpandedAIDock(t *testing.T) {
	t.Parallel()

	loc := webi18n.ForLocale(locale.EN)
	current, _ := url.Parse("/en/learn/dist-kv?ai=expanded")
	view := workspace.NewView(loc, "dist-kv", workspace.StateFromQuery(current.Query()), current, workspace.DefaultPanels(nil))
	doc := parse(t, render(t, WorkspaceFragment("Distributed KV Store", view, nil, loc), nil))

	bodies := findAll(doc, func(n *html.Node) bool { return attr(n, "id") == "ai-dock-body" })
	if len(bodies) != 1 || hasAttr(bodies[0], "hidden") {
		t.Fatalf("expanded ai dock body should be visible")
	}
	docks := findAll(doc, func(n *html.Node) bool { return hasAttr(n, "data-ai-dock") })
	if len(docks) != 1 || attr(docks[0], "data-state") != "expanded" {
		t.Fatalf("ai dock state missing")
	}
	toggles := findAll(doc, func(n *html.Node) bool { return attr(n, "data-action") == "toggle-ai" })
	if len(toggles) != 1 {
		t.Fatalf("ai toggles = %d, want 1", len(toggles))
	}
	toggle := toggles[0]
	if attr(toggle, "aria-label") != "Collapse AI assistant" || attr(toggle, "data-label-expand") != "Expand AI assistant" {
		t.Fatalf("toggle labels = %q / %q", attr(toggle, "aria-label"), attr(toggle, "data-label-expand"))
	}
	if attr(toggle, "href") != "/en/learn/dist-kv" {
		t.Fatalf("toggle fallback href = %q", attr(toggle, "href"))
	}
	for _, chevron := range []string{"lucide-chevron-up", "lucide-chevron-down"} {
		uses := findAll(toggle, func(n *html.Node) bool { return attr(n, "href") == "#"+chevron })
		if len(uses) != 1 {
			t.Fatalf("toggle missing %s", chevron)
		}
	}
}

func TestAppErrorState(t *testing.T) {
	t.Parallel()

	loc := webi18n.ForLocale(locale.EN)
	body := render(t, AppErrorState(http.StatusNotFound, "/en/", "", loc), nil)
	for _, marker := range []string{`data-status="404"`, "We could not find that page", `href="/en/"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("error state missing %q: %s", marker, body)
		}
	}
	custom := render(t, AppErrorState(http.StatusInternalServerError, "/en/", "Try again later", loc), nil)
	if !strings.Contains(custom, "Try again later") || !strings.Contains(custom, `data-status="500"`) {
		t.Fatalf("custom message missing: %s", custom)
	}
	if got := AppErrorPageTitle(http.StatusTeapot, loc); got != "Something went wrong" {
		t.Fatalf("AppErrorPageTitle(418) = %q", got)
	}
}

func TestHomeFragmentEscapesText(t *testing.T) {
	t.Parallel()

	view := HomeView{Title: `<script>alert(1)</script>`, CTAHref: "/en/learn/tiny-interpreter"}
	body := render(t, HomeFragment(view, nil), nil)
	if strings.Contains(body, "<script>") {
		t.Fatalf("title was not escaped: %s", body)
	}
}

func TestLinkHrefsAreSanitized(t *testing.T) {
	t.Parallel()

	view := HomeView{CTAHref: "javascript:alert(1)", Sections: []HomeSection{{Cards: []HomeCard{{ID: "x", Href: "/en/learn/x"}}}}}
	doc := parse(t, render(t, HomeFragment(view, nil), nil))
	ctas := findAll(doc, func(n *html.Node) bool { return strings.Contains(attr(n, "class"), "hero__cta") })
	if len(ctas) != 1 {
		t.Fatalf("cta links = %d, want 1", len(ctas))
	}
	if got := attr(ctas[0], "href"); got != string(templ.FailedSanitizationURL) {
		t.Fatalf("cta href = %q, want %q", got, templ.FailedSanitizationURL)
	}
	cards := findAll(doc, func(n *html.Node) bool { return attr(n, "class") == "card__link" })
	if len(cards) != 1 || attr(cards[0], "href") != "/en/learn/x" {
		t.Fatalf("card href not kept")
	}
}

func TestPageTitleFallsBackToBrandName(t *testing.T) {
	t.Parallel()

	if got := PageTitle("Mini OS", nil); got != "Mini OS | Build Your Own Systems" {
		t.Fatalf("PageTitle() = %q, want %q", got, "Mini OS | Build Your Own Systems")
	}
	if got := PageTitle("", nil); got != "Build Your Own Systems" {
		t.Fatalf("PageTitle(\"\") = %q, want %q", got, "Build Your Own Systems")
	}
}
