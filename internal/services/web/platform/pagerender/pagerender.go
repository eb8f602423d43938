// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"github.com/a-h/templ"
	module "github.com/louisbranch/buildspace/internal/services/web/module"
	"github.com/louisbranch/buildspace/internal/services/web/locale"
	"github.com/louisbranch/buildspace/internal/services/web/platform/httpx"
	webi18n "github.com/louisbranch/buildspace/internal/services/web/platform/i18n"
	"github.com/louisbranch/buildspace/internal/services/web/sidebar"
	webtemplates "github.com/louisbranch/buildspace/internal/services/web/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title       string
	Description string
	StatusCode  int
	Locale      locale.Locale
	// ActiveProjectID highlights one sidebar entry; empty highlights none.
	ActiveProjectID string
	Fragment        templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WriteModulePage writes a module page. Targeted HTMX requests receive only
// the main region; boosted navigation and plain requests receive the full
// document so the sidebar is rebuilt from the new URL.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}
	lang := page.Locale
	if _, ok := locale.Resolve(string(lang)); !ok {
		lang = webi18n.RequestLocale(r)
	}
	loc := webi18n.ForLocale(lang)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", lang.String())
	w.Header().Add("Vary", "HX-Request, HX-Boosted")
	if httpx.IsHTMXRequest(r) && !httpx.IsHTMXBoosted(r) {
		w.WriteHeader(statusCode)
		return webtemplates.MainContent().Render(ctx, w)
	}

	var current *url.URL
	if r != nil {
		current = r.URL
	}
	w.WriteHeader(statusCode)
	return webtemplates.Layout(webtemplates.Page{
		Title:        page.Title,
		Description:  page.Description,
		AssetBaseURL: deps.AssetBaseURL,
		Nav:          sidebar.Build(lang, page.ActiveProjectID, current),
		Icons:        deps.Icons,
		Loc:          loc,
	}).Render(ctx, w)
}
