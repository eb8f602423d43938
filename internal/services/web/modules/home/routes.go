package home

import (
	"net/http"

	"github.com/louisbranch/buildspace/internal/services/web/platform/httpx"
	"github.com/louisbranch/buildspace/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.LocalePrefix+"{$}", h.handleHome)
	mux.HandleFunc(http.MethodGet+" "+routepath.LocaleRestPattern, h.handleNotFound)
	mux.HandleFunc(routepath.LocaleRestPattern, httpx.MethodNotAllowed(http.MethodGet+", HEAD"))
}
