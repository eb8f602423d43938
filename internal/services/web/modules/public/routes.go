package public

import (
	"net/http"

	"github.com/louisbranch/buildspace/internal/services/web/platform/httpx"
	"github.com/louisbranch/buildspace/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleRoot)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" "+routepath.CatchAllPattern, h.handleNotFound)
	mux.HandleFunc(routepath.CatchAllPattern, httpx.MethodNotAllowed(http.MethodGet+", HEAD"))
}
