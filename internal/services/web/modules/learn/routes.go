package learn

import (
	"net/http"

	"github.com/louisbranch/buildspace/internal/services/web/platform/httpx"
	"github.com/louisbranch/buildspace/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.LearnPattern, h.handleLearn)
	mux.HandleFunc(http.MethodGet+" "+routepath.LearnSlashPattern, h.handleLearn)
	mux.HandleFunc(http.MethodGet+" "+routepath.LearnRestPattern, h.handleNotFound)
	mux.HandleFunc(routepath.LearnRestPattern, httpx.MethodNotAllowed(http.MethodGet+", HEAD"))
}
