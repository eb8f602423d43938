package public

import (
	"net/http"

	module "github.com/louisbranch/buildspace/internal/services/web/module"
	"github.com/louisbranch/buildspace/internal/services/web/locale"
	"github.com/louisbranch/buildspace/internal/services/web/platform/httpx"
	"github.com/louisbranch/buildspace/internal/services/web/platform/weberror"
	"github.com/louisbranch/buildspace/internal/services/web/routepath"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

// handleRoot redirects to the landing page in the preferred locale. The
// redirect is temporary because the target depends on request headers.
func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	target := locale.Negotiate(r.Header.Get("Accept-Language"))
	w.Header().Add("Vary", "Accept-Language")
	http.Redirect(w, r, routepath.Home(target.String()), http.StatusFound)
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, "ok")
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteNotFound(w, r, h.deps)
}
