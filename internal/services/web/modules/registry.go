package modules

import (
	"github.com/louisbranch/buildspace/internal/services/web/locale"
	"github.com/louisbranch/buildspace/internal/services/web/modules/home"
	"github.com/louisbranch/buildspace/internal/services/web/modules/learn"
	"github.com/louisbranch/buildspace/internal/services/web/modules/public"
	"github.com/louisbranch/buildspace/internal/services/web/routepath"
)

// DefaultModules returns the public module followed by the home and learn
// modules of every supported locale.
func DefaultModules(deps Dependencies) []Module {
	supported := locale.Supported()
	out := make([]Module, 0, 1+2*len(supported))
	out = append(out, public.New(deps))
	for _, loc := range supported {
		out = append(out, home.New(deps, loc), learn.New(deps, loc))
	}
	return out
}

// StaticPaths lists every page path that can be rendered ahead of time:
// each locale's landing page and every locale and project combination.
func StaticPaths() []string {
	supported := locale.Supported()
	params := learn.StaticParams()
	out := make([]string, 0, len(supported)+len(params))
	for _, loc := range supported {
		out = append(out, routepath.Home(loc.String()))
	}
	for _, p := range params {
		out = append(out, routepath.Learn(p.Locale.String(), p.Project))
	}
	return out
}
