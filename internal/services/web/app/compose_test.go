package app

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	module "github.com/louisbranch/buildspace/internal/services/web/module"
)

type stubModule struct {
	id    string
	mount module.Mount
	err   error
}

func (s stubModule) ID() string { return s.id }

func (s stubModule) Mount() (module.Mount, error) { return s.mount, s.err }

func statusHandler(status int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
	})
}

func TestComposeRejectsDuplicateModulePrefix(t *testing.T) {
	t.Parallel()

	_, err := Composer{}.Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "one", mount: module.Mount{Prefix: "/one/", Handler: statusHandler(http.StatusNoContent)}},
		stubModule{id: "two", mount: module.Mount{Prefix: "/one/", Handler: statusHandler(http.StatusNoContent)}},
	}})
	if err == nil {
		t.Fatalf("expected duplicate prefix error")
	}
}

func TestComposeRejectsNilModule(t *testing.T) {
	t.Parallel()

	if _, err := (Composer{}).Compose(ComposeInput{Modules: []module.Module{nil}}); err == nil {
		t.Fatalf("expected nil module error")
	}
}

func TestComposeRejectsMountError(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	_, err := Composer{}.Compose(ComposeInput{Modules: []module.Module{stubModule{id: "broken", err: want}}})
	if !errors.Is(err, want) {
		t.Fatalf("Compose() error = %v, want %v", err, want)
	}
}

func TestComposeRejectsMissingHandler(t *testing.T) {
	t.Parallel()

	_, err := Composer{}.Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "empty", mount: module.Mount{Prefix: "/empty/"}},
	}})
	if err == nil {
		t.Fatalf("expected missing handler error")
	}
}

func TestValidatePrefix(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		prefix string
		ok     bool
	}{
		{prefix: "/", ok: true},
		{prefix: "/en/", ok: true},
		{prefix: "/en/learn/", ok: true},
		{prefix: "", ok: false},
		{prefix: "en/", ok: false},
		{prefix: "/en", ok: false},
		{prefix: " /en/", ok: false},
		{prefix: "/e n/", ok: false},
	} {
		_, err := validatePrefix(tc.prefix)
		if (err == nil) != tc.ok {
			t.Fatalf("validatePrefix(%q) error = %v, want ok %t", tc.prefix, err, tc.ok)
		}
	}
}

func TestComposeRoutesByLongestPrefix(t *testing.T) {
	t.Parallel()

	h, err := Composer{}.Compose(ComposeInput{Modules: []module.Module{
		stubModule{id: "root", mount: module.Mount{Prefix: "/", Handler: statusHandler(http.StatusTeapot)}},
		stubModule{id: "home", mount: module.Mount{Prefix: "/en/", Handler: statusHandler(http.StatusOK)}},
		stubModule{id: "learn", mount: module.Mount{Prefix: "/en/learn/", Handler: statusHandler(http.StatusAccepted)}},
	}})
	if err != nil {
		t.Fatalf("Compose() error = %v", err)
	}

	for _, tc := range []struct {
		path string
		want int
	}{
		{path: "/up", want: http.StatusTeapot},
		{path: "/en/", want: http.StatusOK},
		{path: "/en/learn/tiny-interpreter", want: http.StatusAccepted},
		{path: "/en", want: http.StatusMovedPermanently},
	} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != tc.want {
			t.Fatalf("GET %s status = %d, want %d", tc.path, rr.Code, tc.want)
		}
	}
}
