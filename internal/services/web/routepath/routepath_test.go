package routepath

import (
	"net/url"
	"testing"
)

func TestTopLevelRouteConstants(t *testing.T) {
	t.Parallel()

	if Root != "/" {
		t.Fatalf("Root = %q", Root)
	}
	if Health != "/up" {
		t.Fatalf("Health = %q", Health)
	}
	if Metrics != "/metrics" {
		t.Fatalf("Metrics = %q", Metrics)
	}
	if StaticPrefix != "/static/" {
		t.Fatalf("StaticPrefix = %q", StaticPrefix)
	}
}

func TestLocalizedRoutes(t *testing.T) {
	t.Parallel()

	if got := Home("zh"); got != "/zh/" {
		t.Fatalf("Home(zh) = %q, want %q", got, "/zh/")
	}
	if got := Learn("en", "tiny-interpreter"); got != "/en/learn/tiny-interpreter" {
		t.Fatalf("Learn = %q, want %q", got, "/en/learn/tiny-interpreter")
	}
	if got := Learn(" en ", "a/b"); got != "/en/learn/a%2Fb" {
		t.Fatalf("Learn escaped = %q, want %q", got, "/en/learn/a%2Fb")
	}
	if got := Static("/app.css"); got != "/static/app.css" {
		t.Fatalf("Static = %q, want %q", got, "/static/app.css")
	}
}

func TestWithQuery(t *testing.T) {
	t.Parallel()

	if got := WithQuery("/en/learn/mini-os", nil); got != "/en/learn/mini-os" {
		t.Fatalf("WithQuery(nil) = %q", got)
	}
	values := url.Values{QueryTab: {"viz"}, QueryAI: {"expanded"}, QueryNav: {""}}
	if got := WithQuery("/en/learn/mini-os", values); got != "/en/learn/mini-os?ai=expanded&tab=viz" {
		t.Fatalf("WithQuery = %q, want %q", got, "/en/learn/mini-os?ai=expanded&tab=viz")
	}
}
