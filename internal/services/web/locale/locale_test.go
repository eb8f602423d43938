package locale

import "testing"

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Locale
		ok    bool
	}{
		{input: "en", want: EN, ok: true},
		{input: "zh", want: ZH, ok: true},
		{input: " zh ", want: ZH, ok: true},
		{input: "EN", ok: false},
		{input: "fr", ok: false},
		{input: "", ok: false},
		{input: "zh-CN", ok: false},
	}
	for _, tc := range tests {
		got, ok := Resolve(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("Resolve(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestToggleIsInvolution(t *testing.T) {
	t.Parallel()

	for _, loc := range Supported() {
		if Toggle(loc) == loc {
			t.Fatalf("Toggle(%q) = %q, want other locale", loc, loc)
		}
		if got := Toggle(Toggle(loc)); got != loc {
			t.Fatalf("Toggle(Toggle(%q)) = %q, want %q", loc, got, loc)
		}
	}
}

func TestTogglePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		current Locale
		path    string
		want    string
	}{
		{current: ZH, path: "/zh/", want: "/en/"},
		{current: EN, path: "/en/", want: "/zh/"},
		{current: EN, path: "/en", want: "/zh"},
		{current: EN, path: "/en/learn/tiny-interpreter", want: "/zh/learn/tiny-interpreter"},
		{current: ZH, path: "/zh/learn/dist-kv/", want: "/en/learn/dist-kv/"},
		{current: EN, path: "/en/learn/mini-os?tab=viz&nav=open", want: "/zh/learn/mini-os"},
		{current: EN, path: "/", want: "/zh/"},
		{current: EN, path: "", want: "/zh/"},
		{current: EN, path: "/learn/consensus", want: "/zh/learn/consensus"},
		{current: ZH, path: "/docs/", want: "/en/docs/"},
	}
	for _, tc := range tests {
		if got := TogglePath(tc.current, tc.path); got != tc.want {
			t.Fatalf("TogglePath(%q, %q) = %q, want %q", tc.current, tc.path, got, tc.want)
		}
	}
}

func TestTogglePathTwiceRestoresPath(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/en/", "/en/learn/storage-engine", "/en/learn/tx-manager/"} {
		once := TogglePath(EN, path)
		if got := TogglePath(ZH, once); got != path {
			t.Fatalf("round trip %q = %q, want %q", path, got, path)
		}
	}
}

func TestNegotiate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		header string
		want   Locale
	}{
		{header: "", want: EN},
		{header: "zh-CN,zh;q=0.9,en;q=0.8", want: ZH},
		{header: "en-US,en;q=0.9", want: EN},
		{header: "fr-FR", want: EN},
		{header: ";;;", want: EN},
	}
	for _, tc := range tests {
		if got := Negotiate(tc.header); got != tc.want {
			t.Fatalf("Negotiate(%q) = %q, want %q", tc.header, got, tc.want)
		}
	}
}

func TestBindTranslatesPerLocale(t *testing.T) {
	t.Parallel()

	if got := Bind(EN).Sprintf("nav.language"); got != "Programming Languages" {
		t.Fatalf("en nav.language = %q, want %q", got, "Programming Languages")
	}
	if got := Bind(ZH).Sprintf("nav.language"); got != "编程语言" {
		t.Fatalf("zh nav.language = %q, want %q", got, "编程语言")
	}
	if got := Bind(ZH).Sprintf("nav.missing_key"); got != "nav.missing_key" {
		t.Fatalf("missing key = %q, want key itself", got)
	}
}

func TestTag(t *testing.T) {
	t.Parallel()

	if got := ZH.Tag().String(); got != "zh" {
		t.Fatalf("ZH.Tag() = %q, want %q", got, "zh")
	}
	if got := EN.Tag().String(); got != "en" {
		t.Fatalf("EN.Tag() = %q, want %q", got, "en")
	}
}
