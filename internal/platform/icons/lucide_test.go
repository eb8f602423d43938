package icons

import (
	"context"
	"strings"
	"testing"
)

func TestLucideNameCoversCatalog(t *testing.T) {
	for _, def := range Catalog() {
		if _, ok := LucideName(def.ID); !ok {
			t.Fatalf("missing Lucide mapping for %s", def.ID)
		}
	}
}

func TestLucideSpriteDefinesEveryMappedSymbol(t *testing.T) {
	sprite := LucideSprite()
	for _, def := range Catalog() {
		symbol := LucideSymbolID(LucideNameOrDefault(def.ID))
		if !strings.Contains(sprite, `<symbol id="`+symbol+`"`) {
			t.Fatalf("sprite missing symbol %q for %s", symbol, def.ID)
		}
	}
}

func TestLucideNameOrDefaultFallsBackToGeneric(t *testing.T) {
	if got := LucideNameOrDefault("unknown"); got != "sparkle" {
		t.Fatalf("LucideNameOrDefault() = %q, want %q", got, "sparkle")
	}
}

func TestLucideProviderRendersSpriteReference(t *testing.T) {
	var b strings.Builder
	if err := (Lucide{}).IconFor(Interpreter).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	got := b.String()
	if !strings.Contains(got, `href="#lucide-terminal"`) {
		t.Fatalf("rendered icon missing sprite reference: %q", got)
	}
	if !strings.Contains(got, `class="icon"`) {
		t.Fatalf("rendered icon missing default class: %q", got)
	}
}

func TestLucideProviderUsesCustomClass(t *testing.T) {
	var b strings.Builder
	if err := (Lucide{Class: "icon icon--lg"}).IconFor(App).Render(context.Background(), &b); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(b.String(), `class="icon icon--lg"`) {
		t.Fatalf("rendered icon missing custom class: %q", b.String())
	}
}

func TestProviderOrDefault(t *testing.T) {
	if _, ok := ProviderOrDefault(nil).(Lucide); !ok {
		t.Fatal("expected nil provider to fall back to Lucide")
	}
	custom := Lucide{Class: "x"}
	if got := ProviderOrDefault(custom); got != custom {
		t.Fatalf("ProviderOrDefault() = %v, want %v", got, custom)
	}
}
