package export

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.OutDir != "dist" {
		t.Fatalf("OutDir = %q, want %q", cfg.OutDir, "dist")
	}
	if cfg.Workers != 4 {
		t.Fatalf("Workers = %d, want %d", cfg.Workers, 4)
	}
}

func TestParseConfigEnvAndFlags(t *testing.T) {
	t.Setenv("BUILDSPACE_EXPORT_OUT_DIR", "public")
	t.Setenv("BUILDSPACE_EXPORT_ASSET_BASE_URL", "https://cdn.example.com")

	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-out", "site"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.OutDir != "site" {
		t.Fatalf("OutDir = %q, want %q", cfg.OutDir, "site")
	}
	if cfg.AssetBaseURL != "https://cdn.example.com" {
		t.Fatalf("AssetBaseURL = %q, want %q", cfg.AssetBaseURL, "https://cdn.example.com")
	}
}

func TestRunWritesSite(t *testing.T) {
	t.Setenv("BUILDSPACE_OTEL_ENDPOINT", "")

	out := t.TempDir()
	if err := Run(context.Background(), Config{OutDir: out, Workers: 2}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for _, name := range []string{"en/index.html", "zh/learn/consensus/index.html", "404.html"} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(name))); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
}
