package branding

import "testing"

func TestAppName(t *testing.T) {
	if AppName != "Build Your Own Systems" {
		t.Fatalf("AppName = %q, want %q", AppName, "Build Your Own Systems")
	}
}

func TestServiceSlug(t *testing.T) {
	if ServiceSlug != "buildspace" {
		t.Fatalf("ServiceSlug = %q, want %q", ServiceSlug, "buildspace")
	}
}
