// Package app composes web modules into one root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/buildspace/internal/services/web/module"
)

// ComposeInput carries the modules to mount.
type ComposeInput struct {
	Modules []module.Module
}

// Composer wires module mounts into a root mux.
type Composer struct{}

// Compose builds a root HTTP handler from modules.
func (Composer) Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)
	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, mount.Handler)
	}
	return root, nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix, err := validatePrefix(mount.Prefix)
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

// validatePrefix rejects non-canonical prefixes: a mount must start and end
// with a slash and carry no whitespace.
func validatePrefix(prefix string) (string, error) {
	switch {
	case prefix == "":
		return "", fmt.Errorf("prefix is required")
	case strings.TrimSpace(prefix) != prefix || strings.ContainsAny(prefix, " \t\r\n"):
		return "", fmt.Errorf("prefix %q contains whitespace", prefix)
	case !strings.HasPrefix(prefix, "/") || !strings.HasSuffix(prefix, "/"):
		return "", fmt.Errorf("prefix %q must start and end with /", prefix)
	}
	return prefix, nil
}
