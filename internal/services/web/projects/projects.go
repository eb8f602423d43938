// Package projects is the static registry of learnable projects.
//
// The registry is declared once at package init and never mutated. Every
// listing is derived from the declaration slice on each call, so grouped and
// flat views cannot drift apart.
package projects

import (
	"strings"

	"github.com/louisbranch/buildspace/internal/platform/icons"
)

// Group classifies a project into one of the fixed navigation categories.
type Group string

const (
	GroupLanguage    Group = "language"
	GroupSystems     Group = "systems"
	GroupData        Group = "data"
	GroupDistributed Group = "distributed"
)

var groupOrder = []Group{GroupLanguage, GroupSystems, GroupData, GroupDistributed}

// Project is one registered learning project.
type Project struct {
	// ID is the unique URL-safe slug used in routes and translation keys.
	ID    string
	Group Group
	Icon  icons.ID
}

// ProjectGroup is a derived listing of the projects in one group.
type ProjectGroup struct {
	Group    Group
	Projects []Project
}

var registry = []Project{
	{ID: "tiny-interpreter", Group: GroupLanguage, Icon: icons.Interpreter},
	{ID: "simple-compiler", Group: GroupLanguage, Icon: icons.Compiler},
	{ID: "mini-os", Group: GroupSystems, Icon: icons.OperatingSystem},
	{ID: "simple-fs", Group: GroupSystems, Icon: icons.Filesystem},
	{ID: "storage-engine", Group: GroupData, Icon: icons.Storage},
	{ID: "tx-manager", Group: GroupData, Icon: icons.Transactions},
	{ID: "consensus", Group: GroupDistributed, Icon: icons.Consensus},
	{ID: "dist-kv", Group: GroupDistributed, Icon: icons.Distributed},
}

// All returns every registered project in declaration order.
func All() []Project {
	out := make([]Project, len(registry))
	copy(out, registry)
	return out
}

// GroupOrder returns the fixed group display order.
func GroupOrder() []Group {
	out := make([]Group, len(groupOrder))
	copy(out, groupOrder)
	return out
}

// Groups returns the registry grouped by category. All four groups are present
// even when empty and projects keep their declaration order.
func Groups() []ProjectGroup {
	return groupProjects(registry)
}

func groupProjects(list []Project) []ProjectGroup {
	out := make([]ProjectGroup, 0, len(groupOrder))
	for _, group := range groupOrder {
		listing := ProjectGroup{Group: group, Projects: []Project{}}
		for _, project := range list {
			if project.Group == group {
				listing.Projects = append(listing.Projects, project)
			}
		}
		out = append(out, listing)
	}
	return out
}

// IDs returns registered project ids in declaration order.
func IDs() []string {
	out := make([]string, 0, len(registry))
	for _, project := range registry {
		out = append(out, project.ID)
	}
	return out
}

// Lookup returns the project registered under id. Matching is exact; route
// values are not case-folded.
func Lookup(id string) (Project, bool) {
	for _, project := range registry {
		if project.ID == id {
			return project, true
		}
	}
	return Project{}, false
}

// IsValid reports whether id names a registered project.
func IsValid(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// NameKey returns the translation key for the project display name.
func NameKey(id string) string {
	return "projects." + strings.TrimSpace(id) + ".name"
}

// DescriptionKey returns the translation key for the project summary.
func DescriptionKey(id string) string {
	return "projects." + strings.TrimSpace(id) + ".description"
}

// GroupKey returns the translation key for a group heading.
func GroupKey(group Group) string {
	return "nav." + string(group)
}

// First returns the first registered project, the landing page call to action.
func First() Project {
	return registry[0]
}
