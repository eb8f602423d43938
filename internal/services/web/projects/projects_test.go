package projects

import (
	"regexp"
	"testing"

	"github.com/louisbranch/buildspace/internal/platform/i18n/catalog"
	"github.com/louisbranch/buildspace/internal/platform/icons"
)

func TestGroupsCoverRegistryExactlyOnce(t *testing.T) {
	t.Parallel()

	seen := map[string]int{}
	for _, listing := range Groups() {
		for _, project := range listing.Projects {
			if project.Group != listing.Group {
				t.Fatalf("project %q listed under %q, want %q", project.ID, listing.Group, project.Group)
			}
			seen[project.ID]++
		}
	}
	if len(seen) != len(All()) {
		t.Fatalf("grouped ids = %d, want %d", len(seen), len(All()))
	}
	for _, project := range All() {
		if seen[project.ID] != 1 {
			t.Fatalf("project %q grouped %d times, want 1", project.ID, seen[project.ID])
		}
	}
}

func TestGroupsKeepFixedOrderAndEmptyGroups(t *testing.T) {
	t.Parallel()

	listings := groupProjects([]Project{{ID: "only", Group: GroupData}})
	if len(listings) != 4 {
		t.Fatalf("len(groups) = %d, want 4", len(listings))
	}
	for i, group := range GroupOrder() {
		if listings[i].Group != group {
			t.Fatalf("groups[%d] = %q, want %q", i, listings[i].Group, group)
		}
	}
	if len(listings[0].Projects) != 0 {
		t.Fatalf("language projects = %d, want 0", len(listings[0].Projects))
	}
	if listings[0].Projects == nil {
		t.Fatal("empty group projects = nil, want empty slice")
	}
	if len(listings[2].Projects) != 1 {
		t.Fatalf("data projects = %d, want 1", len(listings[2].Projects))
	}
}

func TestGroupsPreserveDeclarationOrder(t *testing.T) {
	t.Parallel()

	want := map[Group][]string{
		GroupLanguage:    {"tiny-interpreter", "simple-compiler"},
		GroupSystems:     {"mini-os", "simple-fs"},
		GroupData:        {"storage-engine", "tx-manager"},
		GroupDistributed: {"consensus", "dist-kv"},
	}
	for _, listing := range Groups() {
		ids := want[listing.Group]
		if len(listing.Projects) != len(ids) {
			t.Fatalf("%s projects = %d, want %d", listing.Group, len(listing.Projects), len(ids))
		}
		for i, project := range listing.Projects {
			if project.ID != ids[i] {
				t.Fatalf("%s[%d] = %q, want %q", listing.Group, i, project.ID, ids[i])
			}
		}
	}
}

func TestIDsAreUniqueSlugs(t *testing.T) {
	t.Parallel()

	slug := regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)
	seen := map[string]bool{}
	for _, id := range IDs() {
		if !slug.MatchString(id) {
			t.Fatalf("id %q is not a url-safe slug", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	project, ok := Lookup("mini-os")
	if !ok {
		t.Fatal("Lookup(mini-os) ok = false, want true")
	}
	if project.Group != GroupSystems {
		t.Fatalf("Lookup(mini-os).Group = %q, want %q", project.Group, GroupSystems)
	}
	for _, id := range []string{"", "not-a-project", "Mini-OS", " mini-os"} {
		if IsValid(id) {
			t.Fatalf("IsValid(%q) = true, want false", id)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	t.Parallel()

	list := All()
	list[0].ID = "mutated"
	if First().ID != "tiny-interpreter" {
		t.Fatalf("First().ID = %q, want %q", First().ID, "tiny-interpreter")
	}
}

func TestProjectsHaveIconsAndTranslations(t *testing.T) {
	t.Parallel()

	bundle := catalog.Default()
	for _, project := range All() {
		if _, ok := icons.Lookup(project.Icon); !ok {
			t.Fatalf("project %q icon %q not in icon catalog", project.ID, project.Icon)
		}
		for _, locale := range bundle.Locales() {
			messages := bundle.LocaleMessages(locale)
			for _, key := range []string{NameKey(project.ID), DescriptionKey(project.ID)} {
				if _, ok := messages[key]; !ok {
					t.Fatalf("%s missing %q", locale, key)
				}
			}
		}
	}
	base := bundle.LocaleMessages(catalog.BaseLocale)
	for _, group := range GroupOrder() {
		if _, ok := base[GroupKey(group)]; !ok {
			t.Fatalf("missing group key %q", GroupKey(group))
		}
	}
}
