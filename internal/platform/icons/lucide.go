package icons

const lucideSymbolPrefix = "lucide-"

var lucideIconNames = map[ID]string{
	Generic:         "sparkle",
	App:             "book-open",
	Interpreter:     "terminal",
	Compiler:        "cpu",
	OperatingSystem: "monitor",
	Filesystem:      "hard-drive",
	Storage:         "database",
	Transactions:    "git-branch",
	Consensus:       "network",
	Distributed:     "globe",
	Menu:            "menu",
	Close:           "x",
	Language:        "languages",
	Code:            "code-xml",
	Visualization:   "chart-column",
	Assistant:       "bot",
	Expand:          "chevron-down",
	Collapse:        "chevron-up",
	Forward:         "arrow-right",
}

// LucideName returns the Lucide icon name for an icon identifier.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when the icon ID is unknown.
func LucideNameOrDefault(id ID) string {
	if name, ok := lucideIconNames[id]; ok {
		return name
	}
	return lucideIconNames[Generic]
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// LucideSprite returns the SVG sprite markup for every cataloged icon.
func LucideSprite() string {
	return lucideSprite
}
