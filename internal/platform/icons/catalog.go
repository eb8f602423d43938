package icons

import "strings"

// ID is a stable semantic icon identifier.
type ID string

const (
	Generic         ID = "generic"
	App             ID = "app"
	Interpreter     ID = "interpreter"
	Compiler        ID = "compiler"
	OperatingSystem ID = "operating_system"
	Filesystem      ID = "filesystem"
	Storage         ID = "storage"
	Transactions    ID = "transactions"
	Consensus       ID = "consensus"
	Distributed     ID = "distributed"
	Menu            ID = "menu"
	Close           ID = "close"
	Language        ID = "language"
	Code            ID = "code"
	Visualization   ID = "visualization"
	Assistant       ID = "assistant"
	Expand          ID = "expand"
	Collapse        ID = "collapse"
	Forward         ID = "forward"
)

// Definition describes a catalog entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{ID: Generic, Name: "Generic", Description: "Fallback for unknown identifiers."},
	{ID: App, Name: "App", Description: "Product mark in navigation."},
	{ID: Interpreter, Name: "Interpreter", Description: "Tree-walking interpreter project."},
	{ID: Compiler, Name: "Compiler", Description: "Bytecode compiler project."},
	{ID: OperatingSystem, Name: "Operating system", Description: "Teaching kernel project."},
	{ID: Filesystem, Name: "Filesystem", Description: "Block filesystem project."},
	{ID: Storage, Name: "Storage", Description: "LSM storage engine project."},
	{ID: Transactions, Name: "Transactions", Description: "MVCC transaction manager project."},
	{ID: Consensus, Name: "Consensus", Description: "Replicated log consensus project."},
	{ID: Distributed, Name: "Distributed", Description: "Sharded key-value store project."},
	{ID: Menu, Name: "Menu", Description: "Opens the mobile navigation sheet."},
	{ID: Close, Name: "Close", Description: "Dismisses the mobile navigation sheet."},
	{ID: Language, Name: "Language", Description: "Switches the page locale."},
	{ID: Code, Name: "Code", Description: "Code editor panel."},
	{ID: Visualization, Name: "Visualization", Description: "Visualization panel."},
	{ID: Assistant, Name: "Assistant", Description: "AI assistant panel."},
	{ID: Expand, Name: "Expand", Description: "Expands a collapsed region."},
	{ID: Collapse, Name: "Collapse", Description: "Collapses an expanded region."},
	{ID: Forward, Name: "Forward", Description: "Call-to-action arrow."},
}

// Catalog returns a copy of every icon definition in declaration order.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the definition for id.
func Lookup(id ID) (Definition, bool) {
	trimmed := ID(strings.TrimSpace(string(id)))
	for _, def := range catalog {
		if def.ID == trimmed {
			return def, true
		}
	}
	return Definition{}, false
}
