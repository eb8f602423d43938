// Package icons defines the icon identifiers used across the web shell.
//
// The catalog maps stable semantic identifiers (a project kind, a panel, a
// control) to human-readable labels so that registries can name intent without
// dictating presentation. Rendering goes through a Provider; the default
// provider resolves each id to a symbol in the embedded Lucide sprite.
package icons
