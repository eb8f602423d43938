// Package branding holds product naming shared by every rendered surface.
package branding

// AppName is the product name shown in titles and navigation.
const AppName = "Build Your Own Systems"

// ServiceSlug prefixes machine-facing names such as telemetry services.
const ServiceSlug = "buildspace"
