// Package timeouts defines shared timeout constants for the web server,
// the exporter and command startup.
package timeouts

import "time"

// ReadHeader limits how long the web server waits for request headers.
const ReadHeader = 5 * time.Second

// Shutdown bounds graceful server shutdown.
const Shutdown = 5 * time.Second

// ExportPage caps the time spent rendering one page during static export.
const ExportPage = 10 * time.Second

// TelemetryFlush bounds span export when a command exits.
const TelemetryFlush = 3 * time.Second
