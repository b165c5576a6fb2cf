// Package constant defines application-level identifiers.
package constant

const (
	// Facet is the application identifier used for paths, env vars and CLI branding.
	Facet = "facet"

	// Version is the current application version.
	Version = "0.1.0"

	// FacePrefix prefixes every semantic face name.
	FacePrefix = "facet-"
)
