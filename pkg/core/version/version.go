// ============================================================================
// meinCAMPUSWERK (mCW) - Studierendenverwaltung
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// License:     MIT
// ============================================================================

package version

// Version constants for all mCW components
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Humboldt = "1.0.0"
)

// ServiceVersion returns the version for a given service name
func ServiceVersion(name string) string {
	switch name {
	case "humboldt":
		return Humboldt
	default:
		return Platform
	}
}
