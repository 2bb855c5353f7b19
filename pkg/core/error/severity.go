// ============================================================================
// meinCAMPUSWERK (mCW) - Studierendenverwaltung
// ============================================================================
//
// Package:     error
// Description: Severity levels for error prioritization and logging
// License:     MIT
// ============================================================================

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: invalid user input, a lookup for a missing record
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a catalog document that fails to load while the rest apply cleanly
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: unusable configuration, a service that cannot start
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// High severity errors
	case CodeServiceInitialization, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	// Medium severity errors
	case CodeInternal, CodeCatalogError, CodeImportError, CodeExportError:
		return SeverityMedium

	// Low severity errors
	case CodeNotFound, CodeDuplicateID, CodeDuplicateEnrollment,
		CodeInvalidInput, CodeValidationFailed, CodeRequiredField:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
