// ============================================================================
// meinCAMPUSWERK (mCW) - Studierendenverwaltung
// ============================================================================
//
// Package:     error
// Description: Error code definitions for consistent error classification
// License:     MIT
// ============================================================================

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the mCW platform
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Registry codes
	CodeNotFound            Code = "NOT_FOUND"
	CodeDuplicateID         Code = "DUPLICATE_ID"
	CodeDuplicateEnrollment Code = "DUPLICATE_ENROLLMENT"

	// Validation
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Service lifecycle
	CodeServiceInitialization Code = "SERVICE_INITIALIZATION"

	// File exchange (catalog and roster files)
	CodeCatalogError Code = "CATALOG_ERROR"
	CodeImportError  Code = "IMPORT_ERROR"
	CodeExportError  Code = "EXPORT_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeNotFound, CodeDuplicateID, CodeDuplicateEnrollment,
		CodeInvalidInput, CodeValidationFailed, CodeRequiredField,
		CodeConfigError, CodeInvalidConfig,
		CodeServiceInitialization,
		CodeCatalogError, CodeImportError, CodeExportError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNotFound, CodeDuplicateID, CodeDuplicateEnrollment:
		return "registry"
	case CodeInvalidInput, CodeValidationFailed, CodeRequiredField:
		return "validation"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeServiceInitialization:
		return "service"
	case CodeCatalogError, CodeImportError, CodeExportError:
		return "exchange"
	default:
		return "generic"
	}
}
