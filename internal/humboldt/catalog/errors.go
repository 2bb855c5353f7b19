// ============================================================================
// meinCAMPUSWERK (mCW) - Studierendenverwaltung
// ============================================================================
//
// Package:     catalog
// Description: Error definitions for the catalog loader
// License:     MIT
// ============================================================================

package catalog

import "errors"

var (
	// Validation errors
	ErrMissingName       = errors.New("name is required")
	ErrMissingStudentRef = errors.New("enrollment student is required")
	ErrMissingCourseRef  = errors.New("enrollment course is required")

	// Loading errors
	ErrInvalidYAML      = errors.New("invalid YAML syntax")
	ErrDocumentNotFound = errors.New("catalog document not found")
)
