// ============================================================================
// meinCAMPUSWERK (mCW) - Studierendenverwaltung
// ============================================================================
//
// Package:     error
// Description: Structured error handling for the mCW registry and its tools
// License:     MIT
// ============================================================================

// Package error provides structured errors with codes, severities, and
// contextual details. Errors carry a machine-readable Code so callers can
// distinguish the registry's failure kinds (record not found, duplicate
// identifier, duplicate enrollment) without parsing messages, while the
// fluent builders keep call sites compact:
//
//	return mcwerror.New("student not found").
//		WithCode(mcwerror.CodeNotFound).
//		WithDetail("student_id", id).
//		WithOperation("store.FindStudent")
//
// The package is usually imported under the mcwerror alias to avoid
// shadowing the builtin error type.
package error
