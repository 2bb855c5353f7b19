// ============================================================================
// meinCAMPUSWERK (mCW) - Studierendenverwaltung
// ============================================================================
//
// Package:     log
// Description: Structured logging engine used by every mCW component
// License:     MIT
// ============================================================================

// Package log implements the structured logging engine: leveled entries
// with key-value fields, pluggable output formats (JSON for machine
// consumption, text and colored console output for humans), and
// immutable clone-based context building:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelInfo, Name: "humboldt"})
//	logger.WithField("component", "catalog").Info("documents loaded", log.Int("count", n))
//
// Application code normally goes through the pkg/core/logging factory
// instead of constructing loggers here directly.
package log
