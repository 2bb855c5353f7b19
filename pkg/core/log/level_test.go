// ============================================================================
// meinCAMPUSWERK (mCW) - Studierendenverwaltung
// ============================================================================
//
// Package:     log
// Description: Tests for log level parsing and filtering
// License:     MIT
// ============================================================================

package log

import "testing"

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
		short string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelFatal, "fatal", "FTL"},
		{Level(42), "unknown", "???"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
			if got := tt.level.ShortString(); got != tt.short {
				t.Errorf("ShortString() = %q, want %q", got, tt.short)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Level
		expectErr bool
	}{
		{"trace", "trace", LevelTrace, false},
		{"debug short", "dbg", LevelDebug, false},
		{"info with spaces", "  info  ", LevelInfo, false},
		{"warning alias", "warning", LevelWarn, false},
		{"uppercase", "ERROR", LevelError, false},
		{"fatal", "fatal", LevelFatal, false},
		{"invalid", "verbose", LevelInfo, true},
		{"empty", "", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)

			if tt.expectErr {
				if err == nil {
					t.Errorf("ParseLevel(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("ParseLevel(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name     string
		level    Level
		minLevel Level
		want     bool
	}{
		{"debug suppressed at info", LevelDebug, LevelInfo, false},
		{"info passes at info", LevelInfo, LevelInfo, true},
		{"error passes at info", LevelError, LevelInfo, true},
		{"info suppressed at error", LevelInfo, LevelError, false},
		{"trace passes at trace", LevelTrace, LevelTrace, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.level.ShouldLog(tt.minLevel); got != tt.want {
				t.Errorf("ShouldLog(%v) = %v, want %v", tt.minLevel, got, tt.want)
			}
		})
	}
}

func TestAllLevels(t *testing.T) {
	levels := AllLevels()

	if len(levels) != 6 {
		t.Errorf("AllLevels() returned %d levels, want 6", len(levels))
	}

	if levels[0] != LevelTrace || levels[len(levels)-1] != LevelFatal {
		t.Error("AllLevels() should run from trace to fatal")
	}
}
