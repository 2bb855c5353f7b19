package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"hours", "2h", 2 * time.Hour, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{"seconds", 30 * time.Second, "30s"},
		{"minutes", 5 * time.Minute, "5m0s"},
		{"milliseconds", 500 * time.Millisecond, "500ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Duration{tt.duration}
			result, err := d.MarshalText()

			if err != nil {
				t.Errorf("MarshalText() error = %v", err)
				return
			}

			if string(result) != tt.expected {
				t.Errorf("MarshalText() = %v, want %v", string(result), tt.expected)
			}
		})
	}
}

func TestConfig_applyDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	// Service defaults
	if cfg.Service.Name != "meinCAMPUSWERK" {
		t.Errorf("Service.Name = %v, want meinCAMPUSWERK", cfg.Service.Name)
	}
	if cfg.Service.Environment != "development" {
		t.Errorf("Service.Environment = %v, want development", cfg.Service.Environment)
	}
	if cfg.Service.DataDir != "./data" {
		t.Errorf("Service.DataDir = %v, want ./data", cfg.Service.DataDir)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("Logging.Format = %v, want text", cfg.Logging.Format)
	}

	// Catalog defaults
	if cfg.Catalog.Directory != filepath.Join("./data", "catalog") {
		t.Errorf("Catalog.Directory = %v, want data/catalog", cfg.Catalog.Directory)
	}
	if cfg.Catalog.Debounce.Duration != 500*time.Millisecond {
		t.Errorf("Catalog.Debounce = %v, want 500ms", cfg.Catalog.Debounce.Duration)
	}
	if cfg.Catalog.Watch {
		t.Error("Catalog.Watch should default to false")
	}

	// Roster defaults
	if cfg.Roster.Sheet != "Roster" {
		t.Errorf("Roster.Sheet = %v, want Roster", cfg.Roster.Sheet)
	}
	if cfg.Roster.HeaderRows != 1 {
		t.Errorf("Roster.HeaderRows = %v, want 1", cfg.Roster.HeaderRows)
	}

	// TUI defaults
	if cfg.TUI.AccentColor != "205" {
		t.Errorf("TUI.AccentColor = %v, want 205", cfg.TUI.AccentColor)
	}
}

func TestConfig_applyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Service: ServiceConfig{DataDir: "/var/lib/mcw"},
		Catalog: CatalogConfig{Directory: "/etc/mcw/catalog"},
		Roster:  RosterConfig{HeaderRows: 2},
	}
	cfg.applyDefaults()

	if cfg.Service.DataDir != "/var/lib/mcw" {
		t.Errorf("Service.DataDir = %v, want /var/lib/mcw", cfg.Service.DataDir)
	}
	if cfg.Catalog.Directory != "/etc/mcw/catalog" {
		t.Errorf("Catalog.Directory = %v, want /etc/mcw/catalog", cfg.Catalog.Directory)
	}
	if cfg.Roster.HeaderRows != 2 {
		t.Errorf("Roster.HeaderRows = %v, want 2", cfg.Roster.HeaderRows)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if cfg.Service.Name != "meinCAMPUSWERK" {
		t.Errorf("Service.Name = %v, want meinCAMPUSWERK", cfg.Service.Name)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %v, want info", cfg.Logging.Level)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/path/humboldt.toml")
	if err == nil {
		t.Error("Load() expected error for non-existent file")
	}
}

func TestLoad_ValidConfig(t *testing.T) {
	// Create temp config file
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "humboldt.toml")

	configContent := `
[service]
name = "TestCAMPUSWERK"
environment = "test"

[logging]
level = "debug"
format = "json"

[catalog]
directory = "/tmp/catalog"
watch = true
debounce = "250ms"

[roster]
sheet = "Teilnehmer"
header_rows = 2
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := Load(configPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Service.Name != "TestCAMPUSWERK" {
		t.Errorf("Service.Name = %v, want TestCAMPUSWERK", cfg.Service.Name)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %v, want debug", cfg.Logging.Level)
	}
	if cfg.Catalog.Directory != "/tmp/catalog" {
		t.Errorf("Catalog.Directory = %v, want /tmp/catalog", cfg.Catalog.Directory)
	}
	if !cfg.Catalog.Watch {
		t.Error("Catalog.Watch = false, want true")
	}
	if cfg.Catalog.Debounce.Duration != 250*time.Millisecond {
		t.Errorf("Catalog.Debounce = %v, want 250ms", cfg.Catalog.Debounce.Duration)
	}
	if cfg.Roster.Sheet != "Teilnehmer" {
		t.Errorf("Roster.Sheet = %v, want Teilnehmer", cfg.Roster.Sheet)
	}
	if cfg.Roster.HeaderRows != 2 {
		t.Errorf("Roster.HeaderRows = %v, want 2", cfg.Roster.HeaderRows)
	}

	// Check defaults were applied for missing values
	if cfg.Service.DataDir != "./data" {
		t.Errorf("Service.DataDir = %v, want ./data (default)", cfg.Service.DataDir)
	}
	if cfg.TUI.AccentColor != "205" {
		t.Errorf("TUI.AccentColor = %v, want 205 (default)", cfg.TUI.AccentColor)
	}
}

func TestConfig_expandEnvVars(t *testing.T) {
	os.Setenv("TEST_MCW_DATA", "/srv/campus")
	defer os.Unsetenv("TEST_MCW_DATA")

	cfg := &Config{
		Service: ServiceConfig{
			DataDir: "$TEST_MCW_DATA",
		},
		Catalog: CatalogConfig{
			Directory: "$TEST_MCW_DATA/catalog",
		},
	}

	cfg.expandEnvVars()

	if cfg.Service.DataDir != "/srv/campus" {
		t.Errorf("DataDir = %v, want /srv/campus", cfg.Service.DataDir)
	}
	if cfg.Catalog.Directory != "/srv/campus/catalog" {
		t.Errorf("Catalog.Directory = %v, want /srv/campus/catalog", cfg.Catalog.Directory)
	}
}

func TestLoadFromEnv_NoConfigFound(t *testing.T) {
	// Temporarily unset MCW_CONFIG
	original := os.Getenv("MCW_CONFIG")
	os.Unsetenv("MCW_CONFIG")
	defer func() {
		if original != "" {
			os.Setenv("MCW_CONFIG", original)
		}
	}()

	// Change to a temp directory without config files
	originalWd, _ := os.Getwd()
	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	defer os.Chdir(originalWd)

	_, err := LoadFromEnv()
	if err == nil {
		t.Error("LoadFromEnv() expected error when no config found")
	}
}

func TestLoadFromEnv_UsesEnvPath(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "humboldt.toml")

	configContent := `
[service]
name = "EnvCAMPUSWERK"
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	original := os.Getenv("MCW_CONFIG")
	os.Setenv("MCW_CONFIG", configPath)
	defer func() {
		if original != "" {
			os.Setenv("MCW_CONFIG", original)
		} else {
			os.Unsetenv("MCW_CONFIG")
		}
	}()

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error = %v", err)
	}
	if cfg.Service.Name != "EnvCAMPUSWERK" {
		t.Errorf("Service.Name = %v, want EnvCAMPUSWERK", cfg.Service.Name)
	}
}
