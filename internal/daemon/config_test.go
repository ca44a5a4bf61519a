package daemon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	t.Setenv("ANALYZEME_HOME", t.TempDir())
	cfg := DefaultConfig()

	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want %q", cfg.API.Host, "127.0.0.1")
	}
	if cfg.API.Port != 8422 {
		t.Errorf("API.Port = %d, want %d", cfg.API.Port, 8422)
	}
	if cfg.Telemetry.Prometheus {
		t.Error("Prometheus should default to off")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoadConfig_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("ANALYZEME_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.API.Port != 8422 {
		t.Errorf("API.Port = %d, want default 8422", cfg.API.Port)
	}
}

func TestLoadConfig_FileOverridesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ANALYZEME_HOME", home)

	content := `
[api]
port = 9000

[telemetry]
prometheus = true
`
	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.API.Port != 9000 {
		t.Errorf("API.Port = %d, want 9000", cfg.API.Port)
	}
	if !cfg.Telemetry.Prometheus {
		t.Error("Prometheus override not applied")
	}
	// Untouched fields keep defaults
	if cfg.API.Host != "127.0.0.1" {
		t.Errorf("API.Host = %q, want default", cfg.API.Host)
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("ANALYZEME_HOME", home)

	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte("not [valid toml"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(); err == nil {
		t.Error("expected parse error for malformed config")
	}
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	t.Setenv("ANALYZEME_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.API.Port = 9999
	cfg.Logging.Level = "debug"

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.API.Port != 9999 || loaded.Logging.Level != "debug" {
		t.Errorf("round trip lost fields: %+v", loaded)
	}
}
