package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, path, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if path != "" {
		t.Errorf("Expected defaults (empty path), got %q", path)
	}
	if cfg.API.BaseURL != "http://localhost:5000/api" {
		t.Errorf("Unexpected default base URL %q", cfg.API.BaseURL)
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "farm.toml")
	content := `
[api]
base_url = "http://backend.farm:9000/api"

[display]
color_scheme = "amber"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, gotPath, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if gotPath != path {
		t.Errorf("Expected %q, got %q", path, gotPath)
	}
	if cfg.API.BaseURL != "http://backend.farm:9000/api" {
		t.Errorf("Unexpected base URL %q", cfg.API.BaseURL)
	}
	if cfg.Display.ColorScheme != ColorSchemeAmber {
		t.Errorf("Unexpected scheme %q", cfg.Display.ColorScheme)
	}
	// Untouched sections keep defaults
	if cfg.Farm.Currency != "Rs." {
		t.Errorf("Expected default currency, got %q", cfg.Farm.Currency)
	}
}

func TestLoad_ExplicitPathMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Expected error for missing explicit path")
	}
}

func TestLoad_EnvOverridesBaseURL(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())
	t.Setenv(EnvBaseURL, "http://override:8080/api")

	cfg, _, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.API.BaseURL != "http://override:8080/api" {
		t.Errorf("Env override ignored, got %q", cfg.API.BaseURL)
	}
}

func TestLoad_RejectsInvalidScheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "farm.toml")
	os.WriteFile(path, []byte("[display]\ncolor_scheme = \"magenta\"\n"), 0o644)

	if _, _, err := Load(path); err == nil {
		t.Fatal("Expected validation error for unknown color scheme")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "farm.toml")
	cfg := Default()
	cfg.Farm.Name = "Hilltop Poultry"

	if err := Save(cfg, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Farm.Name != "Hilltop Poultry" {
		t.Errorf("Round trip lost farm name, got %q", loaded.Farm.Name)
	}
}
