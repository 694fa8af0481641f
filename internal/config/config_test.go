package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("TOURBOOK_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg := Load()
	if cfg.DBPath != "tourism.db" {
		t.Errorf("DBPath = %q, want tourism.db", cfg.DBPath)
	}
	if cfg.ImageDir != "app_images" {
		t.Errorf("ImageDir = %q, want app_images", cfg.ImageDir)
	}
	if cfg.Theme != "Light" {
		t.Errorf("Theme = %q, want Light", cfg.Theme)
	}
	if cfg.ImageMaxDimension != defaultImageMaxDimension {
		t.Errorf("ImageMaxDimension = %d, want %d", cfg.ImageMaxDimension, defaultImageMaxDimension)
	}
}

func TestLoadReadsConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tourbook.yaml")
	content := "db_path: /data/trips.db\ntheme: Dark\nimage_max_dimension: 1024\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("TOURBOOK_CONFIG", path)

	cfg := Load()
	if cfg.DBPath != "/data/trips.db" {
		t.Errorf("DBPath = %q, want value from file", cfg.DBPath)
	}
	if cfg.Theme != "Dark" {
		t.Errorf("Theme = %q, want Dark", cfg.Theme)
	}
	if cfg.ImageMaxDimension != 1024 {
		t.Errorf("ImageMaxDimension = %d, want 1024", cfg.ImageMaxDimension)
	}
	if cfg.ImageDir != "app_images" {
		t.Errorf("ImageDir = %q, keys absent from the file keep their defaults", cfg.ImageDir)
	}
}

func TestLoadEnvironmentBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tourbook.yaml")
	if err := os.WriteFile(path, []byte("theme: Dark\n"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("TOURBOOK_CONFIG", path)
	t.Setenv("TOURBOOK_THEME", "Solarized")
	t.Setenv("TOURBOOK_DB_PATH", "override.db")

	cfg := Load()
	if cfg.Theme != "Solarized" {
		t.Errorf("Theme = %q, environment must win over the file", cfg.Theme)
	}
	if cfg.DBPath != "override.db" {
		t.Errorf("DBPath = %q, want override.db", cfg.DBPath)
	}
}

func TestLoadIgnoresMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tourbook.yaml")
	if err := os.WriteFile(path, []byte(":\n\t- not yaml"), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv("TOURBOOK_CONFIG", path)

	cfg := Load()
	if cfg.DBPath != "tourism.db" {
		t.Errorf("DBPath = %q, malformed file must leave defaults intact", cfg.DBPath)
	}
}
