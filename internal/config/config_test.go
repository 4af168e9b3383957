package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.ReadingSpeed != 200 {
		t.Errorf("ReadingSpeed = %d, want 200", cfg.ReadingSpeed)
	}
	if cfg.FeaturedPostsLimit != 3 || cfg.FeaturedProjectsLimit != 3 {
		t.Errorf("featured limits = %d/%d, want 3/3",
			cfg.FeaturedPostsLimit, cfg.FeaturedProjectsLimit)
	}
	if cfg.ContentDir != "content" {
		t.Errorf("ContentDir = %q, want content", cfg.ContentDir)
	}
	if cfg.PostURLPrefix != "/experiments" || cfg.ProjectURLPrefix != "/experience" {
		t.Errorf("url prefixes = %q/%q", cfg.PostURLPrefix, cfg.ProjectURLPrefix)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.toml")
	data := "content_dir = \"/srv/content\"\nreading_speed = 250\naddr = \"0.0.0.0:8080\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ContentDir != "/srv/content" {
		t.Errorf("ContentDir = %q", cfg.ContentDir)
	}
	if cfg.ReadingSpeed != 250 {
		t.Errorf("ReadingSpeed = %d", cfg.ReadingSpeed)
	}
	if cfg.Addr != "0.0.0.0:8080" {
		t.Errorf("Addr = %q", cfg.Addr)
	}
	// Keys the file omits keep their defaults.
	if cfg.Author != Default().Author {
		t.Errorf("Author = %q", cfg.Author)
	}
}

func TestLoadMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.toml")
	if err := os.WriteFile(path, []byte("content_dir = [broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("want decode error for malformed TOML")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.toml")
	if err := os.WriteFile(path, []byte("author = \"File Author\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GARDEN_AUTHOR", "Env Author")
	t.Setenv("GARDEN_READING_SPEED", "300")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Author != "Env Author" {
		t.Errorf("Author = %q, want env value", cfg.Author)
	}
	if cfg.ReadingSpeed != 300 {
		t.Errorf("ReadingSpeed = %d, want 300", cfg.ReadingSpeed)
	}
}

func TestLoadRejectsNonPositiveReadingSpeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garden.toml")
	if err := os.WriteFile(path, []byte("reading_speed = 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("want validation error for reading_speed = 0")
	}
}

func TestURLHelpers(t *testing.T) {
	cfg := Default()
	if got := cfg.PostURL("my-post"); got != "/experiments/my-post" {
		t.Errorf("PostURL = %q", got)
	}
	if got := cfg.ProjectURL("my-project"); got != "/experience/my-project" {
		t.Errorf("ProjectURL = %q", got)
	}
}
