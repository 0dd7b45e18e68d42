package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Host != "0.0.0.0" {
		t.Errorf("expected default host %q, got %q", "0.0.0.0", cfg.Host)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.StaticDir != "static" {
		t.Errorf("expected default static_dir %q, got %q", "static", cfg.StaticDir)
	}
	if cfg.ImageBaseURL != "https://picsum.photos/800/800" {
		t.Errorf("unexpected default image_base_url %q", cfg.ImageBaseURL)
	}
	if cfg.Addr() != "0.0.0.0:8080" {
		t.Errorf("expected addr 0.0.0.0:8080, got %q", cfg.Addr())
	}
}

func TestDefaultConfigDoesNotShareExcludes(t *testing.T) {
	a := DefaultConfig()
	a.StaticExclude[0] = "changed"
	if DefaultStaticExcludes[0] == "changed" {
		t.Fatal("DefaultConfig must copy DefaultStaticExcludes")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.gallery.yml")

	original := DefaultConfig()
	original.Port = 9090
	original.Title = "Holiday photos"
	original.Intro = "Shot on **film**."
	original.StaticDir = "public"
	original.StaticExclude = []string{"**/*.psd"}
	original.AllowAllOrigins = true

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Port != original.Port {
		t.Errorf("port: got %d, want %d", loaded.Port, original.Port)
	}
	if loaded.Title != original.Title {
		t.Errorf("title: got %q, want %q", loaded.Title, original.Title)
	}
	if loaded.Intro != original.Intro {
		t.Errorf("intro: got %q, want %q", loaded.Intro, original.Intro)
	}
	if loaded.StaticDir != original.StaticDir {
		t.Errorf("static_dir: got %q, want %q", loaded.StaticDir, original.StaticDir)
	}
	if !loaded.AllowAllOrigins {
		t.Error("allow_all_origins: got false, want true")
	}
	if len(loaded.StaticExclude) != 1 || loaded.StaticExclude[0] != "**/*.psd" {
		t.Errorf("static_exclude: got %v, want [**/*.psd]", loaded.StaticExclude)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Port)
	}
}

func TestLoadPartialFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("title: Partial\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Title != "Partial" {
		t.Errorf("title: got %q, want %q", cfg.Title, "Partial")
	}
	if cfg.Port != 8080 || cfg.StaticDir != "static" {
		t.Errorf("unset keys should keep defaults, got port=%d static_dir=%q", cfg.Port, cfg.StaticDir)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yml")
	if err := os.WriteFile(path, []byte("port: [unterminated\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("GALLERY_PORT", "9191")
	t.Setenv("GALLERY_IMAGE_BASE_URL", "https://example.com/img")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Port != 9191 {
		t.Errorf("env override failed: got port %d, want 9191", loaded.Port)
	}
	if loaded.ImageBaseURL != "https://example.com/img" {
		t.Errorf("env override failed: got image_base_url %q", loaded.ImageBaseURL)
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative port", func(c *Config) { c.Port = -1 }},
		{"port too large", func(c *Config) { c.Port = 70000 }},
		{"empty title", func(c *Config) { c.Title = "  " }},
		{"empty static dir", func(c *Config) { c.StaticDir = "" }},
		{"relative image base", func(c *Config) { c.ImageBaseURL = "images" }},
		{"non-http image base", func(c *Config) { c.ImageBaseURL = "ftp://example.com/img" }},
		{"image base with query", func(c *Config) { c.ImageBaseURL = "https://example.com/img?size=1" }},
		{"bad exclude glob", func(c *Config) { c.StaticExclude = []string{"[unclosed"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("expected validation error for %s", tt.name)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.psd", []string{"**/*.psd"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
