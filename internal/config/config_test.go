package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFile_Missing(t *testing.T) {
	s, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if s.DocsTheme != DefaultDocsTheme {
		t.Errorf("DocsTheme = %q, want %q", s.DocsTheme, DefaultDocsTheme)
	}
	if s.Version != DefaultVersion {
		t.Errorf("Version = %q, want %q", s.Version, DefaultVersion)
	}
	if s.ThemeRepo != DefaultThemeRepo {
		t.Errorf("ThemeRepo = %q, want %q", s.ThemeRepo, DefaultThemeRepo)
	}
	if s.Author != "" {
		t.Errorf("Author = %q, want empty", s.Author)
	}
}

func TestLoadFile_Values(t *testing.T) {
	path := writeConfig(t, "author: Jane Doe\ndocs_theme: flask\nversion: \"0.2\"\n")

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if s.Author != "Jane Doe" {
		t.Errorf("Author = %q, want %q", s.Author, "Jane Doe")
	}
	if s.DocsTheme != "flask" {
		t.Errorf("DocsTheme = %q, want %q", s.DocsTheme, "flask")
	}
	if s.Version != "0.2" {
		t.Errorf("Version = %q, want %q", s.Version, "0.2")
	}
	if s.ThemeRepo != DefaultThemeRepo {
		t.Errorf("ThemeRepo = %q, want default", s.ThemeRepo)
	}
}

func TestLoadFile_EnvOverride(t *testing.T) {
	path := writeConfig(t, "author: From File\n")
	t.Setenv("FLASKEXT_AUTHOR", "From Env")

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if s.Author != "From Env" {
		t.Errorf("Author = %q, want %q", s.Author, "From Env")
	}
}

func TestLoadFile_UnknownKey(t *testing.T) {
	path := writeConfig(t, "auther: typo\n")

	_, err := LoadFile(path)
	if err == nil {
		t.Fatal("expected error for unknown key, got nil")
	}
	if !strings.Contains(err.Error(), "invalid config file") {
		t.Errorf("error = %q, want it to mention invalid config file", err)
	}
}

func TestLoadFile_BadTheme(t *testing.T) {
	path := writeConfig(t, "docs_theme: \"not a theme\"\n")

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for theme with spaces, got nil")
	}
}

func TestLoadFile_BadVersion(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     string
	}{
		{"not semver", "version: not-a-version\n", ""},
		{"unquoted number", "version: 1.10\n", ""},
		{"from env", "", "banana"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.env != "" {
				t.Setenv("FLASKEXT_VERSION", tt.env)
			}
			path := writeConfig(t, tt.content)

			_, err := LoadFile(path)
			if err == nil {
				t.Fatal("expected error for bad version, got nil")
			}
			if !strings.Contains(err.Error(), "invalid config file") {
				t.Errorf("error = %q, want it to mention invalid config file", err)
			}
		})
	}
}

func TestLoadFile_QuotedVersion(t *testing.T) {
	path := writeConfig(t, "version: \"1.10\"\n")

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if s.Version != "1.10" {
		t.Errorf("Version = %q, want %q", s.Version, "1.10")
	}
}

func TestLoadFile_NotYAML(t *testing.T) {
	path := writeConfig(t, "author: [unterminated\n")

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for malformed YAML, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]any
		valid    bool
	}{
		{"empty", map[string]any{}, true},
		{"all keys", map[string]any{"author": "a", "docs_theme": "flask_small", "version": "1.0", "theme_repo": "x"}, true},
		{"numeric version", map[string]any{"version": 1.1}, false},
		{"author not string", map[string]any{"author": 42}, false},
		{"empty theme repo", map[string]any{"theme_repo": ""}, false},
		{"extra key", map[string]any{"colour": "blue"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate(tt.settings)
			if err != nil {
				t.Fatalf("Validate() error: %v", err)
			}
			if result.Valid != tt.valid {
				t.Errorf("Valid = %v, want %v (issues: %+v)", result.Valid, tt.valid, result.Issues)
			}
			if !tt.valid && len(result.Issues) == 0 {
				t.Error("expected at least one issue")
			}
		})
	}
}

func TestFilePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	want := filepath.Join(home, ".flaskext", "config.yaml")
	if got := FilePath(); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}
