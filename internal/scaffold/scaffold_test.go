package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"
	"time"

	"github.com/flaskext/make-flaskext/internal/logging"
	"github.com/flaskext/make-flaskext/internal/project"
)

func newSpec(t *testing.T, outDir string) project.Spec {
	t.Helper()
	s, err := project.New(project.Answers{
		Name:      "Flask Uploads",
		ShortName: "uploads",
		Author:    "Jane",
		OutputDir: outDir,
		VCS:       "none",
	}, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("project.New() error: %v", err)
	}
	return s
}

func newMaterializer() *Materializer {
	return New(logging.Discard(), "flaskext")
}

func TestGenerate(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "flask-uploads")
	spec := newSpec(t, outDir)

	result, err := newMaterializer().Generate(spec)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	wantFiles := []string{
		filepath.Join("flaskext", "__init__.py"),
		filepath.Join("flaskext", "uploads.py"),
		"LICENSE",
		"README",
		"setup.py",
	}
	if !reflect.DeepEqual(result.Files, wantFiles) {
		t.Errorf("Files = %v, want %v", result.Files, wantFiles)
	}
	if result.OutputDir != spec.OutputDir {
		t.Errorf("OutputDir = %q, want %q", result.OutputDir, spec.OutputDir)
	}

	// Exactly these files exist on disk, no docs/.
	var onDisk []string
	err = filepath.WalkDir(outDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			rel, _ := filepath.Rel(outDir, path)
			onDisk = append(onDisk, rel)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	sort.Strings(onDisk)
	sorted := append([]string(nil), wantFiles...)
	sort.Strings(sorted)
	if !reflect.DeepEqual(onDisk, sorted) {
		t.Errorf("files on disk = %v, want %v", onDisk, sorted)
	}

	assertFileEquals(t, filepath.Join(outDir, "flaskext", "__init__.py"),
		"__import__('pkg_resources').declare_namespace(__name__)\n")
	assertFileEquals(t, filepath.Join(outDir, "README"), "Flask Uploads\n\nDescription goes here\n")

	module := readGenerated(t, outDir, filepath.Join("flaskext", "uploads.py"))
	assertContains(t, module, "    flaskext.uploads\n    ~~~~~~~~~~~~~~~~\n")
	assertContains(t, module, ":copyright: (c) 2026 by Jane.")

	license := readGenerated(t, outDir, "LICENSE")
	assertContains(t, license, "Copyright (c) 2026 by Jane.")

	setup := readGenerated(t, outDir, "setup.py")
	assertContains(t, setup, "http://packages.python.org/Flask%20Uploads")
	assertContains(t, setup, "name='Flask Uploads',")
	assertNotContains(t, setup, "development version")
}

func TestGenerate_OverwritesExistingFiles(t *testing.T) {
	outDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(outDir, "README"), []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := newMaterializer().Generate(newSpec(t, outDir)); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	assertFileEquals(t, filepath.Join(outDir, "README"), "Flask Uploads\n\nDescription goes here\n")
}

func TestMakeDirectories_OutputIsFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "taken")
	if err := os.WriteFile(outPath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := newMaterializer().Generate(newSpec(t, outPath))
	if !errors.Is(err, ErrCollision) {
		t.Fatalf("Generate() error = %v, want ErrCollision", err)
	}
	var ce *CollisionError
	if !errors.As(err, &ce) || ce.Path != outPath {
		t.Errorf("CollisionError path = %v, want %q", ce, outPath)
	}
	if result != nil {
		t.Errorf("expected nil result, got %+v", result)
	}

	// The file is untouched and nothing else appeared.
	assertFileEquals(t, outPath, "x")
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Errorf("expected only the original file in %s, got %d entries", dir, len(entries))
	}
}

func TestMakeDirectories_NamespaceIsFile(t *testing.T) {
	outDir := t.TempDir()
	nsPath := filepath.Join(outDir, "flaskext")
	if err := os.WriteFile(nsPath, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	err := newMaterializer().MakeDirectories(newSpec(t, outDir))
	var ce *CollisionError
	if !errors.As(err, &ce) {
		t.Fatalf("MakeDirectories() error = %v, want *CollisionError", err)
	}
	if ce.Path != nsPath {
		t.Errorf("collision path = %q, want %q", ce.Path, nsPath)
	}
}

func TestMakeDirectories_AncestorIsFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	err := newMaterializer().MakeDirectories(newSpec(t, filepath.Join(file, "nested", "out")))
	if !errors.Is(err, ErrCollision) {
		t.Fatalf("MakeDirectories() error = %v, want ErrCollision", err)
	}
}

func TestMakeDirectories_Idempotent(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "out")
	m := newMaterializer()
	spec := newSpec(t, outDir)
	for i := 0; i < 2; i++ {
		if err := m.MakeDirectories(spec); err != nil {
			t.Fatalf("MakeDirectories() call %d error: %v", i+1, err)
		}
	}
}

func TestWriteFiles_HaltsOnError(t *testing.T) {
	outDir := t.TempDir()
	m := newMaterializer()
	spec := newSpec(t, outDir)
	if err := m.MakeDirectories(spec); err != nil {
		t.Fatal(err)
	}
	// A directory where LICENSE should go makes the third write fail.
	if err := os.Mkdir(filepath.Join(outDir, "LICENSE"), 0755); err != nil {
		t.Fatal(err)
	}

	written, err := m.WriteFiles(spec)
	if err == nil {
		t.Fatal("expected error writing LICENSE over a directory")
	}
	if len(written) != 2 {
		t.Errorf("written = %v, want the two namespace files only", written)
	}
	if _, statErr := os.Stat(filepath.Join(outDir, "setup.py")); !os.IsNotExist(statErr) {
		t.Error("setup.py should not exist after a halted write")
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty")
	if err := os.Mkdir(empty, 0755); err != nil {
		t.Fatal(err)
	}
	full := filepath.Join(dir, "full")
	if err := os.MkdirAll(filepath.Join(full, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want DirState
	}{
		{filepath.Join(dir, "missing"), DirMissing},
		{empty, DirEmpty},
		{full, DirNotEmpty},
		{file, DirIsFile},
	}
	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			got, err := Inspect(tt.path)
			if err != nil {
				t.Fatalf("Inspect() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Inspect(%s) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func readGenerated(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

func assertFileEquals(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s = %q, want %q", path, string(data), want)
	}
}
