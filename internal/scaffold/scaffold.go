package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/flaskext/make-flaskext/internal/project"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// namespaceStub declares the shared namespace package.
const namespaceStub = "__import__('pkg_resources').declare_namespace(__name__)\n"

// ErrCollision is matched by CollisionError.
var ErrCollision = errors.New("path exists and is not a directory")

// CollisionError reports a path that must be a directory but is a file.
type CollisionError struct {
	Path string
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, ErrCollision)
}

// Is lets errors.Is(err, ErrCollision) match.
func (e *CollisionError) Is(target error) bool {
	return target == ErrCollision
}

// DirState describes what currently sits at a prospective output folder.
type DirState int

const (
	DirMissing DirState = iota
	DirEmpty
	DirNotEmpty
	DirIsFile
)

// Inspect reports the state of path.
func Inspect(path string) (DirState, error) {
	info, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return DirMissing, nil
	}
	if err != nil {
		return DirMissing, fmt.Errorf("inspecting %s: %w", path, err)
	}
	if !info.IsDir() {
		return DirIsFile, nil
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return DirMissing, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(entries) > 0 {
		return DirNotEmpty, nil
	}
	return DirEmpty, nil
}

// Result holds the outcome of a generation.
type Result struct {
	OutputDir string
	Files     []string // relative to OutputDir, in write order
}

// Materializer creates the project tree for a Spec.
type Materializer struct {
	log       *log.Logger
	namespace string
}

// New returns a Materializer that places the module under the namespace
// package (e.g. "flaskext") and logs each step to logger.
func New(logger *log.Logger, namespace string) *Materializer {
	return &Materializer{log: logger, namespace: namespace}
}

// Generate creates the directories and writes every file.
func (m *Materializer) Generate(spec project.Spec) (*Result, error) {
	if err := m.MakeDirectories(spec); err != nil {
		return nil, err
	}
	files, err := m.WriteFiles(spec)
	return &Result{OutputDir: spec.OutputDir, Files: files}, err
}

// MakeDirectories creates the output folder and the namespace package
// directory inside it. It fails with a CollisionError, before creating
// anything, if any component of either path is an existing non-directory.
func (m *Materializer) MakeDirectories(spec project.Spec) error {
	pkgDir := filepath.Join(spec.OutputDir, m.namespace)
	if err := checkCollision(pkgDir); err != nil {
		return err
	}
	m.log.Info("mkdir", "path", pkgDir)
	if err := os.MkdirAll(pkgDir, dirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", pkgDir, err)
	}
	return nil
}

// checkCollision walks from dir up to its first existing ancestor and
// reports that ancestor if it is not a directory.
func checkCollision(dir string) error {
	for p := dir; ; {
		info, err := os.Lstat(p)
		if err == nil {
			if info.Mode()&os.ModeSymlink != 0 {
				info, err = os.Stat(p)
			}
			if err == nil && !info.IsDir() {
				return &CollisionError{Path: p}
			}
			return nil
		}
		parent := filepath.Dir(p)
		if parent == p {
			return nil
		}
		p = parent
	}
}

type outputFile struct {
	rel    string
	render func() (string, error)
}

// WriteFiles writes the namespace stub, the module, LICENSE, README and
// setup.py, in that order, overwriting existing files. It returns the
// relative paths written before any error.
func (m *Materializer) WriteFiles(spec project.Spec) ([]string, error) {
	module := spec.ModuleName(m.namespace)
	files := []outputFile{
		{
			rel:    filepath.Join(m.namespace, "__init__.py"),
			render: func() (string, error) { return namespaceStub, nil },
		},
		{
			rel: filepath.Join(m.namespace, spec.ShortName+".py"),
			render: func() (string, error) {
				return RenderHeader(HeaderData{Module: module, Year: spec.Year, Author: spec.Author})
			},
		},
		{
			rel: "LICENSE",
			render: func() (string, error) {
				return RenderLicense(LicenseData{Year: spec.Year, Author: spec.Author})
			},
		},
		{
			rel:    "README",
			render: func() (string, error) { return spec.Name + "\n\nDescription goes here\n", nil },
		},
		{
			rel: "setup.py",
			render: func() (string, error) {
				return RenderSetup(SetupData{
					Name:      spec.Name,
					URLName:   URLName(spec.Name),
					Author:    spec.Author,
					Host:      spec.Host,
					Version:   spec.Version,
					Namespace: m.namespace,
				})
			},
		},
	}

	var written []string
	for _, f := range files {
		content, err := f.render()
		if err != nil {
			return written, fmt.Errorf("rendering %s: %w", f.rel, err)
		}
		path := filepath.Join(spec.OutputDir, f.rel)
		m.log.Info("write", "path", path)
		if err := os.WriteFile(path, []byte(content), filePerm); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, f.rel)
	}
	return written, nil
}
