package tools

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/flaskext/make-flaskext/internal/project"
)

const (
	docsDir      = "docs"
	themesDir    = "docs/_themes"
	confFile     = "conf.py"
	quickstart   = "sphinx-quickstart"
	themesNotice = "Don't forget to put the sphinx themes into docs/_themes!"
)

// Report collects the non-fatal problems from external tools.
type Report struct {
	Warnings []string
}

func (r *Report) warn(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Invoker initialises documentation and version control for a generated
// project.
type Invoker struct {
	runner Runner
	log    *log.Logger
	out    io.Writer
}

// NewInvoker returns an Invoker that runs commands through runner and
// prints user-facing notices to out.
func NewInvoker(runner Runner, logger *log.Logger, out io.Writer) *Invoker {
	return &Invoker{runner: runner, log: logger, out: out}
}

// run executes one command and records a failure as a warning.
func (inv *Invoker) run(ctx context.Context, report *Report, dir, name string, args ...string) bool {
	inv.log.Info("run", "cmd", strings.Join(append([]string{name}, args...), " "), "dir", dir)
	if err := inv.runner.Run(ctx, dir, name, args...); err != nil {
		report.warn("%v", err)
		return false
	}
	return true
}

// InitDocumentation runs sphinx-quickstart inside docs/ and adapts the
// generated conf.py to the chosen theme. It does nothing when docs are off.
// Only failing to create docs/ is returned as an error.
func (inv *Invoker) InitDocumentation(ctx context.Context, spec project.Spec, report *Report) error {
	if !spec.Docs {
		return nil
	}
	dir := filepath.Join(spec.OutputDir, docsDir)
	inv.log.Info("mkdir", "path", dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}

	inv.run(ctx, report, dir, quickstart)

	conf := filepath.Join(dir, confFile)
	changed, err := RewriteFile(conf, ConfRules(spec.DocsTheme))
	switch {
	case err != nil:
		report.warn("could not adapt %s: %v", conf, err)
	case changed == 0:
		report.warn("%s has none of the expected theme settings; set html_theme = '%s' by hand", conf, spec.DocsTheme)
	default:
		inv.log.Debug("rewrote conf.py", "path", conf, "lines", changed)
	}

	if spec.VCS != project.VCSGit {
		fmt.Fprintln(inv.out, themesNotice)
	}
	return nil
}

// InitVersionControl creates the repository for the chosen VCS. With git and
// docs enabled, the theme repository is added as a submodule at docs/_themes.
func (inv *Invoker) InitVersionControl(ctx context.Context, spec project.Spec, report *Report) {
	switch spec.VCS {
	case project.VCSMercurial:
		inv.run(ctx, report, spec.OutputDir, "hg", "init")
	case project.VCSGit:
		if !inv.run(ctx, report, spec.OutputDir, "git", "init") {
			return
		}
		if spec.Docs {
			inv.run(ctx, report, spec.OutputDir, "git", "submodule", "add", spec.ThemeRepo, themesDir)
		}
	}
}
