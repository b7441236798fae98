package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/flaskext/make-flaskext/internal/branding"
	"github.com/flaskext/make-flaskext/internal/config"
	"github.com/flaskext/make-flaskext/internal/project"
	"github.com/flaskext/make-flaskext/internal/prompt"
	"github.com/flaskext/make-flaskext/internal/scaffold"
	"github.com/flaskext/make-flaskext/internal/tools"
)

// Wizard collects the extension metadata and generates the project.
type Wizard struct {
	Prompter *prompt.Prompter
	Out      io.Writer
	Settings *config.Settings
	Identity Identity
	Runner   tools.Runner
	Log      *log.Logger
	Now      func() time.Time
}

// Summary is what a completed run produced.
type Summary struct {
	Spec     project.Spec
	Files    []string
	Warnings []string
}

// Run asks every question, then writes the files and runs the external
// tools. outputArg is the optional positional output folder.
func (w *Wizard) Run(ctx context.Context, outputArg string) (*Summary, error) {
	fmt.Fprintln(w.Out, titleStyle.Render("Welcome to the "+branding.DisplayName()))
	fmt.Fprintln(w.Out)

	answers, err := w.collect(outputArg)
	if err != nil {
		return nil, err
	}
	spec, err := project.New(answers, w.Now())
	if err != nil {
		return nil, err
	}

	result, err := scaffold.New(w.Log, branding.Namespace()).Generate(spec)
	if err != nil {
		return nil, err
	}

	report := &tools.Report{}
	inv := tools.NewInvoker(w.Runner, w.Log, w.Out)
	if err := inv.InitDocumentation(ctx, spec, report); err != nil {
		return nil, err
	}
	inv.InitVersionControl(ctx, spec, report)

	summary := &Summary{Spec: spec, Files: result.Files, Warnings: report.Warnings}
	w.printSummary(summary)
	return summary, nil
}

func (w *Wizard) collect(outputArg string) (project.Answers, error) {
	p := w.Prompter
	var a project.Answers
	var err error

	for {
		if a.Name, err = p.Text("Extension Name (human readable)", ""); err != nil {
			return a, err
		}
		if strings.Contains(strings.ToLower(a.Name), "flask") {
			break
		}
		ok, err := p.Bool(w.warn(`Warning: It's recommended that the extension name contains the word "Flask". Continue`), false)
		if err != nil {
			return a, err
		}
		if ok {
			break
		}
	}

	shortLabel := fmt.Sprintf("Shortname (without %s.)", branding.Namespace())
	if a.ShortName, err = p.TextFunc(shortLabel, project.ShortName(a.Name), project.ValidateShortName); err != nil {
		return a, err
	}

	author := w.Settings.Author
	if author == "" {
		author = w.Identity.Username()
	}
	if a.Author, err = p.Text("Author", author); err != nil {
		return a, err
	}

	if a.Docs, err = p.Bool("Create sphinx documentation", true); err != nil {
		return a, err
	}
	if a.Docs {
		if a.DocsTheme, err = p.Text("Sphinx theme to use", w.Settings.DocsTheme); err != nil {
			return a, err
		}
	}

	if a.VCS, err = p.Choice("Which VCS to use", project.VCSChoices); err != nil {
		return a, err
	}
	switch project.VCS(a.VCS) {
	case project.VCSGit:
		a.Host, err = p.Choice("Which git host to use", project.HostChoices(project.VCSGit))
	case project.VCSMercurial:
		a.Host, err = p.Choice("Which Mercurial host to use", project.HostChoices(project.VCSMercurial))
	}
	if err != nil {
		return a, err
	}

	if a.OutputDir, err = w.askOutputDir(outputArg, a.ShortName); err != nil {
		return a, err
	}
	a.Version = w.Settings.Version
	a.ThemeRepo = w.Settings.ThemeRepo
	return a, nil
}

// askOutputDir repeats until the folder is missing, empty, or a non-empty
// directory the user agreed to write into.
func (w *Wizard) askOutputDir(outputArg, shortName string) (string, error) {
	def := outputArg
	if def == "" {
		def = "flask-" + shortName
	}
	for {
		folder, err := w.Prompter.Text("Output folder", def)
		if err != nil {
			return "", err
		}
		state, err := scaffold.Inspect(folder)
		if err != nil {
			return "", err
		}
		switch state {
		case scaffold.DirIsFile:
			fmt.Fprintln(w.Out, errorStyle.Render("Error: output folder is a file"))
			continue
		case scaffold.DirNotEmpty:
			ok, err := w.Prompter.Bool(w.warn("Warning: output folder is not empty. Continue"), false)
			if err != nil {
				return "", err
			}
			if !ok {
				continue
			}
		}
		return filepath.Abs(folder)
	}
}

func (w *Wizard) warn(s string) string {
	return warnStyle.Render(s)
}

func (w *Wizard) printSummary(s *Summary) {
	fmt.Fprintln(w.Out)
	fmt.Fprintln(w.Out, doneStyle.Render(fmt.Sprintf("Created %s at %s%c", s.Spec.Name, s.Spec.OutputDir, filepath.Separator)))
	for _, f := range s.Files {
		fmt.Fprintf(w.Out, "  %s\n", filepath.ToSlash(f))
	}
	if len(s.Warnings) > 0 {
		fmt.Fprintln(w.Out, warnStyle.Render("\nWarnings:"))
		for _, msg := range s.Warnings {
			fmt.Fprintf(w.Out, "  - %s\n", msg)
		}
	}
}

// isAbort reports whether err means the user ran out of input.
func isAbort(err error) bool {
	return errors.Is(err, prompt.ErrNoInput)
}
