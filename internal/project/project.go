package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
)

// VCS identifies the version-control system initialised in the output folder.
type VCS string

// Supported version-control systems.
const (
	VCSNone      VCS = "none"
	VCSGit       VCS = "git"
	VCSMercurial VCS = "hg"
)

// Host identifies the hosting provider whose URL convention is used for the
// development-version link.
type Host string

// Known hosts. HostNone means no development-version link is generated.
const (
	HostNone      Host = ""
	HostGitHub    Host = "github"
	HostGitorious Host = "gitorious"
	HostBitbucket Host = "bitbucket"
)

// VCSChoices is the prompt order for the VCS question; the first is the default.
var VCSChoices = []string{string(VCSNone), string(VCSGit), string(VCSMercurial)}

// HostChoices returns the hosting providers offered for a VCS, "none" first.
// It returns nil when the VCS has no hosting question.
func HostChoices(v VCS) []string {
	switch v {
	case VCSGit:
		return []string{"none", string(HostGitHub), string(HostGitorious)}
	case VCSMercurial:
		return []string{"none", string(HostBitbucket)}
	}
	return nil
}

var shortNamePattern = regexp.MustCompile(`^[a-z0-9]+(_[a-z0-9]+)*$`)

// ErrInvalidShortName is returned for short names that are not lowercase,
// underscore-separated identifiers.
var ErrInvalidShortName = errors.New("invalid short name")

// ValidateShortName checks that s can be used as the module file name.
func ValidateShortName(s string) (string, error) {
	if !shortNamePattern.MatchString(s) {
		return "", fmt.Errorf("%w %q: use lowercase letters, digits and single underscores", ErrInvalidShortName, s)
	}
	return s, nil
}

// Answers are the raw wizard answers a Spec is built from.
type Answers struct {
	Name      string
	ShortName string
	Author    string
	OutputDir string
	VCS       string
	Host      string
	Docs      bool
	DocsTheme string
	Version   string
	ThemeRepo string
}

// Spec describes the extension to generate. It is built once by New and
// passed by value afterwards.
type Spec struct {
	Name      string // human readable, e.g. "Flask-Uploads"
	ShortName string // e.g. "uploads"
	Author    string
	OutputDir string // absolute
	VCS       VCS
	Host      Host // HostNone whenever VCS is VCSNone
	Docs      bool
	DocsTheme string // empty unless Docs
	Version   string
	ThemeRepo string
	Year      int
}

// New validates answers and builds a Spec. The copyright year is taken from
// now in UTC.
func New(a Answers, now time.Time) (Spec, error) {
	if strings.TrimSpace(a.Name) == "" {
		return Spec{}, errors.New("extension name is required")
	}
	short, err := ValidateShortName(a.ShortName)
	if err != nil {
		return Spec{}, err
	}
	if strings.TrimSpace(a.Author) == "" {
		return Spec{}, errors.New("author is required")
	}
	if a.OutputDir == "" {
		return Spec{}, errors.New("output folder is required")
	}
	outDir, err := filepath.Abs(a.OutputDir)
	if err != nil {
		return Spec{}, fmt.Errorf("resolving output folder %s: %w", a.OutputDir, err)
	}

	vcs, err := parseVCS(a.VCS)
	if err != nil {
		return Spec{}, err
	}
	host := HostNone
	if vcs != VCSNone {
		host = parseHost(vcs, a.Host)
	}

	version := a.Version
	if version == "" {
		version = "0.1"
	}
	if _, err := semver.NewVersion(version); err != nil {
		return Spec{}, fmt.Errorf("invalid version %q: %w", version, err)
	}

	s := Spec{
		Name:      strings.TrimSpace(a.Name),
		ShortName: short,
		Author:    strings.TrimSpace(a.Author),
		OutputDir: outDir,
		VCS:       vcs,
		Host:      host,
		Docs:      a.Docs,
		Version:   version,
		ThemeRepo: a.ThemeRepo,
		Year:      now.UTC().Year(),
	}
	if s.Docs {
		s.DocsTheme = a.DocsTheme
		if s.DocsTheme == "" {
			return Spec{}, errors.New("documentation theme is required when documentation is enabled")
		}
	}
	return s, nil
}

func parseVCS(s string) (VCS, error) {
	switch VCS(strings.ToLower(s)) {
	case "", VCSNone:
		return VCSNone, nil
	case VCSGit:
		return VCSGit, nil
	case VCSMercurial:
		return VCSMercurial, nil
	}
	return "", fmt.Errorf("unknown VCS %q: choose one of %s", s, strings.Join(VCSChoices, ", "))
}

// parseHost keeps only hosts offered for the VCS; anything else means no host.
func parseHost(v VCS, s string) Host {
	s = strings.ToLower(s)
	for _, c := range HostChoices(v) {
		if c == s && c != "none" {
			return Host(c)
		}
	}
	return HostNone
}

// ModuleName is the dotted Python module path, e.g. "flaskext.uploads".
func (s Spec) ModuleName(namespace string) string {
	return namespace + "." + s.ShortName
}
