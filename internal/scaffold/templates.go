package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"net/url"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/flaskext/make-flaskext/internal/project"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	headerTemplate  = "header.py.tmpl"
	licenseTemplate = "LICENSE.tmpl"
	setupTemplate   = "setup.py.tmpl"
)

var templates = template.Must(template.New("scaffold").Funcs(template.FuncMap{
	"underline": underline,
	"pyrepr":    pyRepr,
}).ParseFS(templateFS, "templates/*.tmpl"))

// devURLTemplates maps a host to its development-version download link.
// USERNAME, PROJECT and REPOSITORY are left for the author to fill in; %s is
// the url-safe extension name.
var devURLTemplates = map[project.Host]string{
	project.HostGitHub:    "http://github.com/USERNAME/REPOSITORY/zipball/master#egg=%s-dev",
	project.HostGitorious: "http://gitorious.org/PROJECT/REPOSITORY/archive-tarball/master#egg=%s-dev",
	project.HostBitbucket: "http://bitbucket.org/USERNAME/REPOSITORY/get/tip.gz#egg=%s-dev",
}

// HeaderData feeds the module file banner.
type HeaderData struct {
	Module string // e.g. "flaskext.uploads"
	Year   int
	Author string
}

// LicenseData feeds the BSD license.
type LicenseData struct {
	Year   int
	Author string
}

// SetupData feeds setup.py.
type SetupData struct {
	Name      string
	URLName   string
	Author    string
	Host      project.Host
	Version   string
	Namespace string
}

// RenderHeader renders the docstring banner placed at the top of the
// generated module.
func RenderHeader(d HeaderData) (string, error) {
	return render(headerTemplate, d)
}

// RenderLicense renders the 3-clause BSD license. Only the copyright line
// depends on d.
func RenderLicense(d LicenseData) (string, error) {
	return render(licenseTemplate, d)
}

// RenderSetup renders setup.py. The development-version link is emitted only
// for hosts in devURLTemplates.
func RenderSetup(d SetupData) (string, error) {
	data := struct {
		SetupData
		DevURL string
	}{SetupData: d}
	if tmpl, ok := devURLTemplates[d.Host]; ok {
		data.DevURL = fmt.Sprintf(tmpl, d.URLName)
	}
	return render(setupTemplate, data)
}

// URLName escapes name for use as a single URL path segment.
func URLName(name string) string {
	return url.PathEscape(name)
}

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", name, err)
	}
	return strings.TrimRight(buf.String(), "\n") + "\n", nil
}

// underline repeats char once per rune of s.
func underline(char, s string) string {
	return strings.Repeat(char, utf8.RuneCountInString(s))
}

// pyRepr quotes s as a Python string literal, preferring single quotes the
// way repr() does.
func pyRepr(s string) string {
	quote := byte('\'')
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		quote = '"'
	}
	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(quote):
			b.WriteByte('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}
