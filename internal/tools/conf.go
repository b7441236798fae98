package tools

import (
	"fmt"
	"os"
	"strings"
)

// LineRule rewrites a single line of a generated file. Rules match on exact
// text or prefixes, so a change in the upstream tool's output silently stops
// them from matching.
type LineRule struct {
	Name    string
	Match   func(line string) bool
	Replace func(line string) string
}

func hasPrefix(prefix string) func(string) bool {
	return func(line string) bool { return strings.HasPrefix(line, prefix) }
}

func equals(s string) func(string) bool {
	return func(line string) bool { return line == s }
}

func constant(s string) func(string) string {
	return func(string) string { return s }
}

// ConfRules returns the rules that point a sphinx-quickstart conf.py at the
// themes checked out in docs/_themes and select theme.
func ConfRules(theme string) []LineRule {
	return []LineRule{
		{
			Name:    "sys.path",
			Match:   hasPrefix("#sys.path.append"),
			Replace: constant("sys.path.append(os.path.abspath('_themes'))"),
		},
		{
			Name:    "html_theme",
			Match:   hasPrefix("html_theme ="),
			Replace: constant("html_theme = " + quotePy(theme)),
		},
		{
			Name:    "html_theme_path",
			Match:   equals("#html_theme_path = []"),
			Replace: constant("html_theme_path = ['_themes']"),
		},
		{
			Name:    "pygments_style",
			Match:   hasPrefix("pygments_style ="),
			Replace: constant("#pygments_style = 'sphinx'"),
		},
	}
}

// ApplyRules rewrites each line with the first rule that matches it and
// reports how many lines changed.
func ApplyRules(content string, rules []LineRule) (string, int) {
	lines := strings.Split(content, "\n")
	changed := 0
	for i, line := range lines {
		for _, r := range rules {
			if r.Match(line) {
				lines[i] = r.Replace(line)
				changed++
				break
			}
		}
	}
	return strings.Join(lines, "\n"), changed
}

// RewriteFile applies rules to the file at path in place.
func RewriteFile(path string, rules []LineRule) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", path, err)
	}
	out, changed := ApplyRules(string(content), rules)
	if changed == 0 {
		return 0, nil
	}
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return changed, fmt.Errorf("writing %s: %w", path, err)
	}
	return changed, nil
}

// quotePy single-quotes a theme name for conf.py.
func quotePy(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
