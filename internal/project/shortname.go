package project

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// droppedToken is removed from derived short names; every extension already
// lives under the flaskext namespace.
const droppedToken = "flask"

var lower = cases.Lower(language.Und)

func isSeparator(r rune) bool {
	switch r {
	case ',', '.', ';', '_', '-':
		return true
	}
	return unicode.IsSpace(r)
}

// ShortName guesses a package name from a human-readable extension name:
// "My-Flask Thing" becomes "my_thing". It returns "" when nothing but the
// word "flask" is left.
func ShortName(human string) string {
	var words []string
	for _, w := range strings.FieldsFunc(human, isSeparator) {
		w = lower.String(w)
		if w == droppedToken {
			continue
		}
		words = append(words, w)
	}
	return strings.Join(words, "_")
}
