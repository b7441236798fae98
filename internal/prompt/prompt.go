package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoInput is returned when the input stream ends before a valid answer.
var ErrNoInput = errors.New("no more input")

// Prompter asks questions on w and reads answers line by line from r.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
}

// New creates a Prompter. r is typically os.Stdin and w os.Stdout.
func New(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{reader: bufio.NewReader(r), w: w}
}

// Text asks for a free-form answer. An empty answer returns def when def is
// non-empty; otherwise the question repeats until something is typed.
func (p *Prompter) Text(label, def string) (string, error) {
	return p.TextFunc(label, def, NonEmpty)
}

// TextFunc is Text with an extra validator applied to the answer (or to the
// default when the answer is empty).
func (p *Prompter) TextFunc(label, def string, validate Validator[string]) (string, error) {
	for {
		line, err := p.ask(label, def)
		if err != nil {
			return "", err
		}
		if line == "" {
			if def == "" {
				continue
			}
			line = def
		}
		v, err := validate(line)
		if err != nil {
			p.reject(err)
			continue
		}
		return v, nil
	}
}

// Bool asks a yes/no question. An empty answer returns def.
func (p *Prompter) Bool(label string, def bool) (bool, error) {
	hint := "N"
	if def {
		hint = "Y"
	}
	for {
		line, err := p.ask(label+"?", hint)
		if err != nil {
			return false, err
		}
		if line == "" {
			return def, nil
		}
		v, err := ParseBool(line)
		if err != nil {
			p.reject(err)
			continue
		}
		return v, nil
	}
}

// Choice asks the user to pick from choices; choices[0] is the default and
// is returned verbatim on an empty answer. A typed "none" returns "".
func (p *Prompter) Choice(label string, choices []string) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("prompt %q has no choices", label)
	}
	question := fmt.Sprintf("%s? - (%s)", label, strings.Join(choices, ", "))
	for {
		line, err := p.ask(question, choices[0])
		if err != nil {
			return "", err
		}
		if line == "" {
			return choices[0], nil
		}
		v, err := MatchChoice(line, choices)
		if err != nil {
			p.reject(err)
			continue
		}
		return v, nil
	}
}

// ask prints the question and returns the trimmed answer line.
func (p *Prompter) ask(label, def string) (string, error) {
	q := label
	if def != "" {
		q += " [" + def + "]"
	}
	if strings.HasSuffix(label, "?") {
		q += " "
	} else {
		q += ": "
	}
	fmt.Fprint(p.w, q)

	line, err := p.reader.ReadString('\n')
	if err != nil {
		// A final unterminated line still counts as an answer.
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.w)
			return "", ErrNoInput
		}
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) reject(err error) {
	msg := strings.TrimPrefix(err.Error(), ErrInvalidInput.Error()+": ")
	fmt.Fprintf(p.w, "  %s\n", msg)
}
