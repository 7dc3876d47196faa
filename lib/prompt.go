package lib

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter asks a question and returns the raw answer.
type Prompter interface {
	Prompt(text string) (string, error)
}

// LinePrompter prompts on w and reads one line per answer from r.
type LinePrompter struct {
	scanner *bufio.Scanner
	w       io.Writer
}

func NewLinePrompter(r io.Reader, w io.Writer) *LinePrompter {
	return &LinePrompter{scanner: bufio.NewScanner(r), w: w}
}

// Prompt returns io.EOF once the input is exhausted.
func (lp *LinePrompter) Prompt(text string) (string, error) {
	if _, err := fmt.Fprintf(lp.w, "%s: ", text); err != nil {
		return "", err
	}

	if !lp.scanner.Scan() {
		if err := lp.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimRight(lp.scanner.Text(), "\r"), nil
}

// Ask prompts until parse accepts the answer. retry, when set, is told about
// every rejected answer. Errors from the prompter end the loop.
func Ask[T any](p Prompter, text string, parse func(string) (T, error), retry func(error)) (T, error) {
	for {
		raw, err := p.Prompt(text)
		if err != nil {
			var zero T
			return zero, err
		}

		v, err := parse(raw)
		if err == nil {
			return v, nil
		}

		if retry != nil {
			retry(err)
		}
	}
}
