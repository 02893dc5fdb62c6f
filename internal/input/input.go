// Package input provides line-oriented readers for the example front ends,
// abstracting over a direct buffered reader and a readline-backed one
// behind a single interface so callers can pick at runtime.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader reads one line of input at a time, skipping blank lines
// unless AllowBlank has been called.
type LineReader interface {
	ReadLine() (string, error)
	AllowBlank(allow bool)
	Close() error
}

// DirectLineReader implements LineReader over any io.Reader without
// readline editing or history. It does not sanitize control or escape
// sequences out of its input.
//
// Use NewDirectReader to construct one.
type DirectLineReader struct {
	r             *bufio.Reader
	blanksAllowed bool
}

// InteractiveLineReader implements LineReader using a readline-backed
// terminal session: line editing, history, and a visible prompt. It
// should generally only be used when directly attached to a TTY.
//
// Use NewInteractiveReader to construct one.
type InteractiveLineReader struct {
	rl            *readline.Instance
	blanksAllowed bool
	prompt        string
}

// NewDirectReader wraps r in a buffered DirectLineReader.
func NewDirectReader(r io.Reader) *DirectLineReader {
	return &DirectLineReader{r: bufio.NewReader(r)}
}

// NewInteractiveReader starts a readline session with the given prompt.
func NewInteractiveReader(prompt string) (*InteractiveLineReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: prompt})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &InteractiveLineReader{rl: rl, prompt: prompt}, nil
}

func (dcr *DirectLineReader) Close() error { return nil }

func (icr *InteractiveLineReader) Close() error { return icr.rl.Close() }

// ReadLine reads the next non-blank line (unless blanks are allowed).
// At end of input it returns "", io.EOF.
func (dcr *DirectLineReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = dcr.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && dcr.blanksAllowed {
			return line, nil
		}
	}

	return line, nil
}

// ReadLine reads the next non-blank line from the readline session (unless
// blanks are allowed). At end of input it returns "", io.EOF.
func (icr *InteractiveLineReader) ReadLine() (string, error) {
	var line string
	var err error

	for line == "" {
		line, err = icr.rl.Readline()
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		line = strings.TrimSpace(line)

		if line == "" && icr.blanksAllowed {
			return line, nil
		}
	}

	return line, nil
}

func (dcr *DirectLineReader) AllowBlank(allow bool) { dcr.blanksAllowed = allow }
func (icr *InteractiveLineReader) AllowBlank(allow bool) { icr.blanksAllowed = allow }

// SetPrompt updates the prompt text.
func (icr *InteractiveLineReader) SetPrompt(p string) {
	icr.prompt = p
	icr.rl.SetPrompt(p)
}

// GetPrompt returns the current prompt text.
func (icr *InteractiveLineReader) GetPrompt() string {
	return icr.prompt
}
