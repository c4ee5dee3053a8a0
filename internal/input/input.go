// Package input provides the command line sources a session reads from:
// a direct reader over any stream and an interactive terminal reader with
// line editing and history.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// Reader is a source of raw command lines. ReadLine blocks until a line with
// non-space content is available and returns io.EOF when the source is
// exhausted.
type Reader interface {
	ReadLine() (string, error)
	Close() error
}

// DirectReader reads command lines straight off an io.Reader with no
// terminal handling. It is the right choice for piped input and for tests.
type DirectReader struct {
	r *bufio.Reader
}

// NewDirectReader wraps r in a buffered line reader.
func NewDirectReader(r io.Reader) *DirectReader {
	return &DirectReader{r: bufio.NewReader(r)}
}

func (d *DirectReader) ReadLine() (string, error) {
	for {
		line, err := d.r.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
	}
}

// Close is a no-op; DirectReader holds no resources.
func (d *DirectReader) Close() error {
	return nil
}

// TermReader reads commands from a TTY through readline, which gives the
// player history and editing free of escape-sequence garbage. Callers must
// Close it to restore the terminal.
type TermReader struct {
	rl *readline.Instance
}

// NewTermReader initializes readline with the given prompt.
func NewTermReader(prompt string) (*TermReader, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, fmt.Errorf("init readline: %w", err)
	}
	return &TermReader{rl: rl}, nil
}

func (t *TermReader) ReadLine() (string, error) {
	for {
		line, err := t.rl.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl-C on a partial line clears it; on an empty line it ends
			// the session
			if len(line) == 0 {
				return "", io.EOF
			}
			continue
		}
		if err != nil && (err != io.EOF || line == "") {
			return "", err
		}

		if line = strings.TrimSpace(line); line != "" {
			return line, nil
		}
		if err == io.EOF {
			return "", io.EOF
		}
	}
}

func (t *TermReader) Close() error {
	return t.rl.Close()
}

// SetPrompt updates the prompt shown before each read.
func (t *TermReader) SetPrompt(p string) {
	t.rl.SetPrompt(p)
}
