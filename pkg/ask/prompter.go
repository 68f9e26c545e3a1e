package ask

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

type (
	// Question is a single prompt.
	Question struct {
		Label   string
		Default string
		Secret  bool
	}

	// Prompter asks questions and returns the raw answers. An empty answer
	// means the default was accepted.
	Prompter interface {
		Ask(q Question) (string, error)
	}

	// Terminal prompts on an interactive terminal with go-prompt, offering the
	// default as a completion. Secret answers are read without echo.
	Terminal struct {
		in  *os.File
		out io.Writer
	}

	// Lines reads one answer per line from a reader. It is used when stdin is
	// not a terminal.
	Lines struct {
		r   *bufio.Reader
		out io.Writer
	}
)

// NewPrompter returns a Terminal prompter when in is a terminal and a Lines
// prompter otherwise.
func NewPrompter(in *os.File, out io.Writer) Prompter {
	if IsTerminal(in) {
		return &Terminal{in: in, out: out}
	}

	return NewLines(in, out)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// NewLines returns a prompter reading answers from r and echoing labels to
// out.
func NewLines(r io.Reader, out io.Writer) *Lines {
	return &Lines{r: bufio.NewReader(r), out: out}
}

func (t *Terminal) Ask(q Question) (string, error) {
	if q.Secret {
		_, _ = fmt.Fprint(t.out, label(q))
		data, err := term.ReadPassword(int(t.in.Fd()))
		_, _ = fmt.Fprintln(t.out)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read %s", q.Label)
		}

		return strings.TrimSpace(string(data)), nil
	}

	var suggestions []prompt.Suggest
	if q.Default != "" {
		suggestions = []prompt.Suggest{{Text: q.Default, Description: "default"}}
	}

	answer := prompt.Input(label(q), func(d prompt.Document) []prompt.Suggest {
		return prompt.FilterHasPrefix(suggestions, d.GetWordBeforeCursor(), true)
	})

	return strings.TrimSpace(answer), nil
}

// Ask prints the question and reads the next line. A final line without a
// newline is accepted; an exhausted reader returns io.ErrUnexpectedEOF.
func (l *Lines) Ask(q Question) (string, error) {
	_, _ = fmt.Fprint(l.out, label(q))

	line, err := l.r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", errors.Wrapf(err, "failed to read %s", q.Label)
		}

		if line == "" {
			return "", errors.Wrapf(io.ErrUnexpectedEOF, "no answer for %s", q.Label)
		}
	}

	if q.Secret {
		_, _ = fmt.Fprintln(l.out)
	}

	return strings.TrimSpace(line), nil
}

func label(q Question) string {
	if q.Default == "" || q.Secret {
		return q.Label + ": "
	}

	return fmt.Sprintf("%s (%s): ", q.Label, q.Default)
}
