// Package input supplies the strings to be hashed, either as a stream of
// lines or as a single line typed with terminal echo disabled.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// LineSource yields input lines one at a time. ok is false once the source
// is exhausted.
type LineSource interface {
	Next() (line string, ok bool, err error)
}

type lines struct {
	r *bufio.Reader
}

// NewLines returns a LineSource over every line of r. Line terminators
// ("\n" or "\r\n") are stripped and a final unterminated line is kept.
func NewLines(r io.Reader) LineSource {
	return &lines{r: bufio.NewReader(r)}
}

func (l *lines) Next() (string, bool, error) {
	s, err := l.r.ReadString('\n')
	if err == io.EOF {
		if s == "" {
			return "", false, nil
		}
		return trimEOL(s), true, nil
	}
	if err != nil {
		return "", false, errors.Wrap(err, "reading line")
	}
	return trimEOL(s), true, nil
}

func trimEOL(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

// Terminal access, replaced in tests.
var (
	isTerminal   = term.IsTerminal
	readPassword = term.ReadPassword
)

type masked struct {
	in     io.Reader
	prompt io.Writer
	done   bool
}

// NewMasked returns a LineSource that yields exactly one line. On a terminal
// the line is read without echo; otherwise the first line of in is used.
func NewMasked(in io.Reader, prompt io.Writer) LineSource {
	return &masked{in: in, prompt: prompt}
}

func (m *masked) Next() (string, bool, error) {
	if m.done {
		return "", false, nil
	}
	m.done = true

	if f, ok := m.in.(*os.File); ok && isTerminal(int(f.Fd())) {
		b, err := readPassword(int(f.Fd()))
		if err != nil {
			return "", false, errors.Wrap(err, "reading masked input")
		}
		if m.prompt != nil {
			fmt.Fprintln(m.prompt)
		}
		return string(b), true, nil
	}

	s, err := bufio.NewReader(m.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, errors.Wrap(err, "reading masked input")
	}
	return trimEOL(s), true, nil
}
