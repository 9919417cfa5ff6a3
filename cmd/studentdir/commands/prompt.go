package commands

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// prompter reads operator input line by line. Secrets are read without echo
// when input is a terminal.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int // terminal file descriptor, or -1

	// readPassword reads one unechoed line straight from fd.
	readPassword func(fd int) ([]byte, error)
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	p := &prompter{in: bufio.NewReader(in), out: out, fd: -1, readPassword: term.ReadPassword}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
	}
	return p
}

// line prints label and returns the next input line without its line ending.
// io.EOF is returned only when no input was left.
func (p *prompter) line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	s, err := p.in.ReadString('\n')
	if err == io.EOF && s != "" {
		err = nil
	}
	if err != nil {
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}

// text is line with surrounding whitespace removed.
func (p *prompter) text(label string) (string, error) {
	s, err := p.line(label)
	return strings.TrimSpace(s), err
}

// secret reads a password verbatim. Input already pulled into the buffered
// reader (typed ahead of the prompt) is consumed first so no line is skipped.
func (p *prompter) secret(label string) (string, error) {
	if p.fd < 0 || p.in.Buffered() > 0 {
		return p.line(label)
	}
	fmt.Fprint(p.out, label)
	b, err := p.readPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
