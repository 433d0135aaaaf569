// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks the user for values one line at a time.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer

	// fd is the terminal descriptor used for no-echo reads, -1 when in is
	// not a terminal.
	fd int
}

// NewPrompter reads answers from in and writes questions to out. When in is
// a terminal, secrets are read without echo.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	fd := -1
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd = int(f.Fd())
	}

	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
	}
}

// ReadLine prints label and returns the answer without the line ending.
// An answer cut short by end of input is returned as is; io.EOF is returned
// only when nothing was read.
func (p *Prompter) ReadLine(label string) (string, error) {
	fmt.Fprint(p.out, label)

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	return strings.TrimRight(line, "\r\n"), nil
}

// ReadDefault is ReadLine that keeps current when the answer is empty.
func (p *Prompter) ReadDefault(label, current string) (string, error) {
	answer, err := p.ReadLine(fmt.Sprintf("%s [%s]: ", label, current))
	if err != nil {
		return "", err
	}
	if answer == "" {
		return current, nil
	}
	return answer, nil
}

// ReadSecret prints label and reads an answer that is not echoed on a
// terminal.
func (p *Prompter) ReadSecret(label string) (string, error) {
	if p.fd < 0 {
		return p.ReadLine(label)
	}

	fmt.Fprint(p.out, label)
	secret, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}

	return string(secret), nil
}

// ReadOptional is ReadLine that maps a blank answer to nil.
func (p *Prompter) ReadOptional(label string) (*string, error) {
	answer, err := p.ReadLine(label)
	if err != nil {
		return nil, err
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return nil, nil
	}
	return &answer, nil
}
