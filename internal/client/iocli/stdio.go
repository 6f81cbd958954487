package iocli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализует IO поверх stdin/stdout
type Stdio struct {
	out    io.Writer
	reader *bufio.Reader
	fd     int // -1 если ввод не терминал
}

// NewStdio creates IO bound to the process terminal
func NewStdio() IO {
	return &Stdio{
		out:    os.Stdout,
		reader: bufio.NewReader(os.Stdin),
		fd:     int(os.Stdin.Fd()),
	}
}

// New creates IO over arbitrary streams. Passwords are then read as plain lines.
func New(in io.Reader, out io.Writer) *Stdio {
	return &Stdio{
		out:    out,
		reader: bufio.NewReader(in),
		fd:     -1,
	}
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	return s.readLine()
}

func (s *Stdio) ReadPassword(prompt string) (string, error) {
	s.Printf("%s", prompt)
	if s.fd < 0 || !term.IsTerminal(s.fd) {
		return s.readLine()
	}
	pwBytes, err := term.ReadPassword(s.fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}

func (s *Stdio) readLine() (string, error) {
	input, err := s.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}
