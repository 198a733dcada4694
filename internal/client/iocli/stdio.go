package iocli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Stdio реализация IO поверх stdin/stdout
type Stdio struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int
}

// NewStdio создает IO для стандартных потоков процесса
func NewStdio() IO {
	return NewStream(os.Stdin, os.Stdout)
}

// NewStream создает IO поверх произвольных потоков.
// Если in является терминалом, пароль читается без эха.
func NewStream(in io.Reader, out io.Writer) *Stdio {
	fd := -1
	if f, ok := in.(*os.File); ok {
		fd = int(f.Fd())
	}
	return &Stdio{
		reader: bufio.NewReader(in),
		out:    out,
		fd:     fd,
	}
}

func (s *Stdio) Println(a ...any) {
	_, _ = fmt.Fprintln(s.out, a...)
}

func (s *Stdio) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(s.out, format, a...)
}

func (s *Stdio) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *Stdio) ReadInput(prompt string) (string, error) {
	s.Printf("%s", prompt)
	input, err := s.reader.ReadString('\n')
	if err != nil && (err != io.EOF || input == "") {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

func (s *Stdio) ReadPassword(prompt string) (string, error) {
	// не терминал (pipe, файл): читаем обычной строкой
	if s.fd < 0 || !term.IsTerminal(s.fd) {
		return s.ReadInput(prompt)
	}
	s.Printf("%s", prompt)
	pwBytes, err := term.ReadPassword(s.fd)
	s.Println("")
	if err != nil {
		return "", err
	}
	return string(pwBytes), nil
}
