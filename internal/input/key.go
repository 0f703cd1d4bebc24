package input

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/term"
)

const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
)

// KeyReader reads single key presses without waiting for Enter.
type KeyReader struct {
	in   io.Reader
	echo io.Writer
	raw  func() (restore func() error, err error)
}

// NewKeyReader reads keys from f, which must be a terminal, and echoes each
// key to echo.
func NewKeyReader(f *os.File, echo io.Writer) (*KeyReader, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("key input requires a terminal")
	}
	return &KeyReader{
		in:   f,
		echo: echo,
		raw: func() (func() error, error) {
			oldState, err := term.MakeRaw(fd)
			if err != nil {
				return nil, err
			}
			return func() error { return term.Restore(fd, oldState) }, nil
		},
	}, nil
}

// Next implements Provider. The terminal is raw only while waiting for the key.
func (k *KeyReader) Next() (string, error) {
	restore, err := k.raw()
	if err != nil {
		return "", fmt.Errorf("failed to enable raw mode: %w", err)
	}
	r, readErr := k.readRune()
	if err := restore(); err != nil {
		return "", fmt.Errorf("failed to restore terminal: %w", err)
	}
	if readErr != nil {
		return "", readErr
	}

	switch r {
	case keyCtrlC, keyCtrlD:
		return "", ErrInterrupted
	case '\r', '\n', ' ', '\t':
		k.echoLine("")
		return "", &InputError{Entry: string(r), Err: ErrEmptyInput}
	}
	k.echoLine(string(r))
	return string(r), nil
}

func (k *KeyReader) readRune() (rune, error) {
	var buf [utf8.UTFMax]byte
	n := 0
	for n < len(buf) {
		if _, err := io.ReadFull(k.in, buf[n:n+1]); err != nil {
			return 0, err
		}
		n++
		if utf8.FullRune(buf[:n]) {
			break
		}
	}
	r, _ := utf8.DecodeRune(buf[:n])
	return r, nil
}

func (k *KeyReader) echoLine(s string) {
	if k.echo == nil {
		return
	}
	if _, err := fmt.Fprintln(k.echo, s); err != nil {
		// Best-effort echo.
		_ = err
	}
}
