package input

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLineReaderFirstField(t *testing.T) {
	r := NewLineReader(strings.NewReader("q\n  Hello world \n"))
	entry, err := r.Next()
	if err != nil || entry != "q" {
		t.Fatalf("expected q, got %q (%v)", entry, err)
	}
	entry, err = r.Next()
	if err != nil || entry != "Hello" {
		t.Fatalf("expected Hello, got %q (%v)", entry, err)
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestLineReaderBlankLine(t *testing.T) {
	r := NewLineReader(strings.NewReader("   \nx\n"))
	_, err := r.Next()
	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("expected InputError, got %v", err)
	}
	if !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	entry, err := r.Next()
	if err != nil || entry != "x" {
		t.Fatalf("expected reader to continue after blank line, got %q (%v)", entry, err)
	}
}

func TestLineReaderLongLine(t *testing.T) {
	long := "q" + strings.Repeat("x", 70000)
	r := NewLineReader(strings.NewReader(long + "\nz"))
	entry, err := r.Next()
	if err != nil {
		t.Fatalf("long line: %v", err)
	}
	if entry != long {
		t.Fatalf("expected the full %d byte entry, got %d bytes", len(long), len(entry))
	}
	entry, err = r.Next()
	if err != nil || entry != "z" {
		t.Fatalf("expected final unterminated line z, got %q (%v)", entry, err)
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestScripted(t *testing.T) {
	s := NewScripted("a", "", "b")
	if entry, _ := s.Next(); entry != "a" {
		t.Fatalf("expected a, got %q", entry)
	}
	if _, err := s.Next(); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if entry, _ := s.Next(); entry != "b" {
		t.Fatalf("expected b, got %q", entry)
	}
	if _, err := s.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
}

func TestFirstRune(t *testing.T) {
	r, err := FirstRune("Qwerty")
	if err != nil || r != 'Q' {
		t.Fatalf("expected Q, got %q (%v)", r, err)
	}
	if _, err := FirstRune(""); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
}

func newTestKeyReader(in string) (*KeyReader, *bytes.Buffer, *int) {
	var echo bytes.Buffer
	restores := 0
	k := &KeyReader{
		in:   strings.NewReader(in),
		echo: &echo,
		raw: func() (func() error, error) {
			return func() error {
				restores++
				return nil
			}, nil
		},
	}
	return k, &echo, &restores
}

func TestKeyReaderSingleKeys(t *testing.T) {
	k, echo, restores := newTestKeyReader("ab\r\x03")
	for _, want := range []string{"a", "b"} {
		got, err := k.Next()
		if err != nil || got != want {
			t.Fatalf("expected %q, got %q (%v)", want, got, err)
		}
	}
	if _, err := k.Next(); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput for enter, got %v", err)
	}
	if _, err := k.Next(); !errors.Is(err, ErrInterrupted) {
		t.Fatalf("expected ErrInterrupted for ctrl-c, got %v", err)
	}
	if *restores != 4 {
		t.Fatalf("expected terminal restored after every key, got %d", *restores)
	}
	if echo.String() != "a\nb\n\n" {
		t.Fatalf("unexpected echo: %q", echo.String())
	}
}

func TestKeyReaderMultibyte(t *testing.T) {
	k, _, _ := newTestKeyReader("é")
	got, err := k.Next()
	if err != nil || got != "é" {
		t.Fatalf("expected é, got %q (%v)", got, err)
	}
}

func TestKeyReaderEOFRestores(t *testing.T) {
	k, _, restores := newTestKeyReader("")
	if _, err := k.Next(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected EOF, got %v", err)
	}
	if *restores != 1 {
		t.Fatalf("expected terminal restored on error")
	}
}
