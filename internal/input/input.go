// Package input reads player entries from the console.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyInput is returned for an entry with no characters.
	ErrEmptyInput = errors.New("empty input")
	// ErrInterrupted is returned when the player aborts with Ctrl-C or Ctrl-D.
	ErrInterrupted = errors.New("input interrupted")
)

// InputError reports an entry that cannot be used. The caller may prompt again.
type InputError struct {
	Entry string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid input %q: %v", e.Entry, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Provider returns player entries one at a time. Next blocks until an entry
// is available. Recoverable problems are reported as *InputError, anything
// else (io.EOF included) means no more input can be read.
type Provider interface {
	Next() (string, error)
}

// FirstRune returns the character used for comparison.
func FirstRune(entry string) (rune, error) {
	if entry == "" {
		return 0, &InputError{Entry: entry, Err: ErrEmptyInput}
	}
	r, _ := utf8.DecodeRuneInString(entry)
	return r, nil
}

// LineReader reads whitespace separated entries line by line. Lines have no
// length limit.
type LineReader struct {
	r *bufio.Reader
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the first field of the next line. Trailing fields are dropped.
// A final line without a newline is still returned before io.EOF.
func (l *LineReader) Next() (string, error) {
	line, err := l.r.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", &InputError{Entry: strings.TrimRight(line, "\r\n"), Err: ErrEmptyInput}
	}
	return fields[0], nil
}

// Scripted replays fixed entries and then reports io.EOF.
type Scripted struct {
	entries []string
	pos     int
}

// NewScripted returns a provider that yields entries in order.
func NewScripted(entries ...string) *Scripted {
	return &Scripted{entries: entries}
}

// Next implements Provider. Blank entries behave like a blank console line.
func (s *Scripted) Next() (string, error) {
	if s.pos >= len(s.entries) {
		return "", io.EOF
	}
	entry := s.entries[s.pos]
	s.pos++
	if strings.TrimSpace(entry) == "" {
		return "", &InputError{Entry: entry, Err: ErrEmptyInput}
	}
	return strings.TrimSpace(entry), nil
}
