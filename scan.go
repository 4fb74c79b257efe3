package wc

import (
	"io"
)

// Tally holds the counts of one source, or the running total of several.
type Tally struct {
	Chars int64
	Words int64
	Lines int64
}

func (t Tally) Add(other Tally) Tally {
	t.Chars += other.Chars
	t.Words += other.Words
	t.Lines += other.Lines
	return t
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// Scanner classifies the bytes written to it. It keeps no buffer: only the
// counters and whether the last byte was a word boundary.
type Scanner struct {
	tally Tally
	inner bool
}

func (s *Scanner) Write(b []byte) (int, error) {
	for _, c := range b {
		s.tally.Chars++
		if isSpace(c) {
			s.inner = false
		} else if !s.inner {
			s.tally.Words++
			s.inner = true
		}
		if c == '\n' {
			s.tally.Lines++
		}
	}
	return len(b), nil
}

func (s *Scanner) Tally() Tally {
	return s.tally
}

func (s *Scanner) Reset() {
	*s = Scanner{}
}

// Scan reads r until EOF and returns its counts. On a read error, the counts
// of the bytes read so far are returned with the error.
func Scan(r io.Reader) (Tally, error) {
	var s Scanner
	_, err := io.Copy(&s, r)
	return s.Tally(), err
}
