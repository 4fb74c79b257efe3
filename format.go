package wc

import (
	"fmt"
	"io"
	"strings"
)

const (
	stdinName = "-"
	totalName = "total"
)

// Format renders one output line: the enabled counts in the order lines,
// words, chars, each right aligned on eight columns, followed by the name
// unless the source is the standard input.
func Format(name string, opts Options, t Tally) string {
	var str strings.Builder
	if opts.Lines {
		fmt.Fprintf(&str, "%8d", t.Lines)
	}
	if opts.Words {
		fmt.Fprintf(&str, "%8d", t.Words)
	}
	if opts.Chars {
		fmt.Fprintf(&str, "%8d", t.Chars)
	}
	if name != stdinName {
		str.WriteString(" ")
		str.WriteString(name)
	}
	str.WriteString("\n")
	return str.String()
}

func Print(w io.Writer, name string, opts Options, t Tally) error {
	_, err := io.WriteString(w, Format(name, opts, t))
	return err
}
