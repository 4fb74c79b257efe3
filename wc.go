package wc

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/midbel/wc/internal/stdio"
)

// Counter counts the sources named on its command line and prints one line
// per source to its standard output.
type Counter struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	open   stdio.Opener
	logger *log.Logger
}

func New(options ...Option) (*Counter, error) {
	c := Counter{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		open:   stdio.OpenFile,
		logger: log.New(io.Discard),
	}
	for _, o := range options {
		if err := o(&c); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

// Run parses args and counts the sources it names. Errors are written to the
// standard error of the counter before being returned. Nothing is read when
// args contains an invalid option.
func (c *Counter) Run(args []string) error {
	opts, names, err := Parse(args)
	if err != nil {
		c.report(err)
		return err
	}
	c.logger.Debug("options parsed", "lines", opts.Lines, "words", opts.Words, "chars", opts.Chars, "sources", len(names))
	if _, err = c.Count(opts, names); err != nil {
		c.report(err)
	}
	return err
}

func (c *Counter) report(err error) {
	fmt.Fprintln(c.stderr, err)
	if errors.Is(err, ErrUsage) {
		fmt.Fprintln(c.stderr, "Usage:", Usage)
	}
}

// Count prints the counts of each source in names, then the total when more
// than one source was given. Without names, the standard input is counted.
// The first source that fails stops the run: its error is returned and no
// total is printed.
func (c *Counter) Count(opts Options, names []string) (Tally, error) {
	if len(names) == 0 {
		names = []string{stdio.Stdin}
	}
	var total Tally
	for _, n := range names {
		t, err := c.count(n)
		if err != nil {
			c.logger.Debug("source failed", "name", n, "err", err)
			return total, err
		}
		if err := Print(c.stdout, n, opts, t); err != nil {
			return total, err
		}
		total = total.Add(t)
	}
	if len(names) > 1 {
		if err := Print(c.stdout, totalName, opts, total); err != nil {
			return total, err
		}
	}
	c.logger.Debug("sources counted", "count", len(names), "lines", total.Lines, "words", total.Words, "chars", total.Chars)
	return total, nil
}

func (c *Counter) count(name string) (Tally, error) {
	r, err := stdio.Open(name, c.stdin, c.open)
	if err != nil {
		return Tally{}, &SourceError{Name: name, Err: err}
	}
	defer r.Close()

	if c.logger.GetLevel() <= log.DebugLevel {
		if size, ok := stdio.Size(r); ok {
			c.logger.Debug("source opened", "name", name, "size", size)
		} else {
			c.logger.Debug("source opened", "name", name)
		}
	}
	t, err := Scan(r)
	if err != nil {
		return t, &SourceError{Name: name, Err: err}
	}
	return t, nil
}
