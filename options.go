package wc

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/midbel/wc/internal/stdio"
)

type Option func(*Counter) error

func WithStdin(r io.Reader) Option {
	return func(c *Counter) error {
		if r == nil {
			return errors.New("stdin: nil reader")
		}
		c.stdin = r
		return nil
	}
}

func WithStdout(w io.Writer) Option {
	return func(c *Counter) error {
		if w == nil {
			return errors.New("stdout: nil writer")
		}
		c.stdout = w
		return nil
	}
}

func WithStderr(w io.Writer) Option {
	return func(c *Counter) error {
		if w == nil {
			return errors.New("stderr: nil writer")
		}
		c.stderr = w
		return nil
	}
}

// WithOpener replaces the function used to open named sources.
func WithOpener(open stdio.Opener) Option {
	return func(c *Counter) error {
		if open == nil {
			return errors.New("opener: nil function")
		}
		c.open = open
		return nil
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(c *Counter) error {
		if logger == nil {
			return errors.New("logger: nil logger")
		}
		c.logger = logger
		return nil
	}
}
