package wc

import (
	"errors"
	"fmt"
	"io/fs"
)

const Usage = "wc [-cwl] [<filename>*]"

var ErrUsage = errors.New("usage")

// UsageError reports an option character that is not one of c, w or l.
type UsageError struct {
	Option byte
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("Unknown option %c", e.Option)
}

func (e *UsageError) Is(err error) bool {
	return err == ErrUsage
}

// SourceError reports a source that could not be opened or read. Name is the
// source name as given on the command line.
type SourceError struct {
	Name string
	Err  error
}

func (e *SourceError) Error() string {
	err := e.Err
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return fmt.Sprintf("%s: %s", e.Name, err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}
