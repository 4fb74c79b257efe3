package stdio

import (
	"io"
	"os"

	"github.com/midbel/rw"
)

const Stdin = "-"

type Opener func(string) (io.ReadCloser, error)

func OpenFile(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

type nopCloser struct {
	io.Reader
}

func (_ nopCloser) Close() error {
	return nil
}

func (n nopCloser) Unwrap() io.Reader {
	return n.Reader
}

// Open returns the stream of the named source. The standard input is returned
// with a Close that does nothing: it belongs to the caller.
func Open(name string, stdin io.Reader, open Opener) (io.ReadCloser, error) {
	if name == Stdin {
		return nopCloser{Reader: stdin}, nil
	}
	if open == nil {
		open = OpenFile
	}
	return open(name)
}

// File returns the file behind r, looking through readers that expose
// their inner reader.
func File(r io.Reader) (*os.File, bool) {
	for r != nil {
		if f, ok := r.(*os.File); ok {
			return f, true
		}
		u, ok := r.(rw.UnwrapReader)
		if !ok {
			break
		}
		next, ok := u.Unwrap().(io.Reader)
		if !ok {
			break
		}
		r = next
	}
	return nil, false
}

// Size returns the size of r when it is backed by a regular file.
func Size(r io.Reader) (int64, bool) {
	f, ok := File(r)
	if !ok {
		return 0, false
	}
	fi, err := f.Stat()
	if err != nil || !fi.Mode().IsRegular() {
		return 0, false
	}
	return fi.Size(), true
}
