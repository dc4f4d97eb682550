package ubmp

import (
	"io"
	"os"
)

// IOError wraps a failure to obtain the bytes of a bitmap.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return "bmp: " + e.Err.Error() }

func (e *IOError) Unwrap() error { return e.Err }

// Read reads r to EOF and decodes the result.
func Read(r io.Reader) (*Bitmap, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, &IOError{Err: err}
	}
	return Decode(b)
}

// Open decodes the named file.
func Open(name string) (*Bitmap, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &IOError{Err: err}
	}
	defer f.Close()
	return Read(f)
}
