// Package imageio loads and stores the lab's inputs and artifacts: grayscale
// images decoded from PNG/JPEG/GIF and mono WAV audio.
//
// File failures wrap ErrIO, name the offending path, and carry a stack
// trace recorded with go-xerrors. Invalid arguments are reported with
// ErrInvalidArgument before any file is touched.
package imageio

import (
	"errors"
	"fmt"
	"os"

	"github.com/mdobak/go-xerrors"
)

// ErrIO indicates a file could not be read, decoded, written, or closed.
var ErrIO = errors.New("i/o error")

// ErrInvalidArgument indicates a caller supplied an unusable parameter.
var ErrInvalidArgument = errors.New("invalid argument")

// Open opens path for reading.
func Open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Wrap(path, err)
	}
	return f, nil
}

// Create creates or truncates path for writing.
func Create(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, Wrap(path, err)
	}
	return f, nil
}

// Close closes f, folding a close failure into *errp when no earlier error
// was recorded. Intended for deferred use on files that were written.
func Close(f *os.File, errp *error) {
	if cerr := f.Close(); cerr != nil && *errp == nil {
		*errp = Wrap(f.Name(), cerr)
	}
}

// Wrap marks err as an I/O failure on path.
func Wrap(path string, err error) error {
	return xerrors.New(fmt.Errorf("%w: %s: %w", ErrIO, path, err))
}
