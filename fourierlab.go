package fourierlab

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tphakala/go-fourier-lab/internal/engine"
	"github.com/tphakala/go-fourier-lab/internal/imageio"
)

// Common errors.
var (
	// ErrInvalidParameter indicates a size, scale, or configuration value
	// outside its documented domain.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrOutOfRange indicates a position or extent that does not fit inside
	// the array being generated.
	ErrOutOfRange = errors.New("index out of range")

	// ErrShapeMismatch indicates arrays that must share a shape do not.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrIO indicates a file could not be read, decoded, written, or closed.
	// Errors wrapping it name the offending path.
	ErrIO = imageio.ErrIO
)

// Backend selects the FFT implementation behind a Transformer.
type Backend int

const (
	// BackendGonum uses gonum.org/v1/gonum/dsp/fourier. This is the default.
	BackendGonum Backend = iota

	// BackendGoDSP uses github.com/mjibson/go-dsp/fft.
	BackendGoDSP
)

// String returns the backend name as accepted by ParseBackend.
func (b Backend) String() string {
	switch b {
	case BackendGonum:
		return engine.NameGonum
	case BackendGoDSP:
		return engine.NameGoDSP
	default:
		return fmt.Sprintf("Backend(%d)", int(b))
	}
}

// ParseBackend converts a backend name to a Backend. The empty string
// selects BackendGonum.
func ParseBackend(name string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", engine.NameGonum:
		return BackendGonum, nil
	case engine.NameGoDSP:
		return BackendGoDSP, nil
	default:
		return 0, fmt.Errorf("%w: unknown backend %q", ErrInvalidParameter, name)
	}
}

// EngineConfig configures a Transformer.
type EngineConfig struct {
	// Backend selects the FFT implementation.
	Backend Backend
}

// Validate checks the configuration.
func (c *EngineConfig) Validate() error {
	switch c.Backend {
	case BackendGonum, BackendGoDSP:
		return nil
	default:
		return fmt.Errorf("%w: unsupported backend %v", ErrInvalidParameter, c.Backend)
	}
}

func (c *EngineConfig) backend() engine.Backend {
	if c.Backend == BackendGoDSP {
		return engine.GoDSP{}
	}
	return engine.Gonum{}
}
