package fourierlab

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// SwapMode selects how two decomposed spectra are recombined.
type SwapMode int

const (
	// SwapPhase gives A the phases of B and B the phases of A.
	SwapPhase SwapMode = iota

	// SwapMagnitude gives A the magnitudes of B and B the magnitudes of A.
	SwapMagnitude

	// RandomPhaseMode keeps both magnitudes and gives both spectra the same
	// random phases, uniform in [0, π).
	RandomPhaseMode

	// RandomMagnitudeMode keeps both phases and gives both spectra the same
	// random magnitudes, uniform in [0, 1).
	RandomMagnitudeMode
)

var swapModeNames = [...]string{
	SwapPhase:           "phase",
	SwapMagnitude:       "magnitude",
	RandomPhaseMode:     "random-phase",
	RandomMagnitudeMode: "random-magnitude",
}

// String returns the mode name as accepted by ParseSwapMode.
func (m SwapMode) String() string {
	if m >= 0 && int(m) < len(swapModeNames) {
		return swapModeNames[m]
	}
	return fmt.Sprintf("SwapMode(%d)", int(m))
}

// ParseSwapMode converts a mode name to a SwapMode. The empty string
// selects SwapPhase.
func ParseSwapMode(name string) (SwapMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return SwapPhase, nil
	}
	for i, n := range swapModeNames {
		if n == name {
			return SwapMode(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown swap mode %q", ErrInvalidParameter, name)
}

// SwapPhases returns (|A|, arg B) and (|B|, arg A). Applying it again to
// its own outputs restores the inputs.
func SwapPhases(a, b Polar2D) (Polar2D, Polar2D, error) {
	if err := samePolarShape(a, b); err != nil {
		return Polar2D{}, Polar2D{}, err
	}
	return Polar2D{Magnitude: clone(a.Magnitude), Phase: clone(b.Phase)},
		Polar2D{Magnitude: clone(b.Magnitude), Phase: clone(a.Phase)}, nil
}

// SwapMagnitudes returns (|B|, arg A) and (|A|, arg B).
func SwapMagnitudes(a, b Polar2D) (Polar2D, Polar2D, error) {
	if err := samePolarShape(a, b); err != nil {
		return Polar2D{}, Polar2D{}, err
	}
	return Polar2D{Magnitude: clone(b.Magnitude), Phase: clone(a.Phase)},
		Polar2D{Magnitude: clone(a.Magnitude), Phase: clone(b.Phase)}, nil
}

// RandomPhase returns a rows×cols matrix of phases drawn uniformly from
// [0, π).
func RandomPhase(rows, cols int, src rand.Source) (*mat.Dense, error) {
	return uniformDense(rows, cols, randomPhaseMax, src)
}

// RandomMagnitude returns a rows×cols matrix of magnitudes drawn uniformly
// from [0, 1).
func RandomMagnitude(rows, cols int, src rand.Source) (*mat.Dense, error) {
	return uniformDense(rows, cols, randomMagnitudeMax, src)
}

func uniformDense(rows, cols int, upper float64, src rand.Source) (*mat.Dense, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: random matrix must be at least 1x1, got %dx%d", ErrInvalidParameter, rows, cols)
	}
	if src == nil {
		return nil, fmt.Errorf("%w: nil random source", ErrInvalidParameter)
	}

	dist := distuv.Uniform{Min: 0, Max: upper, Src: src}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = dist.Rand()
	}
	return mat.NewDense(rows, cols, data), nil
}

// NewSource returns the deterministic random source used for a seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewPCG(seed, seed)
}

// Recombination pairs the components of a and b according to mode and
// returns the two recombined spectra. The seed feeds the random modes and
// is ignored otherwise.
func Recombination(mode SwapMode, a, b Polar2D, seed uint64) (*mat.CDense, *mat.CDense, error) {
	if err := samePolarShape(a, b); err != nil {
		return nil, nil, err
	}

	r, c := a.Dims()
	var pa, pb Polar2D
	var err error
	switch mode {
	case SwapPhase:
		pa, pb, err = SwapPhases(a, b)
	case SwapMagnitude:
		pa, pb, err = SwapMagnitudes(a, b)
	case RandomPhaseMode:
		var phase *mat.Dense
		phase, err = RandomPhase(r, c, NewSource(seed))
		pa = Polar2D{Magnitude: a.Magnitude, Phase: phase}
		pb = Polar2D{Magnitude: b.Magnitude, Phase: phase}
	case RandomMagnitudeMode:
		var mag *mat.Dense
		mag, err = RandomMagnitude(r, c, NewSource(seed))
		pa = Polar2D{Magnitude: mag, Phase: a.Phase}
		pb = Polar2D{Magnitude: mag, Phase: b.Phase}
	default:
		return nil, nil, fmt.Errorf("%w: unsupported swap mode %v", ErrInvalidParameter, mode)
	}
	if err != nil {
		return nil, nil, err
	}

	fa, err := pa.Recombine()
	if err != nil {
		return nil, nil, err
	}
	fb, err := pb.Recombine()
	if err != nil {
		return nil, nil, err
	}
	return fa, fb, nil
}

// samePolarShape checks that all four planes of a and b exist and agree.
func samePolarShape(a, b Polar2D) error {
	planes := []*mat.Dense{a.Magnitude, a.Phase, b.Magnitude, b.Phase}
	for _, p := range planes {
		if p == nil {
			return fmt.Errorf("%w: missing magnitude or phase plane", ErrInvalidParameter)
		}
	}

	r, c := a.Magnitude.Dims()
	for _, p := range planes[1:] {
		if pr, pc := p.Dims(); pr != r || pc != c {
			return fmt.Errorf("%w: %dx%d and %dx%d", ErrShapeMismatch, r, c, pr, pc)
		}
	}
	return nil
}

func clone(m *mat.Dense) *mat.Dense {
	return mat.DenseCopyOf(m)
}
