package fourierlab

import (
	"fmt"
	"math"

	"github.com/tphakala/go-fourier-lab/internal/mathutil"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// SynthesisConfig configures square wave synthesis.
type SynthesisConfig struct {
	// Start, Stop, and Step define the sample domain
	// arange(Start, Stop, Step): Stop is excluded.
	Start float64
	Stop  float64
	Step  float64

	// Iterations is the number of odd harmonics summed.
	Iterations int
}

// DefaultSynthesisConfig returns one period, [-π, π) in steps of 0.01,
// with ten harmonics.
func DefaultSynthesisConfig() SynthesisConfig {
	return SynthesisConfig{
		Start:      DefaultSynthesisStart,
		Stop:       DefaultSynthesisStop,
		Step:       DefaultSynthesisStep,
		Iterations: DefaultSynthesisIterations,
	}
}

// Validate checks the configuration.
func (c *SynthesisConfig) Validate() error {
	for _, v := range []float64{c.Start, c.Stop, c.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: synthesis domain must be finite", ErrInvalidParameter)
		}
	}
	if c.Step <= 0 {
		return fmt.Errorf("%w: synthesis step must be positive, got %v", ErrInvalidParameter, c.Step)
	}
	if c.Stop <= c.Start {
		return fmt.Errorf("%w: synthesis stop %v must exceed start %v", ErrInvalidParameter, c.Stop, c.Start)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("%w: synthesis iterations must be at least 1, got %d", ErrInvalidParameter, c.Iterations)
	}
	return nil
}

// SynthesisStep is the output of one synthesis iteration.
type SynthesisStep struct {
	// Index is the 1-based iteration number and Of the configured total.
	Index int
	Of    int

	// Harmonic is the odd frequency multiple 2k+1 added in this step.
	Harmonic int

	// Component is sin(Harmonic·x)/Harmonic over the domain.
	Component []float64

	// PartialSum is the sum of the first Index components. It is a copy
	// owned by the caller.
	PartialSum []float64
}

// Synthesizer builds a square wave one odd harmonic at a time. It is not
// safe for concurrent use.
type Synthesizer struct {
	domain []float64
	sum    []float64
	n      int
	total  int
}

// NewSynthesizer creates a Synthesizer with an all-zero partial sum.
func NewSynthesizer(cfg SynthesisConfig) (*Synthesizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	domain := mathutil.Arange(cfg.Start, cfg.Stop, cfg.Step)
	return &Synthesizer{
		domain: domain,
		sum:    make([]float64, len(domain)),
		total:  cfg.Iterations,
	}, nil
}

// Domain returns a copy of the sample positions.
func (s *Synthesizer) Domain() []float64 {
	return append([]float64(nil), s.domain...)
}

// Done reports whether all configured harmonics have been added.
func (s *Synthesizer) Done() bool {
	return s.n >= s.total
}

// Step adds the next harmonic to the partial sum. It returns false, and
// leaves the state unchanged, once all iterations have run.
func (s *Synthesizer) Step() (SynthesisStep, bool) {
	if s.Done() {
		return SynthesisStep{}, false
	}

	b := harmonic(s.n)
	component := squareWaveComponent(s.domain, b)
	floats.Add(s.sum, component)
	s.n++

	return SynthesisStep{
		Index:      s.n,
		Of:         s.total,
		Harmonic:   b,
		Component:  component,
		PartialSum: append([]float64(nil), s.sum...),
	}, true
}

// Run calls fn for every remaining step in order. fn must finish with a
// step's outputs before returning; the next step is computed afterwards.
// Run stops at the first error fn returns.
func (s *Synthesizer) Run(fn func(SynthesisStep) error) error {
	for {
		step, ok := s.Step()
		if !ok {
			return nil
		}
		if err := fn(step); err != nil {
			return fmt.Errorf("synthesis step %d of %d: %w", step.Index, step.Of, err)
		}
	}
}

// SquareWavePartialSum returns Σ_{k<n} sin((2k+1)·x)/(2k+1) evaluated
// directly for every x.
func SquareWavePartialSum(x []float64, n int) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		for k := range n {
			b := float64(harmonic(k))
			out[i] += math.Sin(b*v) / b
		}
	}
	return out
}

func harmonic(k int) int {
	return 2*k + 1
}

func squareWaveComponent(x []float64, b int) []float64 {
	out := make([]float64, len(x))
	fb := float64(b)
	for i, v := range x {
		out[i] = math.Sin(fb * v)
	}
	f64.Scale(out, out, 1/fb)
	return out
}
