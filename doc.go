// Package fourierlab generates canonical test signals, computes their
// discrete Fourier transforms, and takes the transforms apart into
// magnitude and phase so they can be studied, mixed, and put back together.
//
// # Features
//
//   - 1D generators: [Impulse], [Boxcar], [Gaussian]
//   - 2D generators: [FilledCircle] and [FilledBox] with optional rotation
//   - Forward and inverse DFTs in one and two dimensions, backed by
//     gonum's dsp/fourier or by github.com/mjibson/go-dsp
//   - Magnitude/phase decomposition, recombination, and phase swapping
//     between two images
//   - Square wave synthesis from odd harmonics, one harmonic per step
//   - PNG rendering of images and line figures via gonum/plot, and WAV
//     export of 1D signals via go-audio
//
// # Conventions
//
// Transforms follow numpy.fft. The forward transform is unnormalized,
//
//	X[k] = Σ x[n]·exp(-2πi·kn/N)
//
// and the inverse divides by N (rows·cols in 2D), so
// Inverse(Forward(x)) reproduces x up to rounding. 2D transforms are
// separable: rows first, then columns.
//
// [FFTShift1D] moves index 0 to index n/2 for display. For even n it is
// its own inverse. For odd n applying it twice rotates the data left by
// one; use [IFFTShift1D] to undo a shift.
//
// Phases returned by [Decompose1D] and [Decompose2D] lie in (-π, π].
// [UnwrapPhase] is for plotting only.
//
// Every operation returns newly allocated arrays. Inputs are never
// modified and never aliased by results.
//
// # Quick Start
//
// Transform a generated image and look at its spectrum:
//
//	img, err := fourierlab.FilledCircle(128, 128, 32, 256)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	polar, err := fourierlab.Spectrum2D(img)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	centered, err := fourierlab.FFTShift2D(polar.Magnitude)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r := fourierlab.NewPNGRenderer(fourierlab.RenderConfig{})
//	err = r.RenderImage(centered, "mags.png",
//	    fourierlab.ImageOptions{Title: "FFT magnitude", Scaling: fourierlab.ScaleLog})
//
// Swap the phases of two images of the same shape:
//
//	a2, b2, err := fourierlab.SwapImages(a, b, fourierlab.SwapPhase, 0)
//
// Run every reference demonstration into a directory:
//
//	lab, err := fourierlab.NewLab(fourierlab.LabConfig{OutputDir: "out"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := lab.RunSignalDemo(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Invalid sizes and parameters wrap [ErrInvalidParameter], positions that
// do not fit wrap [ErrOutOfRange], and mismatched arrays wrap
// [ErrShapeMismatch]. File failures wrap [ErrIO] and name the path. Test
// with errors.Is.
//
// # Thread Safety
//
// Package level functions and [Transformer] are safe for concurrent use.
// A [Synthesizer] and a [Lab] run one step at a time and should not be
// shared between goroutines.
package fourierlab
