package fourierlab

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tphakala/go-fourier-lab/internal/imageio"
	"gonum.org/v1/gonum/mat"
)

// LabConfig configures a Lab.
type LabConfig struct {
	// OutputDir receives every artifact. It is created if missing.
	OutputDir string

	// Engine selects the FFT backend.
	Engine EngineConfig

	// Render sizes the default PNG renderer. Ignored when Renderer is set.
	Render RenderConfig

	// Renderer overrides the default PNG renderer.
	Renderer Renderer

	// Logger receives one record per artifact. Nil uses slog.Default().
	Logger *slog.Logger

	// Synthesis configures SquareWave. The zero value selects
	// DefaultSynthesisConfig.
	Synthesis SynthesisConfig

	// ExportAudio additionally writes each synthesis partial sum as WAV.
	ExportAudio bool

	// AudioSampleRate is the WAV sample rate. Zero selects
	// DefaultAudioSampleRate.
	AudioSampleRate int
}

// Validate checks the configuration.
func (c *LabConfig) Validate() error {
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output directory is required", ErrInvalidParameter)
	}
	if err := c.Engine.Validate(); err != nil {
		return err
	}
	if c.Synthesis != (SynthesisConfig{}) {
		if err := c.Synthesis.Validate(); err != nil {
			return err
		}
	}
	if c.AudioSampleRate < 0 {
		return fmt.Errorf("%w: audio sample rate must be non-negative, got %d", ErrInvalidParameter, c.AudioSampleRate)
	}
	return nil
}

// Lab runs the demonstration pipelines: 1D transform figures, 2D transform
// images, magnitude/phase recombination of two images, and square wave
// synthesis. Every artifact is written under the configured directory.
//
// A failure to write one artifact is logged and reported, but the
// remaining artifacts of the run are still produced; the returned error
// joins all such failures. Computation errors abort the run.
type Lab struct {
	cfg      LabConfig
	tr       *Transformer
	renderer Renderer
	log      *slog.Logger
}

// NewLab validates cfg, creates the output directory, and returns a Lab.
func NewLab(cfg LabConfig) (*Lab, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Synthesis == (SynthesisConfig{}) {
		cfg.Synthesis = DefaultSynthesisConfig()
	}
	if cfg.AudioSampleRate == 0 {
		cfg.AudioSampleRate = DefaultAudioSampleRate
	}

	tr, err := NewTransformer(&cfg.Engine)
	if err != nil {
		return nil, err
	}

	renderer := cfg.Renderer
	if renderer == nil {
		renderer = NewPNGRenderer(cfg.Render)
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(cfg.OutputDir, outputDirPerm); err != nil {
		return nil, imageio.Wrap(cfg.OutputDir, err)
	}

	return &Lab{cfg: cfg, tr: tr, renderer: renderer, log: logger}, nil
}

// Transformer returns the transformer the lab computes with.
func (l *Lab) Transformer() *Transformer {
	return l.tr
}

// Path returns the location of an artifact name inside the output directory.
func (l *Lab) Path(name string) string {
	return filepath.Join(l.cfg.OutputDir, name)
}

// AnalyzeSignal writes the three panel figure for a 1D signal: the signal,
// the magnitude of its DFT, and the unwrapped phase of its DFT. The file
// name is OutputName(label).
func (l *Lab) AnalyzeSignal(label string, signal []float64) error {
	spectrum, err := l.tr.ForwardReal1D(signal)
	if err != nil {
		return fmt.Errorf("analyze %q: %w", label, err)
	}
	return l.figure(SignalFigure(label, signal, Decompose1D(spectrum)), OutputName(label))
}

// SignalFigure builds the figure AnalyzeSignal renders.
func SignalFigure(label string, signal []float64, p Polar1D) Figure {
	xMax := float64(len(signal))
	return Figure{Panels: []Panel{
		{Title: label, XMax: xMax, Series: []Series{{Y: signal}}},
		{Title: "FFT magnitude of " + label, XMax: xMax, Series: []Series{{Y: p.Magnitude}}},
		{Title: "FFT phase of " + label, XMax: xMax, Series: []Series{{Y: UnwrapPhase(p.Phase)}}},
	}}
}

// RunSignalDemo analyzes the reference 1D signals: an impulse, a boxcar,
// and a Gaussian, each 128 samples long.
func (l *Lab) RunSignalDemo() error {
	delta, err := Impulse(demoSignalLength, 0)
	if err != nil {
		return err
	}
	box, err := Boxcar(demoSignalLength, 0, demoSignalWidth)
	if err != nil {
		return err
	}
	gauss, err := Gaussian(demoSignalLength, 0, demoSignalWidth)
	if err != nil {
		return err
	}

	signals := []struct {
		label  string
		signal []float64
	}{
		{"Delta Function", delta},
		{"Box Car", box},
		{"Gaussian", gauss},
	}

	var errs []error
	for _, s := range signals {
		errs = append(errs, l.AnalyzeSignal(s.label, s.signal))
	}
	return errors.Join(errs...)
}

// AnalyzeWAV analyzes the first channel of a WAV file as a 1D signal,
// labelled with the file's base name.
func (l *Lab) AnalyzeWAV(path string) error {
	samples, _, err := ReadWAV(path)
	if err != nil {
		return err
	}
	return l.AnalyzeSignal(baseName(path), samples)
}

// ImageArtifacts names the three images written for a 2D transform.
type ImageArtifacts struct {
	Input, Magnitude, Phase                string
	InputTitle, MagnitudeTitle, PhaseTitle string
}

// ReferenceArtifacts are the names used for a generated test image.
func ReferenceArtifacts() ImageArtifacts {
	return ImageArtifacts{
		Input:          "input" + pngExtension,
		Magnitude:      "mags" + pngExtension,
		Phase:          "phases" + pngExtension,
		InputTitle:     "Input image",
		MagnitudeTitle: "FFT magnitude",
		PhaseTitle:     "FFT phase",
	}
}

// SourceArtifacts are the names used for a loaded image called name.
func SourceArtifacts(name string) ImageArtifacts {
	return ImageArtifacts{
		Input:          name + "_gray" + pngExtension,
		Magnitude:      name + "_mags" + pngExtension,
		Phase:          name + "_phases" + pngExtension,
		InputTitle:     name,
		MagnitudeTitle: name + " FFT magnitude",
		PhaseTitle:     name + " FFT phase",
	}
}

// AnalyzeImage transforms img and writes the input, the centered log
// magnitude, and the centered phase. The decomposed spectrum is returned
// even when writing an artifact failed; only a transform failure leaves it
// empty.
func (l *Lab) AnalyzeImage(img mat.Matrix, names ImageArtifacts) (Polar2D, error) {
	spectrum, err := l.tr.ForwardReal2D(img)
	if err != nil {
		return Polar2D{}, err
	}
	p := Decompose2D(spectrum)
	mags, err := FFTShift2D(p.Magnitude)
	if err != nil {
		return Polar2D{}, err
	}
	phases, err := FFTShift2D(p.Phase)
	if err != nil {
		return Polar2D{}, err
	}

	errs := []error{
		l.image(img, names.Input, ImageOptions{Title: names.InputTitle}),
		l.image(mags, names.Magnitude, ImageOptions{Title: names.MagnitudeTitle, Scaling: ScaleLog}),
		l.image(phases, names.Phase, ImageOptions{Title: names.PhaseTitle}),
	}
	return p, errors.Join(errs...)
}

// RunImageDemo generates shape and analyzes it with ReferenceArtifacts.
func (l *Lab) RunImageDemo(shape Shape) error {
	img, err := shape.Image()
	if err != nil {
		return err
	}
	_, err = l.AnalyzeImage(img, ReferenceArtifacts())
	return err
}

// PhaseSwap loads two images of identical shape, recombines their spectra
// according to mode, and writes the inverse transforms as
// Franken<name>.png. Names are the file base names without extension.
func (l *Lab) PhaseSwap(pathA, pathB string, mode SwapMode, seed uint64) error {
	nameA, nameB := baseName(pathA), baseName(pathB)

	imgA, err := LoadGray(pathA)
	if err != nil {
		return err
	}
	imgB, err := LoadGray(pathB)
	if err != nil {
		return err
	}
	ar, ac := imgA.Dims()
	br, bc := imgB.Dims()
	if ar != br || ac != bc {
		return fmt.Errorf("%w: %s is %dx%d, %s is %dx%d", ErrShapeMismatch, nameA, ar, ac, nameB, br, bc)
	}

	// Both images are non-empty, so only artifact writes can fail here.
	polarA, errA := l.AnalyzeImage(imgA, SourceArtifacts(nameA))
	polarB, errB := l.AnalyzeImage(imgB, SourceArtifacts(nameB))
	errs := []error{errA, errB}

	fa, fb, err := Recombination(mode, polarA, polarB, seed)
	if err != nil {
		return err
	}
	frankenA, err := l.tr.InverseReal2D(fa)
	if err != nil {
		return err
	}
	frankenB, err := l.tr.InverseReal2D(fb)
	if err != nil {
		return err
	}

	l.log.Info("Recombined spectra.",
		slog.String("mode", mode.String()),
		slog.String("a", nameA),
		slog.String("b", nameB))

	errs = append(errs,
		l.image(frankenA, "Franken"+nameA+pngExtension, ImageOptions{Title: "Franken-" + nameA}),
		l.image(frankenB, "Franken"+nameB+pngExtension, ImageOptions{Title: "Franken-" + nameB}),
	)
	return errors.Join(errs...)
}

// SquareWave runs the configured synthesis, writing sqwave_NN.png for each
// step. Each figure shows every component added so far beside their sum.
// With ExportAudio set, the partial sum is also written as sqwave_NN.wav.
func (l *Lab) SquareWave() error {
	syn, err := NewSynthesizer(l.cfg.Synthesis)
	if err != nil {
		return err
	}
	domain := syn.Domain()

	var components [][]float64
	var errs []error
	err = syn.Run(func(step SynthesisStep) error {
		components = append(components, step.Component)
		errs = append(errs, l.figure(SynthesisFigure(domain, components, step), IterationName(synthesisPrefix, step.Index)))

		if l.cfg.ExportAudio {
			errs = append(errs, l.audio(step.PartialSum, AudioName(synthesisPrefix, step.Index)))
		}
		return nil
	})
	if err != nil {
		return err
	}
	return errors.Join(errs...)
}

// SynthesisFigure builds the two panel figure for one synthesis step.
func SynthesisFigure(domain []float64, components [][]float64, step SynthesisStep) Figure {
	left := Panel{
		Title:  fmt.Sprintf("Sinusoidal components (%d of %d)", step.Index, step.Of),
		XLabel: synthesisXLabel,
		YLabel: synthesisYLabel,
	}
	for _, c := range components {
		left.Series = append(left.Series, Series{X: domain, Y: c})
	}

	right := Panel{
		Title:  fmt.Sprintf("Sum of %d sines", step.Index),
		XLabel: synthesisXLabel,
		YLabel: synthesisYLabel,
		Series: []Series{{X: domain, Y: step.PartialSum}},
	}
	return Figure{Panels: []Panel{left, right}}
}

func (l *Lab) image(m mat.Matrix, name string, opts ImageOptions) error {
	return l.record(name, func(path string) error {
		return l.renderer.RenderImage(m, path, opts)
	})
}

func (l *Lab) figure(fig Figure, name string) error {
	return l.record(name, func(path string) error {
		return l.renderer.RenderFigure(fig, path)
	})
}

func (l *Lab) audio(samples []float64, name string) error {
	return l.record(name, func(path string) error {
		return WriteWAV(path, samples, l.cfg.AudioSampleRate)
	})
}

// record writes one artifact and logs the outcome.
func (l *Lab) record(name string, write func(path string) error) error {
	path := l.Path(name)
	if err := write(path); err != nil {
		l.log.Error("Failed to write artifact.",
			slog.String("path", path),
			slog.Any("error", err))
		return err
	}
	l.log.Info("Wrote artifact.", slog.String("path", path))
	return nil
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
