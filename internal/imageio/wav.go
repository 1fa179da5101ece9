package imageio

import (
	"fmt"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"gonum.org/v1/gonum/floats"
)

// WriteWAV stores samples as 16-bit mono PCM at sampleRate. The signal is
// normalized so its largest absolute sample maps to full scale; an all-zero
// signal is written as silence.
func WriteWAV(path string, samples []float64, sampleRate int) (err error) {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be > 0, got %d", ErrInvalidArgument, sampleRate)
	}

	f, err := Create(path)
	if err != nil {
		return err
	}
	defer Close(f, &err)

	scale := 0.0
	if peak := floats.Norm(samples, math.Inf(1)); peak > 0 {
		scale = maxInt16 / peak
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(math.Round(s * scale))
	}

	enc := wav.NewEncoder(f, sampleRate, bitsPerSample16, monoChannels, wavFormatPCM)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitsPerSample16,
	}

	if err := enc.Write(buf); err != nil {
		return Wrap(path, fmt.Errorf("encode: %w", err))
	}
	if err := enc.Close(); err != nil {
		return Wrap(path, fmt.Errorf("finalize: %w", err))
	}

	return nil
}

// ReadWAV decodes a PCM WAV file and returns its first channel scaled to
// [-1, 1) together with the sample rate.
func ReadWAV(path string) ([]float64, int, error) {
	f, err := Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, 0, Wrap(path, fmt.Errorf("invalid WAV file"))
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, Wrap(path, fmt.Errorf("decode: %w", err))
	}

	channels := buf.Format.NumChannels
	depth := int(dec.BitDepth)
	if channels < 1 || depth < bitsPerSample8 || depth > bitsPerSample32 {
		return nil, 0, Wrap(path, fmt.Errorf("unsupported format: %d channels, %d-bit", channels, depth))
	}

	// 8-bit PCM is unsigned around a midpoint; wider depths are signed.
	fullScale := float64(int64(1) << (depth - 1))
	offset := 0.0
	if depth == bitsPerSample8 {
		offset = fullScale
	}

	out := make([]float64, len(buf.Data)/channels)
	for i := range out {
		out[i] = (float64(buf.Data[i*channels]) - offset) / fullScale
	}

	return out, buf.Format.SampleRate, nil
}
