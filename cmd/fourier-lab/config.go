package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	fourierlab "github.com/tphakala/go-fourier-lab"
)

// config is everything the command needs for one run.
type config struct {
	lab fourierlab.LabConfig

	shape fourierlab.Shape

	// imageA and imageB are the phase swap inputs; the swap is skipped
	// unless both are set.
	imageA, imageB string
	mode           fourierlab.SwapMode
	seed           uint64

	wavInput string
}

// loadEnv reads .env into the process environment when the file exists.
// Variables already set take precedence.
func loadEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// loadConfig builds the run configuration from environment lookups.
func loadConfig(getenv func(string) string) (config, error) {
	var cfg config
	var err error

	cfg.lab.OutputDir = value(getenv, envOutputDir, defaultOutputDir)

	if cfg.lab.Engine.Backend, err = fourierlab.ParseBackend(getenv(envBackend)); err != nil {
		return config{}, fmt.Errorf("%s: %w", envBackend, err)
	}
	if cfg.shape, err = fourierlab.ParseShape(getenv(envShape)); err != nil {
		return config{}, fmt.Errorf("%s: %w", envShape, err)
	}
	if cfg.mode, err = fourierlab.ParseSwapMode(getenv(envSwapMode)); err != nil {
		return config{}, fmt.Errorf("%s: %w", envSwapMode, err)
	}

	if s := strings.TrimSpace(getenv(envSeed)); s != "" {
		if cfg.seed, err = strconv.ParseUint(s, 10, 64); err != nil {
			return config{}, fmt.Errorf("%s: %w", envSeed, err)
		}
	}

	cfg.lab.Synthesis = fourierlab.DefaultSynthesisConfig()
	if s := strings.TrimSpace(getenv(envIterations)); s != "" {
		if cfg.lab.Synthesis.Iterations, err = strconv.Atoi(s); err != nil {
			return config{}, fmt.Errorf("%s: %w", envIterations, err)
		}
	}

	if s := strings.TrimSpace(getenv(envWAVExport)); s != "" {
		if cfg.lab.ExportAudio, err = strconv.ParseBool(s); err != nil {
			return config{}, fmt.Errorf("%s: %w", envWAVExport, err)
		}
	}

	cfg.imageA = strings.TrimSpace(getenv(envImageA))
	cfg.imageB = strings.TrimSpace(getenv(envImageB))
	cfg.wavInput = strings.TrimSpace(getenv(envWAVInput))

	if err := cfg.lab.Validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func value(getenv func(string) string, key, fallback string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}
	return fallback
}
