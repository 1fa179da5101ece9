// Command fourier-lab runs the Fourier transform demonstrations and writes
// their figures to a directory.
//
// It takes no flags. Configuration comes from the environment, optionally
// loaded from a .env file in the working directory:
//
//	FOURIER_OUTPUT_DIR   output directory (default "out")
//	FOURIER_BACKEND      gonum or godsp
//	FOURIER_SHAPE        circle, box, rotated-box, or offset-box
//	FOURIER_IMAGE_A/B    two images of equal size for the phase swap
//	FOURIER_SWAP_MODE    phase, magnitude, random-phase, or random-magnitude
//	FOURIER_SEED         seed for the random swap modes
//	FOURIER_ITERATIONS   square wave harmonics (default 10)
//	FOURIER_WAV_EXPORT   also write square wave partial sums as WAV
//	FOURIER_WAV_INPUT    WAV file to analyze as a 1D signal
package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	fourierlab "github.com/tphakala/go-fourier-lab"
)

func main() {
	if err := loadEnv(envFile); err != nil {
		log.Fatal(err)
	}

	cfg, err := loadConfig(os.Getenv)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	cfg.lab.Logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	lab, err := fourierlab.NewLab(cfg.lab)
	if err != nil {
		log.Fatalf("Failed to create lab: %v", err)
	}

	if err := run(lab, cfg); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("All artifacts written to %s\n", cfg.lab.OutputDir)
}

// run executes every configured demonstration. A failing demonstration
// does not stop the ones after it.
func run(lab *fourierlab.Lab, cfg config) error {
	var errs []error

	fmt.Println("Generating 1D signal figures")
	errs = append(errs, lab.RunSignalDemo())

	if cfg.wavInput != "" {
		fmt.Printf("Analyzing %s\n", cfg.wavInput)
		errs = append(errs, lab.AnalyzeWAV(cfg.wavInput))
	}

	fmt.Printf("Transforming %s image\n", cfg.shape)
	errs = append(errs, lab.RunImageDemo(cfg.shape))

	if cfg.imageA != "" && cfg.imageB != "" {
		fmt.Printf("Recombining %s and %s (%s)\n", cfg.imageA, cfg.imageB, cfg.mode)
		errs = append(errs, lab.PhaseSwap(cfg.imageA, cfg.imageB, cfg.mode, cfg.seed))
	}

	fmt.Printf("Synthesizing square wave (%d harmonics)\n", cfg.lab.Synthesis.Iterations)
	errs = append(errs, lab.SquareWave())

	return errors.Join(errs...)
}
