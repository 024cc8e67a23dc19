package cmd

import (
	"fmt"

	"github.com/rm-hull/batch-effects/internal/batch"
)

func Batch(inputDir, outputDir string, opts batch.Options) error {
	if err := validateQuality(opts.Quality); err != nil {
		return err
	}

	_, err := batch.NewRunner(opts).Run(inputDir, outputDir)
	return err
}

func validateQuality(quality int) error {
	if quality < 1 || quality > 100 {
		return fmt.Errorf("invalid JPEG quality %d: must be between 1 and 100", quality)
	}
	return nil
}
