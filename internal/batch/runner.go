package batch

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rm-hull/batch-effects/internal/naming"
	"github.com/rm-hull/batch-effects/internal/photo"
)

const (
	previewFrameDelay = 0.5
	previewMaxWidth   = 320
)

// ErrEffectsFailed wraps the joined effect errors of a KeepGoing run, so that
// callers can tell them apart from directory level failures.
var ErrEffectsFailed = errors.New("one or more effects failed")

type Options struct {
	// JPEG quality, 1-100. Zero selects photo.DefaultQuality.
	Quality int
	// KeepGoing records failures and carries on with the next effect instead
	// of aborting the run on the first error.
	KeepGoing bool
	// Preview additionally writes <name>_preview.png, an animation cycling
	// through every generated effect.
	Preview bool
	// Out receives the progress lines; defaults to os.Stdout.
	Out io.Writer
}

type Runner struct {
	mu        sync.Mutex
	effects   []Effect
	quality   int
	keepGoing bool
	preview   bool
	out       io.Writer
}

func NewRunner(opts Options) *Runner {
	quality := opts.Quality
	if quality == 0 {
		quality = photo.DefaultQuality
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Runner{
		effects:   Catalog(),
		quality:   quality,
		keepGoing: opts.KeepGoing,
		preview:   opts.Preview,
		out:       out,
	}
}

// Run applies every effect in the catalog to each file in inputDir, one file
// and one effect at a time, writing the results to outputDir. Each effect
// re-reads the source image from disk.
//
// Directory errors always abort the run. Effect errors abort it too, unless
// the runner was created with KeepGoing, in which case they are collected and
// returned joined, wrapped in ErrEffectsFailed, once every file has been
// attempted.
func (r *Runner) Run(inputDir, outputDir string) (*RunStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	startTime := time.Now()
	stats := &RunStats{}

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return stats, fmt.Errorf("failed to read input directory %s: %w", inputDir, err)
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return stats, fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	collisions := naming.NewCollisionDetector()
	for _, entry := range entries {
		path := filepath.Join(inputDir, entry.Name())

		info, err := entry.Info()
		if err != nil {
			return stats, fmt.Errorf("failed to read metadata for %s: %w", path, err)
		}
		if info.IsDir() {
			log.Printf("Skipping directory %s", path)
			continue
		}

		name := naming.Normalize(path)
		if owner, collided := collisions.Claim(path, name); collided {
			log.Printf("WARNING: %s and %s both normalize to %q, outputs will be overwritten", owner, path, name)
		}

		stats.Files++
		if err := r.processFile(path, name, outputDir, stats); err != nil {
			stats.Elapsed = time.Since(startTime)
			return stats, err
		}

		_, _ = fmt.Fprintf(r.out, "You can compare outputs images with the original in %s\n", path)
	}

	stats.Elapsed = time.Since(startTime)
	log.Printf("Processed %d files in %s (generated=%d, errors=%d)", stats.Files, stats.Elapsed, stats.Succeeded, stats.Failed)

	if len(stats.Errors) > 0 {
		return stats, fmt.Errorf("%w: %w", ErrEffectsFailed, errors.Join(stats.Errors...))
	}
	return stats, nil
}

func (r *Runner) processFile(path, name, outputDir string, stats *RunStats) error {
	generated := make([]string, 0, len(r.effects))

	for _, effect := range r.effects {
		filename := naming.OutputPath(outputDir, name, effect.Name)
		if err := r.apply(path, filename, effect); err != nil {
			stats.Failed++
			err = fmt.Errorf("failed to create %s image for %s: %w", effect.Name, path, err)
			if !r.keepGoing {
				return err
			}
			log.Println(err)
			stats.Errors = append(stats.Errors, err)
			continue
		}

		stats.Succeeded++
		generated = append(generated, filename)
		_, _ = fmt.Fprintf(r.out, "Generate %s image.\n", filename)
	}

	if r.preview && len(generated) > 0 {
		if err := r.writePreview(generated, filepath.Join(outputDir, name+"_preview.png")); err != nil {
			err = fmt.Errorf("failed to create preview for %s: %w", path, err)
			if !r.keepGoing {
				return err
			}
			log.Println(err)
			stats.Errors = append(stats.Errors, err)
		}
	}

	return nil
}

func (r *Runner) apply(path, filename string, effect Effect) error {
	img, err := photo.Open(path)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	if err := img.Pipeline(effect.Stage); err != nil {
		return fmt.Errorf("failed to process image pipeline: %w", err)
	}

	if err := img.Save(filename, r.quality); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

func (r *Runner) writePreview(files []string, filename string) error {
	apngBytes, err := photo.Animate(files, previewFrameDelay, previewMaxWidth)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, apngBytes, 0644)
}
