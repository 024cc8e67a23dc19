package photo

import (
	"fmt"
	"image"
	_ "image/gif"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

const DefaultQuality = 75

type Photo struct {
	Img    image.Image
	Bounds image.Rectangle
}

type PipelineStage interface {
	Process(p *Photo) error
}

// Open decodes the image at path. Every call re-reads the file from disk.
func Open(path string) (*Photo, error) {
	img, err := imgio.Open(path)
	if err != nil {
		return nil, err
	}
	return &Photo{
		Img:    img,
		Bounds: img.Bounds(),
	}, nil
}

// Save encodes the photo as a JPEG at path. The data is written to a temporary
// file in the same directory first and renamed into place once complete.
func (p *Photo) Save(path string, quality int) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, "effect-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	tmpName := tmpFile.Name()
	cleanupTemp := true
	defer func() {
		if cleanupTemp {
			_ = os.Remove(tmpName)
		}
	}()

	if err := imgio.JPEGEncoder(quality)(tmpFile, p.Img); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("failed to encode JPEG: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file before rename: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	cleanupTemp = false
	return nil
}

func (p *Photo) Pipeline(stages ...PipelineStage) error {
	for _, stage := range stages {
		if err := stage.Process(p); err != nil {
			return err
		}
	}
	return nil
}
