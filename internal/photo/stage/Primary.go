package stage

import (
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/rm-hull/batch-effects/internal/photo"
)

type PrimaryStage struct{}

// Process reduces every channel to either 0 or 255, leaving at most eight
// distinct colors in the image
func (s *PrimaryStage) Process(p *photo.Photo) error {
	p.Img = adjust.Apply(p.Img, func(c color.RGBA) color.RGBA {
		return color.RGBA{R: primary(c.R), G: primary(c.G), B: primary(c.B), A: c.A}
	})
	return nil
}

func primary(v uint8) uint8 {
	if v > 128 {
		return 255
	}
	return 0
}
