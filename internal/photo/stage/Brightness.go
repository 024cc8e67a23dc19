package stage

import (
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/rm-hull/batch-effects/internal/photo"
)

type BrightnessStage struct {
	Amount int `json:"amount"`
}

// Process adds Amount to every color channel, saturating at 255
func (s *BrightnessStage) Process(p *photo.Photo) error {
	p.Img = adjust.Apply(p.Img, func(c color.RGBA) color.RGBA {
		return color.RGBA{
			R: addClamped(c.R, s.Amount),
			G: addClamped(c.G, s.Amount),
			B: addClamped(c.B, s.Amount),
			A: c.A,
		}
	})
	return nil
}
