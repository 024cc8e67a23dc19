package stage

import (
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/rm-hull/batch-effects/internal/photo"
)

type TintStage struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

func (s *TintStage) Process(p *photo.Photo) error {
	p.Img = adjust.Apply(p.Img, func(c color.RGBA) color.RGBA {
		return color.RGBA{
			R: addClamped(c.R, s.R),
			G: addClamped(c.G, s.G),
			B: addClamped(c.B, s.B),
			A: c.A,
		}
	})
	return nil
}
