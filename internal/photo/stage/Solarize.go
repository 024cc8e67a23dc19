package stage

import (
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/rm-hull/batch-effects/internal/photo"
)

const solarizeThreshold = 200

type SolarizeStage struct{}

// Process folds the red channel: any red value below 200 becomes 200 - r.
// Green, blue and alpha are untouched.
func (s *SolarizeStage) Process(p *photo.Photo) error {
	p.Img = adjust.Apply(p.Img, func(c color.RGBA) color.RGBA {
		if c.R < solarizeThreshold {
			c.R = solarizeThreshold - c.R
		}
		return c
	})
	return nil
}
