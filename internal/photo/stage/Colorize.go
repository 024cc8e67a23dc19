package stage

import (
	"image/color"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/rm-hull/batch-effects/internal/photo"
)

var colorizeBaseline = color.RGBA{R: 0, G: 255, B: 255, A: 255}

const colorizeThreshold = 220

type ColorizeStage struct{}

// Process pushes pixels that are close to cyan further towards green:
// within the threshold, red and blue are halved and green is boosted by 25%.
func (s *ColorizeStage) Process(p *photo.Photo) error {
	p.Img = adjust.Apply(p.Img, func(c color.RGBA) color.RGBA {
		if squareDistance(colorizeBaseline, c) >= colorizeThreshold*colorizeThreshold {
			return c
		}
		return color.RGBA{
			R: uint8(float64(c.R) * 0.5),
			G: uint8(clamp(float64(c.G)*1.25, 0, 255)),
			B: uint8(float64(c.B) * 0.5),
			A: c.A,
		}
	})
	return nil
}

func squareDistance(a, b color.RGBA) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
