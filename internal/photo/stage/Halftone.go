package stage

import (
	"github.com/anthonynsimon/bild/clone"
	"github.com/rm-hull/batch-effects/internal/photo"
)

// 2x2 cell patterns, ordered (x,y), (x,y+1), (x+1,y), (x+1,y+1)
var halftonePatterns = []struct {
	above   float64
	pattern [4]uint8
}{
	{200, [4]uint8{255, 255, 255, 255}},
	{159, [4]uint8{255, 0, 255, 255}},
	{95, [4]uint8{255, 0, 0, 255}},
	{32, [4]uint8{0, 255, 0, 0}},
}

type HalftoneStage struct{}

// Process renders the image as a black and white halftone. The image is split
// into 2x2 cells; the mean luma of each cell picks a fixed on/off pattern so that
// brighter areas light up more pixels. The last few rows and columns are left
// as they are.
func (s *HalftoneStage) Process(p *photo.Photo) error {
	img := clone.AsRGBA(p.Img)
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	for x := 0; x < w-4; x += 2 {
		for y := 0; y < h-4; y += 2 {
			cell := [4][2]int{
				{b.Min.X + x, b.Min.Y + y},
				{b.Min.X + x, b.Min.Y + y + 1},
				{b.Min.X + x + 1, b.Min.Y + y},
				{b.Min.X + x + 1, b.Min.Y + y + 1},
			}

			var sum float64
			for _, pt := range cell {
				sum += luma(img.RGBAAt(pt[0], pt[1]))
			}

			var pattern [4]uint8
			mean := sum / 4
			for _, hp := range halftonePatterns {
				if mean > hp.above {
					pattern = hp.pattern
					break
				}
			}

			for i, pt := range cell {
				c := img.RGBAAt(pt[0], pt[1])
				v := min(pattern[i], c.A)
				c.R, c.G, c.B = v, v, v
				img.SetRGBA(pt[0], pt[1], c)
			}
		}
	}

	p.Img = img
	p.Bounds = b
	return nil
}
