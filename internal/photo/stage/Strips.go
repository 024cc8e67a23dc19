package stage

import (
	"errors"
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/rm-hull/batch-effects/internal/photo"
	"golang.org/x/image/draw"
)

type StripsStage struct {
	Count    int         `json:"count"`
	Vertical bool        `json:"vertical"`
	Color    color.Color `json:"-"`
}

// Process overlays Count-1 solid strips on the image. The image is divided into
// 2*Count-1 equal bands (columns when Vertical, rows otherwise) and every second
// band, starting from the second, is filled with Color (white when unset).
func (s *StripsStage) Process(p *photo.Photo) error {
	if s.Count < 1 {
		return errors.New("strip count must be at least 1")
	}

	fill := s.Color
	if fill == nil {
		fill = color.White
	}

	img := clone.AsRGBA(p.Img)
	b := img.Bounds()
	total := 2*s.Count - 1

	for i := 1; i < s.Count; i++ {
		var r image.Rectangle
		if s.Vertical {
			size := b.Dx() / total
			x0 := b.Min.X + (2*i-1)*size
			r = image.Rect(x0, b.Min.Y, x0+size, b.Max.Y)
		} else {
			size := b.Dy() / total
			y0 := b.Min.Y + (2*i-1)*size
			r = image.Rect(b.Min.X, y0, b.Max.X, y0+size)
		}
		draw.Draw(img, r, image.NewUniform(fill), image.Point{}, draw.Src)
	}

	p.Img = img
	p.Bounds = b
	return nil
}
