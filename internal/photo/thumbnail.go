package photo

import (
	"image"

	"golang.org/x/image/draw"
)

type thumbnail struct {
	maxWidth int
}

// Process redraws the photo as NRGBA with Catmull-Rom resampling, scaling it
// down to at most maxWidth pixels wide while keeping the aspect ratio.
func (t *thumbnail) Process(p *Photo) error {
	w, h := p.Bounds.Dx(), p.Bounds.Dy()
	if w == 0 || h == 0 {
		return nil
	}

	newW, newH := w, h
	if t.maxWidth > 0 && w > t.maxWidth {
		newW, newH = t.maxWidth, max(1, h*t.maxWidth/w)
	}
	scaled := image.NewNRGBA(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), p.Img, p.Bounds, draw.Over, nil)
	p.Img = scaled
	p.Bounds = scaled.Bounds()
	return nil
}
