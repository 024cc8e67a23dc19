package stage

import (
	"errors"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/rm-hull/batch-effects/internal/photo"
)

type OffsetStage struct {
	Channel int `json:"channel"`
	Amount  int `json:"amount"`
}

// Process replaces one color channel of each pixel with the same channel of the
// pixel Amount steps right and down, giving a chromatic aberration look.
// Pixels whose source would fall outside the image are left unchanged.
func (s *OffsetStage) Process(p *photo.Photo) error {
	if err := checkChannel(s.Channel); err != nil {
		return err
	}
	if s.Amount < 0 {
		return errors.New("offset amount must not be negative")
	}

	src := clone.AsRGBA(p.Img)
	dst := clone.AsRGBA(p.Img)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if x+s.Amount < w-1 && y+s.Amount < h-1 {
				copyChannel(dst, src, s.Channel,
					image.Pt(b.Min.X+x, b.Min.Y+y),
					image.Pt(b.Min.X+x+s.Amount, b.Min.Y+y+s.Amount))
			}
		}
	}

	p.Img = dst
	p.Bounds = b
	return nil
}

type MultipleOffsetsStage struct {
	Amount   int `json:"amount"`
	Channel1 int `json:"channel1"`
	Channel2 int `json:"channel2"`
}

// Process shifts two channels horizontally in opposite directions: Channel1 is
// pulled from Amount pixels to the right, Channel2 from Amount pixels to the left.
func (s *MultipleOffsetsStage) Process(p *photo.Photo) error {
	if err := checkChannel(s.Channel1); err != nil {
		return err
	}
	if err := checkChannel(s.Channel2); err != nil {
		return err
	}
	if s.Amount < 0 {
		return errors.New("offset amount must not be negative")
	}

	src := clone.AsRGBA(p.Img)
	dst := clone.AsRGBA(p.Img)
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			at := image.Pt(b.Min.X+x, b.Min.Y+y)
			if x+s.Amount < w-1 && y+s.Amount < h-1 {
				copyChannel(dst, src, s.Channel1, at, image.Pt(at.X+s.Amount, at.Y))
			}
			if x-s.Amount > 0 && y-s.Amount > 0 {
				copyChannel(dst, src, s.Channel2, at, image.Pt(at.X-s.Amount, at.Y))
			}
		}
	}

	p.Img = dst
	p.Bounds = b
	return nil
}

func copyChannel(dst, src *image.RGBA, channel int, to, from image.Point) {
	dst.Pix[dst.PixOffset(to.X, to.Y)+channel] = src.Pix[src.PixOffset(from.X, from.Y)+channel]
}
