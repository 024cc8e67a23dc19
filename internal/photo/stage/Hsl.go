package stage

import (
	"fmt"
	"image/color"
	"math"

	"github.com/anthonynsimon/bild/adjust"
	"github.com/anthonynsimon/bild/util"
	"github.com/rm-hull/batch-effects/internal/photo"
)

type HslMode string

const (
	Saturate   HslMode = "saturate_hsl"
	Desaturate HslMode = "desaturate"
	Lighten    HslMode = "lighten"
	Darken     HslMode = "darken"
	ShiftHue   HslMode = "shift_hue"
)

type HslStage struct {
	Mode  HslMode `json:"mode"`
	Level float64 `json:"level"`
}

// Process adjusts each pixel in the HSL color space according to Mode.
// Saturation is scaled relative to its current value (s * (1 ± Level)), so
// greys stay grey. Lightness is moved by Level absolutely. Both are clamped
// to 0..1. shift_hue rotates the hue by Level turns (0.2 = 72 degrees).
func (s *HslStage) Process(p *photo.Photo) error {
	var fn func(h, sat, l float64) (float64, float64, float64)
	switch s.Mode {
	case Saturate:
		fn = func(h, sat, l float64) (float64, float64, float64) { return h, clamp(sat*(1+s.Level), 0, 1), l }
	case Desaturate:
		fn = func(h, sat, l float64) (float64, float64, float64) { return h, clamp(sat*(1-s.Level), 0, 1), l }
	case Lighten:
		fn = func(h, sat, l float64) (float64, float64, float64) { return h, sat, clamp(l+s.Level, 0, 1) }
	case Darken:
		fn = func(h, sat, l float64) (float64, float64, float64) { return h, sat, clamp(l-s.Level, 0, 1) }
	case ShiftHue:
		degrees := s.Level * 360
		fn = func(h, sat, l float64) (float64, float64, float64) {
			h = math.Mod(h+degrees, 360)
			if h < 0 {
				h += 360
			}
			return h, sat, l
		}
	default:
		return fmt.Errorf("unsupported HSL mode: %q", s.Mode)
	}

	p.Img = adjust.Apply(p.Img, func(c color.RGBA) color.RGBA {
		out := util.HSLToRGB(fn(util.RGBToHSL(c)))
		out.A = c.A
		return out
	})
	return nil
}
