package stage

import (
	"fmt"
	"image/color"
)

const (
	RedChannel   = 0
	GreenChannel = 1
	BlueChannel  = 2
)

func checkChannel(idx int) error {
	if idx < RedChannel || idx > BlueChannel {
		return fmt.Errorf("invalid channel index %d: must be 0, 1 or 2", idx)
	}
	return nil
}

func addClamped(v uint8, n int) uint8 {
	return uint8(clamp(int(v)+n, 0, 255))
}

func clamp[T int | float64](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// luma uses the Rec. 601 coefficients.
// Reference: https://en.wikipedia.org/wiki/Grayscale#Luma_coding_in_video_systems
func luma(c color.RGBA) float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}
