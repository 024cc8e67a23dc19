package batch

import (
	"github.com/rm-hull/batch-effects/internal/photo"
	"github.com/rm-hull/batch-effects/internal/photo/stage"
)

// Effect pairs an output suffix with the stage that produces it.
type Effect struct {
	Name  string              `json:"name"`
	Stage photo.PipelineStage `json:"params"`
}

const hslLevel = 0.2

// Catalog returns the fixed, ordered list of effects applied to every input
// image. A fresh slice is returned on each call so callers may not disturb
// one another.
func Catalog() []Effect {
	return []Effect{
		{Name: string(stage.Saturate), Stage: &stage.HslStage{Mode: stage.Saturate, Level: hslLevel}},
		{Name: string(stage.Desaturate), Stage: &stage.HslStage{Mode: stage.Desaturate, Level: hslLevel}},
		{Name: string(stage.Lighten), Stage: &stage.HslStage{Mode: stage.Lighten, Level: hslLevel}},
		{Name: string(stage.Darken), Stage: &stage.HslStage{Mode: stage.Darken, Level: hslLevel}},
		{Name: string(stage.ShiftHue), Stage: &stage.HslStage{Mode: stage.ShiftHue, Level: hslLevel}},

		{Name: "solarize", Stage: &stage.SolarizeStage{}},
		{Name: "colorize", Stage: &stage.ColorizeStage{}},
		{Name: "halftone", Stage: &stage.HalftoneStage{}},
		{Name: "inc_brightness", Stage: &stage.BrightnessStage{Amount: 10}},
		{Name: "vertical_strips", Stage: &stage.StripsStage{Count: 5, Vertical: true}},
		{Name: "horizontal_strips", Stage: &stage.StripsStage{Count: 7}},
		{Name: "tint", Stage: &stage.TintStage{R: 10, G: 20, B: 15}},
		{Name: "offset", Stage: &stage.OffsetStage{Channel: stage.RedChannel, Amount: 30}},
		{Name: "offset_blue", Stage: &stage.OffsetStage{Channel: stage.BlueChannel, Amount: 30}},
		{Name: "offset_red", Stage: &stage.OffsetStage{Channel: stage.RedChannel, Amount: 30}},
		{Name: "offset_green", Stage: &stage.OffsetStage{Channel: stage.GreenChannel, Amount: 30}},
		{Name: "multiple_offsets", Stage: &stage.MultipleOffsetsStage{Amount: 30, Channel1: stage.RedChannel, Channel2: stage.BlueChannel}},
		{Name: "primary", Stage: &stage.PrimaryStage{}},
	}
}
