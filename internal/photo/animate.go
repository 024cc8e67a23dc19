package photo

import (
	"bytes"

	"github.com/kettek/apng"
)

// Animate builds a looping APNG from the images at files, one frame per file.
// Frames wider than maxWidth are scaled down first; a maxWidth of zero keeps
// the original size.
func Animate(files []string, frameDelay float64, maxWidth int) ([]byte, error) {

	a := apng.APNG{
		Frames:    make([]apng.Frame, len(files)),
		LoopCount: 0,
	}

	for i, fname := range files {
		p, err := Open(fname)
		if err != nil {
			return nil, err
		}

		if err := p.Pipeline(&thumbnail{maxWidth: maxWidth}); err != nil {
			return nil, err
		}

		a.Frames[i] = apng.Frame{
			Image:            p.Img,
			DelayNumerator:   uint16(frameDelay * 1000),
			DelayDenominator: 1000,
		}
	}

	var buf bytes.Buffer
	if err := apng.Encode(&buf, a); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
