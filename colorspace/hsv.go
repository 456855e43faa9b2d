package colorspace

import (
	"fmt"
	"math"

	"github.com/jkl1337/go-chromath"
	"github.com/lucasb-eyer/go-colorful"
)

// HSV holds hue in turns [0, 1), saturation and value in [0, 1].
type HSV struct {
	H, S, V float64
}

// RGBToHSV decomposes an sRGB color by its max and min channels. Grays have
// hue 0.
func RGBToHSV(rgb chromath.RGB) HSV {
	h, s, v := colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}.Hsv()
	turns := h / 360
	if turns >= 1 {
		turns -= 1
	}
	return HSV{H: turns, S: s, V: v}
}

// HueDegrees converts a hue in turns to degrees rounded to two decimals.
func HueDegrees(turns float64) float64 {
	return Round2(turns * 360)
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// RGBToHex formats rgb as #rrggbb. Each channel is scaled by 255 and
// truncated; callers must clip to [0, 1] first.
func RGBToHex(rgb chromath.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", uint8(rgb.R()*255), uint8(rgb.G()*255), uint8(rgb.B()*255))
}
