package colorspace

import (
	"math"

	"github.com/jkl1337/go-chromath"
	"github.com/lucasb-eyer/go-colorful"
)

// xyzToLinear maps XYZ (Y = 1) to linear sRGB, D65 white.
var xyzToLinear = [3][3]float64{
	{3.2404542, -1.5371385, -0.4985314},
	{-0.9692660, 1.8760108, 0.0415560},
	{0.0556434, -0.2040259, 1.0572252},
}

// linearToXYZ is the inverse of xyzToLinear.
var linearToXYZ = [3][3]float64{
	{0.4124564, 0.3575761, 0.1804375},
	{0.2126729, 0.7151522, 0.0721750},
	{0.0193339, 0.1191920, 0.9503041},
}

func mul(m [3][3]float64, v [3]float64) [3]float64 {
	return [3]float64{
		m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2],
		m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2],
		m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2],
	}
}

func encode(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func decode(v float64) float64 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// XYZToSRGBUnclipped converts XYZ to gamma encoded sRGB, leaving
// out-of-gamut channels outside [0, 1].
func XYZToSRGBUnclipped(xyz chromath.XYZ) chromath.RGB {
	lin := mul(xyzToLinear, [3]float64{xyz[0] / 100, xyz[1] / 100, xyz[2] / 100})
	return chromath.RGB{encode(lin[0]), encode(lin[1]), encode(lin[2])}
}

// XYZToSRGB converts XYZ to gamma encoded sRGB clipped to [0, 1].
func XYZToSRGB(xyz chromath.XYZ) chromath.RGB {
	return ClipSRGB(XYZToSRGBUnclipped(xyz))
}

// ClipSRGB clamps every channel to [0, 1].
func ClipSRGB(rgb chromath.RGB) chromath.RGB {
	c := colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}.Clamped()
	return chromath.RGB{c.R, c.G, c.B}
}

// InGamut reports whether rgb needs no clipping.
func InGamut(rgb chromath.RGB) bool {
	return colorful.Color{R: rgb[0], G: rgb[1], B: rgb[2]}.IsValid()
}

// SRGBToXYZ converts gamma encoded sRGB in [0, 1] to XYZ with Y = 100 for white.
func SRGBToXYZ(rgb chromath.RGB) chromath.XYZ {
	xyz := mul(linearToXYZ, [3]float64{decode(rgb[0]), decode(rgb[1]), decode(rgb[2])})
	return chromath.XYZ{xyz[0] * 100, xyz[1] * 100, xyz[2] * 100}
}

// RGB8 scales a 24-bit color to [0, 1] channels.
func RGB8(r, g, b uint8) chromath.RGB {
	return chromath.RGB{float64(r) / 255, float64(g) / 255, float64(b) / 255}
}

// SRGBToLab converts a gamma encoded sRGB color to Lab relative to white.
func SRGBToLab(rgb chromath.RGB, white chromath.XYZ) chromath.Lab {
	return XYZToLab(SRGBToXYZ(rgb), white)
}
