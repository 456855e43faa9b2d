package image

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"github.com/esimov/colorquant"
	"github.com/jkl1337/go-chromath"
	"github.com/yakumocabin/color-change-program/colorspace"
	"github.com/yakumocabin/color-change-program/palette"
)

// Swatch is one color of a quantized image, its Lab equivalent and the number
// of sampled pixels it covers.
type Swatch struct {
	RGB   color.RGBA
	Hex   string
	Lab   chromath.Lab
	Count int
	// DeltaE is filled in by RankByDistance.
	DeltaE float64
}

type byCount []Swatch

func (ss byCount) Len() int      { return len(ss) }
func (ss byCount) Swap(i, j int) { ss[i], ss[j] = ss[j], ss[i] }
func (ss byCount) Less(i, j int) bool {
	if ss[i].Count != ss[j].Count {
		return ss[i].Count > ss[j].Count
	}
	return ss[i].Hex < ss[j].Hex
}

type byDeltaE []Swatch

func (ss byDeltaE) Len() int           { return len(ss) }
func (ss byDeltaE) Less(i, j int) bool { return ss[i].DeltaE < ss[j].DeltaE }
func (ss byDeltaE) Swap(i, j int)      { ss[i], ss[j] = ss[j], ss[i] }

// GetColors returns a map of an image's opaque colors and the number of
// sampled pixels each occupies, reading every step-th pixel in both directions.
func GetColors(img image.Image, step int) map[color.RGBA]int {
	if step < 1 {
		step = 1
	}
	m := make(map[color.RGBA]int)

	b := img.Bounds()
	for x := b.Min.X; x < b.Max.X; x += step {
		for y := b.Min.Y; y < b.Max.Y; y += step {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if c.A != 0 {
				m[color.RGBA{c.R, c.G, c.B, 255}]++
			}
		}
	}

	return m
}

// Quantize reduces img to at most num colors without dithering.
func Quantize(img image.Image, num int) image.Image {
	b := img.Bounds()
	o := image.NewNRGBA(image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Max.Y))
	colorquant.NoDither.Quantize(img, o, num, false, true)
	return o
}

// Swatches quantizes img to num colors and returns them by prevalence, with Lab
// values relative to white.
func Swatches(img image.Image, num, step int, white chromath.XYZ) ([]Swatch, error) {
	if num < 1 {
		return nil, fmt.Errorf("image: need at least one color, got %d", num)
	}

	m := GetColors(Quantize(img, num), step)
	if len(m) == 0 {
		return nil, fmt.Errorf("image: no opaque pixels")
	}

	ss := make([]Swatch, 0, len(m))
	for c, n := range m {
		rgb := colorspace.RGB8(c.R, c.G, c.B)
		ss = append(ss, Swatch{
			RGB:   c,
			Hex:   fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
			Lab:   colorspace.SRGBToLab(rgb, white),
			Count: n,
		})
	}
	sort.Stable(byCount(ss))

	return ss, nil
}

// RankByDistance sets each swatch's difference to lab under f and orders the
// swatches from closest to farthest.
func RankByDistance(ss []Swatch, lab chromath.Lab, f palette.Formula) {
	for i := range ss {
		ss[i].DeltaE = f.Distance(ss[i].Lab, lab)
	}
	sort.Stable(byDeltaE(ss))
}
