package series

import (
	"fmt"

	"github.com/jkl1337/go-chromath"
	"github.com/yakumocabin/color-change-program/colorspace"
)

// Comparison is the difference between a user-picked color and one sample.
type Comparison struct {
	Sample string
	RGB    chromath.RGB
	Hex    string
	Lab    chromath.Lab
	DeltaE float64
}

// CompareColor converts a 24-bit sRGB color to Lab under the series' preset
// and measures it against the named sample, or against the reference when
// name is empty. The series' own reference and ΔE values are untouched.
func (s *Series) CompareColor(c [3]uint8, name string) (Comparison, error) {
	var (
		r *Result
		e error
	)
	if name == "" {
		r, e = s.Reference()
	} else if len(s.results) == 0 {
		e = &NoReferenceError{}
	} else {
		r, e = s.Lookup(name)
	}
	if e != nil {
		return Comparison{}, e
	}

	rgb := colorspace.RGB8(c[0], c[1], c[2])
	lab := colorspace.SRGBToLab(rgb, s.cfg.Preset.White)
	return Comparison{
		Sample: r.Name,
		RGB:    rgb,
		Hex:    fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]),
		Lab:    lab,
		DeltaE: s.cfg.Formula.Distance(lab, r.Lab),
	}, nil
}
