package colorimetry

import (
	"math"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/yakumocabin/color-change-program/spectrum"
)

// Preset pairs an illuminant with a standard observer. The Lab reference
// white depends on both, so they are only selectable together.
type Preset struct {
	Name       string
	Illuminant string
	Observer   string
	// White is the reference white in XYZ, scaled so Y = 100.
	White chromath.XYZ

	spd []float64
	cmf [][3]float64
}

// D65Observer2 is CIE standard illuminant D65 with the CIE 1931 2° observer.
// Its white point is derived from the chromaticity x = 0.31270, y = 0.32900.
var D65Observer2 = Preset{
	Name:       "D65/2",
	Illuminant: "D65",
	Observer:   "CIE 1931 2 Degree Standard Observer",
	White:      whiteFromChromaticity(0.31270, 0.32900),
	spd:        cieD65[:],
	cmf:        cie1931Observer2[:],
}

var presets = map[string]*Preset{
	"d65/2": &D65Observer2,
	"d65":   &D65Observer2,
}

// PresetByName looks up a preset, ignoring case and surrounding blanks.
func PresetByName(name string) (*Preset, error) {
	if p, ok := presets[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, nil
	}
	return nil, UnknownPresetError(name)
}

func whiteFromChromaticity(x, y float64) chromath.XYZ {
	return chromath.XYZ{x / y * 100, 100, (1 - x - y) / y * 100}
}

// Tables holds illuminant and color-matching data sampled on Grid.
type Tables struct {
	Grid       spectrum.Grid
	Illuminant []float64
	X, Y, Z    []float64
}

// Tables samples the preset on g. g must start on and step by whole
// multiples of the stored 5 nm sampling and lie within 380-780 nm.
func (p *Preset) Tables(g spectrum.Grid) (*Tables, error) {
	n := g.Len()
	offset, okOffset := whole((g.Start - tableGrid.Start) / tableGrid.Step)
	stride, okStride := whole(g.Step / tableGrid.Step)
	if n == 0 || !okOffset || !okStride || offset < 0 || stride < 1 || offset+(n-1)*stride >= len(p.spd) {
		return nil, &GridMismatchError{Spectrum: g, Tables: tableGrid}
	}

	t := &Tables{
		Grid:       g,
		Illuminant: make([]float64, n),
		X:          make([]float64, n),
		Y:          make([]float64, n),
		Z:          make([]float64, n),
	}
	for k := 0; k < n; k++ {
		i := offset + k*stride
		t.Illuminant[k] = p.spd[i]
		t.X[k], t.Y[k], t.Z[k] = p.cmf[i][0], p.cmf[i][1], p.cmf[i][2]
	}
	return t, nil
}

func whole(v float64) (int, bool) {
	r := math.Round(v)
	return int(r), math.Abs(v-r) < 1e-9
}
