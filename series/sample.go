package series

import (
	"sort"
	"strings"

	"github.com/yakumocabin/color-change-program/colorimetry"
	"github.com/yakumocabin/color-change-program/palette"
	"github.com/yakumocabin/color-change-program/spectrum"
)

// Required column names. Lookups ignore surrounding whitespace in the
// supplied column names unless an exact match exists.
const (
	ColumnWavelength  = "Wavelength"
	ColumnReflectance = "Reflectance"
)

// Sample is one named measurement as handed over by the input layer: numeric
// columns keyed by header.
type Sample struct {
	Name    string
	Columns map[string][]float64
}

// NewSample builds a Sample from wavelength and reflectance columns.
func NewSample(name string, wavelengths, reflectance []float64) Sample {
	return Sample{
		Name: name,
		Columns: map[string][]float64{
			ColumnWavelength:  wavelengths,
			ColumnReflectance: reflectance,
		},
	}
}

func (s Sample) column(name string) ([]float64, error) {
	if c, ok := s.Columns[name]; ok {
		return c, nil
	}

	var matches []string
	for k := range s.Columns {
		if strings.TrimSpace(k) == name {
			matches = append(matches, k)
		}
	}
	switch len(matches) {
	case 0:
		return nil, &MissingColumnError{Sample: s.Name, Column: name}
	case 1:
		return s.Columns[matches[0]], nil
	}
	sort.Strings(matches)
	return nil, &AmbiguousColumnError{Sample: s.Name, Column: name, Headers: matches}
}

// Spectrum validates the sample's columns and builds its reflectance spectrum.
func (s Sample) Spectrum() (*spectrum.Spectrum, error) {
	w, e := s.column(ColumnWavelength)
	if e != nil {
		return nil, e
	}
	r, e := s.column(ColumnReflectance)
	if e != nil {
		return nil, e
	}
	return spectrum.New(w, r)
}

// Config fixes the grid, illuminant/observer preset and ΔE formula of a run.
type Config struct {
	Grid    spectrum.Grid
	Preset  *colorimetry.Preset
	Formula palette.Formula
}

// DefaultConfig is 380-780 nm at 5 nm, D65 with the 2° observer, and CIE76.
func DefaultConfig() Config {
	return Config{
		Grid:    spectrum.DefaultGrid,
		Preset:  &colorimetry.D65Observer2,
		Formula: palette.CIE76,
	}
}
