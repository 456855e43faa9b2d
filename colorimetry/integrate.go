package colorimetry

import (
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/jkl1337/go-chromath"
	"github.com/yakumocabin/color-change-program/spectrum"
)

// Integrate computes tristimulus values of a resampled reflectance spectrum:
//
//	X = k·Σ S(λ)·R(λ)·x̄(λ)   (likewise Y, Z)
//	k = 100 / Σ S(λ)·ȳ(λ)
//
// so a perfect reflector has Y = 100.
func Integrate(r *spectrum.Resampled, t *Tables) (chromath.XYZ, error) {
	if r.Grid != t.Grid || len(r.Values) != len(t.Illuminant) {
		return chromath.XYZ{}, &GridMismatchError{Spectrum: r.Grid, Tables: t.Grid}
	}

	k := 100 / vecmath.DotProduct(t.Illuminant, t.Y)

	sr := make([]float64, len(r.Values))
	vecmath.MulBlock(sr, t.Illuminant, r.Values)

	return chromath.XYZ{
		k * vecmath.DotProduct(sr, t.X),
		k * vecmath.DotProduct(sr, t.Y),
		k * vecmath.DotProduct(sr, t.Z),
	}, nil
}

// Reflector is a convenience that resamples s onto t.Grid and integrates it.
func Reflector(s *spectrum.Spectrum, t *Tables) (*spectrum.Resampled, chromath.XYZ, error) {
	r, e := spectrum.Resample(s, t.Grid)
	if e != nil {
		return nil, chromath.XYZ{}, e
	}
	xyz, e := Integrate(r, t)
	if e != nil {
		return nil, chromath.XYZ{}, e
	}
	return r, xyz, nil
}
