package spectrum

import (
	"math"
	"sort"
)

// Pair is a single (wavelength, reflectance) measurement.
type Pair struct {
	Wavelength  float64
	Reflectance float64
}

// Spectrum is an immutable reflectance curve keyed by strictly increasing
// wavelength.
type Spectrum struct {
	wavelengths []float64
	values      []float64
}

type byWavelength []Pair

func (ps byWavelength) Len() int           { return len(ps) }
func (ps byWavelength) Less(i, j int) bool { return ps[i].Wavelength < ps[j].Wavelength }
func (ps byWavelength) Swap(i, j int)      { ps[i], ps[j] = ps[j], ps[i] }

// New builds a Spectrum from unordered measurement columns. When a wavelength
// appears more than once the value supplied last wins. Every wavelength and
// reflectance must be finite.
func New(wavelengths, reflectance []float64) (*Spectrum, error) {
	if len(wavelengths) != len(reflectance) {
		return nil, &LengthMismatchError{Wavelengths: len(wavelengths), Reflectance: len(reflectance)}
	}

	ps := make([]Pair, len(wavelengths))
	for i, w := range wavelengths {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, &InvalidWavelengthError{Index: i, Value: w}
		}
		if v := reflectance[i]; math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &InvalidReflectanceError{Index: i, Value: v}
		}
		ps[i] = Pair{w, reflectance[i]}
	}
	sort.Stable(byWavelength(ps))

	s := &Spectrum{
		wavelengths: make([]float64, 0, len(ps)),
		values:      make([]float64, 0, len(ps)),
	}
	for _, p := range ps {
		n := len(s.wavelengths)
		if n > 0 && s.wavelengths[n-1] == p.Wavelength {
			s.values[n-1] = p.Reflectance
			continue
		}
		s.wavelengths = append(s.wavelengths, p.Wavelength)
		s.values = append(s.values, p.Reflectance)
	}

	if len(s.wavelengths) < 2 {
		return nil, &InsufficientDataError{Points: len(s.wavelengths)}
	}
	return s, nil
}

// FromPairs builds a Spectrum from measurement pairs.
func FromPairs(ps []Pair) (*Spectrum, error) {
	w := make([]float64, len(ps))
	r := make([]float64, len(ps))
	for i, p := range ps {
		w[i], r[i] = p.Wavelength, p.Reflectance
	}
	return New(w, r)
}

// Len returns the number of distinct wavelengths.
func (s *Spectrum) Len() int { return len(s.wavelengths) }

// Range returns the shortest and longest measured wavelength.
func (s *Spectrum) Range() (min, max float64) {
	return s.wavelengths[0], s.wavelengths[len(s.wavelengths)-1]
}

// Pairs returns the measurements in ascending wavelength order.
func (s *Spectrum) Pairs() []Pair {
	ps := make([]Pair, len(s.wavelengths))
	for i := range ps {
		ps[i] = Pair{s.wavelengths[i], s.values[i]}
	}
	return ps
}

// At returns the reflectance at w, linearly interpolated between the two
// neighbouring measurements. Outside the measured range the nearest endpoint
// value is held.
func (s *Spectrum) At(w float64) float64 {
	n := len(s.wavelengths)
	i := sort.SearchFloat64s(s.wavelengths, w)
	switch {
	case i < n && s.wavelengths[i] == w:
		return s.values[i]
	case i == 0:
		return s.values[0]
	case i == n:
		return s.values[n-1]
	}

	w0, w1 := s.wavelengths[i-1], s.wavelengths[i]
	v0, v1 := s.values[i-1], s.values[i]
	return v0 + (v1-v0)*(w-w0)/(w1-w0)
}
