package spectrum

// Resampled is a reflectance curve sampled at every point of Grid.
// len(Values) == Grid.Len().
type Resampled struct {
	Grid   Grid
	Values []float64
}

// Resample evaluates s at every point of g.
func Resample(s *Spectrum, g Grid) (*Resampled, error) {
	if e := g.Validate(); e != nil {
		return nil, e
	}
	if s == nil || s.Len() < 2 {
		n := 0
		if s != nil {
			n = s.Len()
		}
		return nil, &InsufficientDataError{Points: n}
	}

	r := &Resampled{Grid: g, Values: make([]float64, g.Len())}
	for k := range r.Values {
		r.Values[k] = s.At(g.At(k))
	}
	return r, nil
}

// Len returns the number of grid points.
func (r *Resampled) Len() int { return len(r.Values) }

// Pairs returns the resampled curve as (wavelength, reflectance) pairs for
// plotting and export.
func (r *Resampled) Pairs() []Pair {
	ps := make([]Pair, len(r.Values))
	for k, v := range r.Values {
		ps[k] = Pair{r.Grid.At(k), v}
	}
	return ps
}
