package series

import (
	"errors"

	"github.com/jkl1337/go-chromath"
	"github.com/yakumocabin/color-change-program/colorimetry"
	"github.com/yakumocabin/color-change-program/colorspace"
	"github.com/yakumocabin/color-change-program/spectrum"
)

// Series is the outcome of one calculation run: results in input order, a
// diagnostic per skipped sample, and the resampled spectrum of every result.
// The first result is the reference unless SetReference picks another.
type Series struct {
	cfg         Config
	results     []Result
	diagnostics []Diagnostic
	spectra     map[string]*spectrum.Resampled
	index       map[string]int
	reference   int
}

// Compute runs every sample through resampling, integration and color
// conversion. Bad samples are skipped and recorded as diagnostics; errors that
// would hit every sample alike, such as a grid the tables cannot serve, abort
// the run.
func Compute(samples []Sample, cfg Config) (*Series, error) {
	if cfg.Preset == nil {
		cfg.Preset = &colorimetry.D65Observer2
	}
	tables, e := cfg.Preset.Tables(cfg.Grid)
	if e != nil {
		return nil, e
	}

	s := &Series{
		cfg:     cfg,
		spectra: make(map[string]*spectrum.Resampled),
		index:   make(map[string]int),
	}

	for _, smp := range samples {
		if _, ok := s.index[smp.Name]; ok {
			s.skip(smp.Name, DuplicateSampleError(smp.Name))
			continue
		}

		sp, e := smp.Spectrum()
		if e != nil {
			s.skip(smp.Name, e)
			continue
		}
		rs, xyz, e := colorimetry.Reflector(sp, tables)
		if e != nil {
			var gme *colorimetry.GridMismatchError
			if errors.As(e, &gme) {
				return nil, e
			}
			s.skip(smp.Name, e)
			continue
		}

		r := s.convert(smp.Name, xyz)
		if len(s.results) > 0 {
			r.DeltaE = cfg.Formula.Distance(r.Lab, s.results[s.reference].Lab)
		}
		s.index[smp.Name] = len(s.results)
		s.results = append(s.results, r)
		s.spectra[smp.Name] = rs
	}

	return s, nil
}

func (s *Series) skip(name string, e error) {
	s.diagnostics = append(s.diagnostics, Diagnostic{Name: name, Err: e})
}

func (s *Series) convert(name string, xyz chromath.XYZ) Result {
	rgb := colorspace.XYZToSRGB(xyz)
	hsv := colorspace.RGBToHSV(rgb)
	return Result{
		Name: name,
		XYZ:  xyz,
		Lab:  colorspace.XYZToLab(xyz, s.cfg.Preset.White),
		RGB:  rgb,
		Hex:  colorspace.RGBToHex(rgb),
		HSV:  hsv,
		Hue:  colorspace.HueDegrees(hsv.H),
	}
}

// Config returns the configuration the series was computed with.
func (s *Series) Config() Config { return s.cfg }

// Results returns a copy of the computed samples in input order.
func (s *Series) Results() []Result {
	rs := make([]Result, len(s.results))
	copy(rs, s.results)
	return rs
}

// Diagnostics returns one entry per skipped sample, in input order.
func (s *Series) Diagnostics() []Diagnostic { return s.diagnostics }

// Spectra returns the resampled spectrum of every computed sample. The map is a
// copy; the spectra themselves are shared and must not be modified.
func (s *Series) Spectra() map[string]*spectrum.Resampled {
	m := make(map[string]*spectrum.Resampled, len(s.spectra))
	for k, v := range s.spectra {
		m[k] = v
	}
	return m
}

// Spectrum returns the resampled spectrum of the named sample.
func (s *Series) Spectrum(name string) (*spectrum.Resampled, error) {
	if rs, ok := s.spectra[name]; ok {
		return rs, nil
	}
	return nil, SampleNotFoundError(name)
}

// Lookup returns the result for the named sample. The result belongs to the
// series; SetReference updates its ΔE.
func (s *Series) Lookup(name string) (*Result, error) {
	i, ok := s.index[name]
	if !ok {
		return nil, SampleNotFoundError(name)
	}
	return &s.results[i], nil
}

// Reference returns the sample every ΔE is measured against.
func (s *Series) Reference() (*Result, error) {
	if len(s.results) == 0 {
		return nil, &NoReferenceError{}
	}
	return &s.results[s.reference], nil
}

// SetReference makes the named sample the reference and recomputes every ΔE.
func (s *Series) SetReference(name string) error {
	if len(s.results) == 0 {
		return &NoReferenceError{}
	}
	i, ok := s.index[name]
	if !ok {
		return SampleNotFoundError(name)
	}

	s.reference = i
	ref := s.results[i].Lab
	for j := range s.results {
		if j == i {
			s.results[j].DeltaE = 0
			continue
		}
		s.results[j].DeltaE = s.cfg.Formula.Distance(s.results[j].Lab, ref)
	}
	return nil
}
