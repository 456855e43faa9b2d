package series

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/yakumocabin/color-change-program/colorimetry"
	"github.com/yakumocabin/color-change-program/internal/testutil"
	"github.com/yakumocabin/color-change-program/palette"
	"github.com/yakumocabin/color-change-program/spectrum"
)

func flatSample(name string, v float64) Sample {
	w, r := testutil.Flat(v, 380, 780, 10)
	return NewSample(name, w, r)
}

func rampSample(name string, lo, hi float64) Sample {
	w, r := testutil.Ramp(lo, hi, 400, 700, 20)
	return NewSample(name, w, r)
}

func TestPerfectReflector(t *testing.T) {
	s, err := Compute([]Sample{flatSample("white", 1)}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	r := s.Results()[0]
	testutil.RequireTripleNear(t, "XYZ", r.XYZ, [3]float64{95.05, 100, 108.88}, 0.02)
	testutil.RequireTripleNear(t, "Lab", r.Lab, [3]float64{100, 0, 0}, 0.05)
	testutil.RequireTripleNear(t, "RGB", r.RGB, [3]float64{1, 1, 1}, 1e-3)
	if r.DeltaE != 0 {
		t.Fatalf("reference ΔE = %v, want 0", r.DeltaE)
	}
}

func TestIdenticalSamplesHaveZeroDeltaE(t *testing.T) {
	var samples []Sample
	for _, name := range []string{"1.0", "1.1", "1.2", "1.3", "1.4"} {
		samples = append(samples, rampSample(name, 0.15, 0.75))
	}

	s, err := Compute(samples, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(s.Results()) != 5 || len(s.Diagnostics()) != 0 {
		t.Fatalf("results/diagnostics = %d/%d, want 5/0", len(s.Results()), len(s.Diagnostics()))
	}
	for _, r := range s.Results() {
		if r.DeltaE != 0 {
			t.Fatalf("%s: ΔE = %v, want 0", r.Name, r.DeltaE)
		}
	}
	ref, err := s.Reference()
	if err != nil || ref.Name != "1.0" {
		t.Fatalf("Reference() = %v, %v, want 1.0", ref, err)
	}
}

func TestMissingColumnIsSkipped(t *testing.T) {
	bad := Sample{Name: "1.1", Columns: map[string][]float64{"Wavelength": {400, 500}}}
	s, err := Compute([]Sample{
		rampSample("1.0", 0.1, 0.5),
		bad,
		rampSample("1.2", 0.5, 0.1),
	}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if len(s.Results()) != 2 {
		t.Fatalf("results = %d, want 2", len(s.Results()))
	}
	if s.Results()[1].Name != "1.2" {
		t.Fatalf("second result = %s, want 1.2", s.Results()[1].Name)
	}
	if !(s.Results()[1].DeltaE > 0) {
		t.Fatalf("ΔE = %v, want > 0", s.Results()[1].DeltaE)
	}

	d := s.Diagnostics()
	if len(d) != 1 || d[0].Name != "1.1" {
		t.Fatalf("diagnostics = %v, want one for 1.1", d)
	}
	var mce *MissingColumnError
	if !errors.As(d[0].Err, &mce) || mce.Column != ColumnReflectance {
		t.Fatalf("diagnostic = %v, want missing Reflectance", d[0].Err)
	}
}

func TestFirstSuccessfulSampleIsReference(t *testing.T) {
	s, err := Compute([]Sample{
		NewSample("1.0", []float64{500}, []float64{0.5}),
		rampSample("1.1", 0.2, 0.6),
		flatSample("1.2", 0.4),
	}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	var ide *spectrum.InsufficientDataError
	if len(s.Diagnostics()) != 1 || !errors.As(s.Diagnostics()[0].Err, &ide) {
		t.Fatalf("diagnostics = %v, want InsufficientDataError", s.Diagnostics())
	}
	ref, _ := s.Reference()
	if ref.Name != "1.1" || ref.DeltaE != 0 {
		t.Fatalf("reference = %s (ΔE %v), want 1.1 (0)", ref.Name, ref.DeltaE)
	}
	other, _ := s.Lookup("1.2")
	want := palette.DeltaE(other.Lab, ref.Lab)
	if other.DeltaE != want {
		t.Fatalf("ΔE = %v, want %v", other.DeltaE, want)
	}
}

func TestNonFiniteReflectanceIsSkipped(t *testing.T) {
	s, err := Compute([]Sample{
		NewSample("1.0", []float64{400, 500, 600}, []float64{0.5, math.NaN(), 0.5}),
		flatSample("1.1", 0.5),
		flatSample("1.2", 0.5),
	}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	var ire *spectrum.InvalidReflectanceError
	d := s.Diagnostics()
	if len(d) != 1 || d[0].Name != "1.0" || !errors.As(d[0].Err, &ire) {
		t.Fatalf("diagnostics = %v, want InvalidReflectanceError for 1.0", d)
	}
	ref, _ := s.Reference()
	if ref.Name != "1.1" {
		t.Fatalf("reference = %s, want 1.1", ref.Name)
	}
	for _, r := range s.Results() {
		testutil.RequireFinite(t, r.Lab[:])
		if r.DeltaE != 0 {
			t.Fatalf("%s: ΔE = %v, want 0", r.Name, r.DeltaE)
		}
	}
}

func TestTrimmedColumnNames(t *testing.T) {
	w, r := testutil.Flat(0.3, 380, 780, 20)
	smp := Sample{Name: "padded", Columns: map[string][]float64{" Wavelength": w, "Reflectance  ": r}}
	s, err := Compute([]Sample{smp}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(s.Results()) != 1 {
		t.Fatalf("diagnostics = %v", s.Diagnostics())
	}
}

func TestAmbiguousColumnNamesAreSkipped(t *testing.T) {
	w, r := testutil.Flat(0.3, 380, 780, 20)
	smp := Sample{Name: "padded", Columns: map[string][]float64{
		"Wavelength ": w,
		" Wavelength": w,
		"Reflectance": r,
	}}
	s, err := Compute([]Sample{smp}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	var ace *AmbiguousColumnError
	d := s.Diagnostics()
	if len(s.Results()) != 0 || len(d) != 1 || !errors.As(d[0].Err, &ace) {
		t.Fatalf("diagnostics = %v, want AmbiguousColumnError", d)
	}
	if ace.Column != ColumnWavelength || len(ace.Headers) != 2 || ace.Headers[0] != " Wavelength" {
		t.Fatalf("error = %+v", ace)
	}

	// An exact header wins over padded ones.
	smp.Columns[ColumnWavelength] = w
	s, _ = Compute([]Sample{smp}, DefaultConfig())
	if len(s.Results()) != 1 {
		t.Fatalf("diagnostics = %v", s.Diagnostics())
	}
}

func TestDuplicateNameIsSkipped(t *testing.T) {
	s, _ := Compute([]Sample{flatSample("a", 0.2), flatSample("a", 0.8)}, DefaultConfig())
	var dse DuplicateSampleError
	if len(s.Diagnostics()) != 1 || !errors.As(s.Diagnostics()[0].Err, &dse) {
		t.Fatalf("diagnostics = %v, want DuplicateSampleError", s.Diagnostics())
	}
}

func TestNoReference(t *testing.T) {
	s, err := Compute([]Sample{{Name: "empty"}}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	var nre *NoReferenceError
	if _, err := s.Reference(); !errors.As(err, &nre) {
		t.Fatalf("Reference err = %v, want NoReferenceError", err)
	}
	if _, err := s.CompareColor([3]uint8{1, 2, 3}, ""); !errors.As(err, &nre) {
		t.Fatalf("CompareColor err = %v, want NoReferenceError", err)
	}
	if _, err := s.CompareColor([3]uint8{1, 2, 3}, "empty"); !errors.As(err, &nre) {
		t.Fatalf("CompareColor err = %v, want NoReferenceError", err)
	}
}

func TestGridMismatchAbortsRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid = spectrum.Grid{Start: 383, Stop: 780, Step: 5}
	_, err := Compute([]Sample{flatSample("a", 1)}, cfg)
	var gme *colorimetry.GridMismatchError
	if !errors.As(err, &gme) {
		t.Fatalf("err = %v, want GridMismatchError", err)
	}
}

func TestSpectraRetained(t *testing.T) {
	s, _ := Compute([]Sample{rampSample("a", 0.1, 0.9), flatSample("b", 0.5)}, DefaultConfig())
	if len(s.Spectra()) != 2 {
		t.Fatalf("spectra = %d, want 2", len(s.Spectra()))
	}
	rs, err := s.Spectrum("a")
	if err != nil {
		t.Fatalf("Spectrum: %v", err)
	}
	ps := rs.Pairs()
	if len(ps) != 80 || ps[0].Wavelength != 380 || ps[79].Wavelength != 775 {
		t.Fatalf("pairs = %d [%v..%v], want 80 [380..775]", len(ps), ps[0].Wavelength, ps[len(ps)-1].Wavelength)
	}
	if _, err := s.Spectrum("zzz"); err == nil {
		t.Fatal("expected error for unknown sample")
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	s, err := Compute([]Sample{flatSample("1.0", 1), flatSample("1.1", 0.5)}, DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	rs := s.Results()
	rs[1].DeltaE = -1
	rs[0].Name = "changed"
	delete(s.Spectra(), "1.0")

	if r := s.Results(); r[1].DeltaE <= 0 || r[0].Name != "1.0" {
		t.Fatalf("results changed through copy: %+v", r)
	}
	if _, err := s.Spectrum("1.0"); err != nil {
		t.Fatalf("Spectrum: %v", err)
	}
}

func TestCompareColor(t *testing.T) {
	s, _ := Compute([]Sample{flatSample("white", 1), flatSample("gray", 0.2)}, DefaultConfig())

	c, err := s.CompareColor([3]uint8{255, 255, 255}, "white")
	if err != nil {
		t.Fatalf("CompareColor: %v", err)
	}
	if c.Hex != "#ffffff" || c.Sample != "white" {
		t.Fatalf("comparison = %+v", c)
	}
	if c.DeltaE > 0.1 {
		t.Fatalf("ΔE(white, white sample) = %v, want < 0.1", c.DeltaE)
	}

	g, err := s.CompareColor([3]uint8{255, 255, 255}, "gray")
	if err != nil {
		t.Fatalf("CompareColor: %v", err)
	}
	if !(g.DeltaE > 40) {
		t.Fatalf("ΔE(white, gray sample) = %v, want > 40", g.DeltaE)
	}

	// The series itself is unaffected.
	ref, _ := s.Reference()
	if ref.Name != "white" || ref.DeltaE != 0 {
		t.Fatalf("reference changed to %s", ref.Name)
	}

	var snf SampleNotFoundError
	if _, err := s.CompareColor([3]uint8{0, 0, 0}, "nope"); !errors.As(err, &snf) {
		t.Fatalf("err = %v, want SampleNotFoundError", err)
	}
}

func TestSetReference(t *testing.T) {
	s, _ := Compute([]Sample{flatSample("a", 0.9), flatSample("b", 0.5), flatSample("c", 0.1)}, DefaultConfig())
	if err := s.SetReference("b"); err != nil {
		t.Fatalf("SetReference: %v", err)
	}
	b, _ := s.Lookup("b")
	a, _ := s.Lookup("a")
	if b.DeltaE != 0 || a.DeltaE != palette.DeltaE(a.Lab, b.Lab) {
		t.Fatalf("ΔE a/b = %v/%v", a.DeltaE, b.DeltaE)
	}
	if err := s.SetReference("x"); err == nil {
		t.Fatal("expected error for unknown reference")
	}
}

func TestResultText(t *testing.T) {
	s, _ := Compute([]Sample{flatSample("1.0", 1), flatSample("1.1", 0.5)}, DefaultConfig())
	txt := s.Results()[1].Text()

	for _, want := range []string{
		"--- 1.1 results ---\n",
		"CIELab: [76.06",
		"Hex color: #",
		"HSV Hue: ",
		"°\n",
		"ΔE: 23.93\n",
	} {
		if !strings.Contains(txt, want) {
			t.Fatalf("text block missing %q:\n%s", want, txt)
		}
	}
}
