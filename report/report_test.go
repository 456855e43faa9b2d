package report

import (
	"bytes"
	"encoding/csv"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/flosch/pongo2"
	"github.com/yakumocabin/color-change-program/internal/testutil"
	"github.com/yakumocabin/color-change-program/series"
)

func testSeries(t *testing.T) *series.Series {
	t.Helper()
	w1, r1 := testutil.Flat(0.9, 380, 780, 10)
	w2, r2 := testutil.Ramp(0.1, 0.8, 400, 700, 20)
	w3, r3 := testutil.Ramp(0.7, 0.05, 380, 780, 5)
	s, err := series.Compute([]series.Sample{
		series.NewSample("1.0", w1, r1),
		series.NewSample("1.1", w2, r2),
		{Name: "1.2"},
		series.NewSample("1.3", w3, r3),
	}, series.DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return s
}

func TestDefaultMatchesResultText(t *testing.T) {
	s := testSeries(t)

	var b bytes.Buffer
	if err := Render(&b, s, nil, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}

	var want strings.Builder
	for i := range s.Results() {
		want.WriteString("\n")
		want.WriteString(s.Results()[i].Text())
	}
	if b.String() != want.String() {
		t.Fatalf("report:\n%s\nwant:\n%s", b.String(), want.String())
	}
}

func TestContextOptionsAndDefaults(t *testing.T) {
	s := testSeries(t)

	ctxt := Context(s, map[string]interface{}{"operator": "lab 3"})
	if ctxt["title"] != "Color calculation results" {
		t.Fatalf("title = %v", ctxt["title"])
	}
	if ctxt["operator"] != "lab 3" || ctxt["reference"] != "1.0" || ctxt["formula"] != "CIE76" {
		t.Fatalf("context = %v", ctxt)
	}

	ctxt = Context(s, map[string]interface{}{"title": "Batch 7"})
	if ctxt["title"] != "Batch 7" {
		t.Fatalf("title = %v, want override", ctxt["title"])
	}
}

func TestCustomTemplate(t *testing.T) {
	s := testSeries(t)
	tpl, err := pongo2.FromString(`{{ title }}|{% for d in diagnostics %}{{ d.name }}{% endfor %}|{% for r in results %}{% if r.reference %}*{% endif %}{{ r.name }} {% endfor %}`)
	if err != nil {
		t.Fatalf("FromString: %v", err)
	}

	var b bytes.Buffer
	if err := Render(&b, s, tpl, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got, want := b.String(), "Color calculation results|1.2|*1.0 1.1 1.3 "; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteTable(t *testing.T) {
	s := testSeries(t)

	var b bytes.Buffer
	if err := WriteTable(&b, s); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	rows, err := csv.NewReader(&b).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(rows) != 4 || len(rows[0]) != 10 {
		t.Fatalf("rows = %d x %d, want 4 x 10", len(rows), len(rows[0]))
	}
	if rows[1][0] != "1.0" || rows[1][9] != "0.00" {
		t.Fatalf("reference row = %v", rows[1])
	}
}

func TestWriteSpectra(t *testing.T) {
	s := testSeries(t)

	var b bytes.Buffer
	if err := WriteSpectra(&b, s); err != nil {
		t.Fatalf("WriteSpectra: %v", err)
	}
	rows, err := csv.NewReader(&b).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(rows) != 81 {
		t.Fatalf("rows = %d, want 81", len(rows))
	}
	if strings.Join(rows[0], ",") != "Wavelength,1.0,1.1,1.3" {
		t.Fatalf("header = %v", rows[0])
	}
	if rows[1][0] != "380" || rows[80][0] != "775" || rows[1][1] != "0.900000" {
		t.Fatalf("rows = %v ... %v", rows[1], rows[80])
	}
}

func TestExport(t *testing.T) {
	s := testSeries(t)
	dir := filepath.Join(t.TempDir(), "out")

	if err := Export(dir, s, nil, nil); err != nil {
		t.Fatalf("Export: %v", err)
	}

	for _, name := range []string{ResultsFile, TableFile, SpectraFile, SheetFile, "1.0_color.png", "1.3_color.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}

	f, err := os.Open(filepath.Join(dir, "1.1_color.png"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	r, _ := s.Lookup("1.1")
	got := img.At(100, 100)
	gr, gg, gb, _ := got.RGBA()
	want := RGBA(r.RGB)
	if uint8(gr>>8) != want.R || uint8(gg>>8) != want.G || uint8(gb>>8) != want.B {
		t.Fatalf("swatch color = %v, want %v", got, want)
	}
}

func TestSheetLayout(t *testing.T) {
	s := testSeries(t)
	b := Sheet(s).Bounds()
	if b.Dx() != 3*cell || b.Dy() != cell {
		t.Fatalf("sheet = %v, want %dx%d", b, 3*cell, cell)
	}
}

func TestFileName(t *testing.T) {
	tests := map[string]string{
		"1.0":      "1.0",
		"a/b":      "a_b",
		" ..":      "sample",
		"":         "sample",
		"x:y?":     "x_y_",
		"plain ok": "plain ok",
	}
	for in, want := range tests {
		if got := FileName(in); got != want {
			t.Fatalf("FileName(%q) = %q, want %q", in, got, want)
		}
	}
}
