package report

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/flosch/pongo2"
	"github.com/pkg/errors"
	"github.com/yakumocabin/color-change-program/series"
)

// Export file names inside the output directory.
const (
	ResultsFile = "results.txt"
	TableFile   = "results.csv"
	SpectraFile = "spectra.csv"
	SheetFile   = "swatches.png"
)

// Export writes the text report, the chart table, the resampled spectra and
// the swatch images of s into dir, creating it if needed.
func Export(dir string, s *series.Series, tpl *pongo2.Template, opts map[string]interface{}) error {
	if e := os.MkdirAll(dir, 0755); e != nil {
		return errors.Wrap(e, "creating output directory")
	}

	var b bytes.Buffer
	if e := Render(&b, s, tpl, opts); e != nil {
		return e
	}
	if e := ioutil.WriteFile(filepath.Join(dir, ResultsFile), b.Bytes(), 0644); e != nil {
		return errors.Wrap(e, "writing results")
	}

	b.Reset()
	if e := WriteTable(&b, s); e != nil {
		return e
	}
	if e := ioutil.WriteFile(filepath.Join(dir, TableFile), b.Bytes(), 0644); e != nil {
		return errors.Wrap(e, "writing table")
	}

	b.Reset()
	if e := WriteSpectra(&b, s); e != nil {
		return e
	}
	if e := ioutil.WriteFile(filepath.Join(dir, SpectraFile), b.Bytes(), 0644); e != nil {
		return errors.Wrap(e, "writing spectra")
	}

	if e := WriteSwatches(dir, s); e != nil {
		return e
	}
	if len(s.Results()) > 0 {
		return writePNG(filepath.Join(dir, SheetFile), Sheet(s))
	}
	return nil
}
