package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/yakumocabin/color-change-program/series"
)

func ftoa(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// WriteTable writes one CSV row per result with the values a series chart
// plots: Lab, RGB in 0-255, hue and ΔE.
func WriteTable(w io.Writer, s *series.Series) error {
	cw := csv.NewWriter(w)
	cw.Write([]string{"Sample", "L", "a", "b", "R", "G", "B", "Hex", "Hue", "DeltaE"})
	results := s.Results()
	for i := range results {
		r := &results[i]
		rgb := r.RGB255()
		cw.Write([]string{
			r.Name,
			ftoa(r.Lab[0], 4), ftoa(r.Lab[1], 4), ftoa(r.Lab[2], 4),
			ftoa(rgb[0], 2), ftoa(rgb[1], 2), ftoa(rgb[2], 2),
			r.Hex,
			ftoa(r.Hue, 2),
			ftoa(r.DeltaE, 2),
		})
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "writing table")
}

// WriteSpectra writes the resampled spectra as CSV: a Wavelength column
// followed by one reflectance column per result, in result order.
func WriteSpectra(w io.Writer, s *series.Series) error {
	names := make([]string, 0, len(s.Results()))
	for _, r := range s.Results() {
		names = append(names, r.Name)
	}
	if len(names) == 0 {
		return nil
	}

	cw := csv.NewWriter(w)
	cw.Write(append([]string{"Wavelength"}, names...))

	spectra := s.Spectra()
	first := spectra[names[0]]
	for k := 0; k < first.Len(); k++ {
		row := []string{strconv.FormatFloat(first.Grid.At(k), 'f', -1, 64)}
		for _, n := range names {
			row = append(row, ftoa(spectra[n].Values[k], 6))
		}
		cw.Write(row)
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "writing spectra")
}
