// Package input turns measurement files into series samples. It sits outside
// the calculation core: files it cannot read at all become diagnostics, while
// column checks are left to the series.
package input

import (
	"encoding/csv"
	"io"
	"io/ioutil"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/yakumocabin/color-change-program/series"
	"gopkg.in/yaml.v3"
)

// Load reads every path in order. Directories contribute their *.csv, *.yaml,
// *.yml and *.json files sorted by name. A file that cannot be read is
// recorded as a diagnostic under its sample name, Name(path).
func Load(paths ...string) ([]series.Sample, []series.Diagnostic, error) {
	var (
		samples     []series.Sample
		diagnostics []series.Diagnostic
	)

	files, e := expand(paths)
	if e != nil {
		return nil, nil, e
	}

	for _, f := range files {
		switch strings.ToLower(filepath.Ext(f)) {
		case ".yaml", ".yml", ".json":
			ss, e := LoadYAML(f)
			if e != nil {
				diagnostics = append(diagnostics, series.Diagnostic{Name: Name(f), Err: e})
				continue
			}
			samples = append(samples, ss...)
		default:
			s, e := LoadCSV(f)
			if e != nil {
				diagnostics = append(diagnostics, series.Diagnostic{Name: Name(f), Err: e})
				continue
			}
			samples = append(samples, s)
		}
	}

	return samples, diagnostics, nil
}

func expand(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		fi, e := os.Stat(p)
		if e != nil {
			return nil, errors.Wrap(e, "reading input")
		}
		if !fi.IsDir() {
			files = append(files, p)
			continue
		}

		entries, e := ioutil.ReadDir(p)
		if e != nil {
			return nil, errors.Wrap(e, "reading input directory")
		}
		var found []string
		for _, en := range entries {
			switch strings.ToLower(filepath.Ext(en.Name())) {
			case ".csv", ".yaml", ".yml", ".json":
				if !en.IsDir() {
					found = append(found, filepath.Join(p, en.Name()))
				}
			}
		}
		sort.Strings(found)
		files = append(files, found...)
	}
	return files, nil
}

// Name derives a sample name from a file path: the base name without extension.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// LoadCSV reads one sample from a CSV file with a header row.
func LoadCSV(path string) (series.Sample, error) {
	f, e := os.Open(path)
	if e != nil {
		return series.Sample{}, errors.Wrap(e, "opening sample")
	}
	defer f.Close()

	return ReadCSV(Name(path), f)
}

// ReadCSV reads a header row followed by numeric rows. Every header becomes a
// column and all columns stay aligned row by row. A row whose Wavelength or
// Reflectance cell is blank is dropped as a whole, as are the empty trailing
// rows of exported spreadsheets; a blank cell in any other column reads as NaN.
func ReadCSV(name string, r io.Reader) (series.Sample, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows, e := cr.ReadAll()
	if e != nil {
		return series.Sample{}, errors.Wrapf(e, "parsing %s", name)
	}
	if len(rows) == 0 {
		return series.Sample{}, errors.Errorf("%s: no header row", name)
	}

	header := rows[0]
	required := make([]bool, len(header))
	for j, h := range header {
		switch strings.TrimSpace(h) {
		case series.ColumnWavelength, series.ColumnReflectance:
			required[j] = true
		}
	}

	cols := make([][]float64, len(header))
	vals := make([]float64, len(header))
next:
	for i, row := range rows[1:] {
		for j := range header {
			cell := ""
			if j < len(row) {
				cell = strings.TrimSpace(row[j])
			}
			if cell == "" {
				if required[j] {
					continue next
				}
				vals[j] = math.NaN()
				continue
			}
			v, e := strconv.ParseFloat(cell, 64)
			if e != nil {
				return series.Sample{}, errors.Errorf("%s: row %d, column '%s': %v", name, i+2, header[j], e.(*strconv.NumError).Err)
			}
			vals[j] = v
		}
		for j, v := range vals {
			cols[j] = append(cols[j], v)
		}
	}

	s := series.Sample{Name: name, Columns: make(map[string][]float64, len(header))}
	for j, h := range header {
		s.Columns[h] = cols[j]
	}
	return s, nil
}

// document is the YAML layout: an ordered list of samples, each given either
// as named columns or as [wavelength, reflectance] pairs.
type document struct {
	Samples []struct {
		Name    string               `yaml:"name"`
		Columns map[string][]float64 `yaml:"columns"`
		Pairs   [][2]float64         `yaml:"pairs"`
	} `yaml:"samples"`
}

// LoadYAML reads the samples of a YAML (or JSON) document, keeping their order.
func LoadYAML(path string) ([]series.Sample, error) {
	b, e := ioutil.ReadFile(path)
	if e != nil {
		return nil, errors.Wrap(e, "reading sample document")
	}
	return ParseYAML(b)
}

// ParseYAML decodes a sample document.
func ParseYAML(b []byte) ([]series.Sample, error) {
	var doc document
	if e := yaml.Unmarshal(b, &doc); e != nil {
		return nil, errors.Wrap(e, "decoding sample document")
	}

	samples := make([]series.Sample, 0, len(doc.Samples))
	for _, d := range doc.Samples {
		if d.Pairs != nil {
			w := make([]float64, len(d.Pairs))
			r := make([]float64, len(d.Pairs))
			for i, p := range d.Pairs {
				w[i], r[i] = p[0], p[1]
			}
			samples = append(samples, series.NewSample(d.Name, w, r))
			continue
		}
		samples = append(samples, series.Sample{Name: d.Name, Columns: d.Columns})
	}
	return samples, nil
}

// SheetNotFoundError is recorded by Select for a requested name with no sample.
type SheetNotFoundError string

func (e SheetNotFoundError) Error() string {
	return "input: no sample named '" + string(e) + "'"
}

// Select keeps only the named samples, in the order of names. An empty names
// list keeps everything.
func Select(samples []series.Sample, names []string) ([]series.Sample, []series.Diagnostic) {
	if len(names) == 0 {
		return samples, nil
	}

	byName := make(map[string]series.Sample, len(samples))
	for _, s := range samples {
		if _, ok := byName[s.Name]; !ok {
			byName[s.Name] = s
		}
	}

	var (
		out         []series.Sample
		diagnostics []series.Diagnostic
	)
	for _, n := range names {
		s, ok := byName[n]
		if !ok {
			diagnostics = append(diagnostics, series.Diagnostic{Name: n, Err: SheetNotFoundError(n)})
			continue
		}
		out = append(out, s)
	}
	return out, diagnostics
}
