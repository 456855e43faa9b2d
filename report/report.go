package report

import (
	"fmt"
	"io"

	"github.com/flosch/pongo2"
	"github.com/pkg/errors"
	"github.com/yakumocabin/color-change-program/series"
)

// Default renders every result as the plain text block of Result.Text, each
// preceded by a blank line.
var Default = pongo2.Must(pongo2.FromString(`{% autoescape off %}{% for r in results %}
--- {{ r.name }} results ---
CIELab: {{ r.lab }}
Hex color: {{ r.hex }}
HSV Hue: {{ r.hue }}°
ΔE: {{ r.deltaE }}
{% endfor %}{% endautoescape %}`))

// Load reads a user template.
func Load(path string) (*pongo2.Template, error) {
	tpl, e := pongo2.FromFile(path)
	if e != nil {
		return nil, errors.Wrapf(e, "loading template %s", path)
	}
	return tpl, nil
}

// Context exposes a series to templates. opts are merged in last and may
// override the computed keys.
func Context(s *series.Series, opts map[string]interface{}) pongo2.Context {
	ctxt := make(pongo2.Context)

	rs := s.Results()
	results := make([]map[string]interface{}, 0, len(rs))
	ref, _ := s.Reference()
	for i, r := range rs {
		rgb := r.RGB255()
		results = append(results, map[string]interface{}{
			"index":     i,
			"name":      r.Name,
			"lab":       series.FormatLab(r.Lab),
			"L":         r.Lab[0],
			"a":         r.Lab[1],
			"b":         r.Lab[2],
			"xyz":       fmt.Sprintf("[%.4f %.4f %.4f]", r.XYZ[0], r.XYZ[1], r.XYZ[2]),
			"hex":       r.Hex,
			"rgb":       fmt.Sprintf("%d, %d, %d", uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2])),
			"hue":       fmt.Sprintf("%.2f", r.Hue),
			"deltaE":    fmt.Sprintf("%.2f", r.DeltaE),
			"reference": ref != nil && ref.Name == r.Name,
		})
	}
	ctxt["results"] = results

	diagnostics := make([]map[string]interface{}, 0, len(s.Diagnostics()))
	for _, d := range s.Diagnostics() {
		diagnostics = append(diagnostics, map[string]interface{}{
			"name":   d.Name,
			"reason": d.Err.Error(),
		})
	}
	ctxt["diagnostics"] = diagnostics

	cfg := s.Config()
	ctxt["preset"] = cfg.Preset.Name
	ctxt["illuminant"] = cfg.Preset.Illuminant
	ctxt["observer"] = cfg.Preset.Observer
	ctxt["formula"] = cfg.Formula.String()
	ctxt["grid"] = cfg.Grid.String()
	if ref != nil {
		ctxt["reference"] = ref.Name
	}

	for k, v := range opts {
		ctxt[k] = v
	}
	setDefaults(ctxt)

	return ctxt
}

func setDefaults(ctxt pongo2.Context) {
	if _, ok := ctxt["title"]; !ok {
		ctxt["title"] = "Color calculation results"
	}

	if _, ok := ctxt["reference"]; !ok {
		ctxt["reference"] = ""
	}
}

// Render executes tpl (Default when nil) against s and writes the output to w.
func Render(w io.Writer, s *series.Series, tpl *pongo2.Template, opts map[string]interface{}) error {
	if tpl == nil {
		tpl = Default
	}
	if e := tpl.ExecuteWriter(Context(s, opts), w); e != nil {
		return errors.Wrap(e, "rendering report")
	}
	return nil
}
