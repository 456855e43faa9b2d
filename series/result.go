package series

import (
	"fmt"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/yakumocabin/color-change-program/colorspace"
)

// Result holds the colorimetric values of one sample.
type Result struct {
	Name string
	XYZ  chromath.XYZ
	Lab  chromath.Lab
	// RGB is gamma encoded sRGB, clipped to [0, 1].
	RGB chromath.RGB
	Hex string
	HSV colorspace.HSV
	// Hue is the HSV hue in degrees, rounded to two decimals.
	Hue float64
	// DeltaE is the difference to the series reference; 0 for the reference.
	DeltaE float64
}

// RGB255 returns the sRGB channels scaled to 0-255.
func (r *Result) RGB255() [3]float64 {
	return [3]float64{r.RGB[0] * 255, r.RGB[1] * 255, r.RGB[2] * 255}
}

// FormatLab renders a Lab triple the way results are reported.
func FormatLab(lab chromath.Lab) string {
	return fmt.Sprintf("[%.4f %.4f %.4f]", lab[0], lab[1], lab[2])
}

// Text serializes r as a plain text block.
func (r *Result) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- %s results ---\n", r.Name)
	fmt.Fprintf(&b, "CIELab: %s\n", FormatLab(r.Lab))
	fmt.Fprintf(&b, "Hex color: %s\n", r.Hex)
	fmt.Fprintf(&b, "HSV Hue: %.2f°\n", r.Hue)
	fmt.Fprintf(&b, "ΔE: %.2f\n", r.DeltaE)
	return b.String()
}

// Diagnostic records why a sample was skipped.
type Diagnostic struct {
	Name string
	Err  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: skipped: %v", d.Name, d.Err)
}
