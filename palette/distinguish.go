package palette

import (
	"fmt"
	"math"
	"strings"

	"github.com/jkl1337/go-chromath"
	"github.com/jkl1337/go-chromath/deltae"
)

// Formula selects a color-difference metric.
type Formula int

const (
	// CIE76 is the Euclidean distance in L*a*b*. It is the default and the
	// metric every reported ΔE uses unless configured otherwise.
	CIE76 Formula = iota
	// CIE2000 is the CIEDE2000 metric with unit weighting factors.
	CIE2000
)

var klch = &deltae.KLChDefault

// DeltaE returns the CIE76 difference between a and b.
func DeltaE(a, b chromath.Lab) float64 {
	dl := a[0] - b[0]
	da := a[1] - b[1]
	db := a[2] - b[2]
	return math.Sqrt(dl*dl + da*da + db*db)
}

// Distance returns the difference between a and b under f. It is symmetric
// and zero for identical colors.
func (f Formula) Distance(a, b chromath.Lab) float64 {
	switch f {
	case CIE2000:
		if a == b {
			return 0
		}
		return deltae.CIE2000(a, b, klch)
	default:
		return DeltaE(a, b)
	}
}

func (f Formula) String() string {
	switch f {
	case CIE76:
		return "CIE76"
	case CIE2000:
		return "CIE2000"
	}
	return fmt.Sprintf("Formula(%d)", int(f))
}

// ParseFormula accepts "CIE76", "CIE2000" (or "CIEDE2000"), case-insensitively.
// An empty name selects CIE76.
func ParseFormula(name string) (Formula, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "CIE76", "CIE1976":
		return CIE76, nil
	case "CIE2000", "CIEDE2000":
		return CIE2000, nil
	}
	return CIE76, fmt.Errorf("palette: unknown ΔE formula '%s'", name)
}
