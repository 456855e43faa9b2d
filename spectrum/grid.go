package spectrum

import (
	"fmt"
	"math"
)

// Grid describes the regular wavelength sampling [Start, Stop) with a fixed Step,
// all in nanometers.
type Grid struct {
	Start float64
	Stop  float64
	Step  float64
}

// DefaultGrid is 380-780 nm (stop exclusive) in 5 nm steps: 80 points.
var DefaultGrid = Grid{Start: 380, Stop: 780, Step: 5}

// slack absorbs floating point error when counting grid points.
const slack = 1e-9

// Len returns the number of grid points, or 0 for an invalid grid.
func (g Grid) Len() int {
	if !(g.Step > 0) || !(g.Stop > g.Start) {
		return 0
	}
	return int(math.Ceil((g.Stop-g.Start)/g.Step - slack))
}

// At returns the k-th grid wavelength.
func (g Grid) At(k int) float64 {
	return g.Start + float64(k)*g.Step
}

// Wavelengths returns every grid point in ascending order.
func (g Grid) Wavelengths() []float64 {
	w := make([]float64, g.Len())
	for k := range w {
		w[k] = g.At(k)
	}
	return w
}

// Validate reports whether the grid has at least one point.
func (g Grid) Validate() error {
	if g.Len() == 0 || math.IsInf(g.Start, 0) || math.IsInf(g.Stop, 0) {
		return &InvalidGridError{Grid: g}
	}
	return nil
}

func (g Grid) String() string {
	return fmt.Sprintf("[%g, %g) step %g", g.Start, g.Stop, g.Step)
}
