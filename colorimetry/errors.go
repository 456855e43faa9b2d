package colorimetry

import (
	"fmt"

	"github.com/yakumocabin/color-change-program/spectrum"
)

// GridMismatchError is returned when a spectrum and the illuminant/observer
// tables are not sampled on the same grid. It indicates a configuration bug
// rather than bad measurement data.
type GridMismatchError struct {
	Spectrum spectrum.Grid
	Tables   spectrum.Grid
}

func (e *GridMismatchError) Error() string {
	return fmt.Sprintf("colorimetry: grid mismatch - spectrum %s, tables %s", e.Spectrum, e.Tables)
}

// UnknownPresetError is returned by PresetByName for unsupported
// illuminant/observer combinations.
type UnknownPresetError string

func (e UnknownPresetError) Error() string {
	return "colorimetry: unknown preset - " + string(e)
}
