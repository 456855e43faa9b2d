package spectrum

import "fmt"

// InsufficientDataError is returned when a spectrum has fewer than two distinct
// wavelengths to interpolate between.
type InsufficientDataError struct {
	Points int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("spectrum: insufficient data - %d distinct wavelength(s), need at least 2", e.Points)
}

// LengthMismatchError is returned when the wavelength and reflectance columns
// of a measurement do not pair up.
type LengthMismatchError struct {
	Wavelengths int
	Reflectance int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("spectrum: %d wavelengths but %d reflectance values", e.Wavelengths, e.Reflectance)
}

// InvalidWavelengthError is returned for NaN or infinite wavelengths.
type InvalidWavelengthError struct {
	Index int
	Value float64
}

func (e *InvalidWavelengthError) Error() string {
	return fmt.Sprintf("spectrum: invalid wavelength %v at row %d", e.Value, e.Index)
}

// InvalidReflectanceError is returned for NaN or infinite reflectance values.
type InvalidReflectanceError struct {
	Index int
	Value float64
}

func (e *InvalidReflectanceError) Error() string {
	return fmt.Sprintf("spectrum: invalid reflectance %v at row %d", e.Value, e.Index)
}

// InvalidGridError is returned for grids with a non-positive step or no points.
type InvalidGridError struct {
	Grid Grid
}

func (e *InvalidGridError) Error() string {
	return fmt.Sprintf("spectrum: invalid grid %s", e.Grid)
}
