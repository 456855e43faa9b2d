package testutil

// Flat returns wavelength and reflectance columns sampling a constant
// reflectance every step nanometers over [start, stop].
func Flat(value, start, stop, step float64) (wavelengths, reflectance []float64) {
	for w := start; w <= stop; w += step {
		wavelengths = append(wavelengths, w)
		reflectance = append(reflectance, value)
	}
	return wavelengths, reflectance
}

// Ramp returns columns for a reflectance rising linearly from lo at start to
// hi at stop.
func Ramp(lo, hi, start, stop, step float64) (wavelengths, reflectance []float64) {
	for w := start; w <= stop; w += step {
		wavelengths = append(wavelengths, w)
		reflectance = append(reflectance, lo+(hi-lo)*(w-start)/(stop-start))
	}
	return wavelengths, reflectance
}
