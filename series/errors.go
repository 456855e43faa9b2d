package series

import "fmt"

// MissingColumnError is recorded when a sample lacks a required column.
type MissingColumnError struct {
	Sample string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("series: sample '%s' is missing column '%s'", e.Sample, e.Column)
}

// AmbiguousColumnError is recorded when several headers of a sample trim to
// the same required column name.
type AmbiguousColumnError struct {
	Sample  string
	Column  string
	Headers []string
}

func (e *AmbiguousColumnError) Error() string {
	return fmt.Sprintf("series: sample '%s' has %d headers for column '%s': %q", e.Sample, len(e.Headers), e.Column, e.Headers)
}

// NoReferenceError is returned when a ΔE is requested from a series in which
// no sample succeeded.
type NoReferenceError struct{}

func (e *NoReferenceError) Error() string {
	return "series: no reference sample - every sample failed or none were given"
}

// SampleNotFoundError is returned when a sample name is not part of the series.
type SampleNotFoundError string

func (e SampleNotFoundError) Error() string {
	return "series: no computed sample named '" + string(e) + "'"
}

// DuplicateSampleError is recorded when a sample name repeats; the later
// sample is skipped.
type DuplicateSampleError string

func (e DuplicateSampleError) Error() string {
	return "series: duplicate sample name '" + string(e) + "'"
}
