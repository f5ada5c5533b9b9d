// Package spectral computes shape statistics of a spectrum given its
// axis sample positions and intensity values. Unlike bin-indexed FFT
// statistics, all positional quantities are expressed in axis units
// (nm, eV or 1/cm), so they stay meaningful on non-uniform axes.
package spectral

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Errors returned by the statistics functions.
var (
	ErrLengthMismatch = errors.New("spectral: axis and intensity must have equal length")
	ErrEmpty          = errors.New("spectral: need at least one sample")
	ErrZeroWeight     = errors.New("spectral: total intensity is zero")
)

// Stats holds shape statistics of one spectrum.
type Stats struct {
	Samples      int
	Sum          float64 // integrated intensity
	Max          float64
	MaxPosition  float64 // axis value of the most intense sample
	Min          float64
	MinPosition  float64
	Average      float64
	CenterOfMass float64 // intensity-weighted mean axis position
	Spread       float64 // intensity-weighted standard deviation around the center of mass
}

// Calculate computes all statistics for the given axis/intensity pair.
func Calculate(axis, intensity []float64) (Stats, error) {
	if len(axis) != len(intensity) {
		return Stats{}, ErrLengthMismatch
	}
	if len(axis) == 0 {
		return Stats{}, ErrEmpty
	}

	var s Stats
	s.Samples = len(intensity)
	s.Sum = floats.Sum(intensity)
	s.Average = stat.Mean(intensity, nil)

	maxIdx := floats.MaxIdx(intensity)
	minIdx := floats.MinIdx(intensity)
	s.Max = intensity[maxIdx]
	s.MaxPosition = axis[maxIdx]
	s.Min = intensity[minIdx]
	s.MinPosition = axis[minIdx]

	if s.Sum != 0 {
		s.CenterOfMass = stat.Mean(axis, intensity)
		s.Spread = spread(axis, intensity, s.CenterOfMass, s.Sum)
	}

	return s, nil
}

// spread computes the intensity-weighted standard deviation of the axis
// position around the center of mass.
func spread(axis, intensity []float64, center, sum float64) float64 {
	weightedSqSum := 0.0
	for i, v := range intensity {
		diff := axis[i] - center
		weightedSqSum += diff * diff * v
	}
	return math.Sqrt(weightedSqSum / sum)
}

// CenterOfMass returns the intensity-weighted mean axis position of the
// spectrum, the continuous analogue of a peak position for broad or
// asymmetric emission.
func CenterOfMass(axis, intensity []float64) (float64, error) {
	if len(axis) != len(intensity) {
		return 0, ErrLengthMismatch
	}
	if len(axis) == 0 {
		return 0, ErrEmpty
	}
	if floats.Sum(intensity) == 0 {
		return 0, ErrZeroWeight
	}

	return stat.Mean(axis, intensity), nil
}
