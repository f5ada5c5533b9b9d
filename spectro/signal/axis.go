package signal

import (
	"errors"
	"math"
)

// Errors returned by axis constructors.
var (
	ErrEmptyAxis    = errors.New("signal: axis needs at least one sample")
	ErrNotMonotonic = errors.New("signal: axis values must be strictly monotonic")
	ErrZeroScale    = errors.New("signal: axis scale must be non-zero")
)

// Unit identifies the physical unit of an axis.
type Unit int

// Supported axis units.
const (
	Nanometre Unit = iota
	ElectronVolt
	InverseCentimetre
)

// String returns the conventional symbol for the unit.
func (u Unit) String() string {
	switch u {
	case Nanometre:
		return "nm"
	case ElectronVolt:
		return "eV"
	case InverseCentimetre:
		return "1/cm"
	default:
		return "unknown"
	}
}

// Axis is an ordered, strictly monotonic sequence of sample positions
// tagged with a unit. The zero value is empty and unusable; construct
// axes with NewAxis or NewUniformAxis.
type Axis struct {
	values []float64
	unit   Unit
}

// NewAxis creates an axis from explicit sample positions. The values must
// be strictly increasing or strictly decreasing; they are copied, so the
// caller keeps ownership of the input slice.
func NewAxis(values []float64, unit Unit) (Axis, error) {
	if len(values) == 0 {
		return Axis{}, ErrEmptyAxis
	}

	if !monotonic(values) {
		return Axis{}, ErrNotMonotonic
	}

	v := make([]float64, len(values))
	copy(v, values)

	return Axis{values: v, unit: unit}, nil
}

// NewUniformAxis creates an axis of n equally spaced samples starting at
// offset with the given per-sample scale. A negative scale produces a
// decreasing axis.
func NewUniformAxis(offset, scale float64, n int, unit Unit) (Axis, error) {
	if n <= 0 {
		return Axis{}, ErrEmptyAxis
	}

	if scale == 0 && n > 1 {
		return Axis{}, ErrZeroScale
	}

	v := make([]float64, n)
	for i := range v {
		v[i] = offset + float64(i)*scale
	}

	return Axis{values: v, unit: unit}, nil
}

func monotonic(v []float64) bool {
	if len(v) < 2 {
		return !math.IsNaN(v[0])
	}

	up := v[1] > v[0]
	for i := 1; i < len(v); i++ {
		d := v[i] - v[i-1]
		if math.IsNaN(d) || d == 0 || (d > 0) != up {
			return false
		}
	}

	return true
}

// Len returns the number of samples.
func (a Axis) Len() int { return len(a.values) }

// Unit returns the axis unit tag.
func (a Axis) Unit() Unit { return a.unit }

// At returns the sample position at index i.
func (a Axis) At(i int) float64 { return a.values[i] }

// Values returns a copy of the sample positions.
func (a Axis) Values() []float64 {
	v := make([]float64, len(a.values))
	copy(v, a.values)
	return v
}

// Ascending reports whether the axis values increase with index.
func (a Axis) Ascending() bool {
	return len(a.values) < 2 || a.values[1] > a.values[0]
}

// Min returns the smallest axis value.
func (a Axis) Min() float64 {
	if a.Ascending() {
		return a.values[0]
	}
	return a.values[len(a.values)-1]
}

// Max returns the largest axis value.
func (a Axis) Max() float64 {
	if a.Ascending() {
		return a.values[len(a.values)-1]
	}
	return a.values[0]
}

// ClosestIndex returns the index of the sample position closest to v.
func (a Axis) ClosestIndex(v float64) int {
	best := 0
	bestDist := math.Abs(a.values[0] - v)

	for i := 1; i < len(a.values); i++ {
		d := math.Abs(a.values[i] - v)
		if d < bestDist {
			best, bestDist = i, d
		}
	}

	return best
}
