package join

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-spectro/spectro/signal"
)

// InputError reports insufficient or malformed input signals.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return "join: " + e.Reason }

// ConfigurationError reports invalid join parameters.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string { return "join: " + e.Reason }

// OverlapError reports two adjacent signals whose axis domains share no
// common range.
type OverlapError struct {
	AMin, AMax float64
	BMin, BMax float64
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("join: signal axes do not overlap ([%g, %g] vs [%g, %g])",
		e.AMin, e.AMax, e.BMin, e.BMax)
}

// running holds the merged state of the fold. Data is row-major with the
// spectral axis innermost, rows == 1 for plain spectra.
type running struct {
	axis []float64
	data []float64
	rows int
}

// Join merges two or more overlapping signals into one continuous signal.
//
// The fold is sequential: each signal is joined onto the running result
// of the previous joins, so computed scaling factors accumulate
// multiplicatively along the chain. All signals must share the axis unit,
// have strictly increasing axes and, for images, an equal number of rows.
// The inputs are never modified; the result is a new Spectrum (or Image,
// when the inputs are images) owned by the caller.
func Join(signals []signal.Signal, opts ...Option) (signal.Signal, error) {
	cfg := applyOptions(opts)

	if len(signals) < 2 {
		return nil, &InputError{Reason: fmt.Sprintf("need at least two signals, got %d", len(signals))}
	}

	if cfg.factors != nil && len(cfg.factors) != len(signals)-1 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("got %d scale factors for %d signals, need %d",
			len(cfg.factors), len(signals), len(signals)-1)}
	}

	if cfg.averagePoints <= 0 {
		return nil, &ConfigurationError{Reason: fmt.Sprintf("averaging window must be positive, got %d", cfg.averagePoints)}
	}

	unit := signals[0].Axis().Unit()
	rows := rowCount(signals[0])

	for i, s := range signals {
		ax := s.Axis()
		if ax.Unit() != unit {
			return nil, &InputError{Reason: fmt.Sprintf("signal %d axis unit is %s, want %s", i, ax.Unit(), unit)}
		}
		if !ax.Ascending() {
			return nil, &InputError{Reason: fmt.Sprintf("signal %d axis must be increasing", i)}
		}
		if rowCount(s) != rows {
			return nil, &InputError{Reason: fmt.Sprintf("signal %d has %d rows, want %d", i, rowCount(s), rows)}
		}
	}

	merged := running{
		axis: signals[0].Axis().Values(),
		data: signals[0].Data(),
		rows: rows,
	}

	for i := 1; i < len(signals); i++ {
		var err error
		merged, err = joinPair(merged, signals[i], cfg, i-1)
		if err != nil {
			return nil, err
		}
	}

	axis, err := signal.NewAxis(merged.axis, unit)
	if err != nil {
		return nil, err
	}

	if rows == 1 {
		return signal.NewSpectrum(axis, merged.data)
	}

	return signal.NewImage(axis, merged.data)
}

func rowCount(s signal.Signal) int {
	shape := s.Shape()
	rows := 1
	for _, d := range shape[:len(shape)-1] {
		rows *= d
	}
	return rows
}

func joinPair(merged running, next signal.Signal, cfg config, pair int) (running, error) {
	nextAxis := next.Axis().Values()

	lo := merged.axis[0]
	if nextAxis[0] > lo {
		lo = nextAxis[0]
	}
	hi := merged.axis[len(merged.axis)-1]
	if last := nextAxis[len(nextAxis)-1]; last < hi {
		hi = last
	}
	if lo > hi {
		return running{}, &OverlapError{
			AMin: merged.axis[0], AMax: merged.axis[len(merged.axis)-1],
			BMin: nextAxis[0], BMax: nextAxis[len(nextAxis)-1],
		}
	}

	joinPoint := (lo + hi) / 2

	nextData := next.Data()

	factor := 1.0
	switch {
	case cfg.factors != nil:
		factor = cfg.factors[pair]
	case cfg.scale:
		meanA, okA := windowMean(merged.axis, merged.data, merged.rows, joinPoint, lo, hi, cfg.averagePoints, false)
		meanB, okB := windowMean(nextAxis, nextData, merged.rows, joinPoint, lo, hi, cfg.averagePoints, true)
		if !okA || !okB || meanB == 0 {
			return running{}, &InputError{Reason: fmt.Sprintf("no usable intensity in scaling window around %g", joinPoint)}
		}
		factor = meanA / meanB
	}

	if factor != 1 {
		scaled := make([]float64, len(nextData))
		vecmath.ScaleBlock(scaled, nextData, factor)
		nextData = scaled
	}

	// Midpoint split: head below the join point, tail at or above it.
	head := sort.SearchFloat64s(merged.axis, joinPoint)
	tail := sort.SearchFloat64s(nextAxis, joinPoint)
	tailLen := len(nextAxis) - tail

	out := running{
		axis: make([]float64, head+tailLen),
		data: make([]float64, (head+tailLen)*merged.rows),
		rows: merged.rows,
	}
	copy(out.axis, merged.axis[:head])
	copy(out.axis[head:], nextAxis[tail:])

	mergedN := len(merged.axis)
	nextN := len(nextAxis)
	outN := head + tailLen
	for r := 0; r < merged.rows; r++ {
		copy(out.data[r*outN:], merged.data[r*mergedN:r*mergedN+head])
		copy(out.data[r*outN+head:], nextData[r*nextN+tail:(r+1)*nextN])
	}

	return out, nil
}

// windowMean returns the mean intensity over a window of up to n samples
// centered on the join point, clamped to the samples lying inside the
// overlap range [lo, hi]. For images the mean pools all rows.
//
// NaN samples (dead pixels) never enter the mean, and with excludeZeros
// the zero samples of the incoming signal are skipped too, so a handful
// of invalid pixels in the overlap cannot poison or dilute the scaling
// factor. The second return is false when the window holds no usable
// sample at all.
func windowMean(axis, data []float64, rows int, joinPoint, lo, hi float64, n int, excludeZeros bool) (float64, bool) {
	center := closestIndex(axis, joinPoint)

	first := sort.SearchFloat64s(axis, lo)
	last := sort.SearchFloat64s(axis, hi)
	if last < len(axis) && axis[last] == hi {
		last++
	}

	wLo := center - n/2
	if wLo < first {
		wLo = first
	}
	wHi := wLo + n
	if wHi > last {
		wHi = last
	}
	if wHi <= wLo {
		// Overlap holds no samples of this signal; use the closest one.
		wLo, wHi = center, center+1
	}

	cols := len(axis)
	window := make([]float64, 0, (wHi-wLo)*rows)
	for r := 0; r < rows; r++ {
		for _, v := range data[r*cols+wLo : r*cols+wHi] {
			if math.IsNaN(v) || (excludeZeros && v == 0) {
				continue
			}
			window = append(window, v)
		}
	}

	if len(window) == 0 {
		return 0, false
	}
	return stat.Mean(window, nil), true
}

func closestIndex(axis []float64, v float64) int {
	i := sort.SearchFloat64s(axis, v)
	if i == len(axis) {
		return len(axis) - 1
	}
	if i > 0 && v-axis[i-1] <= axis[i]-v {
		return i - 1
	}
	return i
}
