package signal

import "errors"

// Errors returned by signal constructors.
var (
	ErrLengthMismatch = errors.New("signal: axis length must match the spectral dimension of the data")
	ErrBadShape       = errors.New("signal: data length must be a whole number of rows")
)

// Signal is the read-only capability surface of a spectral data object:
// an axis, a flat intensity buffer, and the shape that indexes it. The
// spectral axis is always the innermost (fastest varying) dimension.
//
// The numeric packages treat the slice returned by Data as read-only and
// never modify it in place, so implementations may hand out either a
// copy (as Spectrum and Image do) or an internal buffer.
type Signal interface {
	Axis() Axis
	Data() []float64
	Shape() []int
}

// Spectrum is a single 1-D spectrum.
type Spectrum struct {
	axis Axis
	data []float64
}

// NewSpectrum creates a spectrum from an axis and intensity samples of the
// same length. The data is copied.
func NewSpectrum(axis Axis, data []float64) (*Spectrum, error) {
	if axis.Len() != len(data) {
		return nil, ErrLengthMismatch
	}

	d := make([]float64, len(data))
	copy(d, data)

	return &Spectrum{axis: axis, data: d}, nil
}

// Axis returns the spectral axis.
func (s *Spectrum) Axis() Axis { return s.axis }

// Data returns a copy of the intensity samples.
func (s *Spectrum) Data() []float64 {
	d := make([]float64, len(s.data))
	copy(d, s.data)
	return d
}

// Shape returns the data shape, which for a spectrum is {axis length}.
func (s *Spectrum) Shape() []int { return []int{len(s.data)} }

// Image is a stack of spectra sharing a common axis: rows spectra of
// axis-length samples each, stored row-major with the spectral axis
// innermost.
type Image struct {
	axis Axis
	data []float64
	rows int
}

// NewImage creates an image from an axis and a row-major intensity buffer
// whose length is a multiple of the axis length. The data is copied.
func NewImage(axis Axis, data []float64) (*Image, error) {
	n := axis.Len()
	if len(data) == 0 || len(data)%n != 0 {
		return nil, ErrBadShape
	}

	d := make([]float64, len(data))
	copy(d, data)

	return &Image{axis: axis, data: d, rows: len(data) / n}, nil
}

// Axis returns the spectral axis.
func (im *Image) Axis() Axis { return im.axis }

// Data returns a copy of the row-major intensity buffer.
func (im *Image) Data() []float64 {
	d := make([]float64, len(im.data))
	copy(d, im.data)
	return d
}

// Shape returns {rows, axis length}.
func (im *Image) Shape() []int { return []int{im.rows, im.axis.Len()} }

// Rows returns the number of spectra in the stack.
func (im *Image) Rows() int { return im.rows }

// Row returns a copy of the i-th spectrum in the stack.
func (im *Image) Row(i int) []float64 {
	n := im.axis.Len()
	d := make([]float64, n)
	copy(d, im.data[i*n:(i+1)*n])
	return d
}
