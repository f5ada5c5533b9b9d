package grating

import (
	"fmt"
	"math"
)

// ConfigurationError reports an invalid static spectrometer parameter.
type ConfigurationError struct {
	Param string
	Value float64
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("grating: invalid %s: %g", e.Param, e.Value)
}

// DomainError reports a pixel/order/angle combination for which the
// grating equation has no real solution (the implied diffraction angle
// falls outside ±90°).
type DomainError struct {
	Pixel   float64
	SinBeta float64
}

func (e *DomainError) Error() string {
	if e.SinBeta < -1 || e.SinBeta > 1 {
		return fmt.Sprintf("grating: no real diffraction angle (sin β = %g)", e.SinBeta)
	}
	return fmt.Sprintf("grating: diffraction angle out of range at pixel %g", e.Pixel)
}

// Config holds the optical geometry of a grating spectrometer.
type Config struct {
	GrooveDensity      float64 // grooves per mm
	IncidenceAngleDeg  float64 // angle of incidence on the grating
	FocalLengthMm      float64 // focal length of the focusing optic
	PixelSizeUm        float64 // detector pixel pitch
	CenterWavelengthNm float64 // wavelength hitting the detector midpoint
	Order              int     // diffraction order, non-zero
}

// DefaultConfig returns a first-order configuration with the geometry of
// a typical 300 gr/mm Czerny-Turner spectrograph.
func DefaultConfig() Config {
	return Config{
		GrooveDensity:      300,
		IncidenceAngleDeg:  10,
		FocalLengthMm:      300,
		PixelSizeUm:        26,
		CenterWavelengthNm: 600,
		Order:              1,
	}
}

// Validate checks that the Config parameters are physically meaningful.
func (c Config) Validate() error {
	if c.GrooveDensity <= 0 {
		return &ConfigurationError{Param: "groove density", Value: c.GrooveDensity}
	}

	if c.FocalLengthMm <= 0 {
		return &ConfigurationError{Param: "focal length", Value: c.FocalLengthMm}
	}

	if c.PixelSizeUm <= 0 {
		return &ConfigurationError{Param: "pixel size", Value: c.PixelSizeUm}
	}

	if c.CenterWavelengthNm <= 0 {
		return &ConfigurationError{Param: "center wavelength", Value: c.CenterWavelengthNm}
	}

	if c.Order == 0 {
		return &ConfigurationError{Param: "diffraction order", Value: 0}
	}

	return nil
}

// grooveSpacingNm returns the groove spacing d in nm.
func (c Config) grooveSpacingNm() float64 {
	return 1e6 / c.GrooveDensity
}

// centerAngles returns sin α and the center diffraction angle β_c.
func (c Config) centerAngles() (sinAlpha, betaC float64, err error) {
	sinAlpha = math.Sin(c.IncidenceAngleDeg * math.Pi / 180)

	sinBetaC := float64(c.Order)*c.CenterWavelengthNm/c.grooveSpacingNm() - sinAlpha
	if sinBetaC < -1 || sinBetaC > 1 {
		return 0, 0, &DomainError{Pixel: 0, SinBeta: sinBetaC}
	}

	return sinAlpha, math.Asin(sinBetaC), nil
}

// Wavelength solves the grating equation for a single detector pixel.
// pixel is the signed offset in pixels from the detector midpoint; pixel
// 0 returns exactly CenterWavelengthNm. A ConfigurationError means the
// geometry itself is invalid; a DomainError means this particular pixel
// sees no real diffraction angle.
func (c Config) Wavelength(pixel float64) (float64, error) {
	err := c.Validate()
	if err != nil {
		return 0, err
	}

	sinAlpha, betaC, err := c.centerAngles()
	if err != nil {
		return 0, err
	}

	wl, ok := c.solve(sinAlpha, betaC, pixel)
	if !ok {
		return 0, &DomainError{Pixel: pixel, SinBeta: math.Sin(betaC + c.deflection(pixel))}
	}

	return wl, nil
}

// WavelengthAxis solves the grating equation for each pixel offset.
// Pixels whose diffraction angle falls outside ±90° yield NaN while the
// remaining pixels still solve, so an axis build does not fail on a few
// invalid positions at the detector edges. Configuration and
// center-calibration errors abort the whole call.
func (c Config) WavelengthAxis(pixels []float64) ([]float64, error) {
	err := c.Validate()
	if err != nil {
		return nil, err
	}

	sinAlpha, betaC, err := c.centerAngles()
	if err != nil {
		return nil, err
	}

	out := make([]float64, len(pixels))
	for i, p := range pixels {
		wl, ok := c.solve(sinAlpha, betaC, p)
		if !ok {
			out[i] = math.NaN()
			continue
		}
		out[i] = wl
	}

	return out, nil
}

// WavelengthAxisN builds the wavelength axis of an n-pixel detector whose
// midpoint (n-1)/2 is calibrated to the center wavelength. Element i is
// the wavelength at detector index i.
func (c Config) WavelengthAxisN(n int) ([]float64, error) {
	if n <= 0 {
		return nil, &ConfigurationError{Param: "pixel count", Value: float64(n)}
	}

	pixels := make([]float64, n)
	mid := float64(n-1) / 2
	for i := range pixels {
		pixels[i] = float64(i) - mid
	}

	return c.WavelengthAxis(pixels)
}

// Dispersion returns the linear dispersion at the detector center in nm
// per mm of focal plane.
func (c Config) Dispersion() (float64, error) {
	err := c.Validate()
	if err != nil {
		return 0, err
	}

	_, betaC, err := c.centerAngles()
	if err != nil {
		return 0, err
	}

	return c.grooveSpacingNm() * math.Cos(betaC) / (float64(c.Order) * c.FocalLengthMm), nil
}

// deflection returns the angular offset of a pixel from the optical axis.
func (c Config) deflection(pixel float64) float64 {
	return math.Atan(pixel * c.PixelSizeUm / 1000 / c.FocalLengthMm)
}

func (c Config) solve(sinAlpha, betaC, pixel float64) (float64, bool) {
	delta := c.deflection(pixel)
	if delta == 0 {
		// The midpoint is the calibration point.
		return c.CenterWavelengthNm, true
	}

	beta := betaC + delta
	if beta <= -math.Pi/2 || beta >= math.Pi/2 {
		return 0, false
	}

	return c.grooveSpacingNm() * (sinAlpha + math.Sin(beta)) / float64(c.Order), true
}
