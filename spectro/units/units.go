package units

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectro/spectro/signal"
)

// hcOverE is h*c/e in eV*nm (CODATA 2018 exact values).
const hcOverE = 1e9 * 6.62607015e-34 * 299792458 / 1.602176634e-19

const (
	invertTol      = 1e-13
	invertMaxSteps = 8
)

// DomainError reports a mathematically invalid input to a scalar
// conversion.
type DomainError struct {
	Quantity string
	Value    float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("units: %s must be positive, got %g", e.Quantity, e.Value)
}

// AirIndex returns the refractive index of air at the given wavelength in
// nm, after Peck and Reeder (1972). The fit is stated for 185-1700 nm;
// outside that range it extrapolates without error.
func AirIndex(wavelengthNm float64) float64 {
	wl := wavelengthNm / 1000 // formula takes µm
	inv2 := 1 / (wl * wl)
	return 1 + 806051e-10 + 2480990e-8/(132274e-3-inv2) + 174557e-9/(3932957e-5-inv2)
}

// NmToEV converts a wavelength in nm (measured in air) to photon energy
// in eV, using the wavelength-dependent refractive index of air.
func NmToEV(wavelengthNm float64) (float64, error) {
	if wavelengthNm <= 0 {
		return 0, &DomainError{Quantity: "wavelength", Value: wavelengthNm}
	}
	return nmToEV(wavelengthNm), nil
}

func nmToEV(wl float64) float64 {
	return hcOverE / (AirIndex(wl) * wl)
}

// EVToNm converts a photon energy in eV to the wavelength in nm measured
// in air. The refractive index depends on the unknown wavelength, so the
// forward relation is inverted by fixed-point iteration
//
//	λ ← h·c / (e · n(λ) · E)
//
// seeded with the vacuum wavelength. The index varies by well under 1e-6
// per nm over the operating range, so the iteration contracts to machine
// precision within a few steps; it is the exact inverse of NmToEV.
func EVToNm(energyEV float64) (float64, error) {
	if energyEV <= 0 {
		return 0, &DomainError{Quantity: "energy", Value: energyEV}
	}
	return evToNm(energyEV), nil
}

func evToNm(ev float64) float64 {
	wl := hcOverE / ev // vacuum seed
	for i := 0; i < invertMaxSteps; i++ {
		next := hcOverE / (AirIndex(wl) * ev)
		if math.Abs(next-wl) <= invertTol*next {
			return next
		}
		wl = next
	}
	return wl
}

// NmToInvCm converts a wavelength in nm to wavenumber in 1/cm.
func NmToInvCm(wavelengthNm float64) (float64, error) {
	if wavelengthNm <= 0 {
		return 0, &DomainError{Quantity: "wavelength", Value: wavelengthNm}
	}
	return 1e7 / wavelengthNm, nil
}

// InvCmToNm converts a wavenumber in 1/cm to wavelength in nm.
func InvCmToNm(wavenumber float64) (float64, error) {
	if wavenumber <= 0 {
		return 0, &DomainError{Quantity: "wavenumber", Value: wavenumber}
	}
	return 1e7 / wavenumber, nil
}

// NmToEVSlice converts wavelengths to energies element-wise into dst.
// Non-positive elements yield NaN; the rest of the batch still converts.
// dst and src must have equal length.
func NmToEVSlice(dst, src []float64) {
	checkLen(dst, src)
	for i, wl := range src {
		if wl <= 0 {
			dst[i] = math.NaN()
			continue
		}
		dst[i] = nmToEV(wl)
	}
}

// EVToNmSlice converts energies to wavelengths element-wise into dst.
// Non-positive elements yield NaN. dst and src must have equal length.
func EVToNmSlice(dst, src []float64) {
	checkLen(dst, src)
	for i, ev := range src {
		if ev <= 0 {
			dst[i] = math.NaN()
			continue
		}
		dst[i] = evToNm(ev)
	}
}

// NmToInvCmSlice converts wavelengths to wavenumbers element-wise into
// dst. Non-positive elements yield NaN. dst and src must have equal
// length.
func NmToInvCmSlice(dst, src []float64) {
	checkLen(dst, src)
	reciprocal(dst, src)
}

// InvCmToNmSlice converts wavenumbers to wavelengths element-wise into
// dst. Non-positive elements yield NaN. dst and src must have equal
// length.
func InvCmToNmSlice(dst, src []float64) {
	checkLen(dst, src)
	reciprocal(dst, src)
}

func reciprocal(dst, src []float64) {
	for i, v := range src {
		if v <= 0 {
			dst[i] = math.NaN()
			continue
		}
		dst[i] = 1e7 / v
	}
}

func checkLen(dst, src []float64) {
	if len(dst) != len(src) {
		panic("units: dst and src length mismatch")
	}
}

// ConvertAxis returns a new axis with all sample positions converted to
// the requested unit. Converting to the axis' own unit returns the axis
// unchanged. Unlike the slice variants, an axis must stay strictly
// monotonic, so any invalid sample aborts the conversion with a
// DomainError.
func ConvertAxis(ax signal.Axis, to signal.Unit) (signal.Axis, error) {
	if ax.Unit() == to {
		return ax, nil
	}

	v := ax.Values()
	for i, x := range v {
		nm, err := toNm(x, ax.Unit())
		if err != nil {
			return signal.Axis{}, err
		}
		y, err := fromNm(nm, to)
		if err != nil {
			return signal.Axis{}, err
		}
		v[i] = y
	}

	return signal.NewAxis(v, to)
}

func toNm(x float64, from signal.Unit) (float64, error) {
	switch from {
	case signal.Nanometre:
		if x <= 0 {
			return 0, &DomainError{Quantity: "wavelength", Value: x}
		}
		return x, nil
	case signal.ElectronVolt:
		return EVToNm(x)
	default:
		return InvCmToNm(x)
	}
}

func fromNm(nm float64, to signal.Unit) (float64, error) {
	switch to {
	case signal.Nanometre:
		return nm, nil
	case signal.ElectronVolt:
		return NmToEV(nm)
	default:
		return NmToInvCm(nm)
	}
}

// ToEVDensity rescales per-nm intensity samples to per-eV intensity by
// the Jacobian of the wavelength/energy map,
//
//	I_E = I_λ · h·c / (e · n(λ) · E²)
//
// so that integrated intensities are preserved under axis conversion (see
// Wang and Townsend, J. Lumin. 142, 202 (2013)). data and wavelengthNm
// must have equal length; the result is index-aligned with the input.
func ToEVDensity(data, wavelengthNm []float64) ([]float64, error) {
	if len(data) != len(wavelengthNm) {
		return nil, signal.ErrLengthMismatch
	}

	out := make([]float64, len(data))
	for i, wl := range wavelengthNm {
		if wl <= 0 {
			return nil, &DomainError{Quantity: "wavelength", Value: wl}
		}
		ev := nmToEV(wl)
		out[i] = data[i] * hcOverE / (AirIndex(wl) * ev * ev)
	}

	return out, nil
}
