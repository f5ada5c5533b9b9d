// Package units converts spectral axis values between wavelength in
// nanometres, photon energy in electronvolts, and wavenumber in inverse
// centimetres.
//
// Wavelength/energy conversion accounts for the dispersion of air: the
// photon energy of light at wavelength λ measured in air is
//
//	E = h·c / (e · n(λ) · λ)
//
// with n(λ) the refractive index of air after Peck and Reeder, J. Opt.
// Soc. Am. 62, 958 (1972). Wavenumber conversion is a pure reciprocal and
// carries no index correction.
//
// Scalar functions validate their input and return a DomainError on
// non-positive values. The slice variants follow the batch contract of an
// axis build: invalid elements yield NaN while the remaining elements are
// converted normally.
package units
