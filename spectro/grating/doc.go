// Package grating solves the grating equation of a spectrometer, mapping
// detector pixel positions to diffracted wavelengths.
//
// The plane grating relation is m·λ = d·(sin α + sin β) with groove
// spacing d, incidence angle α, diffraction angle β and order m. A
// detector of a given pixel pitch sits in the focal plane at focal length
// f, calibrated so that its midpoint receives the center wavelength. A
// pixel at signed offset p from the midpoint then sees the diffraction
// angle β(p) = β_c + atan(p·pitch/f), and the solver returns the
// wavelength the grating sends to that angle.
package grating
