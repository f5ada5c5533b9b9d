// Package signal defines the spectral data model shared by the other
// spectro packages.
//
// A spectrum is an ordered, strictly monotonic axis of sample positions
// tagged with a physical unit, plus an intensity array indexed by that
// axis. Spectrum holds a single 1-D spectrum; Image holds a stack of
// spectra sharing one axis (row-major, spectral axis innermost). Both
// satisfy the Signal interface, which is the read-only capability surface
// the numeric packages operate on. Nothing in this module mutates a
// caller-supplied Signal; operations always return new values.
package signal
