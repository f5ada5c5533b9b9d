// Package join merges overlapping spectra into one continuous spectrum.
//
// Signals are folded left to right. For each adjacent pair the overlap of
// the two axis domains is located and the merged spectrum switches source
// at its midpoint: samples of the running result below the midpoint are
// kept, samples of the incoming signal at or above it are appended. Before
// the switch the incoming intensity is rescaled so that both signals agree
// on their mean level around the join point, which removes the intensity
// step that different acquisition settings leave between overlapping
// spectral windows.
//
// The join concatenates the two sample grids as they are; it never
// resamples onto a common grid. Joining signals with different per-sample
// spacing therefore yields an axis whose spacing changes at the join
// point.
package join
