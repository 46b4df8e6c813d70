// Package analysis measures electron motion in the frequency domain.
//
// The package cross-checks the kinematic law against its own output:
//
//   - [PowerSpectrum]: one-sided magnitude spectrum via go-dsp's real FFT
//   - [DominantPeriod]: period of the strongest non-DC component
//   - [MeasurePeriods]: configured vs measured period for every electron
//
// # Period Check
//
// Sampling a window that holds a whole number of revolutions puts the peak
// exactly on a bin, so the measured period matches 2π/|ω|:
//
//	for _, r := range analysis.MeasurePeriods(composer, analysis.DefaultWindow, 1024) {
//	    fmt.Println(r.Label, r.Expected, r.Measured)
//	}
package analysis
