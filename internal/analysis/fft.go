package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns |X[k]| for k in [0, n/2).
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return nil
	}
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantFrequency returns the frequency in Hz of the largest non-DC bin,
// refined by parabolic interpolation. Zero when the signal is flat.
func DominantFrequency(samples []float64, dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	ps := PowerSpectrum(samples)
	if len(ps) < 2 {
		return 0
	}

	peak := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}
	if ps[peak] < 1e-9*float64(len(samples)) {
		return 0
	}

	offset := 0.0
	if peak+1 < len(ps) {
		a, b, c := ps[peak-1], ps[peak], ps[peak+1]
		if denom := a - 2*b + c; denom != 0 {
			offset = 0.5 * (a - c) / denom
		}
	}
	return (float64(peak) + offset) / (float64(len(samples)) * dt)
}

// DominantPeriod is 1/DominantFrequency, or +Inf for a flat signal.
func DominantPeriod(samples []float64, dt float64) float64 {
	f := DominantFrequency(samples, dt)
	if f == 0 {
		return math.Inf(1)
	}
	return 1 / f
}
