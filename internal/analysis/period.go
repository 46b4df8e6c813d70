package analysis

import (
	"math"

	"github.com/san-kum/atomsim/internal/scene"
)

// DefaultWindow holds a whole number of revolutions for any speed that is
// a multiple of 0.02 rad/s.
const DefaultWindow = 100 * math.Pi

type PeriodReport struct {
	Index    int
	Label    string
	Expected float64
	Measured float64
}

// RelError is |measured-expected|/expected; zero when both are infinite.
func (r PeriodReport) RelError() float64 {
	if math.IsInf(r.Expected, 1) && math.IsInf(r.Measured, 1) {
		return 0
	}
	return math.Abs(r.Measured-r.Expected) / r.Expected
}

// MeasurePeriods samples the x coordinate of each electron n times across
// window seconds and compares the spectral period with Orbit.Period.
func MeasurePeriods(c *scene.Composer, window float64, n int) []PeriodReport {
	if window <= 0 {
		window = DefaultWindow
	}
	if n < 2 {
		return nil
	}
	dt := window / float64(n)
	electrons := c.Electrons()
	reports := make([]PeriodReport, 0, len(electrons))

	xs := make([]float64, n)
	for i, o := range electrons {
		for k, p := range o.Sample(0, dt, n) {
			xs[k] = p.X()
		}
		reports = append(reports, PeriodReport{
			Index:    i,
			Label:    o.Label,
			Expected: o.Period(),
			Measured: DominantPeriod(xs, dt),
		})
	}
	return reports
}
