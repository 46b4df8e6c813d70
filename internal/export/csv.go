package export

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"

	"github.com/san-kum/atomsim/internal/scene"
)

var ErrInvalidSampling = errors.New("export: dt and duration must be positive")

var trajectoryHeader = []string{"time", "electron", "label", "x", "y", "z"}

// WriteTrajectories writes one row per electron per sample, from t=0 to
// duration inclusive in steps of dt.
func WriteTrajectories(w io.Writer, c *scene.Composer, dt, duration float64) error {
	if dt <= 0 || duration <= 0 {
		return ErrInvalidSampling
	}
	writer := csv.NewWriter(w)
	if err := writer.Write(trajectoryHeader); err != nil {
		return err
	}

	steps := int(duration/dt + 1e-9)
	electrons := c.Electrons()
	for k := 0; k <= steps; k++ {
		t := float64(k) * dt
		for i, o := range electrons {
			p := o.Position(t)
			record := []string{
				format(t),
				strconv.Itoa(i),
				o.Label,
				format(p.X()),
				format(p.Y()),
				format(p.Z()),
			}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}
	writer.Flush()
	return writer.Error()
}

func format(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
