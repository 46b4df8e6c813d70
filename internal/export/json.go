package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/atomsim/internal/scene"
)

// WriteSnapshot encodes the composer's geometry at t as indented JSON.
func WriteSnapshot(w io.Writer, c *scene.Composer, t float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(c.Snapshot(t))
}
