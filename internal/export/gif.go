package export

import (
	"image"
	"io"
	"math"

	"github.com/san-kum/atomsim/internal/scene"
	"github.com/san-kum/atomsim/internal/viz"
)

const (
	DefaultGIFFrames = 60
	gifWidth         = 80
	gifHeight        = 24
)

// LoopDuration is the longest finite electron period, the time for every
// electron to complete at least one revolution. Zero when nothing moves.
func LoopDuration(c *scene.Composer) float64 {
	longest := 0.0
	for _, o := range c.Electrons() {
		if p := o.Period(); !math.IsInf(p, 1) && p > longest {
			longest = p
		}
	}
	return longest
}

// RenderLoop draws frames evenly spaced over one LoopDuration onto a
// Braille canvas and rasterizes each.
func RenderLoop(c *scene.Composer, cam *viz.Camera, theme viz.Theme, frames int) []*image.Paletted {
	if frames < 1 {
		frames = DefaultGIFFrames
	}
	loop := LoopDuration(c)
	if loop == 0 {
		frames = 1
	}

	canvas := viz.NewCanvas(gifWidth, gifHeight)
	images := make([]*image.Paletted, 0, frames)
	for k := 0; k < frames; k++ {
		t := loop * float64(k) / float64(frames)
		viz.DrawScene(canvas, cam, c, c.FrameTick(t), theme, false)
		images = append(images, viz.CanvasImage(canvas))
	}
	return images
}

// WriteLoopGIF renders one loop and encodes it with per-frame delays that
// play it back in real time.
func WriteLoopGIF(w io.Writer, c *scene.Composer, theme viz.Theme, frames int) error {
	images := RenderLoop(c, viz.NewCamera(), theme, frames)
	delay := 10
	if loop := LoopDuration(c); loop > 0 {
		delay = max(1, int(math.Round(100*loop/float64(len(images)))))
	}
	return viz.EncodeGIF(w, images, delay)
}
