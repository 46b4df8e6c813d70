package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/scene"
	"github.com/san-kum/atomsim/internal/viz"
)

// CanvasToSVG converts a Braille canvas to SVG format, one circle per lit
// dot in its cell's pen color.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.SubWidth()) * scale
	height := float64(canvas.SubHeight()) * scale
	dotRadius := scale * 0.4

	var sb strings.Builder
	writeHeader(&sb, width, height, atom.MustColor("#0a0a0a"))

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					x, y := col*2+dx, row*4+dy
					if !canvas.IsSet(x, y) {
						continue
					}
					fmt.Fprintf(&sb, `<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n",
						float64(x)*scale+scale/2, float64(y)*scale+scale/2, dotRadius, fill(canvas.Colors[row][col]))
				}
			}
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// SceneToSVG projects frame f of c through cam into a width×height vector
// image. Edges become lines and dots become circles, painted far to near and
// classed by scene part. Labels are text elements.
func SceneToSVG(c *scene.Composer, f scene.Frame, cam *viz.Camera, theme viz.Theme, width, height int) string {
	var sb strings.Builder
	writeHeader(&sb, float64(width), float64(height), theme.Background)

	for _, e := range viz.SceneWireframe(c, f, theme).Project(cam, width, height) {
		if !e.Dot {
			fmt.Fprintf(&sb, `<line class="%s" x1="%d" y1="%d" x2="%d" y2="%d" stroke="%s" stroke-width="1"/>`+"\n",
				e.Tag, e.X1, e.Y1, e.X2, e.Y2, e.Color.Hex())
			continue
		}
		fmt.Fprintf(&sb, `<circle class="%s" cx="%d" cy="%d" r="%d" fill="%s"/>`+"\n",
			e.Tag, e.X1, e.Y1, max(e.Radius, 1), e.Color.Hex())
	}

	for _, l := range f.Labels {
		if x, y, _, ok := cam.Project(l.Anchor, width, height); ok {
			fmt.Fprintf(&sb, `<text x="%d" y="%d" fill="%s" font-family="monospace" font-size="14" text-anchor="middle">%s</text>`+"\n",
				x, y, theme.Text.Hex(), escape(l.Text))
		}
	}

	sb.WriteString("</svg>\n")
	return sb.String()
}

// WriteSceneSVG renders the frame at t with the default camera.
func WriteSceneSVG(w io.Writer, c *scene.Composer, t float64, theme viz.Theme, width, height int) error {
	_, err := io.WriteString(w, SceneToSVG(c, c.FrameTick(t), viz.NewCamera(), theme, width, height))
	return err
}

func writeHeader(sb *strings.Builder, width, height float64, bg atom.Color) {
	fmt.Fprintf(sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, bg.Hex())
}

func fill(c atom.Color) string {
	if c == (atom.Color{}) {
		return "#ffffff"
	}
	return c.Hex()
}

var escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")

func escape(s string) string { return escaper.Replace(s) }
