package viz

import (
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"

	"github.com/san-kum/atomsim/internal/atom"
)

const (
	cellW = 8
	cellH = 16
)

// CanvasImage rasterizes the lit Braille dots of c onto black, one
// cellW×cellH block per cell, keeping each cell's pen color. Text cells are
// skipped.
func CanvasImage(c *Canvas) *image.Paletted {
	palette := color.Palette{color.Black}
	index := map[atom.Color]uint8{}
	colorIndex := func(col atom.Color) uint8 {
		if col == (atom.Color{}) {
			col = atom.Color{R: 255, G: 255, B: 255}
		}
		if i, ok := index[col]; ok {
			return i
		}
		if len(palette) == 256 {
			return uint8(palette.Index(color.RGBA{col.R, col.G, col.B, 255}))
		}
		palette = append(palette, color.RGBA{col.R, col.G, col.B, 255})
		index[col] = uint8(len(palette) - 1)
		return index[col]
	}

	type dot struct {
		x, y int
		idx  uint8
	}
	var dots []dot
	for row := 0; row < c.Height; row++ {
		for col := 0; col < c.Width; col++ {
			r := c.Grid[row][col]
			if r <= brailleBlank || r > brailleLast {
				continue
			}
			pattern := int(r - brailleBlank)
			idx := colorIndex(c.Colors[row][col])
			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						dots = append(dots, dot{col*2 + dx, row*4 + dy, idx})
					}
				}
			}
		}
	}

	dotW, dotH := cellW/2, cellH/4
	img := image.NewPaletted(image.Rect(0, 0, c.Width*cellW, c.Height*cellH), palette)
	for _, d := range dots {
		for py := 0; py < dotH; py++ {
			for px := 0; px < dotW; px++ {
				img.SetColorIndex(d.x*dotW+px, d.y*dotH+py, d.idx)
			}
		}
	}
	return img
}

// EncodeGIF writes frames as a looping animation, delay in 100ths of a second.
func EncodeGIF(w io.Writer, frames []*image.Paletted, delay int) error {
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, &anim)
}

// SaveGIF is EncodeGIF into a new file at path.
func SaveGIF(path string, frames []*image.Paletted, delay int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := EncodeGIF(f, frames, delay); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
