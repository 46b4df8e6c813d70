package viz

import (
	"github.com/san-kum/atomsim/internal/electron"
	"github.com/san-kum/atomsim/internal/nucleus"
	"github.com/san-kum/atomsim/internal/scene"
)

const orbitalSegments = 24

// Tags set on SceneWireframe edges.
const (
	TagOrbital  = "orbital"
	TagPath     = "path"
	TagNucleon  = "nucleon"
	TagElectron = "electron"
)

// SceneWireframe collects the composer's geometry for frame f: nucleons and
// electrons as dots, orbitals as principal sections, orbit paths as guides.
func SceneWireframe(c *scene.Composer, f scene.Frame, theme Theme) *Wireframe {
	w := NewWireframe()
	w.SetTag(TagOrbital)
	for _, s := range c.Orbitals() {
		w.AddEllipsoid(s.Center, s.Extent(), orbitalSegments, s.Color)
	}
	w.SetTag(TagPath)
	for i, path := range c.Paths() {
		o, _ := c.Electron(i)
		w.AddPolyline(path, theme.Guide(o.Color))
	}
	w.SetTag(TagNucleon)
	for _, n := range c.Nucleons() {
		w.AddDot(n.Position, nucleus.NucleonRadius, n.Color())
	}
	w.SetTag(TagElectron)
	for _, e := range f.Electrons {
		w.AddDot(e.Position, electron.Radius, e.Color)
	}
	return w
}

// DrawScene renders f onto canvas. Scene labels are written over the
// geometry; electron labels only when withElectronLabels is set.
func DrawScene(canvas *Canvas, cam *Camera, c *scene.Composer, f scene.Frame, theme Theme, withElectronLabels bool) {
	canvas.Clear()
	Render3D(canvas, SceneWireframe(c, f, theme), cam)

	sw, sh := canvas.SubWidth(), canvas.SubHeight()
	canvas.Pen = theme.Text
	for _, l := range f.Labels {
		if x, y, _, ok := cam.Project(l.Anchor, sw, sh); ok {
			canvas.Text(x, y, l.Text)
		}
	}
	if !withElectronLabels {
		return
	}
	for _, e := range f.Electrons {
		if e.Label == "" {
			continue
		}
		canvas.Pen = e.Color
		if x, y, _, ok := cam.Project(e.LabelAnchor, sw, sh); ok {
			canvas.Text(x+2, y, e.Label)
		}
	}
}
