package viz

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/atomsim/internal/atom"
)

// Camera manages 3D projection to a 2D plane. It looks down -Z from
// Distance after rotating the world by RotX, then RotY, then RotZ.
type Camera struct {
	Distance, Near   float64
	RotX, RotY, RotZ float64
	Zoom             float64
	// Extent is the world half-size that fills the shorter canvas side at Zoom 1.
	Extent float64
}

func NewCamera() *Camera {
	return &Camera{Distance: 40, Near: 0.1, RotX: 0.45, RotY: -0.6, Zoom: 1.0, Extent: 8.5}
}

func (c *Camera) RotateX(a float64) { c.RotX += a }
func (c *Camera) RotateY(a float64) { c.RotY += a }
func (c *Camera) RotateZ(a float64) { c.RotZ += a }
func (c *Camera) ZoomIn()           { c.Zoom = math.Min(10, c.Zoom*1.2) }
func (c *Camera) ZoomOut()          { c.Zoom = math.Max(0.1, c.Zoom/1.2) }

func (c *Camera) rotation() mgl64.Mat3 {
	return mgl64.Rotate3DZ(c.RotZ).Mul3(mgl64.Rotate3DY(c.RotY)).Mul3(mgl64.Rotate3DX(c.RotX))
}

// RotatePoint rotates a point around the camera's axes.
func (c *Camera) RotatePoint(p atom.Vec3) atom.Vec3 {
	return c.rotation().Mul3x1(p)
}

func (c *Camera) pixelsPerUnit(sw, sh int) float64 {
	extent := c.Extent
	if extent <= 0 {
		extent = 1
	}
	return math.Min(float64(sw), float64(sh)) / (2 * extent)
}

// Scale returns screen pixels per world unit at p, or 0 behind the camera.
func (c *Camera) Scale(p atom.Vec3, sw, sh int) float64 {
	rot := c.RotatePoint(p).Mul(c.Zoom)
	if rot.Z() >= c.Distance-c.Near {
		return 0
	}
	return c.Distance / (c.Distance - rot.Z()) * c.Zoom * c.pixelsPerUnit(sw, sh)
}

// Project converts 3D world coordinates to 2D screen coordinates.
// Returns x, y, depth, and visibility.
func (c *Camera) Project(p atom.Vec3, sw, sh int) (int, int, float64, bool) {
	rot := c.RotatePoint(p).Mul(c.Zoom)
	if rot.Z() >= c.Distance-c.Near {
		return 0, 0, 0, false
	}
	scale := c.Distance / (c.Distance - rot.Z()) * c.pixelsPerUnit(sw, sh)
	sx := sw/2 + int(math.Round(rot.X()*scale))
	sy := sh/2 - int(math.Round(rot.Y()*scale))
	return sx, sy, rot.Z(), sx >= 0 && sx < sw && sy >= 0 && sy < sh
}

// Edge is a segment, or a filled dot of world Radius when Start == End.
// Tag names the scene part the edge belongs to.
type Edge struct {
	Start, End atom.Vec3
	Color      atom.Color
	Radius     float64
	Tag        string
}

type Wireframe struct {
	Edges []Edge
	tag   string
}

func NewWireframe() *Wireframe { return &Wireframe{Edges: make([]Edge, 0)} }

// SetTag labels every edge added after the call.
func (w *Wireframe) SetTag(tag string) { w.tag = tag }

func (w *Wireframe) AddEdge(s, e atom.Vec3, c atom.Color) {
	w.Edges = append(w.Edges, Edge{Start: s, End: e, Color: c, Tag: w.tag})
}
func (w *Wireframe) AddPoint(p atom.Vec3, c atom.Color) { w.AddEdge(p, p, c) }
func (w *Wireframe) AddDot(p atom.Vec3, radius float64, c atom.Color) {
	w.Edges = append(w.Edges, Edge{Start: p, End: p, Color: c, Radius: radius, Tag: w.tag})
}
func (w *Wireframe) Clear() { w.Edges = w.Edges[:0] }

// AddPolyline joins consecutive points.
func (w *Wireframe) AddPolyline(points []atom.Vec3, c atom.Color) {
	for i := 1; i < len(points); i++ {
		w.AddEdge(points[i-1], points[i], c)
	}
}

// AddEllipse traces center + u·cosθ + v·sinθ with the given segment count.
func (w *Wireframe) AddEllipse(center, u, v atom.Vec3, segments int, c atom.Color) {
	if segments < 3 {
		segments = 3
	}
	prev := center.Add(u)
	for i := 1; i <= segments; i++ {
		s, co := math.Sincos(2 * math.Pi * float64(i) / float64(segments))
		next := center.Add(u.Mul(co)).Add(v.Mul(s))
		w.AddEdge(prev, next, c)
		prev = next
	}
}

// AddEllipsoid draws the three principal sections of an axis-aligned
// ellipsoid with the given half-lengths.
func (w *Wireframe) AddEllipsoid(center, extent atom.Vec3, segments int, c atom.Color) {
	ex := atom.V(extent.X(), 0, 0)
	ey := atom.V(0, extent.Y(), 0)
	ez := atom.V(0, 0, extent.Z())
	w.AddEllipse(center, ex, ey, segments, c)
	w.AddEllipse(center, ey, ez, segments, c)
	w.AddEllipse(center, ez, ex, segments, c)
}

type ProjectedEdge struct {
	X1, Y1, X2, Y2 int
	Radius         int
	Depth          float64
	Color          atom.Color
	Dot            bool
	Tag            string
}

// Project maps every visible edge to screen space, sorted far to near.
func (w *Wireframe) Project(cam *Camera, sw, sh int) []ProjectedEdge {
	proj := make([]ProjectedEdge, 0, len(w.Edges))
	for _, e := range w.Edges {
		x1, y1, d1, v1 := cam.Project(e.Start, sw, sh)
		if e.Radius > 0 {
			r := int(math.Round(e.Radius * cam.Scale(e.Start, sw, sh)))
			if v1 || r > 0 {
				proj = append(proj, ProjectedEdge{x1, y1, x1, y1, r, d1, e.Color, true, e.Tag})
			}
			continue
		}
		x2, y2, d2, v2 := cam.Project(e.End, sw, sh)
		if v1 || v2 {
			proj = append(proj, ProjectedEdge{x1, y1, x2, y2, 0, (d1 + d2) / 2, e.Color, false, e.Tag})
		}
	}
	sort.SliceStable(proj, func(i, j int) bool { return proj[i].Depth < proj[j].Depth })
	return proj
}

// Render3D draws the wireframe to the canvas using a simple painter's algorithm.
func Render3D(c *Canvas, w *Wireframe, cam *Camera) {
	if c == nil || w == nil || cam == nil {
		return
	}
	pen := c.Pen
	defer func() { c.Pen = pen }()
	for _, e := range w.Project(cam, c.SubWidth(), c.SubHeight()) {
		c.Pen = e.Color
		switch {
		case e.Dot:
			c.FillCircle(e.X1, e.Y1, e.Radius)
		case e.X1 == e.X2 && e.Y1 == e.Y2:
			c.Set(e.X1, e.Y1)
		default:
			c.DrawLine(e.X1, e.Y1, e.X2, e.Y2)
		}
	}
}

func CreateAxesWireframe(l float64) *Wireframe {
	w, o := NewWireframe(), atom.V(0, 0, 0)
	w.AddEdge(o, atom.V(l, 0, 0), atom.MustColor("#F44"))
	w.AddEdge(o, atom.V(0, l, 0), atom.MustColor("#4F4"))
	w.AddEdge(o, atom.V(0, 0, l), atom.MustColor("#44F"))
	return w
}
