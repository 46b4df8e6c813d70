package viz

import (
	"math"
	"strings"
	"testing"

	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/scene"
)

func flatCamera() *Camera {
	return &Camera{Distance: 40, Near: 0.1, Zoom: 1, Extent: 8}
}

func TestCamera_OriginAtCenter(t *testing.T) {
	cams := map[string]*Camera{"default": NewCamera(), "flat": flatCamera()}
	for name, cam := range cams {
		x, y, _, ok := cam.Project(atom.V(0, 0, 0), 160, 96)
		if !ok || x != 80 || y != 48 {
			t.Errorf("%s: origin projected to (%d, %d, %v)", name, x, y, ok)
		}
	}
}

func TestCamera_ExtentFillsShortSide(t *testing.T) {
	cam := flatCamera()
	x, y, _, ok := cam.Project(atom.V(8, 0, 0), 160, 96)
	if !ok || x != 128 || y != 48 {
		t.Errorf("expected (128, 48), got (%d, %d, %v)", x, y, ok)
	}
	if _, y, _, _ := cam.Project(atom.V(0, 1, 0), 160, 96); y >= 48 {
		t.Errorf("+y should project upward, got row %d", y)
	}
}

func TestCamera_Perspective(t *testing.T) {
	cam := flatCamera()
	near, _, _, _ := cam.Project(atom.V(4, 0, 5), 160, 96)
	far, _, _, _ := cam.Project(atom.V(4, 0, -5), 160, 96)
	if near <= far {
		t.Errorf("nearer points should spread wider: near %d far %d", near, far)
	}
	if _, _, _, ok := cam.Project(atom.V(0, 0, 50), 160, 96); ok {
		t.Error("point behind the camera should be hidden")
	}
	if s := cam.Scale(atom.V(0, 0, 50), 160, 96); s != 0 {
		t.Errorf("expected zero scale behind camera, got %v", s)
	}
}

func TestCamera_RotatePoint(t *testing.T) {
	cam := flatCamera()
	cam.RotateY(math.Pi / 2)
	got := cam.RotatePoint(atom.V(1, 0, 0))
	want := atom.V(0, 0, -1)
	if got.Sub(want).Len() > 1e-12 {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestCamera_Zoom(t *testing.T) {
	cam := flatCamera()
	for i := 0; i < 50; i++ {
		cam.ZoomIn()
	}
	if cam.Zoom != 10 {
		t.Errorf("zoom should clamp at 10, got %v", cam.Zoom)
	}
	for i := 0; i < 100; i++ {
		cam.ZoomOut()
	}
	if cam.Zoom != 0.1 {
		t.Errorf("zoom should clamp at 0.1, got %v", cam.Zoom)
	}
}

func TestWireframe_Shapes(t *testing.T) {
	w := NewWireframe()
	w.AddEllipse(atom.V(0, 0, 0), atom.V(1, 0, 0), atom.V(0, 1, 0), 12, atom.Color{})
	if len(w.Edges) != 12 {
		t.Errorf("expected 12 edges, got %d", len(w.Edges))
	}
	last := w.Edges[len(w.Edges)-1].End
	if last.Sub(atom.V(1, 0, 0)).Len() > 1e-12 {
		t.Errorf("ellipse should close, ends at %v", last)
	}

	w.Clear()
	w.AddEllipsoid(atom.V(0, 0, 0), atom.V(1, 2, 3), 10, atom.Color{})
	if len(w.Edges) != 30 {
		t.Errorf("expected 30 edges, got %d", len(w.Edges))
	}

	w.Clear()
	w.AddPolyline([]atom.Vec3{atom.V(0, 0, 0), atom.V(1, 0, 0), atom.V(1, 1, 0)}, atom.Color{})
	if len(w.Edges) != 2 {
		t.Errorf("expected 2 edges, got %d", len(w.Edges))
	}
}

func TestWireframe_ProjectSortsFarToNear(t *testing.T) {
	w := NewWireframe()
	w.AddPoint(atom.V(0, 0, 3), atom.MustColor("#fff"))
	w.AddPoint(atom.V(0, 0, -3), atom.MustColor("#000"))
	w.AddDot(atom.V(1, 0, 0), 0.5, atom.MustColor("#f00"))

	proj := w.Project(flatCamera(), 160, 96)
	if len(proj) != 3 {
		t.Fatalf("expected 3 projected edges, got %d", len(proj))
	}
	for i := 1; i < len(proj); i++ {
		if proj[i-1].Depth > proj[i].Depth {
			t.Errorf("not sorted by depth: %v", proj)
		}
	}
	if proj[1].Radius != 3 || !proj[1].Dot {
		t.Errorf("expected dot of radius 3, got %+v", proj[1])
	}
}

func TestRender3D_Dot(t *testing.T) {
	c := NewCanvas(80, 24)
	w := NewWireframe()
	red := atom.MustColor("#f00")
	w.AddDot(atom.V(0, 0, 0), 1, red)

	Render3D(c, w, flatCamera())
	if !c.IsSet(80, 48) {
		t.Error("center pixel should be lit")
	}
	if c.Colors[48/4][80/2] != red {
		t.Errorf("expected dot color, got %v", c.Colors[12][40])
	}
	Render3D(nil, w, nil)
}

func TestSceneWireframe_Carbon(t *testing.T) {
	c := scene.New(scene.CarbonOptions())
	w := SceneWireframe(c, c.FrameTick(0), ThemeCyberpunk)

	// 4 orbitals × 3 sections, 6 guides of 100 segments, 12 nucleons, 6 electrons.
	want := 4*3*orbitalSegments + 6*100 + 12 + 6
	if len(w.Edges) != want {
		t.Errorf("expected %d edges, got %d", want, len(w.Edges))
	}
}

func TestDrawScene_Labels(t *testing.T) {
	c := scene.New(scene.CarbonOptions())
	canvas := NewCanvas(80, 24)
	DrawScene(canvas, NewCamera(), c, c.FrameTick(0), ThemeMinimal, false)

	if !strings.Contains(canvas.String(), "Carbon-12") {
		t.Error("nucleus caption missing")
	}
	if strings.Contains(canvas.String(), "2px Electron") {
		t.Error("electron labels should be hidden")
	}
}
