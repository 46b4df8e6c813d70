package viz

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/scene"
)

func newTestModel() (Model, *scene.Composer) {
	c := scene.New(scene.CarbonOptions())
	return NewModel(c, 30, "minimal"), c
}

func press(m Model, key string) Model {
	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	next, cmd := m.Update(TickMsg(at))
	if cmd == nil {
		t.Fatal("tick must schedule the next tick")
	}
	return next.(Model)
}

func TestModel_SelectIsotope(t *testing.T) {
	m, c := newTestModel()
	m = press(m, "3")
	if c.Isotope() != atom.Carbon14 {
		t.Errorf("expected Carbon-14, got %v", c.Isotope())
	}
	if len(c.Nucleons()) != 14 {
		t.Errorf("expected 14 nucleons, got %d", len(c.Nucleons()))
	}
	press(m, "1")
	if c.Isotope() != atom.Carbon12 {
		t.Errorf("expected Carbon-12, got %v", c.Isotope())
	}
}

func TestModel_ClockPauses(t *testing.T) {
	m, _ := newTestModel()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	m = tick(t, m, start)
	if m.Clock() != 0 {
		t.Errorf("first tick should only start the clock, got %v", m.Clock())
	}
	m = tick(t, m, start.Add(500*time.Millisecond))
	if math.Abs(m.Clock()-0.5) > 1e-9 {
		t.Errorf("expected 0.5s, got %v", m.Clock())
	}

	m = press(m, " ")
	if m.Running() {
		t.Fatal("space should pause")
	}
	m = tick(t, m, start.Add(2*time.Second))
	if math.Abs(m.Clock()-0.5) > 1e-9 {
		t.Errorf("clock moved while paused: %v", m.Clock())
	}

	m = press(m, " ")
	m = tick(t, m, start.Add(2250*time.Millisecond))
	if math.Abs(m.Clock()-0.75) > 1e-9 {
		t.Errorf("expected 0.75s after resume, got %v", m.Clock())
	}
}

func TestModel_TuneRadius(t *testing.T) {
	m, c := newTestModel()
	builds := c.PathBuilds()

	m = press(m, "tab")
	if m.Selected() != 1 {
		t.Fatalf("expected electron 1 selected, got %d", m.Selected())
	}
	m = press(m, "up")

	o, _ := c.Electron(1)
	if o.Radius != -3.25 {
		t.Errorf("expected radius -3.25, got %v", o.Radius)
	}
	if c.PathBuilds() != builds+1 {
		t.Errorf("expected one path rebuild, got %d", c.PathBuilds()-builds)
	}

	for i := 0; i < 40; i++ {
		m = press(m, "down")
	}
	o, _ = c.Electron(1)
	if o.Radius != -minRadius {
		t.Errorf("radius should clamp at -%v, got %v", minRadius, o.Radius)
	}
}

func TestModel_Remount(t *testing.T) {
	m, c := newTestModel()
	start := time.Now()
	m = tick(t, m, start)
	m = tick(t, m, start.Add(time.Second))
	m = press(m, "up")

	m = press(m, "r")
	if m.Clock() != 0 {
		t.Errorf("remount should reset clock, got %v", m.Clock())
	}
	if o, _ := c.Electron(0); o.Radius != 3 {
		t.Errorf("remount should restore radius, got %v", o.Radius)
	}
}

func TestModel_ThemeAndCamera(t *testing.T) {
	m, _ := newTestModel()
	m = press(m, "t")
	if m.Theme().Name != "ocean" {
		t.Errorf("expected ocean after minimal, got %s", m.Theme().Name)
	}
	rx := m.Camera().RotX
	m = press(m, "x")
	if math.Abs(m.Camera().RotX-rx-0.1) > 1e-12 {
		t.Errorf("x should rotate camera, got %v", m.Camera().RotX)
	}
}

func TestModel_View(t *testing.T) {
	m, _ := newTestModel()
	m = tick(t, m, time.Now())
	view := m.View()
	for _, want := range []string{"Carbon-12", "Protons: 6", "Neutrons: 6", "1s Electron 1", "Model is not to scale."} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(m, "2")
	if !strings.Contains(m.View(), "Neutrons: 7") {
		t.Error("legend should follow isotope")
	}
	m = press(m, "?")
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay missing")
	}
}

func TestModel_Quit(t *testing.T) {
	m, _ := newTestModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}
