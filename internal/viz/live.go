package viz

import (
	"fmt"
	"image"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/config"
	"github.com/san-kum/atomsim/internal/electron"
	"github.com/san-kum/atomsim/internal/logutil"
	"github.com/san-kum/atomsim/internal/nucleus"
	"github.com/san-kum/atomsim/internal/scene"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 240
	radiusStep      = 0.25
	minRadius       = 0.5
	recordingFile   = "atom.gif"
)

type TickMsg time.Time

// Model hosts a scene.Composer in the terminal. The clock is the host's:
// wall time accumulated between ticks while running, frozen while paused.
type Model struct {
	composer       *scene.Composer
	initial        []electron.Orbit
	canvas         *Canvas
	camera         *Camera
	theme          Theme
	fps            int
	clock          float64
	last           time.Time
	frame          scene.Frame
	running        bool
	selected       int
	yHistory       []float64
	electronLabels bool
	showAxes       bool
	recording      bool
	frames         []*image.Paletted
	showHelp       bool
	status         string
}

// NewModel builds a view over c. fps <= 0 uses the configured default.
func NewModel(c *scene.Composer, fps int, theme string) Model {
	if fps <= 0 {
		fps = config.DefaultFPS
	}
	c.Subscribe(func(s scene.State, nucleons []nucleus.Nucleon) {
		logutil.Debugf("viz: %s mounted with %d nucleons", s.Isotope.Name(), len(nucleons))
	})
	m := Model{
		composer: c,
		initial:  c.Electrons(),
		canvas:   NewCanvas(width, height),
		camera:   NewCamera(),
		theme:    GetTheme(theme),
		fps:      fps,
		running:  true,
		yHistory: make([]float64, 0, historyCapacity),
	}
	m.frame = c.FrameTick(0)
	return m
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Clock is the elapsed scene time in seconds.
func (m Model) Clock() float64 { return m.clock }

func (m Model) Selected() int { return m.selected }

func (m Model) Running() bool { return m.running }

func (m Model) Theme() Theme { return m.theme }

func (m Model) Camera() *Camera { return m.camera }

// Update handles input events and advances the clock.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			if m.recording {
				m.stopRecording()
			}
			return m, tea.Quit
		case "1":
			m.composer.SelectIsotope(atom.Carbon12)
		case "2":
			m.composer.SelectIsotope(atom.Carbon13)
		case "3":
			m.composer.SelectIsotope(atom.Carbon14)
		case " ":
			m.running = !m.running
		case "r":
			m.remount()
		case "tab":
			m.cycleElectron()
		case "up", "k":
			m.adjustRadius(radiusStep)
		case "down", "j":
			m.adjustRadius(-radiusStep)
		case "l":
			m.electronLabels = !m.electronLabels
		case "a":
			m.showAxes = !m.showAxes
		case "g":
			if m.recording {
				m.stopRecording()
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
				m.status = "recording"
			}
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "x":
			m.camera.RotateX(0.1)
		case "X":
			m.camera.RotateX(-0.1)
		case "y":
			m.camera.RotateY(0.1)
		case "Y":
			m.camera.RotateY(-0.1)
		case "z":
			m.camera.RotateZ(0.1)
		case "Z":
			m.camera.RotateZ(-0.1)
		case "+", "=":
			m.camera.ZoomIn()
		case "-", "_":
			m.camera.ZoomOut()
		}
	case TickMsg:
		now := time.Time(msg)
		if m.running && !m.last.IsZero() {
			m.clock += now.Sub(m.last).Seconds()
		}
		m.last = now
		m.step()
		if m.recording {
			m.frames = append(m.frames, CanvasImage(m.canvas))
		}
		return m, m.tick()
	}
	return m, nil
}

// step produces the frame at the current clock and redraws the canvas.
func (m *Model) step() {
	m.frame = m.composer.FrameTick(m.clock)
	if m.selected < len(m.frame.Electrons) {
		m.yHistory = append(m.yHistory, m.frame.Electrons[m.selected].Position.Y())
		if len(m.yHistory) > historyCapacity {
			m.yHistory = m.yHistory[1:]
		}
	}
	m.draw()
}

func (m *Model) draw() {
	DrawScene(m.canvas, m.camera, m.composer, m.frame, m.theme, m.electronLabels)
	if m.showAxes {
		Render3D(m.canvas, CreateAxesWireframe(8), m.camera)
	}
}

func (m *Model) cycleElectron() {
	n := len(m.composer.Electrons())
	if n == 0 {
		return
	}
	m.selected = (m.selected + 1) % n
	m.yHistory = m.yHistory[:0]
}

// adjustRadius grows or shrinks |r| of the selected orbit, keeping its sign.
// The new radius rebuilds the guide path.
func (m *Model) adjustRadius(delta float64) {
	o, err := m.composer.Electron(m.selected)
	if err != nil {
		return
	}
	o.Radius = math.Copysign(math.Max(minRadius, math.Abs(o.Radius)+delta), o.Radius)
	if err := m.composer.SetElectron(m.selected, o); err != nil {
		logutil.Warnf("viz: resize electron %d: %v", m.selected, err)
	}
}

// remount restarts the clock and restores the orbits the model started with.
func (m *Model) remount() {
	m.clock = 0
	m.yHistory = m.yHistory[:0]
	for i, o := range m.initial {
		if err := m.composer.SetElectron(i, o); err != nil {
			logutil.Warnf("viz: restore electron %d: %v", i, err)
		}
	}
	m.composer.SelectIsotope(m.composer.Isotope())
}

func (m *Model) stopRecording() {
	m.recording = false
	frames := m.frames
	m.frames = nil
	if len(frames) == 0 {
		m.status = ""
		return
	}
	delay := int(math.Max(1, math.Round(100/float64(m.fps))))
	if err := SaveGIF(recordingFile, frames, delay); err != nil {
		logutil.Errorf("viz: save recording: %v", err)
		m.status = "recording failed"
		return
	}
	logutil.Infof("viz: saved %d frames to %s", len(frames), recordingFile)
	m.status = fmt.Sprintf("saved %s", recordingFile)
}

// View renders the TUI interface.
func (m Model) View() string {
	st := m.theme.styles()
	iso := m.composer.Isotope()

	var s strings.Builder
	s.WriteString(st.header.Render(GradientText(strings.ToUpper(scene.Title), m.theme.Primary, m.theme.Secondary)) + "\n")

	for i, choice := range atom.Isotopes {
		item := fmt.Sprintf("[%d] %s", i+1, choice.Name())
		if choice == iso {
			s.WriteString(st.active.Render(item))
		} else {
			s.WriteString(st.inactive.Render(item))
		}
		s.WriteString(" ")
	}
	s.WriteString("\n\n")

	switch {
	case m.recording:
		s.WriteString(st.recording.Render("● REC") + " ")
	case m.status != "":
		s.WriteString(st.value.Render(m.status) + " ")
	}
	if m.running {
		s.WriteString(st.running.Render("RUNNING"))
	} else {
		s.WriteString(st.paused.Render("PAUSED"))
	}
	s.WriteString("\n\n")

	s.WriteString(st.label.Render("Time") + st.value.Render(fmt.Sprintf("%.2fs", m.clock)) + "\n")
	s.WriteString(st.label.Render("Nucleons") + st.value.Render(fmt.Sprintf("%d", len(m.composer.Nucleons()))) + "\n\n")

	for _, e := range scene.Legend(iso) {
		s.WriteString(Swatch(e.Color, st.value.Render(e.Text)) + "\n")
	}
	s.WriteString("\n" + Separator(40, m.theme.Muted) + "\n\n")

	if o, err := m.composer.Electron(m.selected); err == nil {
		name := o.Label
		if name == "" {
			name = fmt.Sprintf("electron %d", m.selected+1)
		}
		s.WriteString(Swatch(o.Color, st.value.Render(name)) + "\n")
		s.WriteString(st.label.Render("Radius") + st.value.Render(fmt.Sprintf("%.2f", o.Radius)) + "\n")
		s.WriteString(st.label.Render("Speed") + st.value.Render(fmt.Sprintf("%.2f rad/s", o.Speed)) + "\n")
		s.WriteString(st.label.Render("Plane") + st.value.Render(o.Plane.String()) + "\n")
		period := "∞"
		if p := o.Period(); !math.IsInf(p, 1) {
			period = fmt.Sprintf("%.2fs", p)
		}
		s.WriteString(st.label.Render("Period") + st.value.Render(period) + "\n")
	}

	if plotable(m.yHistory) {
		chart := asciigraph.Plot(m.yHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("y(t)"))
		s.WriteString(st.graph.Render(chart) + "\n")
	} else {
		s.WriteString(st.graph.Render("y(t) = 0 (xz plane)") + "\n")
	}

	s.WriteString(st.inactive.Render(scene.ConfigurationCaption) + "\n")
	s.WriteString(st.inactive.Render(scene.ScaleCaption) + "\n")
	s.WriteString(st.help.Render("1-3:Isotope SP:Pause R:Remount Q:Quit\nTab:Electron ↑↓:Radius T:Theme ?:Help"))

	statsView := st.panel.Render(s.String())
	canvasView := st.canvas.Render(m.canvas.Render())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  1/2/3    - Carbon-12/13/14          ║
║  Space    - Pause/Resume clock       ║
║  R        - Remount scene            ║
║  Q        - Quit                     ║
║  Tab      - Cycle electrons          ║
║  Up/K     - Grow orbit               ║
║  Down/J   - Shrink orbit             ║
║  x/y/z    - Rotate camera            ║
║  +/-      - Zoom                     ║
║  L        - Electron labels          ║
║  A        - Axes                     ║
║  G        - Toggle GIF recording     ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

func plotable(values []float64) bool {
	if len(values) < 2 {
		return false
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	return hi-lo > 1e-9
}

// Run opens the terminal view for cfg.
func Run(cfg *config.Config) error {
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	m := NewModel(scene.New(opts), cfg.FPS, cfg.Theme)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
