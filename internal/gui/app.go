package gui

import (
	"fmt"
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/config"
	"github.com/san-kum/atomsim/internal/logutil"
	"github.com/san-kum/atomsim/internal/nucleus"
	"github.com/san-kum/atomsim/internal/scene"
)

// Window palette; the atom itself is drawn in its own legend colors.
var (
	ColBg      = rl.NewColor(10, 10, 10, 255) // space
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255) // selected isotope
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255) // captions
	ColPanel   = rl.NewColor(25, 25, 25, 220)
)

const (
	screenW = 1280
	screenH = 720
)

// startPosition is where the camera sits when a scene mounts.
var startPosition = atom.V(12.5, 1.5, -0.01)

type App struct {
	Composer *scene.Composer
	// Base is the configuration the app was started with; Config is the mounted one.
	Base     *config.Config
	Config   *config.Config
	Frame    scene.Frame
	Camera   rl.Camera3D
	Orbit    orbitCamera
	Clock    float64
	LastTime float64
	Running  bool
	Quit     bool
	Font     rl.Font

	InMenu   bool
	Presets  []string
	Selected int

	ShowPaths  bool
	ShowLabels bool
	Stars      []atom.Vec3
	dragging   bool
}

// initWindow initializes the Raylib window, sets the target FPS and
// disables the default exit key.
func initWindow(fps int) {
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(screenW, screenH, scene.Title)
	rl.SetTargetFPS(int32(fps))
	rl.SetExitKey(0)
}

// loadFont loads the Liberation Mono font from the system path and enables bilinear texture filtering.
func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp creates an App for cfg. Interactive apps open on the preset menu;
// otherwise cfg is mounted immediately.
func NewApp(cfg *config.Config, interactive bool) *App {
	app := &App{
		Base:       cfg,
		Config:     cfg,
		Font:       loadFont(),
		InMenu:     interactive,
		Presets:    append([]string{"configured"}, config.ListPresets()...),
		ShowPaths:  true,
		ShowLabels: true,
		Stars:      makeStars(1500, rand.New(rand.NewSource(1))),
	}
	if !interactive {
		app.mount(cfg)
	}
	return app
}

func makeStars(n int, rng *rand.Rand) []atom.Vec3 {
	stars := make([]atom.Vec3, n)
	for i := range stars {
		// Uniform directions on a distant shell.
		z := 2*rng.Float64() - 1
		phi := 2 * math.Pi * rng.Float64()
		r := 150 + rng.Float64()*150
		s := math.Sqrt(1 - z*z)
		stars[i] = atom.V(r*s*math.Cos(phi), r*z, r*s*math.Sin(phi))
	}
	return stars
}

// RunInteractive opens the window on the preset menu and blocks until it is closed.
func RunInteractive(cfg *config.Config) {
	initWindow(cfg.FPS)
	defer rl.CloseWindow()
	app := NewApp(cfg, true)
	app.RunLoop()
}

// Run opens the window with cfg mounted and blocks until it is closed.
func Run(cfg *config.Config) {
	initWindow(cfg.FPS)
	defer rl.CloseWindow()
	app := NewApp(cfg, false)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.Quit {
		a.Update()
		a.Draw()
	}
}

// mount replaces the scene with one built from cfg and restarts the clock.
func (a *App) mount(cfg *config.Config) {
	opts, err := cfg.Options()
	if err != nil {
		logutil.Errorf("gui: mount: %v", err)
		return
	}
	a.Config = cfg
	a.Composer = scene.New(opts)
	a.Composer.Subscribe(func(s scene.State, nucleons []nucleus.Nucleon) {
		logutil.Infof("gui: %s (%d nucleons)", s.Isotope.Name(), len(nucleons))
	})
	a.Orbit = newOrbitCamera(startPosition)
	a.Camera = rl.NewCamera3D(
		vec(a.Orbit.Position()),
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(0, 1, 0),
		45.0,
		rl.CameraPerspective,
	)
	a.remount()
	a.Running = true
}

func (a *App) remount() {
	a.Clock = 0
	a.LastTime = rl.GetTime()
	a.Frame = a.Composer.FrameTick(0)
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.Quit = true
		return
	}

	if a.InMenu {
		a.updateMenu()
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		a.InMenu = true
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.Running = !a.Running
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.remount()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.ShowPaths = !a.ShowPaths
	}
	if rl.IsKeyPressed(rl.KeyL) {
		a.ShowLabels = !a.ShowLabels
	}

	for i, key := range []int32{rl.KeyOne, rl.KeyTwo, rl.KeyThree} {
		if rl.IsKeyPressed(key) && i < len(atom.Isotopes) {
			a.Composer.SelectIsotope(atom.Isotopes[i])
		}
	}

	mouse := rl.GetMousePosition()
	overHUD := false
	for i, rect := range isotopeButtons() {
		if rl.CheckCollisionPointRec(mouse, rect) {
			overHUD = true
			if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
				a.Composer.SelectIsotope(atom.Isotopes[i])
			}
		}
	}

	// Orbit camera: left drag rotates, wheel zooms.
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !overHUD {
		a.dragging = true
	}
	if !rl.IsMouseButtonDown(rl.MouseLeftButton) {
		a.dragging = false
	}
	if a.dragging {
		d := rl.GetMouseDelta()
		a.Orbit.Rotate(float64(d.X), float64(d.Y))
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		a.Orbit.Zoom(float64(wheel))
	}
	a.Camera.Position = vec(a.Orbit.Position())

	now := rl.GetTime()
	if a.Running {
		a.Clock += now - a.LastTime
	}
	a.LastTime = now
	a.Frame = a.Composer.FrameTick(a.Clock)
}

func (a *App) updateMenu() {
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.Selected++
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.Selected--
	}

	// Wrap selection
	if a.Selected >= len(a.Presets) {
		a.Selected = 0
	}
	if a.Selected < 0 {
		a.Selected = len(a.Presets) - 1
	}

	if rl.IsKeyPressed(rl.KeyEscape) && a.Composer != nil {
		a.InMenu = false
		return
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		cfg := a.Base
		if a.Selected > 0 {
			cfg = config.GetPreset(a.Presets[a.Selected])
			cfg.FPS, cfg.Theme = a.Base.FPS, a.Base.Theme
		}
		a.mount(cfg)
		a.InMenu = false
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.InMenu {
		a.drawMenu()
	} else {
		a.drawScene()
		a.drawLabels()
		a.DrawHUD()
	}

	rl.EndDrawing()
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) drawTextCentered(text string, x, y int, size int, color rl.Color) {
	w := rl.MeasureTextEx(a.Font, text, float32(size), 1).X
	a.drawText(text, x-int(w/2), y, size, color)
}

func (a *App) drawScene() {
	rl.BeginMode3D(a.Camera)
	a.drawStars()
	a.drawNucleus()
	a.drawOrbitals()
	if a.ShowPaths {
		a.drawPaths()
	}
	a.drawElectrons()
	rl.EndMode3D()
}

// drawLabels projects every label anchor to the screen.
func (a *App) drawLabels() {
	for _, l := range a.Frame.Labels {
		p := rl.GetWorldToScreen(vec(l.Anchor), a.Camera)
		a.drawTextCentered(l.Text, int(p.X), int(p.Y), 20, ColSelect)
	}
	if !a.ShowLabels {
		return
	}
	for _, e := range a.Frame.Electrons {
		if e.Label == "" {
			continue
		}
		p := rl.GetWorldToScreen(vec(e.LabelAnchor), a.Camera)
		a.drawText(e.Label, int(p.X)+12, int(p.Y)-8, 14, color(e.Color, 220))
	}
}

func isotopeButtons() []rl.Rectangle {
	rects := make([]rl.Rectangle, len(atom.Isotopes))
	for i := range rects {
		rects[i] = rl.NewRectangle(float32(screenW-3*130-30+i*130), 30, 120, 36)
	}
	return rects
}

func (a *App) DrawHUD() {
	iso := a.Composer.Isotope()
	a.drawText(scene.Title, 30, 30, 32, ColSelect)
	a.drawText(fmt.Sprintf(":: %s", iso.Name()), 30, 68, 16, ColText)

	for i, rect := range isotopeButtons() {
		choice := atom.Isotopes[i]
		bg, fg := ColPanel, ColText
		if choice == iso {
			bg, fg = ColAccent, ColBg
		}
		rl.DrawRectangleRec(rect, bg)
		rl.DrawRectangleLinesEx(rect, 1, ColTextDim)
		a.drawTextCentered(fmt.Sprintf("[%d] %s", i+1, choice.Name()), int(rect.X+rect.Width/2), int(rect.Y)+10, 16, fg)
	}

	y := 500
	for _, e := range scene.Legend(iso) {
		rl.DrawCircle(40, int32(y+8), 7, color(e.Color, 255))
		a.drawText(e.Text, 56, y, 16, ColAccent)
		y += 26
	}

	a.drawText(scene.ConfigurationCaption, 30, 640, 16, ColText)
	a.drawText(scene.ScaleCaption, 30, 664, 14, ColTextDim)

	status := "RUNNING"
	col := ColSelect
	if !a.Running {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, screenW-130, 80, 16, col)
	a.drawText(fmt.Sprintf("t = %.1fs", a.Clock), screenW-130, 100, 14, ColText)

	a.drawText("[1-3] ISOTOPE  [SPACE] PAUSE  [R] REMOUNT  [P] PATHS  [L] LABELS  [ESC] MENU  [Q] QUIT", 560, 690, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), screenW-90, 120, 14, ColTextDim)
}

func (a *App) drawMenu() {
	a.drawText(scene.Title, 50, 50, 40, ColSelect)
	a.drawText("Select Preset", 50, 100, 16, ColTextDim)

	y := 160
	for i, name := range a.Presets {
		if i == a.Selected {
			a.drawText(fmt.Sprintf("> %s", name), 50, y, 20, ColSelect)
		} else {
			a.drawText(fmt.Sprintf("  %s", name), 50, y, 20, ColText)
		}
		y += 28
	}

	a.drawText("ARROWS: NAVIGATE  ENTER: SELECT  Q: QUIT", 850, 680, 14, ColTextDim)
}

func vec(v atom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X()), float32(v.Y()), float32(v.Z()))
}

func color(c atom.Color, alpha uint8) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, alpha)
}
