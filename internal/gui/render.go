package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/san-kum/atomsim/internal/electron"
	"github.com/san-kum/atomsim/internal/nucleus"
	"github.com/san-kum/atomsim/internal/orbital"
)

const orbitalAlpha = 70

func (a *App) drawStars() {
	for _, s := range a.Stars {
		rl.DrawPoint3D(vec(s), ColAccent)
	}
}

// drawNucleus draws each nucleon with a dark wire shell slightly larger
// than the ball.
func (a *App) drawNucleus() {
	outline := color(nucleus.OutlineColor, 255)
	for _, n := range a.Composer.Nucleons() {
		pos := vec(n.Position)
		rl.DrawSphere(pos, nucleus.NucleonRadius, color(n.Color(), 255))
		rl.DrawSphereWires(pos, nucleus.OutlineRadius, 8, 8, outline)
	}
}

// drawOrbitals stretches a translucent base sphere by each orbital's scale.
func (a *App) drawOrbitals() {
	for _, s := range a.Composer.Orbitals() {
		scale := s.Shape().Scale
		rl.PushMatrix()
		rl.Translatef(float32(s.Center.X()), float32(s.Center.Y()), float32(s.Center.Z()))
		rl.Scalef(float32(scale.X()), float32(scale.Y()), float32(scale.Z()))
		rl.DrawSphere(rl.NewVector3(0, 0, 0), orbital.BaseRadius, color(s.Color, orbitalAlpha))
		rl.PopMatrix()
	}
}

// drawPaths draws every orbit guide as a plain white line.
func (a *App) drawPaths() {
	for _, path := range a.Composer.Paths() {
		for k := 1; k < len(path); k++ {
			rl.DrawLine3D(vec(path[k-1]), vec(path[k]), rl.White)
		}
	}
}

func (a *App) drawElectrons() {
	for _, e := range a.Frame.Electrons {
		rl.DrawSphere(vec(e.Position), electron.Radius, color(e.Color, 255))
	}
}
