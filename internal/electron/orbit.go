package electron

import (
	"math"

	"github.com/san-kum/atomsim/internal/atom"
)

// PathPoints is the length of a guide polyline; first and last coincide.
const PathPoints = 101

// Radius of the rendered electron sphere.
const Radius = 0.4

type Orbit struct {
	Radius float64
	Speed  float64
	Plane  atom.Plane
	Color  atom.Color
	Label  string
}

// Position returns where the electron is t seconds after mount.
func (o Orbit) Position(t float64) atom.Vec3 {
	return onOrbit(o.Radius, o.Plane, t*o.Speed)
}

// Path samples one full revolution into PathPoints points.
func (o Orbit) Path() []atom.Vec3 {
	segments := PathPoints - 1
	points := make([]atom.Vec3, PathPoints)
	for i := 0; i < PathPoints; i++ {
		points[i] = onOrbit(o.Radius, o.Plane, float64(i)/float64(segments)*2*math.Pi)
	}
	return points
}

// Period is the time of one revolution; +Inf when the electron is at rest.
func (o Orbit) Period() float64 {
	if o.Speed == 0 {
		return math.Inf(1)
	}
	return 2 * math.Pi / math.Abs(o.Speed)
}

// Sample returns n positions starting at t0, dt apart.
func (o Orbit) Sample(t0, dt float64, n int) []atom.Vec3 {
	if n < 0 {
		n = 0
	}
	points := make([]atom.Vec3, n)
	for i := range points {
		points[i] = o.Position(t0 + float64(i)*dt)
	}
	return points
}

func onOrbit(r float64, plane atom.Plane, theta float64) atom.Vec3 {
	s, c := math.Sincos(theta)
	return atom.V(r*c, plane.YSign()*r*s, r*s)
}
