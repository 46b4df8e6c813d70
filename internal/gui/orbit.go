package gui

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/atomsim/internal/atom"
)

const (
	minDistance   = 3.0
	maxDistance   = 50.0
	maxPitch      = 1.5
	dragSpeed     = 0.005
	wheelZoomStep = 0.1
)

// orbitCamera circles the origin at a fixed distance, pitch limited short
// of the poles.
type orbitCamera struct {
	yaw, pitch, distance float64
}

func newOrbitCamera(p atom.Vec3) orbitCamera {
	d := p.Len()
	if d == 0 {
		return orbitCamera{distance: minDistance}
	}
	return orbitCamera{
		yaw:      math.Atan2(p.Z(), p.X()),
		pitch:    math.Asin(p.Y() / d),
		distance: mgl64.Clamp(d, minDistance, maxDistance),
	}
}

func (o orbitCamera) Position() atom.Vec3 {
	sp, cp := math.Sincos(o.pitch)
	sy, cy := math.Sincos(o.yaw)
	return atom.V(o.distance*cp*cy, o.distance*sp, o.distance*cp*sy)
}

// Rotate applies a mouse drag of (dx, dy) pixels.
func (o *orbitCamera) Rotate(dx, dy float64) {
	o.yaw += dx * dragSpeed
	o.pitch = mgl64.Clamp(o.pitch+dy*dragSpeed, -maxPitch, maxPitch)
}

// Zoom moves toward the origin for positive wheel steps.
func (o *orbitCamera) Zoom(wheel float64) {
	o.distance = mgl64.Clamp(o.distance*(1-wheelZoomStep*wheel), minDistance, maxDistance)
}
