// Package orbital describes the stylized s and p orbital solids.
package orbital

import "github.com/san-kum/atomsim/internal/atom"

// BaseRadius is the radius of the unscaled orbital sphere.
const BaseRadius = 0.8

const (
	lobeLong  = 1.2
	lobeShort = 0.4
)

// Shape is how the base sphere is stretched and where its label sits,
// relative to the orbital center.
type Shape struct {
	Scale       atom.Vec3
	LabelOffset atom.Vec3
}

// Describe returns the shape of an orbital. S orbitals are round and
// labelled at their center. P orbitals are lobes stretched along axis with
// the label pushed out along the same axis; x lobes use a diagonal offset.
func Describe(kind atom.OrbitalKind, axis atom.Axis) Shape {
	if kind != atom.OrbitalP {
		return Shape{Scale: atom.V(1, 1, 1)}
	}

	scale := atom.V(lobeShort, lobeShort, lobeShort)
	switch axis {
	case atom.AxisY:
		scale[1] = lobeLong
		return Shape{Scale: scale, LabelOffset: atom.V(0, 4, 0)}
	case atom.AxisZ:
		scale[2] = lobeLong
		return Shape{Scale: scale, LabelOffset: atom.V(0, 0, 4)}
	default:
		scale[0] = lobeLong
		return Shape{Scale: scale, LabelOffset: atom.V(2, 2, 2)}
	}
}

// Spec is one configured orbital.
type Spec struct {
	Kind        atom.OrbitalKind
	Orientation atom.Axis
	Center      atom.Vec3
	Color       atom.Color
	Label       string
}

func (s Spec) Shape() Shape { return Describe(s.Kind, s.Orientation) }

// LabelAnchor is the world position of the label.
func (s Spec) LabelAnchor() atom.Vec3 {
	return s.Center.Add(s.Shape().LabelOffset)
}

// Extent returns the half-lengths of the stretched solid along x, y and z.
func (s Spec) Extent() atom.Vec3 {
	return s.Shape().Scale.Mul(BaseRadius)
}
