// Package nucleus lays out the nucleons of a carbon nucleus on a sphere.
//
// Nucleons are spread with an equal-area spiral: index i of N gets the polar
// angle acos(1 - 2(i+0.5)/N) and azimuth sqrt(N·π)·polar. The first six
// indices are protons and the rest neutrons. That ordering is a teaching aid;
// real nuclei do not segregate them.
package nucleus

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/san-kum/atomsim/internal/atom"
)

const (
	// DefaultRadius is the radius of the sphere nucleon centers sit on.
	DefaultRadius = 1.25

	// NucleonRadius and OutlineRadius size the solid sphere and its wireframe.
	NucleonRadius = 0.8
	OutlineRadius = 0.85
)

var (
	ProtonColor  = atom.MustColor("#FFD700")
	NeutronColor = atom.MustColor("#C0C0C0")
	OutlineColor = atom.MustColor("#1A1110")
)

type Nucleon struct {
	Kind     atom.NucleonKind
	Position atom.Vec3
}

func (n Nucleon) Color() atom.Color {
	if n.Kind == atom.Proton {
		return ProtonColor
	}
	return NeutronColor
}

// Counts returns the proton and neutron split used for iso.
func Counts(iso atom.Isotope) (protons, neutrons int) {
	return atom.ProtonCount, iso.NeutronCount()
}

// Generate returns the nucleons of iso on a sphere of the given radius.
// Unknown isotopes get the Carbon-12 layout; a non-positive radius uses
// DefaultRadius.
func Generate(iso atom.Isotope, radius float64) []Nucleon {
	if radius <= 0 {
		radius = DefaultRadius
	}
	protons, neutrons := Counts(iso)
	total := protons + neutrons

	nucleons := make([]Nucleon, total)
	n := float64(total)
	sweep := math.Sqrt(n * math.Pi)
	for i := 0; i < total; i++ {
		polar := math.Acos(1 - 2*(float64(i)+0.5)/n)
		azimuthal := sweep * polar

		kind := atom.Neutron
		if i < protons {
			kind = atom.Proton
		}
		nucleons[i] = Nucleon{
			Kind:     kind,
			Position: mgl64.SphericalToCartesian(radius, polar, azimuthal),
		}
	}
	return nucleons
}

// Layout is Generate with DefaultRadius.
func Layout(iso atom.Isotope) []Nucleon {
	return Generate(iso, DefaultRadius)
}
