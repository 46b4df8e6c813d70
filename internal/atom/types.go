package atom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is the vector type used for every position, scale and offset.
type Vec3 = mgl64.Vec3

// V builds a Vec3.
func V(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// ProtonCount is fixed for carbon.
const ProtonCount = 6

type Isotope int

const (
	Carbon12 Isotope = 12
	Carbon13 Isotope = 13
	Carbon14 Isotope = 14
)

// Isotopes lists the selectable isotopes in display order.
var Isotopes = []Isotope{Carbon12, Carbon13, Carbon14}

func (i Isotope) Valid() bool {
	switch i {
	case Carbon12, Carbon13, Carbon14:
		return true
	}
	return false
}

// NeutronCount returns mass number minus protons for enumerated isotopes and
// the Carbon-12 count for anything else.
func (i Isotope) NeutronCount() int {
	if !i.Valid() {
		return int(Carbon12) - ProtonCount
	}
	return int(i) - ProtonCount
}

func (i Isotope) NucleonCount() int { return ProtonCount + i.NeutronCount() }

func (i Isotope) Name() string { return fmt.Sprintf("Carbon-%d", int(i)) }

func (i Isotope) String() string { return i.Name() }

// ParseIsotope accepts "13", "c13" or "carbon-13" (case-insensitive).
func ParseIsotope(s string) (Isotope, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	v = strings.TrimPrefix(v, "carbon-")
	v = strings.TrimPrefix(v, "carbon")
	v = strings.TrimPrefix(v, "c")
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownIsotope, s)
	}
	iso := Isotope(n)
	if !iso.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownIsotope, n)
	}
	return iso, nil
}

type NucleonKind int

const (
	Proton NucleonKind = iota
	Neutron
)

func (k NucleonKind) String() string {
	if k == Proton {
		return "proton"
	}
	return "neutron"
}

func (k NucleonKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

type OrbitalKind int

const (
	OrbitalS OrbitalKind = iota
	OrbitalP
)

func (k OrbitalKind) String() string {
	if k == OrbitalP {
		return "p"
	}
	return "s"
}

func (k OrbitalKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *OrbitalKind) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "s":
		*k = OrbitalS
	case "p":
		*k = OrbitalP
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOrbitalKind, b)
	}
	return nil
}

// Axis is a lobe orientation. The zero value is the x axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axisNames = [...]string{"x", "y", "z"}

func (a Axis) String() string {
	if a < AxisX || a > AxisZ {
		return "x"
	}
	return axisNames[a]
}

// Unit returns the unit vector along the axis.
func (a Axis) Unit() Vec3 {
	switch a {
	case AxisY:
		return Vec3{0, 1, 0}
	case AxisZ:
		return Vec3{0, 0, 1}
	}
	return Vec3{1, 0, 0}
}

func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Axis) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "", "x":
		*a = AxisX
	case "y":
		*a = AxisY
	case "z":
		*a = AxisZ
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAxis, b)
	}
	return nil
}

// Plane selects which coordinates an orbit sweeps through.
type Plane int

const (
	PlaneXZ Plane = iota
	PlaneXY
	PlaneXYNegated
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXYNegated:
		return "xy-neg"
	}
	return "xz"
}

// YSign is the factor applied to r·sin(θ) for the y coordinate.
func (p Plane) YSign() float64 {
	switch p {
	case PlaneXY:
		return 1
	case PlaneXYNegated:
		return -1
	}
	return 0
}

func (p Plane) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Plane) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "", "xz":
		*p = PlaneXZ
	case "xy":
		*p = PlaneXY
	case "xy-neg", "xy2", "-xy":
		*p = PlaneXYNegated
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPlane, b)
	}
	return nil
}
