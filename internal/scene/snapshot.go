package scene

import (
	"math"

	"github.com/san-kum/atomsim/internal/atom"
)

// Snapshot is the complete geometry at one instant, shaped for encoding.
type Snapshot struct {
	Time      float64        `json:"time"`
	Isotope   int            `json:"isotope"`
	Name      string         `json:"name"`
	Protons   int            `json:"protons"`
	Neutrons  int            `json:"neutrons"`
	Nucleons  []NucleonView  `json:"nucleons"`
	Orbitals  []OrbitalView  `json:"orbitals"`
	Electrons []ElectronView `json:"electrons"`
}

type NucleonView struct {
	Kind     atom.NucleonKind `json:"kind"`
	Position atom.Vec3        `json:"position"`
	Color    atom.Color       `json:"color"`
}

type OrbitalView struct {
	Kind        atom.OrbitalKind `json:"kind"`
	Orientation atom.Axis        `json:"orientation"`
	Center      atom.Vec3        `json:"center"`
	Scale       atom.Vec3        `json:"scale"`
	LabelAnchor atom.Vec3        `json:"label_anchor"`
	Color       atom.Color       `json:"color"`
	Label       string           `json:"label,omitempty"`
}

type ElectronView struct {
	Label    string      `json:"label"`
	Color    atom.Color  `json:"color"`
	Radius   float64     `json:"radius"`
	Speed    float64     `json:"speed"`
	Plane    atom.Plane  `json:"plane"`
	Period   float64     `json:"period,omitempty"`
	Position atom.Vec3   `json:"position"`
	Path     []atom.Vec3 `json:"path"`
}

func (c *Composer) Snapshot(t float64) Snapshot {
	iso := c.state.Isotope
	s := Snapshot{
		Time:     t,
		Isotope:  int(iso),
		Name:     iso.Name(),
		Protons:  atom.ProtonCount,
		Neutrons: iso.NeutronCount(),
	}
	for _, n := range c.nucleons {
		s.Nucleons = append(s.Nucleons, NucleonView{Kind: n.Kind, Position: n.Position, Color: n.Color()})
	}
	for _, o := range c.orbitals {
		s.Orbitals = append(s.Orbitals, OrbitalView{
			Kind:        o.Kind,
			Orientation: o.Orientation,
			Center:      o.Center,
			Scale:       o.Shape().Scale,
			LabelAnchor: o.LabelAnchor(),
			Color:       o.Color,
			Label:       o.Label,
		})
	}
	for i, o := range c.electrons {
		period := o.Period()
		if math.IsInf(period, 0) {
			period = 0
		}
		s.Electrons = append(s.Electrons, ElectronView{
			Label:    o.Label,
			Color:    o.Color,
			Radius:   o.Radius,
			Speed:    o.Speed,
			Plane:    o.Plane,
			Period:   period,
			Position: o.Position(t),
			Path:     c.Path(i),
		})
	}
	return s
}
