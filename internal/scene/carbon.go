package scene

import (
	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/electron"
	"github.com/san-kum/atomsim/internal/nucleus"
	"github.com/san-kum/atomsim/internal/orbital"
)

const (
	Title                = "Carbon Atom"
	ConfigurationCaption = "The electron configuration of carbon is 1s² 2s² 2p²."
	ScaleCaption         = "Model is not to scale."
)

var (
	Color1s = atom.MustColor("#FF0")
	Color2s = atom.MustColor("#FFA500")
	Color2p = atom.MustColor("#0F0")

	// NucleusLabelAnchor is where the "Carbon-N" caption floats.
	NucleusLabelAnchor = atom.V(0, 4, 1)
)

// CarbonOrbitals is the default 1s, 2s, 2px, 2py set, all centered at the origin.
func CarbonOrbitals() []orbital.Spec {
	return []orbital.Spec{
		{Kind: atom.OrbitalS, Color: atom.MustColor("#00F")},
		{Kind: atom.OrbitalS, Color: atom.MustColor("#0FF")},
		{Kind: atom.OrbitalP, Orientation: atom.AxisX, Color: atom.MustColor("#F00")},
		{Kind: atom.OrbitalP, Orientation: atom.AxisY, Color: atom.MustColor("#F00")},
	}
}

// CarbonElectrons is the 1s² 2s² 2p² set. Shell partners use opposite radii
// and different planes.
func CarbonElectrons() []electron.Orbit {
	return []electron.Orbit{
		{Radius: 3, Speed: 1, Plane: atom.PlaneXZ, Color: Color1s, Label: "1s Electron 1"},
		{Radius: -3, Speed: 1, Plane: atom.PlaneXY, Color: Color1s, Label: "1s Electron 2"},
		{Radius: 5, Speed: 1.2, Plane: atom.PlaneXZ, Color: Color2s, Label: "2s Electron 1"},
		{Radius: -5, Speed: 1.2, Plane: atom.PlaneXY, Color: Color2s, Label: "2s Electron 2"},
		{Radius: 7, Speed: 1.4, Plane: atom.PlaneXZ, Color: Color2p, Label: "2px Electron"},
		{Radius: 7, Speed: 1.4, Plane: atom.PlaneXY, Color: Color2p, Label: "2py Electron"},
	}
}

func CarbonOptions() Options {
	return Options{
		Isotope:       atom.Carbon12,
		NucleusRadius: nucleus.DefaultRadius,
		Orbitals:      CarbonOrbitals(),
		Electrons:     CarbonElectrons(),
	}
}

type LegendEntry struct {
	Text  string
	Color atom.Color
}

// Legend returns the swatches shown next to the model. Neutron count follows
// the nucleus that is actually drawn.
func Legend(iso atom.Isotope) []LegendEntry {
	protons, neutrons := nucleus.Counts(iso)
	return []LegendEntry{
		{Text: fmtCount("Protons", protons), Color: nucleus.ProtonColor},
		{Text: fmtCount("Neutrons", neutrons), Color: nucleus.NeutronColor},
		{Text: "1s Electrons", Color: Color1s},
		{Text: "2s Electrons", Color: Color2s},
		{Text: "2p Electrons", Color: Color2p},
	}
}
