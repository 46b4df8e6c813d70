package scene

import (
	"errors"
	"fmt"

	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/electron"
	"github.com/san-kum/atomsim/internal/logutil"
	"github.com/san-kum/atomsim/internal/nucleus"
	"github.com/san-kum/atomsim/internal/orbital"
)

// ErrElectronIndex indicates an electron index outside the configured set.
var ErrElectronIndex = errors.New("scene: electron index out of range")

// State is the selected isotope. It is replaced whole, never merged.
type State struct {
	Isotope atom.Isotope
}

type Options struct {
	Isotope       atom.Isotope
	NucleusRadius float64
	Orbitals      []orbital.Spec
	Electrons     []electron.Orbit
}

// Listener is notified after every isotope selection.
type Listener func(s State, nucleons []nucleus.Nucleon)

// Observer receives every frame produced by FrameTick.
type Observer interface {
	OnFrame(f Frame)
}

type ObserverFunc func(Frame)

func (fn ObserverFunc) OnFrame(f Frame) { fn(f) }

type ElectronFrame struct {
	Index       int
	Label       string
	Color       atom.Color
	Position    atom.Vec3
	LabelAnchor atom.Vec3
}

type Label struct {
	Text   string
	Anchor atom.Vec3
}

type Frame struct {
	Time      float64
	Isotope   atom.Isotope
	Electrons []ElectronFrame
	Labels    []Label
}

type Composer struct {
	state     State
	radius    float64
	nucleons  []nucleus.Nucleon
	orbitals  []orbital.Spec
	electrons []electron.Orbit
	paths     *electron.PathCache
	listeners []Listener
	observers []Observer
}

func New(opts Options) *Composer {
	radius := opts.NucleusRadius
	if radius <= 0 {
		radius = nucleus.DefaultRadius
	}
	c := &Composer{
		radius:    radius,
		orbitals:  append([]orbital.Spec(nil), opts.Orbitals...),
		electrons: append([]electron.Orbit(nil), opts.Electrons...),
		paths:     electron.NewPathCache(),
	}
	c.apply(opts.Isotope)
	for _, o := range c.electrons {
		c.paths.Path(o)
	}
	return c
}

func (c *Composer) State() State { return c.state }

func (c *Composer) Isotope() atom.Isotope { return c.state.Isotope }

// SelectIsotope replaces the state and regenerates the nucleus. Values
// outside Carbon-12/13/14 are kept but laid out as Carbon-12. Orbitals and
// electrons are untouched.
func (c *Composer) SelectIsotope(iso atom.Isotope) {
	c.apply(iso)
	for _, l := range c.listeners {
		l(c.state, c.Nucleons())
	}
}

func (c *Composer) apply(iso atom.Isotope) {
	if !iso.Valid() {
		logutil.Warnf("isotope %d is not Carbon-12/13/14, using %d neutrons", int(iso), iso.NeutronCount())
	}
	c.state = State{Isotope: iso}
	c.nucleons = nucleus.Generate(iso, c.radius)
	logutil.Debugf("nucleus regenerated: %s, %d nucleons", iso.Name(), len(c.nucleons))
}

func (c *Composer) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

func (c *Composer) Attach(o Observer) {
	c.observers = append(c.observers, o)
}

func (c *Composer) NucleusRadius() float64 { return c.radius }

func (c *Composer) Nucleons() []nucleus.Nucleon {
	return append([]nucleus.Nucleon(nil), c.nucleons...)
}

func (c *Composer) Orbitals() []orbital.Spec {
	return append([]orbital.Spec(nil), c.orbitals...)
}

func (c *Composer) Electrons() []electron.Orbit {
	return append([]electron.Orbit(nil), c.electrons...)
}

// Electron returns the orbit configured at index i.
func (c *Composer) Electron(i int) (electron.Orbit, error) {
	if i < 0 || i >= len(c.electrons) {
		return electron.Orbit{}, fmt.Errorf("%w: %d", ErrElectronIndex, i)
	}
	return c.electrons[i], nil
}

// SetElectron replaces one electron's configuration. Its guide is rebuilt
// only if radius or plane changed.
func (c *Composer) SetElectron(i int, o electron.Orbit) error {
	if i < 0 || i >= len(c.electrons) {
		return fmt.Errorf("%w: %d", ErrElectronIndex, i)
	}
	c.electrons[i] = o
	c.paths.Retain(c.electrons)
	c.paths.Path(o)
	return nil
}

// Path returns the cached guide for electron i; nil when out of range.
func (c *Composer) Path(i int) []atom.Vec3 {
	if i < 0 || i >= len(c.electrons) {
		return nil
	}
	return c.paths.Path(c.electrons[i])
}

func (c *Composer) Paths() [][]atom.Vec3 {
	paths := make([][]atom.Vec3, len(c.electrons))
	for i, o := range c.electrons {
		paths[i] = c.paths.Path(o)
	}
	return paths
}

// PathBuilds counts guide constructions since New.
func (c *Composer) PathBuilds() int { return c.paths.Computations() }

// FrameTick computes every electron position at t and hands the frame to
// attached observers. It does not touch State.
func (c *Composer) FrameTick(t float64) Frame {
	f := Frame{
		Time:      t,
		Isotope:   c.state.Isotope,
		Electrons: make([]ElectronFrame, len(c.electrons)),
		Labels:    make([]Label, 0, len(c.orbitals)+1),
	}
	for i, o := range c.electrons {
		pos := o.Position(t)
		f.Electrons[i] = ElectronFrame{
			Index:       i,
			Label:       o.Label,
			Color:       o.Color,
			Position:    pos,
			LabelAnchor: pos,
		}
	}
	f.Labels = append(f.Labels, Label{Text: c.state.Isotope.Name(), Anchor: NucleusLabelAnchor})
	for _, s := range c.orbitals {
		if s.Label == "" {
			continue
		}
		f.Labels = append(f.Labels, Label{Text: s.Label, Anchor: s.LabelAnchor()})
	}
	for _, o := range c.observers {
		o.OnFrame(f)
	}
	return f
}

func fmtCount(name string, n int) string { return fmt.Sprintf("%s: %d", name, n) }
