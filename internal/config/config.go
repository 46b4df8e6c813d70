package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/electron"
	"github.com/san-kum/atomsim/internal/nucleus"
	"github.com/san-kum/atomsim/internal/orbital"
	"github.com/san-kum/atomsim/internal/scene"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS   = 60
	DefaultTheme = "cyberpunk"
)

var (
	ErrUnknownPreset = errors.New("config: unknown preset")
	ErrNoElectrons   = errors.New("config: no electrons configured")
	ErrInvalidFPS    = errors.New("config: fps must be positive")
	ErrNonFinite     = errors.New("config: value must be finite")
)

type Config struct {
	Isotope       int              `yaml:"isotope"`
	NucleusRadius float64          `yaml:"nucleus_radius"`
	FPS           int              `yaml:"fps"`
	Theme         string           `yaml:"theme"`
	Orbitals      []OrbitalConfig  `yaml:"orbitals"`
	Electrons     []ElectronConfig `yaml:"electrons"`
}

type OrbitalConfig struct {
	Kind        string     `yaml:"kind"`
	Orientation string     `yaml:"orientation,omitempty"`
	Center      [3]float64 `yaml:"center,flow"`
	Color       string     `yaml:"color"`
	Label       string     `yaml:"label,omitempty"`
}

type ElectronConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`
	Plane  string  `yaml:"plane"`
	Color  string  `yaml:"color"`
	Label  string  `yaml:"label"`
}

// DefaultConfig is the carbon scene: 1s/2s/2px/2py orbitals and six electrons.
func DefaultConfig() *Config {
	cfg := FromOptions(scene.CarbonOptions())
	cfg.FPS = DefaultFPS
	cfg.Theme = DefaultTheme
	return cfg
}

// FromOptions renders composer options back into their file form.
func FromOptions(opts scene.Options) *Config {
	cfg := &Config{
		Isotope:       int(opts.Isotope),
		NucleusRadius: opts.NucleusRadius,
	}
	for _, o := range opts.Orbitals {
		oc := OrbitalConfig{
			Kind:   o.Kind.String(),
			Center: [3]float64(o.Center),
			Color:  o.Color.Hex(),
			Label:  o.Label,
		}
		if o.Kind == atom.OrbitalP {
			oc.Orientation = o.Orientation.String()
		}
		cfg.Orbitals = append(cfg.Orbitals, oc)
	}
	for _, e := range opts.Electrons {
		cfg.Electrons = append(cfg.Electrons, ElectronConfig{
			Radius: e.Radius,
			Speed:  e.Speed,
			Plane:  e.Plane.String(),
			Color:  e.Color.Hex(),
			Label:  e.Label,
		})
	}
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

func (c *Config) Validate() error {
	if !atom.Isotope(c.Isotope).Valid() {
		return fmt.Errorf("%w: %d", atom.ErrUnknownIsotope, c.Isotope)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.FPS)
	}
	if len(c.Electrons) == 0 {
		return ErrNoElectrons
	}
	if err := finite("nucleus_radius", c.NucleusRadius); err != nil {
		return err
	}
	_, err := c.Options()
	return err
}

// Options converts the file form into composer options.
func (c *Config) Options() (scene.Options, error) {
	opts := scene.Options{
		Isotope:       atom.Isotope(c.Isotope),
		NucleusRadius: c.NucleusRadius,
	}
	if opts.NucleusRadius <= 0 {
		opts.NucleusRadius = nucleus.DefaultRadius
	}
	for i, oc := range c.Orbitals {
		spec, err := oc.spec()
		if err != nil {
			return scene.Options{}, fmt.Errorf("orbital %d: %w", i, err)
		}
		opts.Orbitals = append(opts.Orbitals, spec)
	}
	for i, ec := range c.Electrons {
		orbit, err := ec.orbit()
		if err != nil {
			return scene.Options{}, fmt.Errorf("electron %d: %w", i, err)
		}
		opts.Electrons = append(opts.Electrons, orbit)
	}
	return opts, nil
}

func (oc OrbitalConfig) spec() (orbital.Spec, error) {
	var spec orbital.Spec
	if err := spec.Kind.UnmarshalText([]byte(oc.Kind)); err != nil {
		return spec, err
	}
	if err := spec.Orientation.UnmarshalText([]byte(oc.Orientation)); err != nil {
		return spec, err
	}
	color, err := atom.ParseColor(oc.Color)
	if err != nil {
		return spec, err
	}
	if err := finite("center", oc.Center[:]...); err != nil {
		return spec, err
	}
	spec.Center = atom.Vec3(oc.Center)
	spec.Color = color
	spec.Label = oc.Label
	return spec, nil
}

func (ec ElectronConfig) orbit() (electron.Orbit, error) {
	o := electron.Orbit{Radius: ec.Radius, Speed: ec.Speed, Label: ec.Label}
	if err := finite("radius", ec.Radius); err != nil {
		return o, err
	}
	if err := finite("speed", ec.Speed); err != nil {
		return o, err
	}
	if err := o.Plane.UnmarshalText([]byte(ec.Plane)); err != nil {
		return o, err
	}
	color, err := atom.ParseColor(ec.Color)
	if err != nil {
		return o, err
	}
	o.Color = color
	return o, nil
}

// finite rejects NaN and infinities; a NaN radius never matches its own
// path cache key.
func finite(field string, vs ...float64) error {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s = %v", ErrNonFinite, field, v)
		}
	}
	return nil
}
