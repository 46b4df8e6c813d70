package config

import (
	"fmt"
	"sort"

	"github.com/san-kum/atomsim/internal/atom"
)

var Presets = map[string]func() *Config{
	"carbon-12": func() *Config { return withIsotope(atom.Carbon12) },
	"carbon-13": func() *Config { return withIsotope(atom.Carbon13) },
	"carbon-14": func() *Config { return withIsotope(atom.Carbon14) },
	"coplanar": func() *Config {
		cfg := DefaultConfig()
		for i := range cfg.Electrons {
			cfg.Electrons[i].Plane = atom.PlaneXZ.String()
		}
		return cfg
	},
	"labelled": func() *Config {
		cfg := DefaultConfig()
		for i, label := range []string{"1s", "2s", "2px", "2py"} {
			if i < len(cfg.Orbitals) {
				cfg.Orbitals[i].Label = label
			}
		}
		return cfg
	},
	"slow": func() *Config {
		cfg := DefaultConfig()
		for i := range cfg.Electrons {
			cfg.Electrons[i].Speed /= 4
		}
		return cfg
	},
}

func withIsotope(iso atom.Isotope) *Config {
	cfg := DefaultConfig()
	cfg.Isotope = int(iso)
	return cfg
}

// GetPreset returns a fresh copy of the named preset, or nil.
func GetPreset(name string) *Config {
	build, ok := Presets[name]
	if !ok {
		return nil
	}
	return build()
}

// LookupPreset is GetPreset with an error naming the available presets.
func LookupPreset(name string) (*Config, error) {
	cfg := GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
