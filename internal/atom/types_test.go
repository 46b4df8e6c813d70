package atom

import (
	"errors"
	"testing"
)

func TestIsotope_NeutronCount(t *testing.T) {
	tests := []struct {
		iso      Isotope
		neutrons int
		valid    bool
	}{
		{Carbon12, 6, true},
		{Carbon13, 7, true},
		{Carbon14, 8, true},
		{99, 6, false},
		{0, 6, false},
		{-14, 6, false},
	}

	for _, tt := range tests {
		if got := tt.iso.NeutronCount(); got != tt.neutrons {
			t.Errorf("%d: NeutronCount() = %d, want %d", tt.iso, got, tt.neutrons)
		}
		if got := tt.iso.Valid(); got != tt.valid {
			t.Errorf("%d: Valid() = %v, want %v", tt.iso, got, tt.valid)
		}
		if got := tt.iso.NucleonCount(); got != ProtonCount+tt.neutrons {
			t.Errorf("%d: NucleonCount() = %d", tt.iso, got)
		}
	}
}

func TestParseIsotope(t *testing.T) {
	for _, in := range []string{"13", "c13", "C13", "carbon-13", "Carbon-13", " 13 "} {
		iso, err := ParseIsotope(in)
		if err != nil {
			t.Fatalf("ParseIsotope(%q): %v", in, err)
		}
		if iso != Carbon13 {
			t.Errorf("ParseIsotope(%q) = %d, want 13", in, iso)
		}
	}

	for _, in := range []string{"", "carbon", "15", "abc"} {
		if _, err := ParseIsotope(in); !errors.Is(err, ErrUnknownIsotope) {
			t.Errorf("ParseIsotope(%q): expected ErrUnknownIsotope, got %v", in, err)
		}
	}
}

func TestIsotope_Name(t *testing.T) {
	if got := Carbon14.Name(); got != "Carbon-14" {
		t.Errorf("Name() = %q", got)
	}
}

func TestPlane_Text(t *testing.T) {
	tests := []struct {
		in   string
		want Plane
	}{
		{"xz", PlaneXZ},
		{"XY", PlaneXY},
		{"xy-neg", PlaneXYNegated},
		{"xy2", PlaneXYNegated},
		{"", PlaneXZ},
	}
	for _, tt := range tests {
		var p Plane
		if err := p.UnmarshalText([]byte(tt.in)); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", tt.in, err)
		}
		if p != tt.want {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.in, p, tt.want)
		}
	}

	var p Plane
	if err := p.UnmarshalText([]byte("yz")); !errors.Is(err, ErrUnknownPlane) {
		t.Errorf("expected ErrUnknownPlane, got %v", err)
	}

	if PlaneXZ.YSign() != 0 || PlaneXY.YSign() != 1 || PlaneXYNegated.YSign() != -1 {
		t.Error("unexpected YSign values")
	}
}

func TestAxis_Text(t *testing.T) {
	var a Axis
	if err := a.UnmarshalText([]byte("z")); err != nil || a != AxisZ {
		t.Errorf("UnmarshalText(z) = %v, %v", a, err)
	}
	if err := a.UnmarshalText([]byte("w")); !errors.Is(err, ErrUnknownAxis) {
		t.Errorf("expected ErrUnknownAxis, got %v", err)
	}

	var zero Axis
	if zero != AxisX {
		t.Error("zero Axis should be x")
	}
	if u := AxisY.Unit(); u != (Vec3{0, 1, 0}) {
		t.Errorf("AxisY.Unit() = %v", u)
	}
}

func TestOrbitalKind_Text(t *testing.T) {
	var k OrbitalKind
	if err := k.UnmarshalText([]byte("P")); err != nil || k != OrbitalP {
		t.Errorf("UnmarshalText(P) = %v, %v", k, err)
	}
	if err := k.UnmarshalText([]byte("d")); !errors.Is(err, ErrUnknownOrbitalKind) {
		t.Errorf("expected ErrUnknownOrbitalKind, got %v", err)
	}
}
