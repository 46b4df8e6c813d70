package nucleus

import (
	"math"
	"testing"

	"github.com/san-kum/atomsim/internal/atom"
)

const tol = 1e-9

func TestGenerate_Counts(t *testing.T) {
	for _, iso := range atom.Isotopes {
		nucleons := Layout(iso)
		want := 6 + (int(iso) - 6)
		if len(nucleons) != want {
			t.Fatalf("%s: expected %d nucleons, got %d", iso, want, len(nucleons))
		}
		for i, n := range nucleons {
			wantKind := atom.Neutron
			if i < 6 {
				wantKind = atom.Proton
			}
			if n.Kind != wantKind {
				t.Errorf("%s: nucleon %d is %s, want %s", iso, i, n.Kind, wantKind)
			}
		}
	}
}

func TestGenerate_OnSphere(t *testing.T) {
	for _, iso := range atom.Isotopes {
		for i, n := range Layout(iso) {
			if r := n.Position.Len(); math.Abs(r-DefaultRadius) > tol {
				t.Errorf("%s: nucleon %d at |r|=%.12f, want %.2f", iso, i, r, DefaultRadius)
			}
		}
	}

	for _, n := range Generate(atom.Carbon13, 3) {
		if r := n.Position.Len(); math.Abs(r-3) > tol {
			t.Errorf("custom radius: |r|=%f, want 3", r)
		}
	}
}

func TestGenerate_FallbackMatchesCarbon12(t *testing.T) {
	want := Layout(atom.Carbon12)
	for _, iso := range []atom.Isotope{99, 0, 11, -1} {
		got := Layout(iso)
		if len(got) != len(want) {
			t.Fatalf("isotope %d: expected %d nucleons, got %d", iso, len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("isotope %d: nucleon %d = %+v, want %+v", iso, i, got[i], want[i])
			}
		}
	}
}

func TestGenerate_SphericalConvention(t *testing.T) {
	// i=0 of N: polar = acos(1 - 1/N), azimuth = sqrt(N·π)·polar.
	nucleons := Layout(atom.Carbon12)
	n := 12.0
	polar := math.Acos(1 - 1/n)
	az := math.Sqrt(n*math.Pi) * polar
	want := atom.V(
		DefaultRadius*math.Sin(polar)*math.Cos(az),
		DefaultRadius*math.Sin(polar)*math.Sin(az),
		DefaultRadius*math.Cos(polar),
	)
	if d := nucleons[0].Position.Sub(want).Len(); d > tol {
		t.Errorf("first nucleon at %v, want %v", nucleons[0].Position, want)
	}

	// Bands run from the +z pole to the -z pole.
	if nucleons[0].Position.Z() <= nucleons[len(nucleons)-1].Position.Z() {
		t.Error("expected z to decrease with index")
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, b := Layout(atom.Carbon14), Layout(atom.Carbon14)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("nucleon %d differs between runs", i)
		}
	}
}

func TestGenerate_NoCoincidentPoints(t *testing.T) {
	for _, iso := range atom.Isotopes {
		nucleons := Layout(iso)
		for i := range nucleons {
			for j := i + 1; j < len(nucleons); j++ {
				if d := nucleons[i].Position.Sub(nucleons[j].Position).Len(); d < 0.1 {
					t.Errorf("%s: nucleons %d and %d only %.3f apart", iso, i, j, d)
				}
			}
		}
	}
}

func TestNucleon_Color(t *testing.T) {
	p := Nucleon{Kind: atom.Proton}
	n := Nucleon{Kind: atom.Neutron}
	if p.Color() != ProtonColor || n.Color() != NeutronColor {
		t.Error("unexpected nucleon colors")
	}
	if ProtonColor.Hex() != "#ffd700" || NeutronColor.Hex() != "#c0c0c0" {
		t.Errorf("colors = %s, %s", ProtonColor.Hex(), NeutronColor.Hex())
	}
}
