package scene_test

import (
	"encoding/json"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/electron"
	"github.com/san-kum/atomsim/internal/nucleus"
	"github.com/san-kum/atomsim/internal/scene"
)

var _ = Describe("Composer", func() {
	var c *scene.Composer

	BeforeEach(func() {
		c = scene.New(scene.CarbonOptions())
	})

	Describe("construction", func() {
		It("starts on Carbon-12 with a 6/6 nucleus", func() {
			Expect(c.State()).To(Equal(scene.State{Isotope: atom.Carbon12}))
			Expect(c.Nucleons()).To(HaveLen(12))
		})

		It("builds one guide per distinct radius/plane", func() {
			Expect(c.Paths()).To(HaveLen(6))
			Expect(c.PathBuilds()).To(Equal(6))
		})

		It("falls back to the default nucleus radius", func() {
			opts := scene.CarbonOptions()
			opts.NucleusRadius = 0
			Expect(scene.New(opts).NucleusRadius()).To(Equal(nucleus.DefaultRadius))
		})
	})

	Describe("SelectIsotope", func() {
		It("regenerates the nucleus for each isotope", func() {
			for _, iso := range atom.Isotopes {
				c.SelectIsotope(iso)
				Expect(c.Isotope()).To(Equal(iso))
				Expect(c.Nucleons()).To(HaveLen(int(iso)))
			}
		})

		It("leaves orbitals and electrons untouched", func() {
			orbitals, electrons := c.Orbitals(), c.Electrons()
			builds := c.PathBuilds()

			c.SelectIsotope(atom.Carbon14)
			c.SelectIsotope(atom.Carbon13)

			Expect(c.Orbitals()).To(Equal(orbitals))
			Expect(c.Electrons()).To(Equal(electrons))
			Expect(c.PathBuilds()).To(Equal(builds))
		})

		It("accepts unknown isotopes with the Carbon-12 layout", func() {
			c.SelectIsotope(99)
			Expect(c.Isotope()).To(Equal(atom.Isotope(99)))
			Expect(c.Nucleons()).To(Equal(nucleus.Layout(atom.Carbon12)))
		})

		It("notifies listeners with the new state", func() {
			var got []scene.State
			var sizes []int
			c.Subscribe(func(s scene.State, n []nucleus.Nucleon) {
				got = append(got, s)
				sizes = append(sizes, len(n))
			})

			c.SelectIsotope(atom.Carbon13)
			c.SelectIsotope(atom.Carbon14)

			Expect(got).To(Equal([]scene.State{{Isotope: atom.Carbon13}, {Isotope: atom.Carbon14}}))
			Expect(sizes).To(Equal([]int{13, 14}))
		})

		It("hands out copies of the nucleus", func() {
			n := c.Nucleons()
			n[0].Position = atom.V(100, 100, 100)
			Expect(c.Nucleons()[0].Position).NotTo(Equal(n[0].Position))
		})
	})

	Describe("FrameTick", func() {
		It("positions every electron by its orbit law", func() {
			f := c.FrameTick(2.5)
			Expect(f.Time).To(Equal(2.5))
			Expect(f.Electrons).To(HaveLen(6))
			for i, o := range c.Electrons() {
				Expect(f.Electrons[i].Position).To(Equal(o.Position(2.5)))
				Expect(f.Electrons[i].LabelAnchor).To(Equal(f.Electrons[i].Position))
				Expect(f.Electrons[i].Label).To(Equal(o.Label))
			}
		})

		It("starts shell partners on opposite sides", func() {
			f := c.FrameTick(0)
			Expect(f.Electrons[0].Position).To(Equal(atom.V(3, 0, 0)))
			Expect(f.Electrons[1].Position.X()).To(BeNumerically("~", -3, 1e-12))
			Expect(f.Electrons[2].Position.X()).To(BeNumerically("~", 5, 1e-12))
			Expect(f.Electrons[3].Position.X()).To(BeNumerically("~", -5, 1e-12))
		})

		It("repeats after one period", func() {
			e := c.Electrons()[4]
			a := c.FrameTick(1.3).Electrons[4].Position
			b := c.FrameTick(1.3 + e.Period()).Electrons[4].Position
			for i := 0; i < 3; i++ {
				Expect(a[i]).To(BeNumerically("~", b[i], 1e-9))
			}
		})

		It("does not mutate state or rebuild guides", func() {
			builds := c.PathBuilds()
			for frame := 0; frame < 120; frame++ {
				c.FrameTick(float64(frame) / 60)
			}
			Expect(c.State()).To(Equal(scene.State{Isotope: atom.Carbon12}))
			Expect(c.PathBuilds()).To(Equal(builds))
		})

		It("forwards frames to observers", func() {
			var seen []float64
			c.Attach(scene.ObserverFunc(func(f scene.Frame) { seen = append(seen, f.Time) }))
			c.FrameTick(0.1)
			c.FrameTick(0.2)
			Expect(seen).To(Equal([]float64{0.1, 0.2}))
		})

		It("anchors the nucleus caption and labelled orbitals", func() {
			opts := scene.CarbonOptions()
			opts.Orbitals[3].Label = "2py"
			f := scene.New(opts).FrameTick(0)
			Expect(f.Labels).To(ConsistOf(
				scene.Label{Text: "Carbon-12", Anchor: scene.NucleusLabelAnchor},
				scene.Label{Text: "2py", Anchor: atom.V(0, 4, 0)},
			))
		})
	})

	Describe("SetElectron", func() {
		It("keeps the guide when only speed changes", func() {
			o, err := c.Electron(4)
			Expect(err).NotTo(HaveOccurred())
			builds := c.PathBuilds()

			o.Speed = 3
			Expect(c.SetElectron(4, o)).To(Succeed())
			Expect(c.PathBuilds()).To(Equal(builds))
			Expect(c.Electrons()[4].Speed).To(Equal(3.0))
		})

		It("rebuilds exactly one guide when the radius changes", func() {
			o, _ := c.Electron(0)
			builds := c.PathBuilds()

			o.Radius = 4
			Expect(c.SetElectron(0, o)).To(Succeed())
			Expect(c.PathBuilds()).To(Equal(builds + 1))
			path := c.Path(0)
			Expect(path).To(HaveLen(electron.PathPoints))
			Expect(path[0].X()).To(BeNumerically("~", 4, 1e-12))
		})

		It("rejects out of range indices", func() {
			Expect(c.SetElectron(6, electron.Orbit{})).To(MatchError(scene.ErrElectronIndex))
			_, err := c.Electron(-1)
			Expect(err).To(MatchError(scene.ErrElectronIndex))
			Expect(c.Path(10)).To(BeNil())
		})
	})

	Describe("Snapshot", func() {
		It("encodes the full scene as JSON", func() {
			c.SelectIsotope(atom.Carbon14)
			data, err := json.Marshal(c.Snapshot(1))
			Expect(err).NotTo(HaveOccurred())

			var decoded map[string]interface{}
			Expect(json.Unmarshal(data, &decoded)).To(Succeed())
			Expect(decoded["name"]).To(Equal("Carbon-14"))
			Expect(decoded["neutrons"]).To(BeNumerically("==", 8))
			Expect(decoded["nucleons"]).To(HaveLen(14))
			Expect(decoded["electrons"]).To(HaveLen(6))

			first := decoded["nucleons"].([]interface{})[0].(map[string]interface{})
			Expect(first["kind"]).To(Equal("proton"))
			Expect(first["color"]).To(Equal("#ffd700"))
		})

		It("omits the period of a resting electron", func() {
			opts := scene.CarbonOptions()
			opts.Electrons = []electron.Orbit{{Radius: 2}}
			s := scene.New(opts).Snapshot(0)
			Expect(s.Electrons[0].Period).To(BeZero())
			_, err := json.Marshal(s)
			Expect(err).NotTo(HaveOccurred())
			Expect(math.IsInf(s.Electrons[0].Period, 0)).To(BeFalse())
		})
	})
})

var _ = Describe("Legend", func() {
	It("tracks the drawn neutron count", func() {
		Expect(scene.Legend(atom.Carbon14)[1].Text).To(Equal("Neutrons: 8"))
		Expect(scene.Legend(99)[1].Text).To(Equal("Neutrons: 6"))
	})

	It("lists the five swatches in order", func() {
		entries := scene.Legend(atom.Carbon12)
		Expect(entries).To(HaveLen(5))
		Expect(entries[0]).To(Equal(scene.LegendEntry{Text: "Protons: 6", Color: nucleus.ProtonColor}))
		Expect(entries[4].Color).To(Equal(atom.MustColor("#0F0")))
	})
})
