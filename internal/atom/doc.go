// Package atom provides the shared domain primitives of the carbon atom model.
//
// The package defines the small vocabulary every other package speaks:
//
//   - [Vec3]: 3D vector (an alias of mgl64.Vec3)
//   - [Isotope]: carbon mass number with its proton/neutron split
//   - [NucleonKind], [OrbitalKind], [Axis], [Plane]: enumerations with text codecs
//   - [Color]: 8-bit RGB parsed from hex strings
//
// # Isotope Fallback
//
// Only Carbon-12, Carbon-13 and Carbon-14 are enumerated. Any other mass number
// keeps working and is laid out with the Carbon-12 neutron count:
//
//	iso := atom.Isotope(99)
//	iso.Valid()        // false
//	iso.NeutronCount() // 6
package atom
