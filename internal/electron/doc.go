// Package electron animates electrons on closed orbits.
//
// An [Orbit] maps elapsed time to a position:
//
//	x = r·cos(ωt)
//	z = r·sin(ωt)
//	y = r·sin(ωt), -r·sin(ωt) or 0 depending on the plane
//
// A negative radius starts the electron on the opposite side of the nucleus
// from a positive-radius sibling, so two electrons in one shell need no phase
// parameter.
//
// # Guide Paths
//
// [Orbit.Path] samples the same law into a closed polyline of PathPoints
// points. Hosts should fetch guides through a [PathCache], which rebuilds a
// path only when radius or plane change:
//
//	cache := electron.NewPathCache()
//	guide := cache.Path(orbit) // built once
//	pos := orbit.Position(t)   // every frame
package electron
