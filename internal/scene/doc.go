// Package scene composes the carbon atom geometry for rendering hosts.
//
// A [Composer] owns the only mutable piece of the model, the selected isotope,
// together with the static orbital and electron configuration:
//
//   - [Composer.SelectIsotope]: replaces the state and regenerates the nucleus
//   - [Composer.FrameTick]: electron positions and label anchors at time t
//   - [Composer.Subscribe]: isotope change notifications
//   - [Composer.Attach]: per-frame observers
//
// # Example
//
//	c := scene.New(scene.CarbonOptions())
//	c.Subscribe(func(s scene.State, n []nucleus.Nucleon) { redrawNucleus(n) })
//	for running {
//	    frame := c.FrameTick(clock.Seconds())
//	    draw(frame)
//	}
//
// # Thread Safety
//
// Composer instances are NOT thread-safe. Hosts drive them from their render
// loop; stopping the loop stops the motion.
package scene
