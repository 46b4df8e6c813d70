// Package viz is the terminal host for the atom model.
//
// The package renders the composer's geometry with the Bubble Tea framework:
//
//   - [Model]: interactive view with isotope selection and a live legend
//   - [Canvas]: Braille-based pixel canvas with per-cell color
//   - [Camera] and [Wireframe]: perspective projection of nucleons, orbitals and orbits
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	1/2/3   - Select Carbon-12, Carbon-13 or Carbon-14
//	Space   - Pause/Resume the clock
//	Tab     - Cycle the selected electron
//	Up/Down - Grow or shrink the selected orbit
//	x/y/z   - Rotate camera (shift reverses)
//	+/-     - Zoom
//	L       - Toggle electron labels
//	R       - Remount (clock to zero, orbits restored)
//	T       - Cycle color themes
//	G       - Toggle GIF recording
//	?       - Show help overlay
//
// # Recording
//
// The G key records the canvas as a monochrome-on-black GIF animation saved
// to the current directory when recording stops.
package viz
