package atom

import "errors"

// Domain errors for parsing and validating model inputs.
var (
	// ErrUnknownIsotope indicates a mass number outside Carbon-12/13/14.
	ErrUnknownIsotope = errors.New("atom: unknown isotope")

	// ErrUnknownPlane indicates an orbit plane name that is not xz, xy or xy-neg.
	ErrUnknownPlane = errors.New("atom: unknown orbit plane")

	// ErrUnknownAxis indicates an orientation other than x, y or z.
	ErrUnknownAxis = errors.New("atom: unknown axis")

	// ErrUnknownOrbitalKind indicates an orbital kind other than s or p.
	ErrUnknownOrbitalKind = errors.New("atom: unknown orbital kind")

	// ErrInvalidColor indicates a malformed hex color.
	ErrInvalidColor = errors.New("atom: invalid color")
)
