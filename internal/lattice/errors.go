package lattice

import "errors"

// Domain errors for field construction and operator application.
var (
	// ErrNonPositiveSize indicates a requested grid size of zero or less.
	ErrNonPositiveSize = errors.New("lattice: grid size must be positive")

	// ErrNotSquare indicates a backing slice whose length is not L*L.
	ErrNotSquare = errors.New("lattice: field data is not a square grid")

	// ErrShapeMismatch indicates a noise or operand slice whose length
	// differs from the field's cell count.
	ErrShapeMismatch = errors.New("lattice: operand shape does not match field")

	// ErrFieldDiverged indicates heights left the representable or
	// configured range (NaN, Inf, or beyond a divergence limit).
	ErrFieldDiverged = errors.New("lattice: field diverged")
)
