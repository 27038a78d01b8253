package field

import "errors"

// Domain errors for field construction and combination.
var (
	// ErrRank indicates a field constructed with a non-positive grid extent.
	ErrRank = errors.New("field: extent must be positive in both dimensions")

	// ErrComponents indicates a vector field with an unsupported component count.
	ErrComponents = errors.New("field: vector field must have 2 or 3 components")

	// ErrExtent indicates an operation combining fields over different grids.
	ErrExtent = errors.New("field: mismatched field extents")
)
