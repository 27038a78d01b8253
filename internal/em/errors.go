package em

import "errors"

// Domain errors for world construction and use. All indicate caller
// misuse; none are retryable.
var (
	// ErrNotAxisAligned indicates a wire whose endpoints differ in both
	// coordinates.
	ErrNotAxisAligned = errors.New("em: wire must be a purely horizontal or vertical segment")

	// ErrShape indicates a world shape that is not two positive integers.
	ErrShape = errors.New("em: world shape must be two positive integers")

	// ErrNoWires indicates Compute on a world with nothing placed.
	ErrNoWires = errors.New("em: place at least one wire before computing fields")

	// ErrEmptyWorld indicates a field accessor on a world with nothing
	// placed, whether or not Compute ran.
	ErrEmptyWorld = errors.New("em: world contains no wires")

	// ErrNotComputed indicates a derived-field accessor before a
	// successful Compute.
	ErrNotComputed = errors.New("em: fields have not been computed")
)
