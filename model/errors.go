package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is requested with a non-positive height or width.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned when a cell coordinate lies outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
	// ErrStaleView is returned when a View is read after its grid was mutated.
	ErrStaleView = errors.New("view invalidated by grid mutation")
	// ErrUnknownPattern is returned for a seeding pattern name that isn't registered.
	ErrUnknownPattern = errors.New("unknown pattern")
)
