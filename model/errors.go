package model

import "github.com/pkg/errors"

var (
	// ErrInvalidSize is returned when a grid is built with a non-positive side length
	ErrInvalidSize = errors.New("invalid grid size")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidPattern is returned when text cannot be parsed into a grid
	ErrInvalidPattern = errors.New("invalid pattern")
)
