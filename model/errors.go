package model

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a width or height below 1 is requested
	ErrInvalidDimensions = errors.New("invalid dimensions")
	// ErrInvalidGridSize is returned when a cell buffer does not hold exactly width*height cells
	ErrInvalidGridSize = errors.New("invalid grid size")
)
