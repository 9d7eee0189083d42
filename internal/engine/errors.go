package engine

import "errors"

var (
	// ErrInvalidDirection is returned when a move is requested with a value
	// outside the four directions.
	ErrInvalidDirection = errors.New("engine: invalid direction")

	// ErrInvalidGrid is returned when a grid holds an exponent above MaxExponent
	// or a game is built without a random source.
	ErrInvalidGrid = errors.New("engine: invalid grid")
)
