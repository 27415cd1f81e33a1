package engine

import "errors"

var (
	// ErrInvalidConfig is returned when session settings cannot describe a playable game.
	ErrInvalidConfig = errors.New("engine: invalid config")

	// ErrInvalidCatalog is returned when a shape definition breaks the tetromino invariant.
	ErrInvalidCatalog = errors.New("engine: invalid catalog")

	// ErrOutOfBounds is returned by Board.Settle for cells outside the grid.
	ErrOutOfBounds = errors.New("engine: cell out of bounds")

	// ErrCellOccupied is returned by Board.Settle for cells that are already settled.
	ErrCellOccupied = errors.New("engine: cell already occupied")
)
