package engine

import (
	"math/rand"
	"time"
)

// Piece is the falling piece: a catalog entry placed on the board.
type Piece struct {
	Type     PieceType
	Rotation int
	Col      int // Board column of the local origin
	Row      int // Board row of the local origin
}

// Cells returns the absolute board cells the piece covers.
func (p Piece) Cells(cat *Catalog) [CellsPerPiece]Cell {
	var cells [CellsPerPiece]Cell
	origin := Cell{Col: p.Col, Row: p.Row}
	for i, o := range cat.Offsets(p.Type, p.Rotation) {
		cells[i] = origin.Add(o)
	}
	return cells
}

// Timing holds the controller's pacing parameters.
type Timing struct {
	FallInterval    time.Duration // Time between gravity steps
	SoftDropDivisor int           // FallInterval is divided by this while soft drop is held
	MoveRepeat      time.Duration // Minimum time between horizontal shifts
	SpawnColumn     int           // Column of the local origin for new pieces
}

// Controller owns the active piece and moves it against a board.
type Controller struct {
	board   *Board
	catalog *Catalog
	rng     *rand.Rand
	timing  Timing

	piece     Piece
	clock     time.Duration // Sum of all Tick deltas
	fallTimer time.Duration
	lastShift time.Duration // Clock time of the last shift attempt
}

// NewController creates a controller. Call TrySpawn before use.
// The first shift is always allowed.
func NewController(board *Board, catalog *Catalog, rng *rand.Rand, timing Timing) *Controller {
	return &Controller{
		board:     board,
		catalog:   catalog,
		rng:       rng,
		timing:    timing,
		lastShift: -timing.MoveRepeat,
	}
}

// Piece returns the active piece.
func (c *Controller) Piece() Piece {
	return c.piece
}

// Cells returns the absolute cells of the active piece.
func (c *Controller) Cells() [CellsPerPiece]Cell {
	return c.piece.Cells(c.catalog)
}

// Clock returns the total time the controller has been ticked.
func (c *Controller) Clock() time.Duration {
	return c.clock
}

// TrySpawn replaces the active piece with a random one at the spawn point.
// Returns false if the new piece overlaps settled cells.
func (c *Controller) TrySpawn() bool {
	c.piece = Piece{
		Type:     PieceType(c.rng.Intn(c.catalog.Len())),
		Rotation: 0,
		Col:      c.timing.SpawnColumn,
		Row:      0,
	}
	c.fallTimer = 0

	cells := c.Cells()
	return c.board.Fits(cells[:])
}

// TryMove translates the piece by (dx, dy) if every target cell is free.
func (c *Controller) TryMove(dx, dy int) bool {
	candidate := c.piece
	candidate.Col += dx
	candidate.Row += dy
	return c.commit(candidate)
}

// Shift moves the piece horizontally, at most once per MoveRepeat.
// A blocked shift still uses up the window, and so does a respawn.
func (c *Controller) Shift(dx int) bool {
	if c.clock-c.lastShift < c.timing.MoveRepeat {
		return false
	}
	c.lastShift = c.clock
	return c.TryMove(dx, 0)
}

// TryRotate turns the piece clockwise in place. There are no wall kicks.
func (c *Controller) TryRotate() bool {
	candidate := c.piece
	candidate.Rotation = (candidate.Rotation + 1) % RotationCount
	return c.commit(candidate)
}

// FallInterval returns the effective gravity interval.
func (c *Controller) FallInterval(softDrop bool) time.Duration {
	if softDrop && c.timing.SoftDropDivisor > 1 {
		return c.timing.FallInterval / time.Duration(c.timing.SoftDropDivisor)
	}
	return c.timing.FallInterval
}

// Tick advances the clocks by dt and applies gravity when it is due.
// Returns true when the piece could not descend and must be locked;
// the caller settles Cells and calls TrySpawn.
func (c *Controller) Tick(dt time.Duration, softDrop bool) bool {
	c.clock += dt
	c.fallTimer += dt

	if c.fallTimer <= c.FallInterval(softDrop) {
		return false
	}
	c.fallTimer = 0

	return !c.TryMove(0, 1)
}

// commit replaces the piece with candidate when it fits.
func (c *Controller) commit(candidate Piece) bool {
	cells := candidate.Cells(c.catalog)
	if !c.board.Fits(cells[:]) {
		return false
	}
	c.piece = candidate
	return true
}
