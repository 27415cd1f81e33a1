// Package engine implements the falling-block simulation: the piece catalog,
// the board of settled cells, the active piece controller, row clearing and
// the session that ties them together.
//
// The package has no UI dependencies. Frontends feed it intents and elapsed
// time and read snapshots back for drawing.
package engine

import "fmt"

// RotationCount is the number of rotation states every piece has.
const RotationCount = 4

// CellsPerPiece is the number of cells in every rotation of every piece.
const CellsPerPiece = 4

// Offset is a cell position relative to a piece's local origin.
type Offset struct {
	DX, DY int
}

// PieceType indexes a shape in a Catalog.
type PieceType int

// ShapeDef describes one piece type before validation.
type ShapeDef struct {
	Name      string
	Rotations [][]Offset
}

type shape struct {
	name      string
	rotations [RotationCount][CellsPerPiece]Offset
}

// Catalog is an immutable set of piece shapes.
// Offsets are handed out as arrays, so callers always receive copies.
type Catalog struct {
	shapes []shape
}

// NewCatalog validates the definitions and builds a catalog.
func NewCatalog(defs []ShapeDef) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no shapes defined", ErrInvalidCatalog)
	}

	c := &Catalog{shapes: make([]shape, len(defs))}
	for i, def := range defs {
		if len(def.Rotations) != RotationCount {
			return nil, fmt.Errorf("%w: shape %q has %d rotations, want %d",
				ErrInvalidCatalog, def.Name, len(def.Rotations), RotationCount)
		}

		s := shape{name: def.Name}
		for r, offsets := range def.Rotations {
			if len(offsets) != CellsPerPiece {
				return nil, fmt.Errorf("%w: shape %q rotation %d has %d cells, want %d",
					ErrInvalidCatalog, def.Name, r, len(offsets), CellsPerPiece)
			}
			seen := make(map[Offset]bool, CellsPerPiece)
			for j, o := range offsets {
				if seen[o] {
					return nil, fmt.Errorf("%w: shape %q rotation %d repeats offset %v",
						ErrInvalidCatalog, def.Name, r, o)
				}
				seen[o] = true
				s.rotations[r][j] = o
			}
		}
		c.shapes[i] = s
	}

	return c, nil
}

// MustCatalog is like NewCatalog but panics on invalid definitions.
// Intended for built-in shape data.
func MustCatalog(defs []ShapeDef) *Catalog {
	c, err := NewCatalog(defs)
	if err != nil {
		panic(err)
	}
	return c
}

// Len returns the number of piece types.
func (c *Catalog) Len() int {
	return len(c.shapes)
}

// Name returns the display name of a piece type.
func (c *Catalog) Name(t PieceType) string {
	c.checkType(t)
	return c.shapes[t].name
}

// Types returns every piece type in catalog order.
func (c *Catalog) Types() []PieceType {
	types := make([]PieceType, len(c.shapes))
	for i := range types {
		types[i] = PieceType(i)
	}
	return types
}

// Offsets returns the cell offsets of a piece type in the given rotation.
// Indices are generated internally, so out-of-range values panic.
func (c *Catalog) Offsets(t PieceType, rotation int) [CellsPerPiece]Offset {
	c.checkType(t)
	if rotation < 0 || rotation >= RotationCount {
		panic(fmt.Sprintf("engine: rotation %d out of range [0,%d)", rotation, RotationCount))
	}
	return c.shapes[t].rotations[rotation]
}

func (c *Catalog) checkType(t PieceType) {
	if int(t) < 0 || int(t) >= len(c.shapes) {
		panic(fmt.Sprintf("engine: piece type %d out of range [0,%d)", t, len(c.shapes)))
	}
}

// StandardCatalog builds the seven classic tetrominoes.
func StandardCatalog() *Catalog {
	return MustCatalog(StandardShapes())
}

// StandardShapes returns the definitions behind StandardCatalog.
func StandardShapes() []ShapeDef {
	return []ShapeDef{
		{Name: "I", Rotations: spin(4, Offset{0, 1}, Offset{1, 1}, Offset{2, 1}, Offset{3, 1})},
		{Name: "O", Rotations: fixed(Offset{1, 0}, Offset{2, 0}, Offset{1, 1}, Offset{2, 1})},
		{Name: "T", Rotations: spin(3, Offset{1, 0}, Offset{0, 1}, Offset{1, 1}, Offset{2, 1})},
		{Name: "S", Rotations: spin(3, Offset{1, 0}, Offset{2, 0}, Offset{0, 1}, Offset{1, 1})},
		{Name: "Z", Rotations: spin(3, Offset{0, 0}, Offset{1, 0}, Offset{1, 1}, Offset{2, 1})},
		{Name: "J", Rotations: spin(3, Offset{0, 0}, Offset{0, 1}, Offset{1, 1}, Offset{2, 1})},
		{Name: "L", Rotations: spin(3, Offset{2, 0}, Offset{0, 1}, Offset{1, 1}, Offset{2, 1})},
	}
}

// spin builds all rotations of a base shape by turning it clockwise
// inside a box x box bounding square.
func spin(box int, base ...Offset) [][]Offset {
	rotations := make([][]Offset, RotationCount)
	current := base
	for r := range RotationCount {
		rotations[r] = current
		next := make([]Offset, len(current))
		for i, o := range current {
			next[i] = Offset{DX: box - 1 - o.DY, DY: o.DX}
		}
		current = next
	}
	return rotations
}

// fixed repeats a rotation-invariant shape for every rotation.
func fixed(base ...Offset) [][]Offset {
	rotations := make([][]Offset, RotationCount)
	for r := range rotations {
		rotations[r] = base
	}
	return rotations
}
