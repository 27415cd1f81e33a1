package engine

import (
	"fmt"
	"time"
)

// AutoSpawnColumn centers new pieces horizontally.
const AutoSpawnColumn = -1

// Settings are the constants of one session.
type Settings struct {
	BoardWidth  int
	BoardHeight int
	SpawnColumn int // AutoSpawnColumn or a column in [0, BoardWidth-4]

	BlockSize  int // Pixel size of one cell
	OffsetX    int // Pixel position of the board's top-left corner
	OffsetY    int
	ViewHeight int // Pixel height of the view, debris below it is dropped
	FPS        int // Reference frame rate for per-frame debris constants

	FallInterval    time.Duration
	Difficulty      int // Static divisor applied to FallInterval
	SoftDropDivisor int
	MoveRepeat      time.Duration

	Debris DebrisSettings
}

// DefaultSettings returns a standard 10x20 game.
func DefaultSettings() Settings {
	return Settings{
		BoardWidth:      10,
		BoardHeight:     20,
		SpawnColumn:     AutoSpawnColumn,
		BlockSize:       30,
		OffsetX:         40,
		OffsetY:         40,
		ViewHeight:      800,
		FPS:             60,
		FallInterval:    time.Second,
		Difficulty:      2,
		SoftDropDivisor: 10,
		MoveRepeat:      200 * time.Millisecond,
		Debris:          DefaultDebrisSettings(),
	}
}

// Validate reports the first setting that cannot describe a playable game.
func (s Settings) Validate() error {
	switch {
	case s.BoardWidth < CellsPerPiece:
		return fmt.Errorf("%w: board width %d is below %d", ErrInvalidConfig, s.BoardWidth, CellsPerPiece)
	case s.BoardHeight < CellsPerPiece:
		return fmt.Errorf("%w: board height %d is below %d", ErrInvalidConfig, s.BoardHeight, CellsPerPiece)
	case s.SpawnColumn != AutoSpawnColumn && (s.SpawnColumn < 0 || s.SpawnColumn > s.BoardWidth-CellsPerPiece):
		return fmt.Errorf("%w: spawn column %d outside [0,%d]", ErrInvalidConfig, s.SpawnColumn, s.BoardWidth-CellsPerPiece)
	case s.BlockSize <= 0:
		return fmt.Errorf("%w: block size must be positive", ErrInvalidConfig)
	case s.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive", ErrInvalidConfig)
	case s.FallInterval <= 0:
		return fmt.Errorf("%w: fall interval must be positive", ErrInvalidConfig)
	case s.Difficulty <= 0:
		return fmt.Errorf("%w: difficulty must be positive", ErrInvalidConfig)
	case s.SoftDropDivisor <= 0:
		return fmt.Errorf("%w: soft drop divisor must be positive", ErrInvalidConfig)
	case s.MoveRepeat < 0:
		return fmt.Errorf("%w: move repeat must not be negative", ErrInvalidConfig)
	case s.Debris.MinVelocity > s.Debris.MaxVelocity:
		return fmt.Errorf("%w: debris velocity range [%g,%g] is inverted",
			ErrInvalidConfig, s.Debris.MinVelocity, s.Debris.MaxVelocity)
	}
	return nil
}

// BaseFallInterval returns the gravity interval after the difficulty divisor.
func (s Settings) BaseFallInterval() time.Duration {
	if s.Difficulty <= 1 {
		return s.FallInterval
	}
	return s.FallInterval / time.Duration(s.Difficulty)
}

// SpawnCol resolves AutoSpawnColumn to a centered column.
func (s Settings) SpawnCol() int {
	if s.SpawnColumn == AutoSpawnColumn {
		return (s.BoardWidth - CellsPerPiece) / 2
	}
	return s.SpawnColumn
}

// PixelPos returns the top-left pixel of a board cell.
func (s Settings) PixelPos(c Cell) (x, y float64) {
	return float64(c.Col*s.BlockSize + s.OffsetX), float64(c.Row*s.BlockSize + s.OffsetY)
}

func (s Settings) timing() Timing {
	return Timing{
		FallInterval:    s.BaseFallInterval(),
		SoftDropDivisor: s.SoftDropDivisor,
		MoveRepeat:      s.MoveRepeat,
		SpawnColumn:     s.SpawnCol(),
	}
}
