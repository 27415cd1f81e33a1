package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// Mode is the top-level state of a session.
type Mode int

const (
	ModeMenu Mode = iota
	ModePlaying
	ModeGameOver
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Intent is a discrete player request.
type Intent int

const (
	IntentNone Intent = iota
	IntentMoveLeft
	IntentMoveRight
	IntentRotate
	IntentSoftDropStart
	IntentSoftDropEnd
	IntentStartGame
	IntentPause
)

// String returns a human-readable name for the intent.
func (i Intent) String() string {
	switch i {
	case IntentNone:
		return "None"
	case IntentMoveLeft:
		return "MoveLeft"
	case IntentMoveRight:
		return "MoveRight"
	case IntentRotate:
		return "Rotate"
	case IntentSoftDropStart:
		return "SoftDropStart"
	case IntentSoftDropEnd:
		return "SoftDropEnd"
	case IntentStartGame:
		return "StartGame"
	case IntentPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// UpdateResult reports what happened during one Update call.
type UpdateResult struct {
	Locked     bool // The active piece was merged into the board
	Cleared    int  // Rows cleared by that lock
	ScoreDelta int
	ToppedOut  bool // The stack reached the spawn area and the game ended
}

// Session runs one game from menu to game over.
// It is not safe for concurrent use; a single frontend loop owns it.
type Session struct {
	settings Settings
	catalog  *Catalog
	rng      *rand.Rand

	mode     Mode
	paused   bool
	softDrop bool

	board      *Board
	controller *Controller
	debris     *DebrisField

	score  int
	lines  int
	pieces int
}

// NewSession validates settings and returns a session waiting in the menu.
func NewSession(settings Settings, catalog *Catalog, seed int64) (*Session, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if catalog == nil || catalog.Len() == 0 {
		return nil, fmt.Errorf("%w: session needs at least one shape", ErrInvalidCatalog)
	}

	board, err := NewBoard(settings.BoardWidth, settings.BoardHeight)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		settings: settings,
		catalog:  catalog,
		rng:      rng,
		mode:     ModeMenu,
		board:    board,
		debris:   NewDebrisField(settings.Debris, settings.FPS, float64(settings.ViewHeight), rng),
	}
	s.controller = NewController(board, catalog, rng, settings.timing())
	return s, nil
}

// HandleIntent applies a player request. Requests that make no sense in the
// current mode are ignored.
func (s *Session) HandleIntent(intent Intent) {
	switch intent {
	case IntentStartGame:
		if s.mode != ModePlaying {
			s.start()
		}
		return
	case IntentPause:
		if s.mode == ModePlaying {
			s.paused = !s.paused
		}
		return
	case IntentSoftDropStart:
		s.softDrop = true
		return
	case IntentSoftDropEnd:
		s.softDrop = false
		return
	}

	if s.mode != ModePlaying || s.paused {
		return
	}

	switch intent {
	case IntentMoveLeft:
		s.controller.Shift(-1)
	case IntentMoveRight:
		s.controller.Shift(1)
	case IntentRotate:
		s.controller.TryRotate()
	}
}

// Update advances the session by dt of real time.
// While playing the order is gravity, lock, row clear, spawn, debris.
func (s *Session) Update(dt time.Duration) UpdateResult {
	var result UpdateResult

	switch s.mode {
	case ModeMenu:
		return result
	case ModeGameOver:
		s.debris.Advance(dt)
		return result
	}

	if s.paused {
		return result
	}

	if s.controller.Tick(dt, s.softDrop) {
		result.Locked = true
		s.lock(&result)
	}
	s.debris.Advance(dt)

	return result
}

// start resets everything for a new game.
func (s *Session) start() {
	s.board.Reset()
	s.controller = NewController(s.board, s.catalog, s.rng, s.settings.timing())
	s.debris = NewDebrisField(s.settings.Debris, s.settings.FPS, float64(s.settings.ViewHeight), s.rng)
	s.score = 0
	s.lines = 0
	s.pieces = 0
	s.paused = false
	s.softDrop = false
	s.mode = ModePlaying

	if !s.controller.TrySpawn() {
		s.mode = ModeGameOver
	}
}

// lock merges the active piece, clears rows and spawns the next piece.
func (s *Session) lock(result *UpdateResult) {
	cells := s.controller.Cells()
	if err := s.board.Settle(cells[:]); err != nil {
		if errors.Is(err, ErrOutOfBounds) {
			// Locked while still poking out above the board.
			s.mode = ModeGameOver
			result.ToppedOut = true
			return
		}
		panic(err)
	}
	s.pieces++

	cleared := s.board.ClearFullRows()
	if cleared.Count() > 0 {
		s.score += cleared.ScoreDelta
		s.lines += cleared.Count()
		result.Cleared = cleared.Count()
		result.ScoreDelta = cleared.ScoreDelta
		for _, c := range cleared.Cleared {
			s.debris.Spawn(s.settings.PixelPos(c))
		}
	}

	if !s.controller.TrySpawn() {
		s.mode = ModeGameOver
		result.ToppedOut = true
	}
}

// Mode returns the current mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Paused reports whether play is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// SoftDropping reports whether soft drop is held.
func (s *Session) SoftDropping() bool {
	return s.softDrop
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lines returns the number of rows cleared this game.
func (s *Session) Lines() int {
	return s.lines
}

// Pieces returns the number of pieces locked this game.
func (s *Session) Pieces() int {
	return s.pieces
}

// BoardSize returns the board dimensions in cells.
func (s *Session) BoardSize() (width, height int) {
	return s.board.Width(), s.board.Height()
}

// SettledCells returns the settled cells in row-major order.
func (s *Session) SettledCells() []Cell {
	return s.board.Cells()
}

// ActivePiece returns the falling piece. ok is false in the menu.
func (s *Session) ActivePiece() (p Piece, ok bool) {
	if s.mode == ModeMenu {
		return Piece{}, false
	}
	return s.controller.Piece(), true
}

// ActiveCells returns the cells of the falling piece, or nil in the menu.
func (s *Session) ActiveCells() []Cell {
	if s.mode == ModeMenu {
		return nil
	}
	cells := s.controller.Cells()
	return cells[:]
}

// FallInterval returns the gravity interval currently in effect.
func (s *Session) FallInterval() time.Duration {
	return s.controller.FallInterval(s.softDrop)
}

// Debris returns a copy of the live debris particles.
func (s *Session) Debris() []Particle {
	return s.debris.Particles()
}

// Settings returns the session constants.
func (s *Session) Settings() Settings {
	return s.settings
}

// Catalog returns the piece catalog in use.
func (s *Session) Catalog() *Catalog {
	return s.catalog
}
