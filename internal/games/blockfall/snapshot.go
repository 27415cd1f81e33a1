package blockfall

import "github.com/vovakirdan/blockfall/internal/games/blockfall/engine"

// Snapshot is a comparable summary of the game, used by determinism tests.
type Snapshot struct {
	Mode    engine.Mode
	Score   int
	Lines   int
	Pieces  int
	Piece   engine.Piece
	Settled int
	Debris  int
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	piece, _ := g.session.ActivePiece()
	return Snapshot{
		Mode:    g.session.Mode(),
		Score:   g.session.Score(),
		Lines:   g.session.Lines(),
		Pieces:  g.session.Pieces(),
		Piece:   piece,
		Settled: len(g.session.SettledCells()),
		Debris:  len(g.session.Debris()),
	}
}
