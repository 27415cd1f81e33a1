// Package registry maps game IDs to factories. Games register from init(),
// so the CLI and the frontends only need a blank import to find them.
package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is the interface a game exposes to the frontends.
// A game imports no UI library; the frontend owns key mapping and the clock.
type Game interface {
	// ID is the unique identifier used on the command line.
	ID() string

	// Title is the display name.
	Title() string

	// Reset discards the current session and returns to the menu.
	// The seed in cfg fixes the piece sequence.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's actions in order, then advances the
	// simulation by dt of elapsed wall-clock time.
	Step(in core.InputFrame, dt time.Duration) core.StepResult

	// Render draws into a pre-cleared character screen.
	Render(dst *core.Screen)

	// State summarizes the session for frontends and logging.
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	factory Factory
	title   string // Read from a probe instance at registration
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory to the registry, usually from init().
// Panics on an empty or duplicate ID.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return result
}

// Create returns a fresh game. The error wraps ErrUnknownGame.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}
