// internal/game/types.go
//
// Type definitions for board sessions.
// Defines:
//   - Params: what a caller asks for when generating a board.
//   - Game: one generated board owned by a single session.
//   - Snapshot: the JSON view of a Game at a point in time.

package game

import (
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/minesweeper/internal/board"
)

// ErrInvalidKind is returned when a caller tries to store an unknown cell kind.
var ErrInvalidKind = errors.New("game: invalid cell kind")

// Params describes a board to generate.
type Params struct {
	Cells   int     // total cell count, must be a perfect square
	Density float64 // bomb density in [0, 1)
	Seed    uint64  // 0 picks a random seed
	Preset  string  // optional preset name, informational only
}

// Game holds a single generated board.
// The board itself is not safe for concurrent use; every access goes through mu.
type Game struct {
	ID        string    // Unique identifier (random hex string).
	Seed      uint64    // Seed the board was generated from.
	Preset    string    // Preset name the board was built from, if any.
	CreatedAt time.Time // Generation time (UTC).

	mu    sync.Mutex
	board *board.Board
}

// Snapshot is a consistent copy of a Game's state.
type Snapshot struct {
	ID        string       `json:"id"`
	Side      int          `json:"side"`
	Cells     int          `json:"cells"`
	Density   float64      `json:"density"`
	Bombs     int          `json:"bombs"`
	Seed      uint64       `json:"seed,string"`
	Preset    string       `json:"preset,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	Grid      []board.Cell `json:"grid"`
}
