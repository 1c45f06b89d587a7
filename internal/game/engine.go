// internal/game/engine.go
//
// Session wrapper around board.Board.
// Responsibilities:
//   - Generate a seeded board from Params (random seed when none is given).
//   - Serialize all reads and writes to the board behind the session mutex.
//   - Produce point-in-time snapshots for the HTTP layer.
//
// Notes:
//   - Boards are never resized; a new size means a new Game.
//   - randomID() is a compact hex identifier for correlating server state.
package game

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/robalobadob/minesweeper/internal/board"
)

// New generates a new board session.
// If p.Seed is zero a random seed is drawn and recorded on the Game.
func New(p Params) (*Game, error) {
	seed := p.Seed
	if seed == 0 {
		seed = randomSeed()
	}
	b, err := board.New(p.Cells, board.WithDensity(p.Density), board.WithSeed(seed))
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:        randomID(),
		Seed:      seed,
		Preset:    p.Preset,
		CreatedAt: time.Now().UTC(),
		board:     b,
	}, nil
}

// Cell returns the cell at (x, y).
func (g *Game) Cell(x, y int) (board.Cell, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Get(x, y)
}

// SetCell replaces the cell at (x, y). Unknown kinds are rejected before
// the board is touched.
func (g *Game) SetCell(x, y int, kind board.CellKind) (board.Cell, error) {
	if !kind.Valid() {
		return board.Cell{}, fmt.Errorf("%w: %q", ErrInvalidKind, kind.Kind)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.board.Set(x, y, kind); err != nil {
		return board.Cell{}, err
	}
	return g.board.Get(x, y)
}

// Increment bumps the adjacency number at (x, y).
func (g *Game) Increment(x, y int) (board.Cell, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Increment(x, y)
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return Snapshot{
		ID:        g.ID,
		Side:      g.board.Side(),
		Cells:     g.board.Total(),
		Density:   g.board.Density(),
		Bombs:     g.board.BombCount(),
		Seed:      g.Seed,
		Preset:    g.Preset,
		CreatedAt: g.CreatedAt,
		Grid:      g.board.Cells(),
	}
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

// randomSeed draws a non-zero seed from crypto/rand.
func randomSeed() uint64 {
	var b [8]byte
	for {
		_, _ = rand.Read(b[:])
		if s := binary.BigEndian.Uint64(b[:]); s != 0 {
			return s
		}
	}
}
