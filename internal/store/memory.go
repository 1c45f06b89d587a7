// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Boards live only as long as the process; nothing is written to disk.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Get/Delete on a missing ID return ErrNotFound.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/robalobadob/minesweeper/internal/game"
)

// ErrNotFound is returned for unknown board IDs.
var ErrNotFound = errors.New("store: board not found")

// Store defines the session interface for generated boards.
type Store interface {
	// Save adds or replaces a board session.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a board session by ID.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Delete drops a board session.
	Delete(ctx context.Context, id string) error

	// Len reports how many sessions are held.
	Len() int
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex          // guards games map
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return ErrNotFound
	}
	delete(m.games, id)
	return nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
