// internal/board/types.go
//
// Core type definitions for the board generator.
// Defines:
//   - Kind / CellKind: tagged state of a single cell (empty, bomb, numbered).
//   - Cell: one grid position plus its kind.
//   - Board: the square grid (row-major storage) and its placement settings.
//   - Rand: the injected source of randomness used for bomb placement.

package board

import "errors"

// Kind is the tag of a CellKind.
type Kind string

const (
	KindEmpty    Kind = "empty"
	KindBomb     Kind = "bomb"
	KindNumbered Kind = "numbered"
)

// CellKind is the state carried by a cell. Count is only meaningful when
// Kind == KindNumbered.
type CellKind struct {
	Kind  Kind  `json:"kind"`
	Count uint8 `json:"count,omitempty"`
}

// Empty and Bomb are the two payload-free kinds.
var (
	Empty = CellKind{Kind: KindEmpty}
	Bomb  = CellKind{Kind: KindBomb}
)

// Numbered returns a numbered kind carrying n.
func Numbered(n uint8) CellKind {
	return CellKind{Kind: KindNumbered, Count: n}
}

// Cell is a single grid position. X is the row, Y the column.
type Cell struct {
	X    int      `json:"x"`
	Y    int      `json:"y"`
	Kind CellKind `json:"kind"`
}

// Board is a side×side grid stored row-major in cells.
// Not safe for concurrent use.
type Board struct {
	total   int     // total cell count (perfect square)
	side    int     // sqrt(total)
	cells   []Cell  // len(cells) == total
	density float64 // fraction of cells turned into bombs at construction
	rng     Rand
}

// Rand is the uniform integer source used for placement.
// *math/rand/v2.Rand satisfies it.
type Rand interface {
	// IntN returns a uniform value in [0, n). n > 0.
	IntN(n int) int
}

// Errors returned by this package. Callers match them with errors.Is.
var (
	ErrInvalidSize        = errors.New("board: cell count is not a positive perfect square")
	ErrOutOfBounds        = errors.New("board: coordinate out of bounds")
	ErrInvalidDensity     = errors.New("board: bomb density must be in [0, 1)")
	ErrPlacementExhausted = errors.New("board: not enough free cells for bombs")
)

// DefaultDensity is the fraction of cells that become bombs when no
// WithDensity option is given.
const DefaultDensity = 0.3
