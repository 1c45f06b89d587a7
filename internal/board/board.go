// internal/board/board.go
//
// Board construction and coordinate-indexed access.
// Responsibilities:
//   - Validate the requested cell count (must be a positive perfect square).
//   - Allocate the row-major cell slice with positions derived from the index.
//   - Map (x, y) <-> index in both directions with explicit bounds errors.
//   - Get/Set single cells without ever touching memory outside the grid.
//
// Bomb placement lives in placement.go.

package board

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Option configures a Board before bombs are placed.
type Option func(*Board)

// WithDensity sets the fraction of cells that become bombs. Must be in [0, 1).
func WithDensity(d float64) Option {
	return func(b *Board) { b.density = d }
}

// WithRand injects the randomness source used for placement.
func WithRand(r Rand) Option {
	return func(b *Board) { b.rng = r }
}

// WithSeed makes placement deterministic for the given seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// New builds a board of total cells, all Empty, then places
// round(total * density) bombs.
//
// Errors:
//   - ErrInvalidSize if total is not a positive perfect square.
//   - ErrInvalidDensity if the configured density is outside [0, 1).
func New(total int, opts ...Option) (*Board, error) {
	side, ok := intSqrt(total)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, total)
	}
	b := &Board{total: total, side: side, density: DefaultDensity}
	for _, opt := range opts {
		opt(b)
	}
	if !validDensity(b.density) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDensity, b.density)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	b.cells = make([]Cell, total)
	for i := range b.cells {
		x, y := i/side, i%side
		b.cells[i] = Cell{X: x, Y: y, Kind: Empty}
	}

	if err := b.PlaceBombs(TargetBombCount(total, b.density)); err != nil {
		return nil, err
	}
	return b, nil
}

// CoordinatesToIndex maps (x, y) to its row-major index x*side + y.
func CoordinatesToIndex(side, x, y int) (int, error) {
	if x < 0 || y < 0 || x >= side || y >= side {
		return 0, fmt.Errorf("%w: (%d,%d) on side %d", ErrOutOfBounds, x, y, side)
	}
	return x*side + y, nil
}

// IndexToCoordinates is the inverse of CoordinatesToIndex for 0 <= index < side².
func IndexToCoordinates(side, index int) (x, y int, err error) {
	if side <= 0 || index < 0 || index >= side*side {
		return 0, 0, fmt.Errorf("%w: index %d on side %d", ErrOutOfBounds, index, side)
	}
	return index / side, index % side, nil
}

// Side returns the grid's side length.
func (b *Board) Side() int { return b.side }

// Total returns the number of cells.
func (b *Board) Total() int { return b.total }

// Density returns the bomb density the board was generated with.
func (b *Board) Density() float64 { return b.density }

// Get returns a copy of the cell at (x, y).
func (b *Board) Get(x, y int) (Cell, error) {
	i, err := CoordinatesToIndex(b.side, x, y)
	if err != nil {
		return Cell{}, err
	}
	return b.cells[i], nil
}

// Set replaces the cell at (x, y) with a new cell carrying kind.
func (b *Board) Set(x, y int, kind CellKind) error {
	i, err := CoordinatesToIndex(b.side, x, y)
	if err != nil {
		return err
	}
	b.cells[i] = Cell{X: x, Y: y, Kind: kind}
	return nil
}

// Increment applies Cell.IncrementNumber to the cell at (x, y) and returns
// the updated cell.
func (b *Board) Increment(x, y int) (Cell, error) {
	i, err := CoordinatesToIndex(b.side, x, y)
	if err != nil {
		return Cell{}, err
	}
	b.cells[i].IncrementNumber()
	return b.cells[i], nil
}

// Cells returns a copy of all cells in row-major order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// BombCount counts cells whose kind is Bomb.
func (b *Board) BombCount() int {
	n := 0
	for _, c := range b.cells {
		if c.IsBomb() {
			n++
		}
	}
	return n
}

// Validate checks total and density against the same rules New applies and
// reports the resulting side and bomb count. Nothing is allocated, so it is
// safe on untrusted sizes.
func Validate(total int, density float64) (side, bombs int, err error) {
	side, ok := intSqrt(total)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidSize, total)
	}
	if !validDensity(density) {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidDensity, density)
	}
	return side, TargetBombCount(total, density), nil
}

// intSqrt returns the integer square root of n and whether n is a perfect
// square. Non-positive n is never accepted.
func intSqrt(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	r := int(math.Sqrt(float64(n)))
	// float rounding can land one off for large n
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r, r*r == n
}

func validDensity(d float64) bool {
	return !math.IsNaN(d) && d >= 0 && d < 1
}
