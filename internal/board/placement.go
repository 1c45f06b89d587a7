// internal/board/placement.go
//
// Bomb placement: the target count for a density and the uniform
// no-replacement draw that places them.

package board

import (
	"fmt"
	"math"
)

// TargetBombCount returns round(total * density), halves rounding away from zero.
func TargetBombCount(total int, density float64) int {
	return int(math.Round(float64(total) * density))
}

// PlaceBombs turns count currently non-bomb cells into bombs, chosen
// uniformly without replacement.
//
// Selection is a partial Fisher–Yates shuffle over the free indices: step k
// swaps a uniformly drawn free index into slot k and bombs it. Work is
// bounded by count draws regardless of density.
//
// Returns ErrPlacementExhausted, leaving the board untouched, when count
// exceeds the number of free cells.
func (b *Board) PlaceBombs(count int) error {
	if count < 0 {
		return fmt.Errorf("%w: negative bomb count %d", ErrPlacementExhausted, count)
	}
	free := make([]int, 0, len(b.cells))
	for i, c := range b.cells {
		if !c.IsBomb() {
			free = append(free, i)
		}
	}
	if count > len(free) {
		return fmt.Errorf("%w: want %d, have %d", ErrPlacementExhausted, count, len(free))
	}

	for k := 0; k < count; k++ {
		j := k + b.rng.IntN(len(free)-k)
		free[k], free[j] = free[j], free[k]
		b.cells[free[k]].Kind = Bomb
	}
	return nil
}
