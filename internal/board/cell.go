// internal/board/cell.go
//
// Cell predicates and the CellKind wire form.
//   - IsBomb / IsNumbered / IsEmpty classify a cell.
//   - IncrementNumber saturates at 255.

package board

import (
	"math"
	"strconv"
)

// IsBomb reports whether the cell holds a bomb.
func (c Cell) IsBomb() bool { return c.Kind.Kind == KindBomb }

// IsNumbered reports whether the cell carries an adjacency number.
func (c Cell) IsNumbered() bool { return c.Kind.Kind == KindNumbered }

// IsEmpty reports whether the cell is neither a bomb nor numbered.
func (c Cell) IsEmpty() bool { return c.Kind.Kind == KindEmpty }

// IncrementNumber bumps the adjacency counter.
// Empty becomes Numbered(1), Numbered(n) becomes Numbered(n+1), bombs are left alone.
func (c *Cell) IncrementNumber() {
	switch c.Kind.Kind {
	case KindEmpty:
		c.Kind = Numbered(1)
	case KindNumbered:
		if c.Kind.Count < math.MaxUint8 {
			c.Kind.Count++
		}
	}
}

// Valid reports whether k is one of the three known kinds.
func (k CellKind) Valid() bool {
	switch k.Kind {
	case KindEmpty, KindBomb:
		return k.Count == 0
	case KindNumbered:
		return true
	}
	return false
}

// String renders k for logs: "empty", "bomb" or "numbered(n)".
func (k CellKind) String() string {
	if k.Kind == KindNumbered {
		return "numbered(" + strconv.Itoa(int(k.Count)) + ")"
	}
	return string(k.Kind)
}
