package board

import (
	"errors"
	"testing"
)

func TestNewAcceptsPerfectSquares(t *testing.T) {
	for _, n := range []int{1, 4, 9, 16, 25, 36, 100, 400} {
		b, err := New(n, WithSeed(1))
		if err != nil {
			t.Fatalf("New(%d) failed: %v", n, err)
		}
		if got := len(b.Cells()); got != n {
			t.Fatalf("New(%d): expected %d cells, got %d", n, n, got)
		}
		if b.Side()*b.Side() != n {
			t.Fatalf("New(%d): side %d is not sqrt", n, b.Side())
		}
	}
}

func TestNewRejectsNonSquares(t *testing.T) {
	for _, n := range []int{-4, 0, 2, 3, 5, 10, 24, 99} {
		b, err := New(n)
		if !errors.Is(err, ErrInvalidSize) {
			t.Fatalf("New(%d): expected ErrInvalidSize, got %v", n, err)
		}
		if b != nil {
			t.Fatalf("New(%d): expected nil board on error", n)
		}
	}
}

func TestNewPositionsFollowIndex(t *testing.T) {
	b, err := New(25, WithDensity(0))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i, c := range b.Cells() {
		x, y, err := IndexToCoordinates(5, i)
		if err != nil {
			t.Fatalf("IndexToCoordinates(5, %d): %v", i, err)
		}
		if c.X != x || c.Y != y {
			t.Fatalf("cell %d: expected (%d,%d), got (%d,%d)", i, x, y, c.X, c.Y)
		}
		if !c.IsEmpty() {
			t.Fatalf("cell %d: expected empty with zero density, got %s", i, c.Kind)
		}
	}
}

func TestCoordinateMappingRoundTrip(t *testing.T) {
	for side := 1; side <= 12; side++ {
		for i := 0; i < side*side; i++ {
			x, y, err := IndexToCoordinates(side, i)
			if err != nil {
				t.Fatalf("IndexToCoordinates(%d, %d): %v", side, i, err)
			}
			j, err := CoordinatesToIndex(side, x, y)
			if err != nil {
				t.Fatalf("CoordinatesToIndex(%d, %d, %d): %v", side, x, y, err)
			}
			if i != j {
				t.Fatalf("side %d: index %d -> (%d,%d) -> %d", side, i, x, y, j)
			}
		}
	}
}

func TestCoordinateMappingSixteen(t *testing.T) {
	b, err := New(16)
	if err != nil {
		t.Fatalf("New(16) failed: %v", err)
	}
	if b.Side() != 4 {
		t.Fatalf("expected side 4, got %d", b.Side())
	}
	x, y, err := IndexToCoordinates(b.Side(), 5)
	if err != nil || x != 1 || y != 1 {
		t.Fatalf("IndexToCoordinates(4, 5) = (%d,%d,%v), want (1,1,nil)", x, y, err)
	}
	i, err := CoordinatesToIndex(4, 1, 1)
	if err != nil || i != 5 {
		t.Fatalf("CoordinatesToIndex(4,1,1) = (%d,%v), want (5,nil)", i, err)
	}
}

func TestIndexToCoordinatesOutOfRange(t *testing.T) {
	cases := []struct {
		name  string
		side  int
		index int
	}{
		{"negative", 3, -1},
		{"past end", 3, 9},
		{"zero side", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := IndexToCoordinates(tc.side, tc.index); !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("expected ErrOutOfBounds, got %v", err)
			}
		})
	}
}

func TestGetSetOutOfBounds(t *testing.T) {
	b, err := New(9, WithSeed(7))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	before := b.Cells()

	cases := []struct {
		name string
		x, y int
	}{
		{"row past end", 3, 0},
		{"col past end", 0, 3},
		{"both past end", 5, 9},
		{"negative row", -1, 0},
		{"negative col", 0, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := b.Get(tc.x, tc.y); !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("Get: expected ErrOutOfBounds, got %v", err)
			}
			if err := b.Set(tc.x, tc.y, Bomb); !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("Set: expected ErrOutOfBounds, got %v", err)
			}
			if _, err := b.Increment(tc.x, tc.y); !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("Increment: expected ErrOutOfBounds, got %v", err)
			}
		})
	}

	after := b.Cells()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("cell %d changed after failed calls: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestSetScenario(t *testing.T) {
	b, err := New(9, WithDensity(0))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := b.Set(0, 0, Bomb); err != nil {
		t.Fatalf("Set(0,0,Bomb): %v", err)
	}
	if err := b.Set(0, 1, Numbered(1)); err != nil {
		t.Fatalf("Set(0,1,Numbered(1)): %v", err)
	}

	c, _ := b.Get(0, 0)
	if !c.IsBomb() {
		t.Fatalf("(0,0): expected bomb, got %s", c.Kind)
	}
	c, _ = b.Get(0, 1)
	if c.Kind != Numbered(1) || c.X != 0 || c.Y != 1 {
		t.Fatalf("(0,1): expected numbered(1) at (0,1), got %+v", c)
	}

	empty := 0
	for _, c := range b.Cells() {
		if c.IsEmpty() {
			empty++
		}
	}
	if empty != 7 {
		t.Fatalf("expected 7 empty cells, got %d", empty)
	}
}

func TestIncrementOnBoard(t *testing.T) {
	b, err := New(4, WithDensity(0))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	c, err := b.Increment(1, 1)
	if err != nil || c.Kind != Numbered(1) {
		t.Fatalf("first Increment = (%+v, %v), want numbered(1)", c, err)
	}
	c, _ = b.Increment(1, 1)
	if c.Kind != Numbered(2) {
		t.Fatalf("second Increment: expected numbered(2), got %s", c.Kind)
	}
}

func TestIntSqrt(t *testing.T) {
	cases := []struct {
		n    int
		root int
		ok   bool
	}{
		{1, 1, true},
		{2, 1, false},
		{15, 3, false},
		{16, 4, true},
		{1 << 40, 1 << 20, true},
		{(1 << 40) - 1, (1 << 20) - 1, false},
	}
	for _, tc := range cases {
		r, ok := intSqrt(tc.n)
		if r != tc.root || ok != tc.ok {
			t.Errorf("intSqrt(%d) = (%d,%v), want (%d,%v)", tc.n, r, ok, tc.root, tc.ok)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		total   int
		density float64
		side    int
		bombs   int
		err     error
	}{
		{100, 0.3, 10, 30, nil},
		{9, 0, 3, 0, nil},
		// a trillion cells is a valid square; Validate must not allocate it
		{1_000_000_000_000, 0.1, 1_000_000, 100_000_000_000, nil},
		{10, 0.3, 0, 0, ErrInvalidSize},
		{0, 0.3, 0, 0, ErrInvalidSize},
		{9, 1.0, 0, 0, ErrInvalidDensity},
		{9, -0.1, 0, 0, ErrInvalidDensity},
	}
	for _, tc := range tests {
		side, bombs, err := Validate(tc.total, tc.density)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("Validate(%d, %v): expected %v, got %v", tc.total, tc.density, tc.err, err)
			}
			continue
		}
		if err != nil || side != tc.side || bombs != tc.bombs {
			t.Errorf("Validate(%d, %v) = (%d, %d, %v), want (%d, %d)", tc.total, tc.density, side, bombs, err, tc.side, tc.bombs)
		}
	}
}
