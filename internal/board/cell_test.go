package board

import "testing"

func TestCellPredicates(t *testing.T) {
	tests := []struct {
		name     string
		kind     CellKind
		bomb     bool
		numbered bool
	}{
		{"empty", Empty, false, false},
		{"bomb", Bomb, true, false},
		{"numbered zero", Numbered(0), false, true},
		{"numbered three", Numbered(3), false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Cell{Kind: tt.kind}
			if c.IsBomb() != tt.bomb {
				t.Errorf("IsBomb: expected %v", tt.bomb)
			}
			if c.IsNumbered() != tt.numbered {
				t.Errorf("IsNumbered: expected %v", tt.numbered)
			}
		})
	}
}

func TestIncrementNumber(t *testing.T) {
	c := Cell{Kind: Empty}
	c.IncrementNumber()
	if c.Kind != Numbered(1) {
		t.Fatalf("Expected numbered(1), got %s", c.Kind)
	}
	c.IncrementNumber()
	if c.Kind != Numbered(2) {
		t.Fatalf("Expected numbered(2), got %s", c.Kind)
	}

	b := Cell{X: 1, Y: 2, Kind: Bomb}
	b.IncrementNumber()
	if b != (Cell{X: 1, Y: 2, Kind: Bomb}) {
		t.Fatalf("bomb changed: %+v", b)
	}

	m := Cell{Kind: Numbered(255)}
	m.IncrementNumber()
	if m.Kind.Count != 255 {
		t.Fatalf("Expected saturation at 255, got %d", m.Kind.Count)
	}
}

func TestCellKindValid(t *testing.T) {
	tests := []struct {
		kind CellKind
		ok   bool
	}{
		{Empty, true},
		{Bomb, true},
		{Numbered(8), true},
		{CellKind{Kind: KindBomb, Count: 2}, false},
		{CellKind{Kind: "flag"}, false},
		{CellKind{}, false},
	}
	for _, tt := range tests {
		if got := tt.kind.Valid(); got != tt.ok {
			t.Errorf("%+v.Valid() = %v, want %v", tt.kind, got, tt.ok)
		}
	}
}

func TestCellKindString(t *testing.T) {
	if s := Numbered(4).String(); s != "numbered(4)" {
		t.Errorf("Expected numbered(4), got %q", s)
	}
	if s := Bomb.String(); s != "bomb" {
		t.Errorf("Expected bomb, got %q", s)
	}
}
