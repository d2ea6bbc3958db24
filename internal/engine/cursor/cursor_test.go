package cursor

import "testing"

func TestIndexZeroValueUnresolved(t *testing.T) {
	var i Index
	if i.IsResolved() {
		t.Error("zero Index should be unresolved")
	}
	if got := i.Or(7); got != 7 {
		t.Errorf("Or(7) = %d, want 7", got)
	}
}

func TestIndexResolve(t *testing.T) {
	i := At(5)
	v, ok := i.Resolve()
	if !ok || v != 5 {
		t.Errorf("Resolve() = %d, %v, want 5, true", v, ok)
	}
	if got := i.Or(9); got != 5 {
		t.Errorf("Or(9) = %d, want 5", got)
	}
}

func TestViewPositionConstructors(t *testing.T) {
	p := AtSourceByte(42)
	if p.HasViewCoords() {
		t.Error("source-only position should not have view coords")
	}
	if b, ok := p.SourceByte.Resolve(); !ok || b != 42 {
		t.Errorf("SourceByte = %d, %v, want 42, true", b, ok)
	}

	p = AtViewCoords(2, 3)
	if !p.HasViewCoords() {
		t.Error("view-coords position should have view coords")
	}
	if p.SourceByte.IsResolved() {
		t.Error("view-coords position should not have a source byte")
	}
}

func TestViewPositionOrdering(t *testing.T) {
	tests := []struct {
		name string
		a, b ViewPosition
		less bool
	}{
		{"earlier line", NewViewPosition(0, 5, 5), NewViewPosition(1, 0, 6), true},
		{"same line earlier col", NewViewPosition(1, 2, 8), NewViewPosition(1, 4, 10), true},
		{"equal", NewViewPosition(1, 2, 8), NewViewPosition(1, 2, 8), false},
		{"later line", NewViewPosition(3, 0, 20), NewViewPosition(2, 9, 19), false},
		{"unresolved line sorts first", ViewPosition{Column: At(5)}, NewViewPosition(0, 0, 0), true},
		{"unresolved column sorts first", ViewPosition{ViewLine: At(1)}, AtViewCoords(1, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Less(tt.b); got != tt.less {
				t.Errorf("Less() = %v, want %v", got, tt.less)
			}
		})
	}
}

func TestSelectionNormalized(t *testing.T) {
	fwd := NewSelection(NewViewPosition(0, 1, 1), NewViewPosition(2, 0, 15))
	if got := fwd.Normalized(); got != fwd {
		t.Error("forward selection should be unchanged by Normalized")
	}

	back := NewSelection(NewViewPosition(2, 0, 15), NewViewPosition(0, 1, 1))
	norm := back.Normalized()
	if norm.Start != back.End || norm.End != back.Start {
		t.Error("backward selection should swap endpoints")
	}
}

func TestSelectionNormalizedPartialResolution(t *testing.T) {
	// Unresolved endpoints order before resolved ones; Normalized must
	// stay total and never panic.
	s := NewSelection(NewViewPosition(1, 0, 9), ViewPosition{})
	norm := s.Normalized()
	if norm.Start != (ViewPosition{}) {
		t.Error("unresolved endpoint should normalize to Start")
	}
}

func TestSelectionIsEmpty(t *testing.T) {
	p := NewViewPosition(1, 4, 12)
	if !NewSelection(p, p).IsEmpty() {
		t.Error("identical endpoints should be empty")
	}
	if NewSelection(p, NewViewPosition(1, 5, 13)).IsEmpty() {
		t.Error("distinct endpoints should not be empty")
	}
}

func TestSelectionLen(t *testing.T) {
	tests := []struct {
		name string
		sel  Selection
		want int
	}{
		{
			"single line",
			NewSelection(NewViewPosition(1, 2, 10), NewViewPosition(1, 7, 15)),
			5,
		},
		{
			"single line reversed saturates",
			NewSelection(NewViewPosition(1, 7, 15), NewViewPosition(1, 2, 10)),
			0,
		},
		{
			"multi line approximation",
			NewSelection(NewViewPosition(0, 3, 3), NewViewPosition(2, 5, 170)),
			2*80 + 5,
		},
		{
			"unresolved start",
			NewSelection(AtSourceByte(4), NewViewPosition(1, 2, 10)),
			0,
		},
		{
			"unresolved end column",
			NewSelection(NewViewPosition(0, 0, 0), ViewPosition{ViewLine: At(2)}),
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.sel.Len(); got != tt.want {
				t.Errorf("Len() = %d, want %d", got, tt.want)
			}
		})
	}
}
