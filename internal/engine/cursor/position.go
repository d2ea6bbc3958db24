package cursor

// Index is an optional non-negative index. The zero value is
// unresolved. Index is comparable, so positions built from it can be
// compared with ==.
type Index struct {
	value int
	set   bool
}

// At returns a resolved index.
func At(v int) Index {
	return Index{value: v, set: true}
}

// Unresolved returns an unresolved index.
func Unresolved() Index {
	return Index{}
}

// Resolve returns the value and whether it is resolved.
func (i Index) Resolve() (int, bool) {
	return i.value, i.set
}

// IsResolved reports whether the index has a value.
func (i Index) IsResolved() bool {
	return i.set
}

// Or returns the value, or def when unresolved.
func (i Index) Or(def int) int {
	if i.set {
		return i.value
	}
	return def
}

// compare orders two indices. Unresolved sorts before resolved; two
// unresolved indices are equal.
func (i Index) compare(other Index) int {
	switch {
	case !i.set && !other.set:
		return 0
	case !i.set:
		return -1
	case !other.set:
		return 1
	case i.value < other.value:
		return -1
	case i.value > other.value:
		return 1
	default:
		return 0
	}
}

// ViewPosition is a cursor location in view coordinates, optionally
// paired with the source byte it maps to. Each field resolves
// independently; this is a product of partial knowledge, not a set of
// exclusive states.
type ViewPosition struct {
	ViewLine   Index
	Column     Index
	SourceByte Index
}

// NewViewPosition creates a fully resolved position.
func NewViewPosition(viewLine, column, sourceByte int) ViewPosition {
	return ViewPosition{
		ViewLine:   At(viewLine),
		Column:     At(column),
		SourceByte: At(sourceByte),
	}
}

// AtSourceByte creates a position that knows only its source byte,
// as for a cursor created before any layout exists.
func AtSourceByte(b int) ViewPosition {
	return ViewPosition{SourceByte: At(b)}
}

// AtViewCoords creates a position with view coordinates and no source
// mapping.
func AtViewCoords(viewLine, column int) ViewPosition {
	return ViewPosition{ViewLine: At(viewLine), Column: At(column)}
}

// HasViewCoords reports whether both view line and column are resolved.
func (p ViewPosition) HasViewCoords() bool {
	return p.ViewLine.IsResolved() && p.Column.IsResolved()
}

// Less orders positions by view line, then column, then source byte.
// Unresolved fields sort before resolved ones, which keeps the order
// total over partially resolved positions.
func (p ViewPosition) Less(other ViewPosition) bool {
	if c := p.ViewLine.compare(other.ViewLine); c != 0 {
		return c < 0
	}
	if c := p.Column.compare(other.Column); c != 0 {
		return c < 0
	}
	return p.SourceByte.compare(other.SourceByte) < 0
}
