package cursor

// approxLineWidth is the assumed line width used when approximating the
// length of a multi-line selection. The result is a UI metric, not a
// true character count.
const approxLineWidth = 80

// Selection is a pair of view positions. Start may come after End when
// the user selected backward; Normalized produces the ordered form.
// Selection is an immutable value type.
type Selection struct {
	Start ViewPosition
	End   ViewPosition
}

// NewSelection creates a selection between two positions.
func NewSelection(start, end ViewPosition) Selection {
	return Selection{Start: start, End: end}
}

// Normalized returns the selection with Start and End swapped if Start
// orders after End.
func (s Selection) Normalized() Selection {
	if s.End.Less(s.Start) {
		return Selection{Start: s.End, End: s.Start}
	}
	return s
}

// IsEmpty reports whether the selection has no extent.
func (s Selection) IsEmpty() bool {
	return s.Start == s.End
}

// Len returns the selection length in view columns. Returns 0 if
// either endpoint lacks resolved view coordinates. Multi-line
// selections are approximated using a fixed assumed line width.
func (s Selection) Len() int {
	startLine, ok := s.Start.ViewLine.Resolve()
	if !ok {
		return 0
	}
	startCol, ok := s.Start.Column.Resolve()
	if !ok {
		return 0
	}
	endLine, ok := s.End.ViewLine.Resolve()
	if !ok {
		return 0
	}
	endCol, ok := s.End.Column.Resolve()
	if !ok {
		return 0
	}

	if startLine == endLine {
		if endCol < startCol {
			return 0
		}
		return endCol - startCol
	}

	lineDiff := endLine - startLine
	if lineDiff < 0 {
		lineDiff = 0
	}
	return lineDiff*approxLineWidth + endCol
}
