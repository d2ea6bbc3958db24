// Package layout provides the wrap-aware projection of a document byte
// range into display lines, with per-character source-byte mappings
// that keep view positions and source bytes cheaply convertible in
// both directions.
package layout

// NoSource marks a character slot with no direct source byte, such as
// a synthetic wrap marker or a wide-character continuation cell.
const NoSource = -1

// LineStart distinguishes a hard line start from a wrap continuation.
type LineStart uint8

const (
	// StartHard marks a view line that begins a buffer line.
	StartHard LineStart = iota

	// StartWrap marks a view line that continues a wrapped buffer line.
	StartWrap
)

// StyleID is an opaque style annotation attached to slot spans. The
// core never interprets it; renderers map it to concrete styling.
type StyleID uint16

// StyleSpan annotates a half-open range of character slots with a
// style.
type StyleSpan struct {
	StartCol int
	EndCol   int
	Style    StyleID
}

// Range is a half-open byte interval.
type Range struct {
	Start int
	End   int
}

// IsEmpty reports whether the range covers nothing.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// ViewLine is one row of wrapped on-screen text.
type ViewLine struct {
	// Text is the rendered text of the row.
	Text string

	// CharMappings has one entry per character slot: the source byte
	// the slot maps to, or NoSource for slots with no direct byte.
	// The trailing newline, when present, occupies its own slot.
	CharMappings []int

	// Styles are opaque style annotations over slot ranges.
	Styles []StyleSpan

	// Start marks whether the row begins a buffer line or continues a
	// wrapped one.
	Start LineStart

	// EndsWithNewline is true when the row ends with a real newline.
	EndsWithNewline bool
}

// Len returns the number of character slots in the line, including the
// trailing newline slot when present.
func (v *ViewLine) Len() int {
	return len(v.CharMappings)
}

// Layout is an immutable projection of a byte range into view lines.
// It is a snapshot over one tree version; callers must discard stale
// layouts after the document is edited.
type Layout struct {
	Lines   []ViewLine
	Covered Range
}

// New creates a layout over the given view lines and covered range.
func New(lines []ViewLine, covered Range) *Layout {
	return &Layout{Lines: lines, Covered: covered}
}

// LineLen returns the slot count of a view line, or 0 when the line is
// out of range.
func (l *Layout) LineLen(line int) int {
	if line < 0 || line >= len(l.Lines) {
		return 0
	}
	return l.Lines[line].Len()
}

// ViewPositionToSourceByte maps a view line and column to a source
// byte. The column is clamped into the line; a column past the last
// slot maps to the byte just after the line (the end-of-line insertion
// point). Returns false when the line is out of range or no byte can
// be resolved.
func (l *Layout) ViewPositionToSourceByte(line, col int) (int, bool) {
	if line < 0 || line >= len(l.Lines) {
		return 0, false
	}
	mappings := l.Lines[line].CharMappings
	if col < 0 {
		col = 0
	}

	// Slots without a direct byte (wrap markers, continuation cells)
	// resolve to the nearest following mapped slot.
	for ; col < len(mappings); col++ {
		if mappings[col] != NoSource {
			return mappings[col], true
		}
	}
	return l.lineEndByte(line)
}

// lineEndByte returns the byte just past the last slot of a line: the
// next line's first byte, or the end of the covered range on the final
// line.
func (l *Layout) lineEndByte(line int) (int, bool) {
	for next := line + 1; next < len(l.Lines); next++ {
		if b, ok := l.SourceByteForLine(next); ok {
			return b, true
		}
	}
	return l.Covered.End, true
}

// SourceByteToViewPosition maps a source byte to the nearest view line
// and column. An exact slot wins; otherwise the closest preceding
// mapped slot is used. The end of the covered range maps to the slot
// past the final line's content. Returns false when the byte is
// outside the covered range or before every mapped slot.
func (l *Layout) SourceByteToViewPosition(b int) (int, int, bool) {
	if b < l.Covered.Start || b > l.Covered.End {
		return 0, 0, false
	}
	if b == l.Covered.End {
		if len(l.Lines) == 0 {
			return 0, 0, false
		}
		last := len(l.Lines) - 1
		return last, len(l.Lines[last].CharMappings), true
	}

	bestLine, bestCol, found := 0, 0, false
	for li := range l.Lines {
		for ci, src := range l.Lines[li].CharMappings {
			if src == NoSource {
				continue
			}
			if src == b {
				return li, ci, true
			}
			if src < b {
				bestLine, bestCol, found = li, ci, true
				continue
			}
			// Mappings are non-decreasing in reading order; once past
			// the target, the best candidate is final.
			return bestLine, bestCol, found
		}
	}
	return bestLine, bestCol, found
}

// SourceByteForLine returns the source byte at a view line's start.
// Returns false when the line is out of range or has no mapped slot.
func (l *Layout) SourceByteForLine(line int) (int, bool) {
	if line < 0 || line >= len(l.Lines) {
		return 0, false
	}
	for _, src := range l.Lines[line].CharMappings {
		if src != NoSource {
			return src, true
		}
	}
	return 0, false
}

// MaxTopLine returns the highest valid top line for a viewport showing
// the given number of lines, so the view never scrolls past the
// layout's trailing content.
func (l *Layout) MaxTopLine(visible int) int {
	if visible < 1 {
		visible = 1
	}
	max := len(l.Lines) - visible
	if max < 0 {
		return 0
	}
	return max
}
