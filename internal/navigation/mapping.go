package navigation

import (
	"github.com/dshills/squall/internal/engine/cursor"
	"github.com/dshills/squall/internal/renderer/layout"
)

// ViewPosToSource converts a view position to a source byte. Both view
// coordinates must be resolved.
func ViewPosToSource(l *layout.Layout, pos cursor.ViewPosition) (int, bool) {
	line, ok := pos.ViewLine.Resolve()
	if !ok {
		return 0, false
	}
	col, ok := pos.Column.Resolve()
	if !ok {
		return 0, false
	}
	return l.ViewPositionToSourceByte(line, col)
}

// SourceToViewPos converts a source byte to the nearest view position.
// When the layout cannot resolve the byte the position falls back to
// (0, 0); preferredCol, when resolved, overrides the looked-up column.
// The result always carries the source byte.
func SourceToViewPos(l *layout.Layout, sourceByte int, preferredCol cursor.Index) cursor.ViewPosition {
	line, col, ok := l.SourceByteToViewPosition(sourceByte)
	if !ok {
		line, col = 0, 0
	}
	if pc, resolved := preferredCol.Resolve(); resolved {
		col = pc
	}
	return cursor.ViewPosition{
		ViewLine:   cursor.At(line),
		Column:     cursor.At(col),
		SourceByte: cursor.At(sourceByte),
	}
}

// ViewRangeToBufferRange maps a pair of view positions to a normalized
// byte range. Both endpoints must already carry a resolved source
// byte.
func ViewRangeToBufferRange(l *layout.Layout, start, end cursor.ViewPosition) (layout.Range, bool) {
	s, ok := start.SourceByte.Resolve()
	if !ok {
		return layout.Range{}, false
	}
	e, ok := end.SourceByte.Resolve()
	if !ok {
		return layout.Range{}, false
	}
	if e < s {
		s, e = e, s
	}
	return layout.Range{Start: s, End: e}, true
}

// ViewPosToBufferByte maps a view position to a buffer byte, preferring
// an already-resolved source byte and falling back to the view
// coordinates.
func ViewPosToBufferByte(l *layout.Layout, pos cursor.ViewPosition) (int, bool) {
	if b, ok := pos.SourceByte.Resolve(); ok {
		return b, true
	}
	return ViewPosToSource(l, pos)
}
