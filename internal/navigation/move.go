package navigation

import (
	"github.com/dshills/squall/internal/engine/cursor"
	"github.com/dshills/squall/internal/renderer/layout"
	"github.com/dshills/squall/internal/renderer/viewport"
)

// position builds a ViewPosition at (line, col), resolving the source
// byte through the layout when possible.
func position(l *layout.Layout, line, col int) cursor.ViewPosition {
	pos := cursor.AtViewCoords(line, col)
	if b, ok := l.ViewPositionToSourceByte(line, col); ok {
		pos.SourceByte = cursor.At(b)
	}
	return pos
}

// clampLine clamps a view line into the layout.
func clampLine(l *layout.Layout, line int) int {
	if line < 0 {
		return 0
	}
	if max := len(l.Lines) - 1; line > max {
		if max < 0 {
			return 0
		}
		return max
	}
	return line
}

// MoveVertical moves the cursor by direction view lines, preserving
// preferredCol when resolved. The target column is not clamped to the
// destination line's length here; clamping happens only inside the
// source-byte resolution, so the returned column can exceed the line
// (sticky-column behavior is the caller's to manage via preferredCol).
// An unresolved view line returns the cursor unchanged.
func MoveVertical(l *layout.Layout, cur cursor.ViewPosition, preferredCol cursor.Index, direction int) cursor.ViewPosition {
	currentLine, ok := cur.ViewLine.Resolve()
	if !ok {
		return cur
	}
	targetLine := clampLine(l, currentLine+direction)
	targetCol := preferredCol.Or(cur.Column.Or(0))
	return position(l, targetLine, targetCol)
}

// MoveHorizontal moves the cursor by direction columns, crossing line
// boundaries: moving right past the end of a line (including its
// newline slot) lands at the start of the next line, and moving left
// from column 0 lands at the end of the previous line. An unresolved
// view line returns the cursor unchanged.
func MoveHorizontal(l *layout.Layout, cur cursor.ViewPosition, direction int) cursor.ViewPosition {
	currentLine, ok := cur.ViewLine.Resolve()
	if !ok {
		return cur
	}
	currentCol := cur.Column.Or(0)

	lineIdx := clampLine(l, currentLine)
	lineLen := l.LineLen(lineIdx)
	rawCol := currentCol + direction
	if rawCol < 0 {
		rawCol = 0
	}

	// The line length includes the newline slot; crossing happens when
	// moving past it.
	if direction > 0 && rawCol >= lineLen && lineIdx+1 < len(l.Lines) {
		return position(l, lineIdx+1, 0)
	}

	if direction < 0 && currentCol == 0 && lineIdx > 0 {
		return position(l, lineIdx-1, l.LineLen(lineIdx-1))
	}

	if rawCol > lineLen {
		rawCol = lineLen
	}
	return position(l, lineIdx, rawCol)
}

// MoveLineStart moves the cursor to column 0 of its view line.
func MoveLineStart(l *layout.Layout, cur cursor.ViewPosition) cursor.ViewPosition {
	currentLine, ok := cur.ViewLine.Resolve()
	if !ok {
		return cur
	}
	return position(l, clampLine(l, currentLine), 0)
}

// MoveLineEnd moves the cursor past the last character slot of its
// view line, the end-of-line insertion point, not the last character.
func MoveLineEnd(l *layout.Layout, cur cursor.ViewPosition) cursor.ViewPosition {
	currentLine, ok := cur.ViewLine.Resolve()
	if !ok {
		return cur
	}
	lineIdx := clampLine(l, currentLine)
	return position(l, lineIdx, l.LineLen(lineIdx))
}

// MovePage moves the cursor by one page (viewport height minus one),
// preserving the cursor's current column across the jump.
func MovePage(l *layout.Layout, cur cursor.ViewPosition, vp viewport.Viewport, direction int) cursor.ViewPosition {
	page := vp.VisibleLineCount() - 1
	if page < 0 {
		page = 0
	}
	return MoveVertical(l, cur, cur.Column, page*direction)
}

// ScrollView scrolls the viewport by lineOffset view lines, clamped so
// the view never shows more trailing blank space than the layout
// provides. When the new top line resolves to a source byte, the
// viewport's anchor byte is updated so a later re-layout can re-anchor
// near the same document location.
func ScrollView(l *layout.Layout, vp *viewport.Viewport, lineOffset int) {
	maxTop := l.MaxTopLine(vp.VisibleLineCount())
	target := vp.TopViewLine + lineOffset
	if target < 0 {
		target = 0
	}
	if target > maxTop {
		target = maxTop
	}
	vp.TopViewLine = target
	if b, ok := l.SourceByteForLine(target); ok {
		vp.AnchorByte = b
	}
}
