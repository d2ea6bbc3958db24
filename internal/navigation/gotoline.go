package navigation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/squall/internal/engine/buffer"
	"github.com/dshills/squall/internal/engine/cursor"
	"github.com/dshills/squall/internal/renderer/layout"
)

// GotoLine jumps to a 1-based line entered by the user, returning the
// new cursor position and a status message. Invalid input leaves the
// cursor unchanged and reports the problem in the message; nothing
// here is a fatal error.
//
// In large-file mode (unknown line count) the target is approximated:
// the byte offset is estimated from the average line length and the
// actual line start found by scanning forward. In exact mode the
// target is clamped to the existing lines.
func GotoLine(l *layout.Layout, buf *buffer.Buffer, cur cursor.ViewPosition, input string, estimatedLineLength int) (cursor.ViewPosition, string) {
	lineNum, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return cur, fmt.Sprintf("Invalid line number: %s", input)
	}
	if lineNum <= 0 {
		return cur, "Line number must be positive"
	}
	targetLine := lineNum - 1 // 0-based

	snap := buf.Snapshot()
	if _, known := snap.LineCount(); !known {
		// Large file: estimate a byte offset, find the real line start
		// in the buffer, then map it into the view.
		estimatedOffset := targetLine * estimatedLineLength
		if estimatedOffset > snap.Len() {
			estimatedOffset = snap.Len()
		}
		sourceByte := snap.LineIterator(estimatedOffset, estimatedLineLength).CurrentPosition()
		pos := SourceToViewPos(l, sourceByte, cursor.Unresolved())
		return pos, fmt.Sprintf("Jumped to estimated line %d (large file mode)", lineNum)
	}

	lineCount, _ := snap.LineCount()
	maxLine := lineCount - 1
	actualLine := targetLine
	if actualLine > maxLine {
		actualLine = maxLine
	}
	sourceByte := snap.LineColToPosition(actualLine, 0)
	pos := SourceToViewPos(l, sourceByte, cursor.Unresolved())

	if targetLine > maxLine {
		return pos, fmt.Sprintf("Line %d doesn't exist, jumped to line %d", lineNum, actualLine+1)
	}
	return pos, fmt.Sprintf("Jumped to line %d", lineNum)
}
