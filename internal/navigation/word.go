package navigation

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/dshills/squall/internal/engine/buffer"
	"github.com/dshills/squall/internal/engine/cursor"
	"github.com/dshills/squall/internal/renderer/layout"
)

// wordScanWindow bounds how much document text a word hop examines in
// each direction.
const wordScanWindow = 512

// MoveWordRight moves the cursor to the start of the next word. Word
// boundaries follow Unicode segmentation over the document text. A
// cursor that cannot resolve a buffer byte is returned unchanged.
func MoveWordRight(l *layout.Layout, cur cursor.ViewPosition, buf *buffer.Buffer) cursor.ViewPosition {
	b, ok := ViewPosToBufferByte(l, cur)
	if !ok {
		return cur
	}
	snap := buf.Snapshot()
	end := b + wordScanWindow
	if end > snap.Len() {
		end = snap.Len()
	}
	window := snap.TextRange(b, end)
	if window == "" {
		return cur
	}

	// Skip the word under the cursor, then any whitespace, landing on
	// the next word's first byte.
	offset := 0
	state := -1
	rest := window
	var word string
	word, rest, state = uniseg.FirstWordInString(rest, state)
	offset += len(word)
	for len(rest) > 0 {
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if strings.TrimSpace(word) != "" {
			break
		}
		offset += len(word)
	}
	if offset >= len(window) {
		offset = len(window)
	}
	return SourceToViewPos(l, b+offset, cursor.Unresolved())
}

// MoveWordLeft moves the cursor to the start of the previous word. A
// cursor that cannot resolve a buffer byte is returned unchanged.
func MoveWordLeft(l *layout.Layout, cur cursor.ViewPosition, buf *buffer.Buffer) cursor.ViewPosition {
	b, ok := ViewPosToBufferByte(l, cur)
	if !ok {
		return cur
	}
	snap := buf.Snapshot()
	start := b - wordScanWindow
	if start < 0 {
		start = 0
	}
	window := snap.TextRange(start, b)
	if window == "" {
		return cur
	}

	// The previous word start is the last non-space segment beginning
	// strictly before the cursor.
	target := start
	offset := 0
	state := -1
	rest := window
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if strings.TrimSpace(word) != "" && start+offset < b {
			target = start + offset
		}
		offset += len(word)
	}
	return SourceToViewPos(l, target, cursor.Unresolved())
}
