// Package viewport provides the visible window over a view layout.
package viewport

import "strconv"

// Viewport is the visible portion of a laid-out document. TopViewLine
// addresses view (wrapped) lines, not buffer lines. AnchorByte tracks
// an approximate document location so the viewport can re-locate its
// window after a full re-layout shifts wrap boundaries.
type Viewport struct {
	TopViewLine int
	AnchorByte  int
	Width       int
	Height      int
}

// New creates a viewport with the given size. Width and height are
// clamped to a minimum of 1.
func New(width, height int) Viewport {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return Viewport{Width: width, Height: height}
}

// VisibleLineCount returns how many view lines fit in the viewport.
func (v Viewport) VisibleLineCount() int {
	if v.Height < 1 {
		return 1
	}
	return v.Height
}

// Resize updates the viewport size, clamping to a minimum of 1.
func (v *Viewport) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	v.Width = width
	v.Height = height
}

// largeFileGutterWidth is the gutter width used when the buffer's line
// count is unknown and digits cannot be counted.
const largeFileGutterWidth = 8

// GutterWidth returns the width of the line-number gutter for a buffer
// with the given line count. Unknown counts (large-file mode) use a
// fixed width.
func GutterWidth(lineCount int, known bool) int {
	if !known {
		return largeFileGutterWidth
	}
	if lineCount < 1 {
		lineCount = 1
	}
	return len(strconv.Itoa(lineCount)) + 1
}
