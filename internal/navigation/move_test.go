package navigation

import (
	"testing"

	"github.com/dshills/squall/internal/engine/cursor"
	"github.com/dshills/squall/internal/renderer/layout"
	"github.com/dshills/squall/internal/renderer/viewport"
)

// testLayout builds an unwrapped layout over the lines joined with
// newlines ("Hello" occupies 6 slots including its newline).
func testLayout(lines ...string) *layout.Layout {
	text := ""
	for i, line := range lines {
		if i > 0 {
			text += "\n"
		}
		text += line
	}
	return layout.Build(text, 0, layout.Options{})
}

func at(line, col int) cursor.ViewPosition {
	return cursor.AtViewCoords(line, col)
}

func TestMoveVerticalClampsLine(t *testing.T) {
	l := testLayout("Line1", "Line2", "Line3")

	tests := []struct {
		name      string
		line      int
		direction int
		wantLine  int
	}{
		{"down", 0, 1, 1},
		{"up", 2, -1, 1},
		{"past bottom", 1, 100, 2},
		{"past top", 1, -100, 0},
		{"out-of-range input clamps", 50, 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MoveVertical(l, at(tt.line, 0), cursor.Unresolved(), tt.direction)
			if line, _ := got.ViewLine.Resolve(); line != tt.wantLine {
				t.Errorf("view line = %d, want %d", line, tt.wantLine)
			}
			if line, _ := got.ViewLine.Resolve(); line < 0 || line >= len(l.Lines) {
				t.Errorf("view line %d out of layout range", line)
			}
		})
	}
}

func TestMoveVerticalPreservesPreferredColumn(t *testing.T) {
	l := testLayout("long line here", "ab", "another long line")

	// Moving from the long line through the short one keeps the
	// preferred column, unclamped; only the source byte is clamped.
	got := MoveVertical(l, at(0, 10), cursor.At(10), 1)
	if col, _ := got.Column.Resolve(); col != 10 {
		t.Errorf("column = %d, want preferred 10 (not clamped to the short line)", col)
	}
	if !got.SourceByte.IsResolved() {
		t.Error("source byte should resolve via the layout's clamping")
	}
}

func TestMoveVerticalUnresolvedCursorUnchanged(t *testing.T) {
	l := testLayout("abc")
	cur := cursor.AtSourceByte(2)
	if got := MoveVertical(l, cur, cursor.Unresolved(), 1); got != cur {
		t.Error("cursor without view coordinates should be returned unchanged")
	}
}

func TestMoveHorizontalWithinLine(t *testing.T) {
	l := testLayout("Hello", "World")

	got := MoveHorizontal(l, at(0, 2), 1)
	if line, _ := got.ViewLine.Resolve(); line != 0 {
		t.Errorf("view line = %d, want 0", line)
	}
	if col, _ := got.Column.Resolve(); col != 3 {
		t.Errorf("column = %d, want 3", col)
	}
}

func TestMoveHorizontalCrossesToNextLine(t *testing.T) {
	l := testLayout("Hello", "World")

	// "Hello" has 6 slots including its newline; moving right from the
	// newline slot crosses to the next line.
	got := MoveHorizontal(l, at(0, 5), 1)
	if line, _ := got.ViewLine.Resolve(); line != 1 {
		t.Errorf("view line = %d, want 1", line)
	}
	if col, _ := got.Column.Resolve(); col != 0 {
		t.Errorf("column = %d, want 0", col)
	}
}

func TestMoveHorizontalCrossesToPreviousLine(t *testing.T) {
	l := testLayout("Hello", "World")

	got := MoveHorizontal(l, at(1, 0), -1)
	if line, _ := got.ViewLine.Resolve(); line != 0 {
		t.Errorf("view line = %d, want 0", line)
	}
	// End of the previous line includes its newline slot.
	if col, _ := got.Column.Resolve(); col != 6 {
		t.Errorf("column = %d, want 6", col)
	}
}

func TestMoveHorizontalStopsAtDocumentEdges(t *testing.T) {
	l := testLayout("Hi")

	got := MoveHorizontal(l, at(0, 0), -1)
	if col, _ := got.Column.Resolve(); col != 0 {
		t.Errorf("left at start: column = %d, want 0", col)
	}

	got = MoveHorizontal(l, at(0, 2), 1)
	if line, _ := got.ViewLine.Resolve(); line != 0 {
		t.Errorf("right at end: view line = %d, want 0", line)
	}
	if col, _ := got.Column.Resolve(); col != 2 {
		t.Errorf("right at end: column = %d, want 2 (line length)", col)
	}
}

func TestMoveHorizontalNeverLeavesLayout(t *testing.T) {
	l := testLayout("Hello", "World", "Test")
	for line := 0; line < 3; line++ {
		for col := 0; col < 10; col++ {
			for _, dir := range []int{-3, -1, 1, 3} {
				got := MoveHorizontal(l, at(line, col), dir)
				if gl, ok := got.ViewLine.Resolve(); !ok || gl < 0 || gl >= len(l.Lines) {
					t.Fatalf("MoveHorizontal(%d, %d, %d) left the layout: line %d", line, col, dir, gl)
				}
			}
		}
	}
}

func TestMoveLineStart(t *testing.T) {
	l := testLayout("Hello", "World", "Test")
	for line := 0; line < 3; line++ {
		for _, col := range []int{0, 3, 99} {
			got := MoveLineStart(l, at(line, col))
			if c, _ := got.Column.Resolve(); c != 0 {
				t.Errorf("MoveLineStart(%d, %d) column = %d, want 0", line, col, c)
			}
		}
	}
}

func TestMoveLineEnd(t *testing.T) {
	l := testLayout("Hello", "World!", "Test")

	got := MoveLineEnd(l, at(1, 0))
	wantCol := l.LineLen(1) // after the last slot, including the newline
	if c, _ := got.Column.Resolve(); c != wantCol {
		t.Errorf("column = %d, want %d", c, wantCol)
	}
}

func TestMovePagePreservesColumn(t *testing.T) {
	l := testLayout("a1", "b2", "c3", "d4", "e5", "f6", "g7", "h8")
	vp := viewport.New(80, 4)

	got := MovePage(l, at(0, 1), vp, 1)
	if line, _ := got.ViewLine.Resolve(); line != 3 {
		t.Errorf("page down from 0 with height 4: line = %d, want 3", line)
	}
	if col, _ := got.Column.Resolve(); col != 1 {
		t.Errorf("column = %d, want preserved 1", col)
	}

	got = MovePage(l, got, vp, -1)
	if line, _ := got.ViewLine.Resolve(); line != 0 {
		t.Errorf("page back up: line = %d, want 0", line)
	}
}

func TestScrollViewClampsAndAnchors(t *testing.T) {
	l := testLayout("a", "b", "c", "d", "e", "f")
	vp := viewport.New(80, 3)

	ScrollView(l, &vp, 2)
	if vp.TopViewLine != 2 {
		t.Errorf("TopViewLine = %d, want 2", vp.TopViewLine)
	}
	if b, ok := l.SourceByteForLine(2); !ok || vp.AnchorByte != b {
		t.Errorf("AnchorByte = %d, want %d", vp.AnchorByte, b)
	}

	ScrollView(l, &vp, 100)
	if want := l.MaxTopLine(3); vp.TopViewLine != want {
		t.Errorf("TopViewLine after far scroll = %d, want clamp to %d", vp.TopViewLine, want)
	}

	ScrollView(l, &vp, -100)
	if vp.TopViewLine != 0 {
		t.Errorf("TopViewLine after scroll to top = %d, want 0", vp.TopViewLine)
	}
}

func TestHelloWorldScenario(t *testing.T) {
	// Lines ["Hello", "World"]: cursor at (0, 5) moving right lands at
	// (1, 0); cursor at (1, 0) moving left lands at (0, 6).
	l := testLayout("Hello", "World")

	right := MoveHorizontal(l, at(0, 5), 1)
	if line, _ := right.ViewLine.Resolve(); line != 1 {
		t.Errorf("right: line = %d, want 1", line)
	}
	if col, _ := right.Column.Resolve(); col != 0 {
		t.Errorf("right: column = %d, want 0", col)
	}

	left := MoveHorizontal(l, at(1, 0), -1)
	if line, _ := left.ViewLine.Resolve(); line != 0 {
		t.Errorf("left: line = %d, want 0", line)
	}
	if col, _ := left.Column.Resolve(); col != 6 {
		t.Errorf("left: column = %d, want 6", col)
	}
}
