package app

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/squall/internal/renderer/layout"
	"github.com/dshills/squall/internal/renderer/viewport"
)

var (
	styleDefault  = tcell.StyleDefault
	styleGutter   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleStatus   = tcell.StyleDefault.Reverse(true)
	styleSelected = tcell.StyleDefault.Reverse(true)
)

// draw paints the visible view lines, the gutter, and the status line.
func (a *App) draw() {
	e := a.editor
	if !e.dirty.IsDirty() && a.prompt == nil {
		a.placeCursor()
		a.drawStatus()
		return
	}

	snap := e.buf.Snapshot()
	lineCount, known := snap.LineCount()
	gutter := viewport.GutterWidth(lineCount, known)

	vp := e.vp
	l := e.layout
	selStart, selEnd, haveSel := a.selectionBytes()

	for row := 0; row < vp.VisibleLineCount(); row++ {
		viewLine := vp.TopViewLine + row
		if !e.dirty.IsFull() && !e.dirty.LineDirty(viewLine) {
			continue
		}
		a.clearRow(row, vp.Width)
		if viewLine >= len(l.Lines) {
			continue
		}
		line := l.Lines[viewLine]
		a.drawGutter(row, gutter, line)
		a.drawLine(row, gutter, line, selStart, selEnd, haveSel)
	}

	e.dirty.Clear()
	a.placeCursor()
	a.drawStatus()
}

// placeCursor positions the hardware cursor at the editor cursor's
// screen cell.
func (a *App) placeCursor() {
	e := a.editor
	line, ok := e.cur.ViewLine.Resolve()
	if !ok {
		a.screen.HideCursor()
		return
	}
	row := line - e.vp.TopViewLine
	if row < 0 || row >= e.vp.VisibleLineCount() {
		a.screen.HideCursor()
		return
	}

	snap := e.buf.Snapshot()
	lineCount, known := snap.LineCount()
	gutter := viewport.GutterWidth(lineCount, known)

	col := e.cur.Column.Or(0)
	if line < len(e.layout.Lines) {
		if max := e.layout.LineLen(line); col > max {
			col = max
		}
	}
	a.screen.ShowCursor(gutter+col, row)
}

// selectionBytes resolves the active selection to a byte range.
func (a *App) selectionBytes() (int, int, bool) {
	sel := a.editor.sel
	if sel == nil {
		return 0, 0, false
	}
	s, ok := sel.Start.SourceByte.Resolve()
	if !ok {
		return 0, 0, false
	}
	e, ok := sel.End.SourceByte.Resolve()
	if !ok {
		return 0, 0, false
	}
	if e < s {
		s, e = e, s
	}
	return s, e, true
}

func (a *App) clearRow(row, width int) {
	for x := 0; x < width; x++ {
		a.screen.SetContent(x, row, ' ', nil, styleDefault)
	}
}

// drawGutter writes the line number for hard line starts; wrapped
// continuations get a blank gutter.
func (a *App) drawGutter(row, gutter int, line layout.ViewLine) {
	if gutter == 0 || line.Start != layout.StartHard {
		return
	}
	num := a.bufferLineNumber(line)
	if num <= 0 {
		return
	}
	text := fmt.Sprintf("%*d", gutter-1, num)
	for i, r := range text {
		a.screen.SetContent(i, row, r, nil, styleGutter)
	}
}

// bufferLineNumber derives the 1-based buffer line for a view line
// from its first mapped byte. Unknown counts (large files) return 0
// and the gutter stays blank.
func (a *App) bufferLineNumber(line layout.ViewLine) int {
	var firstByte = -1
	for _, src := range line.CharMappings {
		if src != layout.NoSource {
			firstByte = src
			break
		}
	}
	if firstByte < 0 {
		return 0
	}
	snap := a.editor.buf.Snapshot()
	if _, known := snap.LineCount(); !known {
		return 0
	}
	// Count newlines before the byte.
	n := strings.Count(snap.TextRange(0, firstByte), "\n")
	return n + 1
}

// drawLine paints one view line's text, honoring wide clusters and the
// selection highlight.
func (a *App) drawLine(row, gutter int, line layout.ViewLine, selStart, selEnd int, haveSel bool) {
	col := 0
	state := -1
	rest := line.Text
	byteIdx := 0
	for len(rest) > 0 {
		var cluster string
		var boundaries int
		cluster, rest, boundaries, state = uniseg.StepString(rest, state)
		width := boundaries >> uniseg.ShiftWidth
		if cluster == "\n" || cluster == "\r\n" {
			break
		}

		style := styleDefault
		if haveSel && byteIdx < len(line.CharMappings) {
			if src := line.CharMappings[byteIdx]; src != layout.NoSource && src >= selStart && src < selEnd {
				style = styleSelected
			}
		}

		runes := []rune(cluster)
		if len(runes) > 0 {
			var comb []rune
			if len(runes) > 1 {
				comb = runes[1:]
			}
			a.screen.SetContent(gutter+col, row, runes[0], comb, style)
		}
		col += width
		byteIdx += len(cluster)
	}
}

// drawStatus paints the bottom status line, or the goto-line prompt
// when it is open.
func (a *App) drawStatus() {
	e := a.editor
	width := e.vp.Width
	row := e.vp.VisibleLineCount()

	text := e.status
	if a.prompt != nil {
		text = "Go to line: " + string(a.prompt)
	}

	for x := 0; x < width; x++ {
		r := ' '
		if x < len(text) {
			r = rune(text[x])
		}
		a.screen.SetContent(x, row, r, nil, styleStatus)
	}
}
