package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dshills/squall/internal/config"
	"github.com/dshills/squall/internal/engine/buffer"
	"github.com/dshills/squall/internal/engine/cursor"
	"github.com/dshills/squall/internal/engine/piecetree"
	"github.com/dshills/squall/internal/navigation"
	"github.com/dshills/squall/internal/renderer/dirty"
	"github.com/dshills/squall/internal/renderer/layout"
	"github.com/dshills/squall/internal/renderer/viewport"
)

// Editor holds the full editing state for one buffer: the document,
// the current view layout over it, the cursor, and the dirty regions
// pending redraw. All methods are single-goroutine; the event loop is
// the only caller.
type Editor struct {
	cfg  config.Config
	buf  *buffer.Buffer
	path string

	layout *layout.Layout
	vp     viewport.Viewport
	cur    cursor.ViewPosition

	// preferredCol is the sticky column for vertical movement.
	preferredCol cursor.Index

	// sel anchors an active selection; nil when nothing is selected.
	sel *cursor.Selection

	history *buffer.History

	dirty  *dirty.Tracker
	status string
	log    *Logger
}

// NewEditor creates an editor over an empty buffer.
func NewEditor(cfg config.Config) *Editor {
	e := &Editor{
		cfg:     cfg,
		buf:     buffer.NewFromString("", buffer.WithLargeFileThreshold(cfg.LargeFileThreshold)),
		vp:      viewport.New(80, 24),
		cur:     cursor.NewViewPosition(0, 0, 0),
		history: buffer.NewHistory(0),
		dirty:   dirty.NewTracker(),
	}
	e.relayout()
	return e
}

// LoadFile replaces the buffer with the file's contents.
func (e *Editor) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf, err := buffer.NewFromReader(f, buffer.WithLargeFileThreshold(e.cfg.LargeFileThreshold))
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	e.buf = buf
	e.path = path
	e.history = buffer.NewHistory(0)
	e.cur = cursor.NewViewPosition(0, 0, 0)
	e.preferredCol = cursor.Unresolved()
	e.sel = nil
	e.vp.TopViewLine = 0
	e.vp.AnchorByte = 0
	e.relayout()
	e.dirty.MarkAll()
	e.status = filepath.Base(path)
	lines, known := buf.LineCount()
	e.log.Info("opened %s: %d bytes, %d lines (known=%v)", path, buf.Len(), lines, known)
	return nil
}

// SetLogger attaches a logger. A nil logger discards everything.
func (e *Editor) SetLogger(l *Logger) { e.log = l }

// Buffer returns the underlying document buffer.
func (e *Editor) Buffer() *buffer.Buffer { return e.buf }

// Layout returns the current view layout.
func (e *Editor) Layout() *layout.Layout { return e.layout }

// Cursor returns the current cursor position.
func (e *Editor) Cursor() cursor.ViewPosition { return e.cur }

// Viewport returns the current viewport.
func (e *Editor) Viewport() viewport.Viewport { return e.vp }

// Status returns the current status line text.
func (e *Editor) Status() string { return e.status }

// Selection returns the active selection, or nil.
func (e *Editor) Selection() *cursor.Selection { return e.sel }

// SetConfig swaps in a new configuration and rebuilds the layout with
// the new wrap and tab settings.
func (e *Editor) SetConfig(cfg config.Config) {
	cfg.Validate()
	e.cfg = cfg
	e.relayout()
	e.dirty.MarkAll()
}

// Resize updates the viewport size and rebuilds the layout.
func (e *Editor) Resize(width, height int) {
	// One row is reserved for the status line.
	if height > 1 {
		height--
	}
	e.vp.Resize(width, height)
	e.relayout()
	e.dirty.MarkAll()
}

// layoutWindowBytes bounds how much document text one relayout
// covers. The window starts at the viewport anchor and extends far
// enough past the visible lines that scrolling stays inside it.
func (e *Editor) layoutWindowBytes() int {
	perLine := e.cfg.EstimatedLineLength
	if e.vp.Width > perLine {
		perLine = e.vp.Width
	}
	return (e.vp.VisibleLineCount() + extraLayoutLines) * (perLine + 1)
}

const extraLayoutLines = 64

// relayout rebuilds the view layout over the window anchored at the
// viewport's anchor byte. The cursor keeps its document position and
// is re-resolved into the new layout.
func (e *Editor) relayout() {
	snap := e.buf.Snapshot()

	start := e.vp.AnchorByte
	if start > snap.Len() {
		start = snap.Len()
	}
	end := start + e.layoutWindowBytes()
	if end > snap.Len() {
		end = snap.Len()
	}

	lineCount, known := snap.LineCount()
	opts := layout.Options{
		Width:    e.vp.Width,
		TabWidth: e.cfg.TabWidth,
	}
	if e.cfg.WrapWidth > 0 && e.cfg.WrapWidth < e.vp.Width {
		opts.Width = e.cfg.WrapWidth
	}
	opts.GutterWidth = viewport.GutterWidth(lineCount, known)

	e.layout = layout.Build(snap.TextRange(start, end), start, opts)

	// The window starts at the anchor, so its first view line is the
	// viewport's top.
	e.vp.TopViewLine = 0

	if b, ok := e.cur.SourceByte.Resolve(); ok {
		if _, _, inside := e.layout.SourceByteToViewPosition(b); !inside {
			e.log.Warn("cursor byte %d outside layout window %d..%d, falling back to window start",
				b, e.layout.Covered.Start, e.layout.Covered.End)
		}
		e.cur = navigation.SourceToViewPos(e.layout, b, cursor.Unresolved())
	}
}

// applyEdit diffs the buffer against its pre-edit tree and marks the
// changed view lines dirty, then rebuilds the layout and re-resolves
// the cursor at cursorByte.
func (e *Editor) applyEdit(before *piecetree.Node, cursorByte int) {
	res := piecetree.Diff(before, e.buf.Root())
	e.log.Debug("edit: bytes %d..%d, lines %d..%d known=%v",
		res.ByteRange.Start, res.ByteRange.End, res.LineRange.Start, res.LineRange.End, res.LinesKnown)
	if e.cfg.WrapWidth > 0 {
		// Wrapped view lines shift unpredictably under edits.
		e.dirty.MarkAll()
	} else {
		e.dirty.MarkDiff(res)
	}

	e.cur = cursor.AtSourceByte(cursorByte)
	e.relayout()
	e.preferredCol = cursor.Unresolved()
	e.ensureCursorVisible()
}

// InsertText inserts text at the cursor, replacing any active
// selection.
func (e *Editor) InsertText(text string) {
	e.deleteSelection()
	b, ok := navigation.ViewPosToBufferByte(e.layout, e.cur)
	if !ok {
		return
	}
	before := e.buf.Root()
	e.history.Record(e.buf.Snapshot())
	if err := e.buf.Insert(b, text); err != nil {
		e.status = err.Error()
		return
	}
	e.applyEdit(before, b+len(text))
}

// Backspace deletes the selection, or the byte before the cursor.
func (e *Editor) Backspace() {
	if e.sel != nil {
		e.deleteSelection()
		e.dirty.MarkAll()
		e.relayout()
		return
	}
	b, ok := navigation.ViewPosToBufferByte(e.layout, e.cur)
	if !ok || b == 0 {
		return
	}
	before := e.buf.Root()
	e.history.Record(e.buf.Snapshot())
	if err := e.buf.Delete(b-1, b); err != nil {
		e.status = err.Error()
		return
	}
	e.applyEdit(before, b-1)
}

// deleteSelection removes the selected byte range, if any, and leaves
// the cursor at its start.
func (e *Editor) deleteSelection() {
	if e.sel == nil {
		return
	}
	r, ok := navigation.ViewRangeToBufferRange(e.layout, e.sel.Start, e.sel.End)
	e.sel = nil
	if !ok || r.IsEmpty() {
		return
	}
	before := e.buf.Root()
	e.history.Record(e.buf.Snapshot())
	if err := e.buf.Delete(r.Start, r.End); err != nil {
		e.status = err.Error()
		return
	}
	e.applyEdit(before, r.Start)
}

// Undo rewinds the last edit.
func (e *Editor) Undo() {
	before := e.buf.Root()
	if _, err := e.history.Undo(e.buf); err != nil {
		e.status = "Nothing to undo"
		return
	}
	e.restoreAfterHistory(before)
}

// Redo reverses the last undo.
func (e *Editor) Redo() {
	before := e.buf.Root()
	if _, err := e.history.Redo(e.buf); err != nil {
		e.status = "Nothing to redo"
		return
	}
	e.restoreAfterHistory(before)
}

// restoreAfterHistory re-resolves the cursor and dirty state after the
// buffer root was swapped by undo or redo.
func (e *Editor) restoreAfterHistory(before *piecetree.Node) {
	b, ok := e.cur.SourceByte.Resolve()
	if !ok {
		b = 0
	}
	if max := e.buf.Len(); b > max {
		b = max
	}
	e.sel = nil
	e.applyEdit(before, b)
}

// moveCursor applies a movement and updates selection state: when
// extend is true the selection grows from its anchor, otherwise any
// selection is dropped.
func (e *Editor) moveCursor(to cursor.ViewPosition, extend bool) {
	if extend {
		if e.sel == nil {
			e.sel = &cursor.Selection{Start: e.cur, End: to}
		} else {
			e.sel.End = to
		}
		e.dirty.MarkAll()
	} else if e.sel != nil {
		e.sel = nil
		e.dirty.MarkAll()
	}
	e.cur = to
	e.ensureCursorVisible()
}

// MoveVertical moves the cursor up or down, keeping the sticky column.
func (e *Editor) MoveVertical(direction int, extend bool) {
	if !e.preferredCol.IsResolved() {
		e.preferredCol = e.cur.Column
	}
	e.moveCursor(navigation.MoveVertical(e.layout, e.cur, e.preferredCol, direction), extend)
}

// MoveHorizontal moves the cursor left or right, crossing lines.
func (e *Editor) MoveHorizontal(direction int, extend bool) {
	e.preferredCol = cursor.Unresolved()
	e.moveCursor(navigation.MoveHorizontal(e.layout, e.cur, direction), extend)
}

// MoveLineStart moves the cursor to the start of its view line.
func (e *Editor) MoveLineStart(extend bool) {
	e.preferredCol = cursor.Unresolved()
	e.moveCursor(navigation.MoveLineStart(e.layout, e.cur), extend)
}

// MoveLineEnd moves the cursor past the end of its view line.
func (e *Editor) MoveLineEnd(extend bool) {
	e.preferredCol = cursor.Unresolved()
	e.moveCursor(navigation.MoveLineEnd(e.layout, e.cur), extend)
}

// MovePage moves the cursor by one page.
func (e *Editor) MovePage(direction int, extend bool) {
	if !e.preferredCol.IsResolved() {
		e.preferredCol = e.cur.Column
	}
	e.moveCursor(navigation.MovePage(e.layout, e.cur, e.vp, direction), extend)
}

// MoveWord moves the cursor by one word.
func (e *Editor) MoveWord(direction int, extend bool) {
	e.preferredCol = cursor.Unresolved()
	var to cursor.ViewPosition
	if direction > 0 {
		to = navigation.MoveWordRight(e.layout, e.cur, e.buf)
	} else {
		to = navigation.MoveWordLeft(e.layout, e.cur, e.buf)
	}
	e.moveCursor(to, extend)
}

// GotoLine jumps to the 1-based line named by input and reports the
// outcome on the status line.
func (e *Editor) GotoLine(input string) {
	pos, msg := navigation.GotoLine(e.layout, e.buf, e.cur, input, e.cfg.EstimatedLineLength)
	e.status = msg
	e.preferredCol = cursor.Unresolved()

	// The target may sit outside the current layout window; re-anchor
	// the viewport at the target byte and rebuild.
	if b, ok := pos.SourceByte.Resolve(); ok {
		if _, _, inside := e.layout.SourceByteToViewPosition(b); !inside {
			e.log.Debug("goto target byte %d outside layout window, re-anchoring", b)
			e.vp.AnchorByte = b
			e.cur = cursor.AtSourceByte(b)
			e.relayout()
			e.dirty.MarkAll()
			return
		}
	}
	e.moveCursor(pos, false)
}

// ensureCursorVisible scrolls the viewport so the cursor stays inside
// the visible lines, honoring the configured scroll margin.
func (e *Editor) ensureCursorVisible() {
	line, ok := e.cur.ViewLine.Resolve()
	if !ok {
		return
	}
	margin := e.cfg.ScrollMargin
	visible := e.vp.VisibleLineCount()
	if 2*margin >= visible {
		margin = 0
	}

	top := e.vp.TopViewLine
	if line < top+margin {
		navigation.ScrollView(e.layout, &e.vp, line-margin-top)
	} else if line > top+visible-1-margin {
		navigation.ScrollView(e.layout, &e.vp, line-(top+visible-1-margin))
	}
}

// Scroll scrolls the view without moving the cursor.
func (e *Editor) Scroll(lineOffset int) {
	navigation.ScrollView(e.layout, &e.vp, lineOffset)
	e.dirty.MarkAll()
}

// Dirty reports whether any view lines await redraw.
func (e *Editor) Dirty() *dirty.Tracker { return e.dirty }
