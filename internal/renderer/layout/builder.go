package layout

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Options configures layout construction.
type Options struct {
	// Width is the viewport width in cells. Zero disables wrapping.
	Width int

	// GutterWidth is subtracted from Width to get the wrap width.
	GutterWidth int

	// TabWidth is the tab stop distance. Values below 1 become 4.
	TabWidth int
}

// wrapWidth returns the usable cell width per row, or 0 for no wrap.
func (o Options) wrapWidth() int {
	if o.Width <= 0 {
		return 0
	}
	w := o.Width - o.GutterWidth
	if w < 1 {
		w = 1
	}
	return w
}

func (o Options) tabWidth() int {
	if o.TabWidth < 1 {
		return 4
	}
	return o.TabWidth
}

// Build projects a document byte range into view lines. The text is
// the materialized content of the range and baseByte its starting
// offset, so every character slot maps back to an absolute source
// byte. Grapheme clusters are kept whole: a wide cluster occupies its
// display width in slots, with continuation slots carrying no source
// byte of their own.
func Build(text string, baseByte int, opts Options) *Layout {
	b := builder{
		wrap:  opts.wrapWidth(),
		tabs:  opts.tabWidth(),
		start: StartHard,
	}

	src := baseByte
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var boundaries int
		cluster, rest, boundaries, state = uniseg.StepString(rest, state)

		if cluster == "\n" || cluster == "\r\n" {
			b.endHardLine(src)
			src += len(cluster)
			continue
		}

		if cluster == "\t" {
			b.placeTab(src)
			src += 1
			continue
		}

		width := boundaries >> uniseg.ShiftWidth
		if width == 0 {
			// Zero-width cluster: no visual slot, but the bytes are
			// consumed so later slots map correctly.
			src += len(cluster)
			continue
		}

		b.placeCluster(cluster, width, src)
		src += len(cluster)
	}
	b.flush()

	return New(b.lines, Range{Start: baseByte, End: baseByte + len(text)})
}

// builder accumulates view lines, handling wrapping and tab expansion.
type builder struct {
	wrap  int
	tabs  int
	lines []ViewLine

	text     strings.Builder
	mappings []int
	col      int
	start    LineStart
}

// placeCluster adds one grapheme cluster occupying width cells.
func (b *builder) placeCluster(cluster string, width, src int) {
	b.wrapIfNeeded(width)
	b.text.WriteString(cluster)
	b.mappings = append(b.mappings, src)
	for i := 1; i < width; i++ {
		b.mappings = append(b.mappings, NoSource)
	}
	b.col += width
}

// placeTab expands a tab to the next tab stop. Only the first slot
// carries the tab's source byte.
func (b *builder) placeTab(src int) {
	stop := b.tabs - (b.col % b.tabs)
	b.wrapIfNeeded(stop)
	for i := 0; i < stop; i++ {
		b.text.WriteByte(' ')
		if i == 0 {
			b.mappings = append(b.mappings, src)
		} else {
			b.mappings = append(b.mappings, NoSource)
		}
	}
	b.col += stop
}

// wrapIfNeeded starts a wrap-continuation row when the next cells
// would not fit.
func (b *builder) wrapIfNeeded(width int) {
	if b.wrap <= 0 || b.col == 0 || b.col+width <= b.wrap {
		return
	}
	b.emit(false)
	b.start = StartWrap
}

// endHardLine closes the current row with a newline slot.
func (b *builder) endHardLine(newlineByte int) {
	b.text.WriteByte('\n')
	b.mappings = append(b.mappings, newlineByte)
	b.emit(true)
	b.start = StartHard
}

// emit appends the accumulated row.
func (b *builder) emit(endsWithNewline bool) {
	b.lines = append(b.lines, ViewLine{
		Text:            b.text.String(),
		CharMappings:    b.mappings,
		Start:           b.start,
		EndsWithNewline: endsWithNewline,
	})
	b.text.Reset()
	b.mappings = nil
	b.col = 0
}

// flush emits the trailing row. A document ending in a newline still
// gets a final empty row, so the cursor can sit on it.
func (b *builder) flush() {
	b.emit(false)
}
