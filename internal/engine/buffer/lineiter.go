package buffer

// LineIterator walks line starts in a snapshot. It is built from an
// estimated byte offset: the iterator scans forward from the estimate
// to the next real line start, which is how line targeting works in
// large-file mode where exact line indexes are not maintained.
type LineIterator struct {
	snap Snapshot
	pos  int
}

// LineIterator returns an iterator positioned at the actual line start
// found by scanning forward from startByte. estimatedLineLength is the
// average line length the estimate was derived from; it is part of the
// line-targeting contract but does not affect the scan itself.
func (b *Buffer) LineIterator(startByte, estimatedLineLength int) *LineIterator {
	return b.Snapshot().LineIterator(startByte, estimatedLineLength)
}

// LineIterator returns an iterator over the snapshot; see
// Buffer.LineIterator.
func (s Snapshot) LineIterator(startByte, _ int) *LineIterator {
	size := s.Len()
	if startByte < 0 {
		startByte = 0
	}
	if startByte > size {
		startByte = size
	}

	it := &LineIterator{snap: s}
	if startByte == 0 {
		return it
	}

	// Scan forward from the estimate to the next newline; the line
	// found starts just past it. An estimate landing inside the final
	// unterminated line resolves to the end of the document.
	idx := s.IndexByteFrom(startByte, '\n')
	if idx < 0 {
		it.pos = size
	} else {
		it.pos = idx + 1
	}
	return it
}

// CurrentPosition returns the byte offset of the line start the
// iterator currently points at.
func (it *LineIterator) CurrentPosition() int {
	return it.pos
}

// Text returns the current line's content without its trailing newline.
func (it *LineIterator) Text() string {
	end := it.snap.IndexByteFrom(it.pos, '\n')
	if end < 0 {
		end = it.snap.Len()
	}
	return it.snap.TextRange(it.pos, end)
}

// Next advances to the next line start. It returns false when there is
// no further line.
func (it *LineIterator) Next() bool {
	idx := it.snap.IndexByteFrom(it.pos, '\n')
	if idx < 0 {
		return false
	}
	it.pos = idx + 1
	return true
}
