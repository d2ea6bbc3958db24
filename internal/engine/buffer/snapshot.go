package buffer

import (
	"bytes"
	"strings"

	"github.com/dshills/squall/internal/engine/piecetree"
)

// Snapshot is a read-only view of a buffer at a specific revision. It
// pairs a piece tree root with the backing buffers it references and
// will not change even if the original buffer is edited.
type Snapshot struct {
	root     *piecetree.Node
	revision RevisionID
	stored   []byte
	added    []byte
}

// Root returns the snapshot's piece tree root.
func (s Snapshot) Root() *piecetree.Node {
	return s.root
}

// Revision returns the revision this snapshot was taken at.
func (s Snapshot) Revision() RevisionID {
	return s.revision
}

// Len returns the total byte length of the snapshot.
func (s Snapshot) Len() int {
	return s.root.Bytes()
}

// LineCount returns the number of lines and true, or false when
// newline counts are unknown.
func (s Snapshot) LineCount() (int, bool) {
	feeds, known := s.root.LineFeeds().Value()
	if !known {
		return 0, false
	}
	return feeds + 1, true
}

func (s Snapshot) backing(loc piecetree.Location) []byte {
	if loc.Source == piecetree.Added {
		return s.added
	}
	return s.stored
}

// TextRange returns the content in [start, end), clamped to the
// snapshot's bounds.
func (s Snapshot) TextRange(start, end int) string {
	size := s.Len()
	if start < 0 {
		start = 0
	}
	if end > size {
		end = size
	}
	if start >= end {
		return ""
	}

	var sb strings.Builder
	sb.Grow(end - start)
	s.root.Walk(func(pieceStart int, p piecetree.Piece) bool {
		pieceEnd := pieceStart + p.Bytes
		if pieceEnd <= start {
			return true
		}
		if pieceStart >= end {
			return false
		}

		from := p.Offset
		if start > pieceStart {
			from += start - pieceStart
		}
		to := p.Offset + p.Bytes
		if end < pieceEnd {
			to -= pieceEnd - end
		}
		sb.Write(s.backing(p.Location)[from:to])
		return true
	})
	return sb.String()
}

// ByteAt returns the byte at the given offset.
func (s Snapshot) ByteAt(offset int) (byte, bool) {
	if offset < 0 || offset >= s.Len() {
		return 0, false
	}
	var out byte
	found := false
	s.root.Walk(func(pieceStart int, p piecetree.Piece) bool {
		if offset < pieceStart || offset >= pieceStart+p.Bytes {
			return true
		}
		out = s.backing(p.Location)[p.Offset+offset-pieceStart]
		found = true
		return false
	})
	return out, found
}

// IndexByteFrom returns the offset of the first occurrence of c at or
// after from, or -1 if there is none.
func (s Snapshot) IndexByteFrom(from int, c byte) int {
	if from < 0 {
		from = 0
	}
	result := -1
	s.root.Walk(func(pieceStart int, p piecetree.Piece) bool {
		pieceEnd := pieceStart + p.Bytes
		if pieceEnd <= from {
			return true
		}

		spanStart := p.Offset
		if from > pieceStart {
			spanStart += from - pieceStart
		}
		span := s.backing(p.Location)[spanStart : p.Offset+p.Bytes]
		if i := bytes.IndexByte(span, c); i >= 0 {
			result = pieceStart + (spanStart - p.Offset) + i
			return false
		}
		return true
	})
	return result
}

// LineColToPosition converts an exact line and column to a byte
// offset. The line is located by counting newlines from the start of
// the document; the column is clamped to the line's extent. Intended
// for exact mode; in large-file mode prefer LineIterator.
func (s Snapshot) LineColToPosition(line, col int) int {
	pos := 0
	for l := 0; l < line; l++ {
		idx := s.IndexByteFrom(pos, '\n')
		if idx < 0 {
			// Fewer lines than requested; stop at the last line start.
			break
		}
		pos = idx + 1
	}

	if col <= 0 {
		return pos
	}
	lineEnd := s.IndexByteFrom(pos, '\n')
	if lineEnd < 0 {
		lineEnd = s.Len()
	}
	if pos+col > lineEnd {
		return lineEnd
	}
	return pos + col
}
