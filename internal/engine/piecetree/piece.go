package piecetree

// Source identifies the class of backing buffer a piece reads from.
type Source uint8

const (
	// Stored content was loaded from disk and never changes.
	Stored Source = iota

	// Added content accumulated from edits (append-only).
	Added
)

// String returns the string representation of the source class.
func (s Source) String() string {
	switch s {
	case Stored:
		return "stored"
	case Added:
		return "added"
	default:
		return "unknown"
	}
}

// Location identifies one immutable backing buffer.
// It is comparable; piece equality for diffing is by backing-buffer
// identity, not by decoded text content.
type Location struct {
	Source Source
	Buffer int
}

// StoredAt returns the location of the stored buffer with the given index.
func StoredAt(buffer int) Location {
	return Location{Source: Stored, Buffer: buffer}
}

// AddedAt returns the location of the added buffer with the given index.
func AddedAt(buffer int) Location {
	return Location{Source: Added, Buffer: buffer}
}

// Count is a line-feed count that may be unknown (unscanned content).
// The zero value is a known zero.
type Count struct {
	n       int
	unknown bool
}

// KnownCount returns a known count of n.
func KnownCount(n int) Count {
	return Count{n: n}
}

// UnknownCount returns an unknown count.
func UnknownCount() Count {
	return Count{unknown: true}
}

// Value returns the count and whether it is known.
func (c Count) Value() (int, bool) {
	if c.unknown {
		return 0, false
	}
	return c.n, true
}

// Known reports whether the count is known.
func (c Count) Known() bool {
	return !c.unknown
}

// Add returns the sum of two counts. Unknown propagates: adding
// anything to an unknown count is unknown.
func (c Count) Add(other Count) Count {
	if c.unknown || other.unknown {
		return UnknownCount()
	}
	return Count{n: c.n + other.n}
}

// Piece references a contiguous span of one immutable backing buffer.
type Piece struct {
	Location  Location
	Offset    int
	Bytes     int
	LineFeeds Count
}

// NewPiece creates a piece with a known line-feed count.
func NewPiece(loc Location, offset, bytes, lineFeeds int) Piece {
	return Piece{Location: loc, Offset: offset, Bytes: bytes, LineFeeds: KnownCount(lineFeeds)}
}

// NewUnscannedPiece creates a piece whose line-feed count is unknown.
func NewUnscannedPiece(loc Location, offset, bytes int) Piece {
	return Piece{Location: loc, Offset: offset, Bytes: bytes, LineFeeds: UnknownCount()}
}

// SameSpan reports whether two pieces reference the same backing span.
// This is the equality the differ uses: location, offset and length
// must all match. Two pieces with byte-identical rendered text but
// different provenance are not the same span.
func (p Piece) SameSpan(other Piece) bool {
	return p.Location == other.Location && p.Offset == other.Offset && p.Bytes == other.Bytes
}

// IsEmpty reports whether the piece covers no bytes.
func (p Piece) IsEmpty() bool {
	return p.Bytes == 0
}
