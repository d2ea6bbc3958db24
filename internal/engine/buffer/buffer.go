package buffer

import (
	"bytes"
	"errors"
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dshills/squall/internal/engine/piecetree"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// ID uniquely identifies a buffer for the lifetime of the process.
type ID string

// NewID generates a new buffer ID.
func NewID() ID {
	return ID(uuid.NewString())
}

// RevisionID identifies a buffer revision. Every edit produces a new
// revision.
type RevisionID uint64

var revisionCounter uint64

// NewRevisionID generates a new unique revision ID. Thread-safe.
func NewRevisionID() RevisionID {
	return RevisionID(atomic.AddUint64(&revisionCounter, 1))
}

// Buffer is a document backed by a persistent piece tree. All methods
// are thread-safe; edits swap in a new tree root while previously taken
// snapshots keep reading the old one.
type Buffer struct {
	mu       sync.RWMutex
	id       ID
	stored   []byte // original content, immutable
	added    []byte // edit content, append-only
	root     *piecetree.Node
	revision RevisionID

	// largeThreshold bounds how many bytes a single newline scan may
	// cover. Spans above it are recorded with unknown counts.
	largeThreshold int
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		id:             NewID(),
		revision:       NewRevisionID(),
		largeThreshold: DefaultLargeFileThreshold,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromBytes creates a buffer with the given stored content.
func NewFromBytes(content []byte, opts ...Option) *Buffer {
	b := New(opts...)
	b.stored = content
	if len(content) > 0 {
		p := piecetree.Piece{
			Location:  piecetree.StoredAt(0),
			Offset:    0,
			Bytes:     len(content),
			LineFeeds: b.CountLineFeeds(piecetree.StoredAt(0), 0, len(content)),
		}
		b.root = piecetree.FromPieces([]piecetree.Piece{p})
	}
	return b
}

// NewFromString creates a buffer with the given stored content.
func NewFromString(s string, opts ...Option) *Buffer {
	return NewFromBytes([]byte(s), opts...)
}

// NewFromReader creates a buffer by reading all content from r.
func NewFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromBytes(data, opts...), nil
}

// ID returns the buffer's identity.
func (b *Buffer) ID() ID {
	return b.id
}

// Revision returns the current revision ID.
func (b *Buffer) Revision() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// Root returns the current piece tree root. The root is immutable; it
// stays valid after further edits.
func (b *Buffer) Root() *piecetree.Node {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.root
}

// Len returns the total byte length of the document.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.root.Bytes()
}

// LineCount returns the number of lines and true, or false in
// large-file mode where exact counts are not tracked.
func (b *Buffer) LineCount() (int, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	feeds, known := b.root.LineFeeds().Value()
	if !known {
		return 0, false
	}
	return feeds + 1, true
}

// CountLineFeeds implements piecetree.Scanner. Spans larger than the
// large-file threshold are reported unknown instead of scanned.
func (b *Buffer) CountLineFeeds(loc piecetree.Location, offset, length int) piecetree.Count {
	if length > b.largeThreshold {
		return piecetree.UnknownCount()
	}
	backing := b.backing(loc)
	if offset < 0 || offset+length > len(backing) {
		return piecetree.UnknownCount()
	}
	return piecetree.KnownCount(bytes.Count(backing[offset:offset+length], []byte{'\n'}))
}

// backing returns the backing buffer for a location.
func (b *Buffer) backing(loc piecetree.Location) []byte {
	if loc.Source == piecetree.Added {
		return b.added
	}
	return b.stored
}

// Text returns the full document content.
func (b *Buffer) Text() string {
	s := b.Snapshot()
	return s.TextRange(0, s.Len())
}

// TextRange returns the document content in [start, end).
func (b *Buffer) TextRange(start, end int) string {
	return b.Snapshot().TextRange(start, end)
}

// ByteAt returns the byte at the given offset.
func (b *Buffer) ByteAt(offset int) (byte, bool) {
	return b.Snapshot().ByteAt(offset)
}

// Insert inserts text at the byte offset, producing a new revision.
func (b *Buffer) Insert(offset int, text string) error {
	if text == "" {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > b.root.Bytes() {
		return ErrOffsetOutOfRange
	}

	addedOffset := len(b.added)
	b.added = append(b.added, text...)

	p := piecetree.Piece{
		Location:  piecetree.AddedAt(0),
		Offset:    addedOffset,
		Bytes:     len(text),
		LineFeeds: b.CountLineFeeds(piecetree.AddedAt(0), addedOffset, len(text)),
	}
	b.root = piecetree.Insert(b.root, offset, p, b)
	b.revision = NewRevisionID()
	return nil
}

// Delete removes the byte range [start, end), producing a new revision.
func (b *Buffer) Delete(start, end int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	size := b.root.Bytes()
	if start < 0 || end > size {
		return ErrOffsetOutOfRange
	}
	if start > end {
		return ErrRangeInvalid
	}
	if start == end {
		return nil
	}

	b.root = piecetree.Delete(b.root, start, end, b)
	b.revision = NewRevisionID()
	return nil
}

// Restore rewinds the buffer to a snapshot previously taken from it.
// The added buffer is append-only, so the snapshot's tree remains
// valid; only the root is swapped.
func (b *Buffer) Restore(s Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.root = s.root
	b.revision = NewRevisionID()
}

// Snapshot returns a read-only view of the buffer at its current
// revision. The snapshot is unaffected by later edits and is safe to
// read concurrently with them.
func (b *Buffer) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Snapshot{
		root:     b.root,
		revision: b.revision,
		stored:   b.stored,
		added:    b.added,
	}
}
