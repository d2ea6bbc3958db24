package buffer

import (
	"errors"
	"sync"
)

// Common errors for history operations.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// History manages undo/redo state for a buffer. Because edits share
// structure with prior trees, an entry is just a snapshot; restoring
// one swaps the buffer's root back without copying text. The added
// buffer only ever grows, so old snapshots stay valid across redo.
type History struct {
	mu sync.Mutex

	undoStack []Snapshot
	redoStack []Snapshot

	maxEntries int
}

// NewHistory creates a history manager. maxEntries bounds the undo
// depth; zero or negative selects the default.
func NewHistory(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = 1000
	}
	return &History{maxEntries: maxEntries}
}

// Record pushes the buffer state that an imminent edit will replace.
// It clears the redo stack.
func (h *History) Record(s Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.undoStack = append(h.undoStack, s)
	h.redoStack = nil

	if len(h.undoStack) > h.maxEntries {
		excess := len(h.undoStack) - h.maxEntries
		h.undoStack = h.undoStack[excess:]
	}
}

// CanUndo reports whether an undo entry exists.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.undoStack) > 0
}

// CanRedo reports whether a redo entry exists.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.redoStack) > 0
}

// Undo restores the most recently recorded state and returns the
// snapshot the buffer now reflects.
func (h *History) Undo(b *Buffer) (Snapshot, error) {
	h.mu.Lock()
	if len(h.undoStack) == 0 {
		h.mu.Unlock()
		return Snapshot{}, ErrNothingToUndo
	}
	entry := h.undoStack[len(h.undoStack)-1]
	h.undoStack = h.undoStack[:len(h.undoStack)-1]
	h.redoStack = append(h.redoStack, b.Snapshot())
	h.mu.Unlock()

	b.Restore(entry)
	return entry, nil
}

// Redo reverses the most recent undo.
func (h *History) Redo(b *Buffer) (Snapshot, error) {
	h.mu.Lock()
	if len(h.redoStack) == 0 {
		h.mu.Unlock()
		return Snapshot{}, ErrNothingToRedo
	}
	entry := h.redoStack[len(h.redoStack)-1]
	h.redoStack = h.redoStack[:len(h.redoStack)-1]
	h.undoStack = append(h.undoStack, b.Snapshot())
	h.mu.Unlock()

	b.Restore(entry)
	return entry, nil
}
