// Package buffer provides the document buffer over a persistent piece
// tree with stored and added backing buffers.
//
// The stored buffer holds the original content and never changes; the
// added buffer accumulates edit text append-only. Every edit produces a
// new piece tree root while old roots remain valid, so snapshots can be
// diffed without locks.
//
// Exact line counts are only maintained while content stays below the
// large-file threshold; above it, newline counts are left unknown and
// line targeting falls back to estimated offsets plus a forward scan
// (large-file mode).
package buffer
