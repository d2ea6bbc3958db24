// Package navigation provides the pure cursor-movement and position-
// mapping functions over a view layout.
//
// All movement operates in view coordinates: vertical motion moves
// between wrapped rows, not buffer lines. Every function is total: a
// cursor without resolved view coordinates is returned unchanged, and
// unresolvable lookups degrade to safe defaults rather than failing,
// because navigation must never panic during interactive use.
package navigation
