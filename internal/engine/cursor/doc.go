// Package cursor provides view-coordinate cursor positions and
// selections.
//
// A ViewPosition carries up to three independently-resolved fields: a
// view line, a column within that line, and a source byte in the
// document. Any subset may be unresolved; a freshly created cursor may
// know only its source byte before a layout exists, and a cursor in a
// synthetic buffer may have view coordinates with no source mapping.
// Navigation code tolerates and propagates partial resolution instead
// of failing.
package cursor
