package dirty

import (
	"github.com/dshills/squall/internal/engine/piecetree"
)

// maxRegions bounds how many regions are tracked before collapsing to
// a full invalidation.
const maxRegions = 16

// Tracker accumulates dirty view-line regions between renders and
// coalesces overlapping or adjacent spans.
type Tracker struct {
	regions []Region
	full    bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// MarkLines marks an inclusive view-line span dirty.
func (t *Tracker) MarkLines(startLine, endLine int) {
	if t.full {
		return
	}
	t.add(NewRegion(startLine, endLine))
}

// MarkAll marks everything dirty.
func (t *Tracker) MarkAll() {
	t.full = true
	t.regions = t.regions[:0]
}

// MarkDiff marks the lines a piece tree diff reports as changed. When
// the diff's line range is unknown, any line may have changed and the
// whole view is invalidated so uncertainty is never under-reported.
func (t *Tracker) MarkDiff(d piecetree.DiffResult) {
	if d.Equal {
		return
	}
	if !d.LinesKnown {
		t.MarkAll()
		return
	}
	end := d.LineRange.End - 1
	if end < d.LineRange.Start {
		end = d.LineRange.Start
	}
	t.MarkLines(d.LineRange.Start, end)
}

// add inserts a region, merging it with everything it touches.
func (t *Tracker) add(r Region) {
	merged := r
	kept := t.regions[:0]
	for _, existing := range t.regions {
		if merged.Overlaps(existing) || merged.Adjacent(existing) {
			merged = merged.Merge(existing)
		} else {
			kept = append(kept, existing)
		}
	}
	t.regions = append(kept, merged)

	if len(t.regions) > maxRegions {
		t.MarkAll()
	}
}

// IsFull reports whether everything is dirty.
func (t *Tracker) IsFull() bool {
	return t.full
}

// IsDirty reports whether anything needs redrawing.
func (t *Tracker) IsDirty() bool {
	return t.full || len(t.regions) > 0
}

// LineDirty reports whether a specific view line needs redrawing.
func (t *Tracker) LineDirty(line int) bool {
	if t.full {
		return true
	}
	for _, r := range t.regions {
		if r.ContainsLine(line) {
			return true
		}
	}
	return false
}

// Regions returns the current dirty regions. The slice is owned by the
// tracker and valid until the next mark or clear.
func (t *Tracker) Regions() []Region {
	return t.regions
}

// Clear resets the tracker after a render.
func (t *Tracker) Clear() {
	t.full = false
	t.regions = t.regions[:0]
}
