package piecetree

// Range is a half-open interval with an exclusive end.
type Range struct {
	Start int
	End   int
}

// Len returns the length of the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// IsEmpty reports whether the range covers nothing.
func (r Range) IsEmpty() bool {
	return r.End <= r.Start
}

// DiffResult summarizes the difference between two piece tree roots.
// Ranges are measured in the "after" tree's coordinates.
type DiffResult struct {
	// Equal is true when the two roots hold identical piece sequences.
	Equal bool

	// ByteRange is the changed byte span. Empty when Equal.
	ByteRange Range

	// LineRange is the changed line span, valid only when LinesKnown.
	LineRange Range

	// LinesKnown is false when line-feed counts could not be fully
	// determined for the affected region. Callers must then assume any
	// line may have changed.
	LinesKnown bool
}

// Diff computes the minimal changed span between two piece tree roots.
//
// It relies on piece sharing: a piece that appears in both versions at
// the same relative order, referencing the same backing span, is
// unchanged. Equality is by backing-buffer identity, so coincidentally
// identical edits are not detected as no-ops. Everything in the after
// tree strictly outside ByteRange is byte-for-byte identical to the
// corresponding region of the before tree.
func Diff(before, after *Node) DiffResult {
	beforeLeaves := before.Leaves()
	afterLeaves := after.Leaves()

	// Fast path: identical leaf sequences.
	if leafSlicesEqual(beforeLeaves, afterLeaves) {
		return DiffResult{Equal: true, LinesKnown: true}
	}

	// Longest common prefix.
	prefix := 0
	for prefix < len(beforeLeaves) && prefix < len(afterLeaves) &&
		beforeLeaves[prefix].SameSpan(afterLeaves[prefix]) {
		prefix++
	}

	// Longest common suffix, bounded so it never overlaps the prefix.
	suffix := 0
	for suffix+prefix < len(beforeLeaves) && suffix+prefix < len(afterLeaves) &&
		beforeLeaves[len(beforeLeaves)-1-suffix].SameSpan(afterLeaves[len(afterLeaves)-1-suffix]) {
		suffix++
	}

	changed := afterLeaves[prefix : len(afterLeaves)-suffix]

	startByte := sumBytes(afterLeaves[:prefix])
	endByte := startByte + sumBytes(changed)

	d := DiffResult{
		Equal:     false,
		ByteRange: Range{Start: startByte, End: endByte},
	}

	linesBefore, known := sumLineFeeds(afterLeaves[:prefix]).Value()
	if !known {
		return d
	}

	// A pure deletion leaves no bytes at the change site; still report a
	// single line so callers have an anchor to attach to.
	var linesInChanged int
	if len(changed) == 0 {
		linesInChanged = 1
	} else {
		feeds, feedsKnown := sumLineFeeds(changed).Value()
		if !feedsKnown {
			return d
		}
		linesInChanged = feeds + 1
	}

	d.LineRange = Range{Start: linesBefore, End: linesBefore + linesInChanged}
	d.LinesKnown = true
	return d
}

func leafSlicesEqual(a, b []Piece) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].SameSpan(b[i]) {
			return false
		}
	}
	return true
}

func sumBytes(pieces []Piece) int {
	total := 0
	for _, p := range pieces {
		total += p.Bytes
	}
	return total
}

func sumLineFeeds(pieces []Piece) Count {
	total := KnownCount(0)
	for _, p := range pieces {
		total = total.Add(p.LineFeeds)
		if !total.Known() {
			break
		}
	}
	return total
}
