// Package dirty tracks which view lines need re-layout or redraw,
// coalescing adjacent spans. It is the consumer of piece tree diffs:
// a diff's line range marks the lines to rebuild, and an unknown line
// range falls back to full invalidation.
package dirty

// Region is an inclusive span of view lines needing redraw.
type Region struct {
	StartLine int
	EndLine   int
}

// NewRegion creates a region covering the given lines, swapping them
// if reversed.
func NewRegion(startLine, endLine int) Region {
	if endLine < startLine {
		startLine, endLine = endLine, startLine
	}
	return Region{StartLine: startLine, EndLine: endLine}
}

// SingleLine creates a region covering one line.
func SingleLine(line int) Region {
	return Region{StartLine: line, EndLine: line}
}

// LineCount returns the number of lines covered.
func (r Region) LineCount() int {
	if r.StartLine > r.EndLine {
		return 0
	}
	return r.EndLine - r.StartLine + 1
}

// ContainsLine reports whether the region covers the given line.
func (r Region) ContainsLine(line int) bool {
	return line >= r.StartLine && line <= r.EndLine
}

// Overlaps reports whether two regions share any line.
func (r Region) Overlaps(other Region) bool {
	return r.StartLine <= other.EndLine && other.StartLine <= r.EndLine
}

// Adjacent reports whether two regions touch without overlapping.
func (r Region) Adjacent(other Region) bool {
	return r.EndLine+1 == other.StartLine || other.EndLine+1 == r.StartLine
}

// Merge returns the smallest region covering both.
func (r Region) Merge(other Region) Region {
	merged := r
	if other.StartLine < merged.StartLine {
		merged.StartLine = other.StartLine
	}
	if other.EndLine > merged.EndLine {
		merged.EndLine = other.EndLine
	}
	return merged
}
