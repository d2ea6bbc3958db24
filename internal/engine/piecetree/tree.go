package piecetree

// Scanner counts line feeds within a span of a backing buffer. Edits
// use it to keep counts known across piece splits. A scanner may return
// an unknown count to defer the work (large-content mode); a nil
// scanner leaves all split pieces unknown.
type Scanner interface {
	CountLineFeeds(loc Location, offset, bytes int) Count
}

// FromPieces builds a balanced tree over the given pieces in order.
// Empty pieces are dropped. Returns nil for an empty document.
func FromPieces(pieces []Piece) *Node {
	nonEmpty := make([]Piece, 0, len(pieces))
	for _, p := range pieces {
		if !p.IsEmpty() {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return buildBalanced(nonEmpty)
}

func buildBalanced(pieces []Piece) *Node {
	switch len(pieces) {
	case 0:
		return nil
	case 1:
		return NewLeaf(pieces[0])
	}
	mid := len(pieces) / 2
	return newInternal(buildBalanced(pieces[:mid]), buildBalanced(pieces[mid:]))
}

// Join concatenates two subtrees. Either side may be nil or empty.
func Join(left, right *Node) *Node {
	if left == nil || left.Bytes() == 0 {
		return right
	}
	if right == nil || right.Bytes() == 0 {
		return left
	}
	return newInternal(left, right)
}

// Split divides the tree at the given byte offset, returning the
// subtrees covering [0, offset) and [offset, end). Only nodes along the
// path to the offset are rebuilt; untouched subtrees are shared with
// the input. Either result may be nil.
func Split(n *Node, offset int, sc Scanner) (*Node, *Node) {
	if n == nil {
		return nil, nil
	}
	if offset <= 0 {
		return nil, n
	}
	if offset >= n.Bytes() {
		return n, nil
	}

	if n.IsLeaf() {
		leftPiece, rightPiece := splitPiece(n.piece, offset, sc)
		return NewLeaf(leftPiece), NewLeaf(rightPiece)
	}

	switch {
	case offset < n.leftBytes:
		ll, lr := Split(n.left, offset, sc)
		return ll, Join(lr, n.right)
	case offset == n.leftBytes:
		return n.left, n.right
	default:
		rl, rr := Split(n.right, offset-n.leftBytes, sc)
		return Join(n.left, rl), rr
	}
}

// splitPiece cuts a piece in two at the given relative offset.
// Line-feed counts survive a split only when they can be recomputed:
// a known zero splits into two known zeros, otherwise the scanner is
// consulted for each half.
func splitPiece(p Piece, at int, sc Scanner) (Piece, Piece) {
	left := Piece{Location: p.Location, Offset: p.Offset, Bytes: at}
	right := Piece{Location: p.Location, Offset: p.Offset + at, Bytes: p.Bytes - at}

	if n, known := p.LineFeeds.Value(); known && n == 0 {
		left.LineFeeds = KnownCount(0)
		right.LineFeeds = KnownCount(0)
		return left, right
	}

	if sc == nil {
		left.LineFeeds = UnknownCount()
		right.LineFeeds = UnknownCount()
		return left, right
	}

	left.LineFeeds = sc.CountLineFeeds(p.Location, left.Offset, left.Bytes)
	if total, known := p.LineFeeds.Value(); known {
		if ln, leftKnown := left.LineFeeds.Value(); leftKnown {
			right.LineFeeds = KnownCount(total - ln)
			return left, right
		}
	}
	right.LineFeeds = sc.CountLineFeeds(p.Location, right.Offset, right.Bytes)
	return left, right
}

// Insert returns a new root with the piece spliced in at the byte
// offset. The input root is unchanged and remains valid.
func Insert(root *Node, offset int, p Piece, sc Scanner) *Node {
	if p.IsEmpty() {
		return root
	}
	left, right := Split(root, offset, sc)
	return Join(Join(left, NewLeaf(p)), right)
}

// Delete returns a new root with the byte range [start, end) removed.
// The input root is unchanged and remains valid.
func Delete(root *Node, start, end int, sc Scanner) *Node {
	size := root.Bytes()
	if start < 0 {
		start = 0
	}
	if end > size {
		end = size
	}
	if start >= end {
		return root
	}
	left, _ := Split(root, start, sc)
	_, right := Split(root, end, sc)
	return Join(left, right)
}
