package piecetree

// Node is a node in the persistent piece tree. A node is either a leaf
// holding a single piece, or an internal node with two children plus
// aggregate metrics for its left subtree. Nodes are never mutated once
// published through a root; sharing between roots is by pointer.
type Node struct {
	// Internal node fields (nil children on leaves).
	left      *Node
	right     *Node
	leftBytes int   // byte count of the left subtree
	lfLeft    Count // line-feed count of the left subtree

	// Leaf field.
	piece Piece
}

// NewLeaf creates a leaf node holding the given piece.
func NewLeaf(p Piece) *Node {
	return &Node{piece: p}
}

// newInternal creates an internal node over two non-nil children.
func newInternal(left, right *Node) *Node {
	return &Node{
		left:      left,
		right:     right,
		leftBytes: left.Bytes(),
		lfLeft:    left.LineFeeds(),
	}
}

// IsLeaf reports whether this node is a leaf.
func (n *Node) IsLeaf() bool {
	return n.left == nil
}

// Piece returns the piece held by a leaf node.
// The result is meaningless for internal nodes.
func (n *Node) Piece() Piece {
	return n.piece
}

// Bytes returns the byte length of the subtree. A nil node is empty.
func (n *Node) Bytes() int {
	if n == nil {
		return 0
	}
	if n.IsLeaf() {
		return n.piece.Bytes
	}
	return n.leftBytes + n.right.Bytes()
}

// LineFeeds returns the line-feed count of the subtree, which is
// unknown if any leaf in it has an unknown count.
func (n *Node) LineFeeds() Count {
	if n == nil {
		return KnownCount(0)
	}
	if n.IsLeaf() {
		return n.piece.LineFeeds
	}
	return n.lfLeft.Add(n.right.LineFeeds())
}

// Leaves returns the pieces of the subtree in reading order.
func (n *Node) Leaves() []Piece {
	if n == nil {
		return nil
	}
	out := make([]Piece, 0, 8)
	return n.appendLeaves(out)
}

func (n *Node) appendLeaves(out []Piece) []Piece {
	if n.IsLeaf() {
		return append(out, n.piece)
	}
	out = n.left.appendLeaves(out)
	return n.right.appendLeaves(out)
}

// Walk calls fn for each leaf piece in reading order, stopping early if
// fn returns false. The start byte of each piece within the document is
// passed alongside it.
func (n *Node) Walk(fn func(startByte int, p Piece) bool) {
	if n == nil {
		return
	}
	n.walk(0, fn)
}

func (n *Node) walk(base int, fn func(int, Piece) bool) bool {
	if n.IsLeaf() {
		return fn(base, n.piece)
	}
	if !n.left.walk(base, fn) {
		return false
	}
	return n.right.walk(base+n.leftBytes, fn)
}
