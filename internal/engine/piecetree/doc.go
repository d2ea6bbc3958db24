// Package piecetree provides a persistent binary tree that represents
// document content as an ordered sequence of pieces, each referencing a
// span of an immutable backing buffer.
//
// All modification is copy-on-write at the node level: an edit produces
// a new root while reusing untouched subtrees, so old roots remain valid
// and readable for as long as something holds them. Two roots can be
// compared without locks via Diff, which reports the minimal changed
// byte and line span in the "after" tree.
//
// Basic usage:
//
//	root := piecetree.FromPieces(pieces)
//	root2 := piecetree.Insert(root, 5, piece, scanner)
//	d := piecetree.Diff(root, root2)
//
// Line-feed counts are tracked per leaf but may be unknown when content
// has not been scanned (very large files). Unknown counts propagate
// through sums rather than being treated as zero.
package piecetree
