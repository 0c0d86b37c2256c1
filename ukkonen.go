// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package suffixarr

// SuffixTree is a batch-built Ukkonen suffix tree over a sentinel-
// terminated byte text: every suffix, including the empty one at the
// sentinel, is represented by a distinct leaf.
type SuffixTree struct {
	b *builder
}

// NewTree builds a SuffixTree over word, appending a 0x00 terminator
// unless word already ends with one.
func NewTree(word []byte) *SuffixTree {
	w := ensureSentinel(word)
	b := newBuilder()
	for _, c := range w {
		b.addChar(c)
	}
	return &SuffixTree{b: b}
}

// Find reports the smallest text position at which pattern begins, or
// false if it does not occur.
func (t *SuffixTree) Find(pattern []byte) (int, bool) {
	return t.b.find(pattern)
}

// Root returns the tree's root node.
func (t *SuffixTree) Root() NodeIdx {
	return rootIdx
}

// TryTo walks one edge from n labeled by c, if one exists.
func (t *SuffixTree) TryTo(n NodeIdx, c byte) (NodeIdx, bool) {
	return t.b.child(n, c)
}

// NodeAt returns a read-only view of node n's parent and edge label.
func (t *SuffixTree) NodeAt(n NodeIdx) Node {
	return t.b.nodeView(n)
}

// Children returns n's children's first-edge bytes in ascending
// (lexicographic) order.
func (t *SuffixTree) Children(n NodeIdx) []byte {
	return t.b.childKeys(n)
}

// Link returns n's suffix-link target. The root's link is itself; a
// node with no suffix link (a leaf, or an internal node of a tree built
// by TreeFrom) also reports the root.
func (t *SuffixTree) Link(n NodeIdx) NodeIdx {
	return t.b.link(n)
}

// Word returns the sentinel-terminated text this tree indexes.
func (t *SuffixTree) Word() []byte {
	return t.b.text
}

// OnlineSuffixTree is the incremental counterpart to SuffixTree, for
// callers streaming bytes in without knowing in advance where the text
// ends. Leaves stay open (their edge grows implicitly) until Finish.
type OnlineSuffixTree struct {
	b    *builder
	done bool
}

// NewOnline starts an empty online suffix tree.
func NewOnline() *OnlineSuffixTree {
	return &OnlineSuffixTree{b: newBuilder()}
}

// Add extends the tree by chunk, one byte at a time. chunk may be of
// any length, including a single byte; splitting the same overall
// text into different chunk boundaries yields an identical tree (spec
// §8 "online equals batch... splitting the adds into arbitrary chunks
// yields the same tree"). Add must not be called after Finish.
func (o *OnlineSuffixTree) Add(chunk []byte) {
	if o.done {
		panic("suffixarr: Add called on a finished OnlineSuffixTree")
	}
	for _, c := range chunk {
		o.b.addChar(c)
	}
}

// Find reports the smallest text position at which pattern begins
// among the bytes added so far, or false if it does not occur.
func (o *OnlineSuffixTree) Find(pattern []byte) (int, bool) {
	return o.b.find(pattern)
}

// Finish appends the 0x00 terminator (unless the last byte added
// already was one) and resolves every remaining implicit suffix into
// an explicit leaf. The returned SuffixTree shares state with o; o
// must not be used again except through the returned tree.
func (o *OnlineSuffixTree) Finish() *SuffixTree {
	if !o.done {
		if len(o.b.text) == 0 || o.b.text[len(o.b.text)-1] != 0 {
			o.b.addChar(0)
		}
		o.done = true
	}
	return &SuffixTree{b: o.b}
}
