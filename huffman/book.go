// Package huffman builds the fixed 256-symbol Huffman code book this
// module uses to compress move ranks. The code is constructed once per
// process from the frozen Weights table, so encoder and decoder always
// agree on it bit for bit.
package huffman

import (
	"fmt"

	"github.com/thomas-daniels/chess-huffman-go/bitcontainer"
)

// node is a Huffman tree node. Leaves carry the move rank they encode;
// internal nodes carry symbol -1.
type node struct {
	left, right *node
	symbol      int
	freq        uint64
}

func (n *node) isLeaf() bool { return n.left == nil && n.right == nil }

// Book is the fixed code book: one bitstring per move rank (0..255) and
// the tree needed to decode bitstrings back into ranks.
type Book struct {
	codes [256]string
	root  *node
}

// defaultBook is built once from Weights at package load.
var defaultBook = buildBook(Weights)

// Default returns the module-wide fixed code book.
func Default() *Book { return defaultBook }

// buildBook constructs the Huffman tree from weights and derives the
// code string for every symbol via pre-order traversal: repeatedly
// merge the two lowest-frequency nodes from a list kept in
// descending-frequency order, re-inserting the merged node with a
// stable descending insertion so construction is fully deterministic
// even when merged frequencies tie.
func buildBook(weights [256]uint64) *Book {
	// weights is already strictly decreasing, so the initial leaf list
	// is already correctly ordered descending by frequency.
	sorted := make([]*node, 256)
	for i, w := range weights {
		sorted[i] = &node{symbol: i, freq: w}
	}

	for len(sorted) > 1 {
		left := sorted[len(sorted)-1]
		sorted = sorted[:len(sorted)-1]
		right := sorted[len(sorted)-1]
		sorted = sorted[:len(sorted)-1]

		merged := &node{left: left, right: right, symbol: -1, freq: left.freq + right.freq}
		sorted = insertDescending(sorted, merged)
	}

	root := sorted[0]

	b := &Book{root: root}
	var codes [256]string
	traversePreOrder(root, &codes, "")
	b.codes = codes
	return b
}

// insertDescending inserts n into sorted (kept in descending-frequency
// order) just before the first existing element with strictly smaller
// frequency, so nodes of equal frequency keep insertion order.
func insertDescending(sorted []*node, n *node) []*node {
	for i, s := range sorted {
		if s.freq < n.freq {
			sorted = append(sorted, nil)
			copy(sorted[i+1:], sorted[i:])
			sorted[i] = n
			return sorted
		}
	}
	return append(sorted, n)
}

// traversePreOrder walks the tree assigning "1" to every left branch
// and "0" to every right branch.
func traversePreOrder(n *node, codes *[256]string, prefix string) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		codes[n.symbol] = prefix
		return
	}
	traversePreOrder(n.left, codes, prefix+"1")
	traversePreOrder(n.right, codes, prefix+"0")
}

// Encode appends the code word for rank to c.
func (b *Book) Encode(rank int, c *bitcontainer.Container) error {
	if rank < 0 || rank > 255 {
		return fmt.Errorf("huffman: rank %d out of range [0, 255]", rank)
	}
	for _, ch := range b.codes[rank] {
		bit := uint64(0)
		if ch == '1' {
			bit = 1
		}
		c.AppendBits(bit, 1)
	}
	return nil
}

// CodeLen returns the bit length of rank's code word.
func (b *Book) CodeLen(rank int) int { return len(b.codes[rank]) }

// DecodeState reports the outcome of a single Decode call: a value was
// read, the bitstream ended mid-code (a legitimately incomplete
// trailer), or the bits don't correspond to a valid path. The default
// book never reports StateInvalid: every internal node of its tree has
// both children, so every bit sequence leads somewhere.
type DecodeState int

const (
	StateValue DecodeState = iota
	StateIncomplete
	StateInvalid
)

// Decode reads one code word from it and returns the move rank it
// encodes.
func (b *Book) Decode(it *bitcontainer.BitIter) (int, DecodeState) {
	n := b.root
	for !n.isLeaf() {
		bit, ok := it.ReadBit()
		if !ok {
			return -1, StateIncomplete
		}
		if bit == 1 {
			n = n.left
		} else {
			n = n.right
		}
		if n == nil {
			return -1, StateInvalid
		}
	}
	return n.symbol, StateValue
}
