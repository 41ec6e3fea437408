// Package perft implements the standard move-generator correctness
// check: count the leaf nodes reached by playing every legal move to a
// fixed depth and compare against known-good node counts.
//
// See https://www.chessprogramming.org/Perft_Results
package perft

import "github.com/thomas-daniels/chess-huffman-go/chess"

// Count walks the legal-move tree rooted at pos to depth and returns the
// number of leaf positions reached.
func Count(pos chess.Position, depth int) int {
	if depth == 0 {
		return 1
	}

	moves := chess.LegalMoves(pos)
	if depth == 1 {
		return len(moves)
	}

	nodes := 0
	for _, m := range moves {
		next := pos
		next.MakeMove(m)
		nodes += Count(next, depth-1)
	}
	return nodes
}
