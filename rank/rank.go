// Package rank implements the deterministic move ranker: a packed
// integer score function that totally orders every legal move at a
// position, so that a move can be replaced by its index in that order
// and recovered from it.
package rank

import (
	"sort"

	"github.com/thomas-daniels/chess-huffman-go/chess"
	"github.com/thomas-daniels/chess-huffman-go/psqt"
)

// Score packs a move's ranking priority into a single comparable int32:
//
//	bits 26-30: promotion role index - 1 (0 if no promotion)
//	bit 25:     capture flag
//	bits 22-24: pawn defense term (6, or 6 - role index if defended)
//	bits 12-21: 512 + move_value (piece-square delta), biased positive
//	bits 6-11:  destination square
//	bits 0-5:   origin square
type Score int32

func roleIndex(r chess.Role) int {
	return int(r) // chess.Role already numbers Pawn=1..King=6.
}

func pieceValue(role chess.Role, sq chess.Square, color chess.Color) int {
	return psqt.Value(role, sq, color)
}

func moveValue(mover chess.Color, m chess.Move) int {
	return pieceValue(m.Role, m.To, mover) - pieceValue(m.Role, m.From, mover)
}

// scoreMove computes the packed score for a single move at pos.
func scoreMove(pos chess.Position, m chess.Move) Score {
	promotion := 0
	if m.IsPromotion() {
		promotion = roleIndex(m.Promotion) - 1
	}

	capture := 0
	if m.Capture {
		capture = 1
	}

	pawnDefense := 6
	if pos.PawnDefends(m.To) {
		pawnDefense = 6 - roleIndex(m.Role)
	}

	mv := 512 + moveValue(pos.ActiveColor, m)
	to := int(m.To)
	from := int(m.From)

	return Score(promotion<<26 | capture<<25 | pawnDefense<<22 | mv<<12 | to<<6 | from)
}

// ordered returns pos's legal moves paired with their scores, sorted
// descending by score (the move book's rank 0 is the highest score).
func ordered(pos chess.Position) ([]chess.Move, []Score) {
	moves := chess.LegalMoves(pos)
	scores := make([]Score, len(moves))
	for i, m := range moves {
		scores[i] = scoreMove(pos, m)
	}

	idx := make([]int, len(moves))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})

	sortedMoves := make([]chess.Move, len(moves))
	sortedScores := make([]Score, len(moves))
	for i, j := range idx {
		sortedMoves[i] = moves[j]
		sortedScores[i] = scores[j]
	}
	return sortedMoves, sortedScores
}

// RankOf returns the 0-based rank of m among pos's legal moves (the
// count of legal moves with strictly higher score) and whether m is
// itself legal in pos.
func RankOf(pos chess.Position, m chess.Move) (int, bool) {
	legal := chess.LegalMoves(pos)
	found := false
	for _, lm := range legal {
		if movesEqual(lm, m) {
			found = true
			break
		}
	}
	if !found {
		return 0, false
	}

	score := scoreMove(pos, m)
	rank := 0
	for _, lm := range legal {
		if movesEqual(lm, m) {
			continue
		}
		if scoreMove(pos, lm) > score {
			rank++
		}
	}
	return rank, true
}

// MoveAt returns the legal move at pos whose rank equals n, the inverse
// of RankOf. It reports false if pos has n or fewer legal moves.
func MoveAt(pos chess.Position, n int) (chess.Move, bool) {
	moves, _ := ordered(pos)
	if n < 0 || n >= len(moves) {
		return chess.Move{}, false
	}
	return moves[n], true
}

// NumLegalMoves reports how many legal moves pos has, the valid rank
// bound for MoveAt and RankOf.
func NumLegalMoves(pos chess.Position) int {
	return len(chess.LegalMoves(pos))
}

func movesEqual(a, b chess.Move) bool {
	return a.From == b.From && a.To == b.To && a.Promotion == b.Promotion
}
