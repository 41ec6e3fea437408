// Package chess implements the legal-move generator, board representation,
// FEN, and SAN support this module treats as its rule-engine collaborator:
// position management, legal move generation, and notation conversions.
package chess

import "fmt"

// Color is the side to move or the side owning a piece.
type Color int

const (
	White Color = iota
	Black
)

// Opponent returns the other color.
func (c Color) Opponent() Color {
	return c ^ 1
}

func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// Role is a piece type without color. Indices match the rank-ordering score
// function's role_index: Pawn=1 .. King=6.
type Role int

const (
	NoRole Role = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (r Role) String() string {
	switch r {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// Square is a board square, 0 = a1 .. 63 = h8 (file varies fastest).
type Square int

const (
	NoSquare Square = -1
)

// NewSquare builds a square from 0-based file (a=0..h=7) and rank (1=0..8=7).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

func (s Square) File() int { return int(s) % 8 }
func (s Square) Rank() int { return int(s) / 8 }

// FlipVertical mirrors the square across the board's horizontal midline,
// i.e. rank r becomes rank (7-r). Used to view PSQT tables from Black's side.
func (s Square) FlipVertical() Square {
	return Square(int(s) ^ 56)
}

func (s Square) String() string {
	if s < 0 || s > 63 {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+byte(s.File()), '1'+byte(s.Rank()))
}

// ParseSquare parses a square such as "e4".
func ParseSquare(str string) (Square, error) {
	if len(str) != 2 {
		return NoSquare, fmt.Errorf("chess: invalid square %q", str)
	}
	file := str[0] - 'a'
	rank := str[1] - '1'
	if file > 7 || rank > 7 {
		return NoSquare, fmt.Errorf("chess: invalid square %q", str)
	}
	return NewSquare(int(file), int(rank)), nil
}

// Back-rank squares used by castling.
const (
	SA1, SB1, SC1, SD1, SE1, SF1, SG1, SH1 Square = 0, 1, 2, 3, 4, 5, 6, 7
	SA8, SB8, SC8, SD8, SE8, SF8, SG8, SH8 Square = 56, 57, 58, 59, 60, 61, 62, 63
)

// Square2String maps every board square to its algebraic string.
var Square2String = [64]string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// pieceIndex maps (Role, Color) to one of the 12 piece planes used
// internally by Position, interleaved by color: White pieces at even
// indices, Black at odd.
func pieceIndex(r Role, c Color) int {
	return int(r-Pawn)*2 + int(c)
}

// planeRole and planeColor invert pieceIndex.
func planeRole(i int) Role   { return Role(i/2) + Pawn }
func planeColor(i int) Color { return Color(i % 2) }

const (
	numPiecePlanes = 12 // 6 roles * 2 colors
	planeWhiteAll  = 12
	planeBlackAll  = 13
	planeOccupied  = 14
	numPlanes      = 15
)
