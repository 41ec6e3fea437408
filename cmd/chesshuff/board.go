// board.go renders a Position as a text grid of Unicode chess glyphs.
package main

import (
	"strings"

	"github.com/thomas-daniels/chess-huffman-go/chess"
)

// pieceSymbols indexes by (Role-1)*2+Color, matching chess.Role's
// Pawn..King ordering starting at 1.
var pieceSymbols = [12]rune{
	'♙', '♟', '♘', '♞', '♗', '♝', '♖', '♜', '♕', '♛', '♔', '♚',
}

func formatPosition(pos chess.Position) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte(rank) + 1 + '0')
		sb.WriteString("  ")

		for file := 0; file < 8; file++ {
			sq := chess.NewSquare(file, rank)

			symbol := '.'
			if role, color, ok := pos.PieceAt(sq); ok {
				symbol = pieceSymbols[(int(role)-1)*2+int(color)]
			}
			sb.WriteRune(symbol)
			sb.WriteString("  ")
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a  b  c  d  e  f  g  h\n")

	sb.WriteString("Active color: ")
	if pos.ActiveColor == chess.White {
		sb.WriteString("white")
	} else {
		sb.WriteString("black")
	}

	sb.WriteString("\nEn passant: ")
	if pos.EPTarget == chess.NoSquare {
		sb.WriteString("none")
	} else {
		sb.WriteString(pos.EPTarget.String())
	}

	sb.WriteString("\nCastling rights: ")
	if pos.CastlingRights&chess.CastlingWhiteKing != 0 {
		sb.WriteByte('K')
	}
	if pos.CastlingRights&chess.CastlingWhiteQueen != 0 {
		sb.WriteByte('Q')
	}
	if pos.CastlingRights&chess.CastlingBlackKing != 0 {
		sb.WriteByte('k')
	}
	if pos.CastlingRights&chess.CastlingBlackQueen != 0 {
		sb.WriteByte('q')
	}
	sb.WriteByte('\n')

	return sb.String()
}
