// fen.go implements Forsyth-Edwards Notation parsing and serialization.

package chess

import (
	"fmt"
	"strconv"
	"strings"
)

// pieceSymbols maps each of the 12 piece planes to its FEN letter.
var pieceSymbols = [numPiecePlanes]byte{
	'P', 'p', 'N', 'n', 'B', 'b', 'R', 'r', 'Q', 'q', 'K', 'k',
}

// ParseFEN parses a FEN string into a Position.
func ParseFEN(fen string) (Position, error) {
	fields := strings.SplitN(fen, " ", 6)
	if len(fields) != 6 {
		return Position{}, fmt.Errorf("chess: malformed FEN %q: want 6 fields, got %d", fen, len(fields))
	}

	p := NewPosition()

	bitboards, err := parseBitboards(fields[0])
	if err != nil {
		return Position{}, fmt.Errorf("chess: malformed FEN %q: %w", fen, err)
	}
	p.Bitboards = bitboards

	if fields[1] == "b" {
		p.ActiveColor = Black
	}

	for i := 0; i < len(fields[2]); i++ {
		switch fields[2][i] {
		case 'K':
			p.CastlingRights |= CastlingWhiteKing
		case 'Q':
			p.CastlingRights |= CastlingWhiteQueen
		case 'k':
			p.CastlingRights |= CastlingBlackKing
		case 'q':
			p.CastlingRights |= CastlingBlackQueen
		}
	}

	if fields[3] == "-" {
		p.EPTarget = NoSquare
	} else {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return Position{}, fmt.Errorf("chess: malformed FEN %q: %w", fen, err)
		}
		p.EPTarget = sq
	}

	p.HalfmoveCnt, err = strconv.Atoi(fields[4])
	if err != nil {
		return Position{}, fmt.Errorf("chess: malformed FEN %q: halfmove clock: %w", fen, err)
	}
	p.FullmoveCnt, err = strconv.Atoi(fields[5])
	if err != nil {
		return Position{}, fmt.Errorf("chess: malformed FEN %q: fullmove number: %w", fen, err)
	}

	return p, nil
}

// String serializes p back into a FEN string.
func (p Position) String() string {
	var fen strings.Builder
	fen.Grow(64)

	fen.WriteString(serializeBitboards(p.Bitboards))

	if p.ActiveColor == White {
		fen.WriteString(" w ")
	} else {
		fen.WriteString(" b ")
	}

	cnt := 0
	if p.CastlingRights&CastlingWhiteKing != 0 {
		fen.WriteByte('K')
		cnt++
	}
	if p.CastlingRights&CastlingWhiteQueen != 0 {
		fen.WriteByte('Q')
		cnt++
	}
	if p.CastlingRights&CastlingBlackKing != 0 {
		fen.WriteByte('k')
		cnt++
	}
	if p.CastlingRights&CastlingBlackQueen != 0 {
		fen.WriteByte('q')
		cnt++
	}
	if cnt == 0 {
		fen.WriteByte('-')
	}
	fen.WriteByte(' ')

	if p.EPTarget == NoSquare {
		fen.WriteString("- ")
	} else {
		fen.WriteString(p.EPTarget.String())
		fen.WriteByte(' ')
	}

	fen.WriteString(strconv.Itoa(p.HalfmoveCnt))
	fen.WriteByte(' ')
	fen.WriteString(strconv.Itoa(p.FullmoveCnt))

	return fen.String()
}

// parseBitboards converts the piece-placement field of a FEN string into
// the 15-plane bitboard array.
func parseBitboards(piecePlacement string) ([numPlanes]uint64, error) {
	var bitboards [numPlanes]uint64
	square := 56

	for i := 0; i < len(piecePlacement); i++ {
		char := piecePlacement[i]

		switch {
		case char == '/':
			square -= 16
		case char >= '1' && char <= '8':
			square += int(char - '0')
		default:
			if square < 0 || square > 63 {
				return bitboards, fmt.Errorf("square index out of range while parsing piece placement")
			}
			role, color, ok := roleFromSymbol(char)
			if !ok {
				return bitboards, fmt.Errorf("unrecognized piece symbol %q", char)
			}
			bb := uint64(1) << square
			bitboards[pieceIndex(role, color)] |= bb
			bitboards[planeWhiteAll+int(color)] |= bb
			bitboards[planeOccupied] |= bb
			square++
		}
	}

	return bitboards, nil
}

func roleFromSymbol(char byte) (Role, Color, bool) {
	for i, sym := range pieceSymbols {
		if sym == char {
			return planeRole(i), planeColor(i), true
		}
	}
	return NoRole, White, false
}

// serializeBitboards converts the 15-plane bitboard array back into the
// piece-placement field of a FEN string.
func serializeBitboards(bitboards [numPlanes]uint64) string {
	var b strings.Builder
	b.Grow(20)

	var board [64]byte
	for i := 0; i < numPiecePlanes; i++ {
		bb := bitboards[i]
		for bb > 0 {
			square := popLSB(&bb)
			board[square] = pieceSymbols[i]
		}
	}

	empty := byte(0)
	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			square := 8*rank + file
			char := board[square]

			if char == 0 {
				empty++
			} else {
				if empty > 0 {
					b.WriteByte('0' + empty)
					empty = 0
				}
				b.WriteByte(char)
			}

			if (square+1)%8 == 0 {
				if empty > 0 {
					b.WriteByte('0' + empty)
					empty = 0
				}
				if square != 7 {
					b.WriteByte('/')
				}
			}
		}
	}

	return b.String()
}
