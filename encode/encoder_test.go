package encode_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thomas-daniels/chess-huffman-go/chess"
	"github.com/thomas-daniels/chess-huffman-go/encode"
)

func move(t *testing.T, pos chess.Position, from, to string) chess.Move {
	t.Helper()
	f, err := chess.ParseSquare(from)
	require.NoError(t, err)
	tt, err := chess.ParseSquare(to)
	require.NoError(t, err)

	for _, m := range chess.LegalMoves(pos) {
		if m.From == f && m.To == tt {
			return m
		}
	}
	t.Fatalf("no legal move %s-%s in position", from, to)
	return chess.Move{}
}

func TestAddMoveAdvancesPositionAndBuffer(t *testing.T) {
	e := encode.NewMoveByMoveEncoder()
	// An empty container serializes to just the padding trailer byte.
	require.Equal(t, []byte{0}, e.Bytes())

	m := move(t, e.Position(), "e2", "e4")
	require.NoError(t, e.AddMove(m))
	require.Greater(t, len(e.Bytes()), 1)
	require.Equal(t, chess.Black, e.Position().ActiveColor)
}

// TestAddMoveRejectsIllegalMove: e2-e5 is not even pseudo-legal from
// the initial position (the pawn cannot jump over e3/e4 onto e5), so
// it must be rejected as ErrInvalidMove.
func TestAddMoveRejectsIllegalMove(t *testing.T) {
	e := encode.NewMoveByMoveEncoder()
	illegal := chess.Move{From: must(t, "e2"), To: must(t, "e5"), Role: chess.Pawn}

	err := e.AddMove(illegal)
	require.Error(t, err)
	require.True(t, errors.Is(err, encode.ErrInvalidMove))
}

func TestClearResetsEncoder(t *testing.T) {
	e := encode.NewMoveByMoveEncoder()
	m := move(t, e.Position(), "e2", "e4")
	require.NoError(t, e.AddMove(m))
	require.Greater(t, len(e.Bytes()), 1)

	e.Clear()
	require.Equal(t, []byte{0}, e.Bytes())
	require.Equal(t, chess.White, e.Position().ActiveColor)
}

func TestEncodeGameRejectsIllegalMoveAtIndex(t *testing.T) {
	p, err := chess.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	legalFirst := move(t, p, "e2", "e4")
	illegalSecond := chess.Move{From: must(t, "e2"), To: must(t, "e5"), Role: chess.Pawn}

	_, err = encode.EncodeGame([]chess.Move{legalFirst, illegalSecond})
	require.Error(t, err)
	require.True(t, errors.Is(err, encode.ErrInvalidMove))
}

func TestEncodeGameProducesNonEmptyBytes(t *testing.T) {
	p, err := chess.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	e4 := move(t, p, "e2", "e4")

	data, err := encode.EncodeGame([]chess.Move{e4})
	require.NoError(t, err)
	require.NotEmpty(t, data)
}

func must(t *testing.T, s string) chess.Square {
	t.Helper()
	sq, err := chess.ParseSquare(s)
	require.NoError(t, err)
	return sq
}
