package chess_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thomas-daniels/chess-huffman-go/chess"
)

func TestSquareRoundTrip(t *testing.T) {
	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			sq := chess.NewSquare(file, rank)
			require.Equal(t, file, sq.File())
			require.Equal(t, rank, sq.Rank())

			parsed, err := chess.ParseSquare(sq.String())
			require.NoError(t, err)
			require.Equal(t, sq, parsed)
		}
	}
}

func TestSquareFlipVertical(t *testing.T) {
	require.Equal(t, mustSquare(t, "a8"), mustSquare(t, "a1").FlipVertical())
	require.Equal(t, mustSquare(t, "e1"), mustSquare(t, "e8").FlipVertical())
	require.Equal(t, mustSquare(t, "h4"), mustSquare(t, "h5").FlipVertical())
}

func TestParseSquareRejectsOutOfRange(t *testing.T) {
	tests := []string{"", "i1", "a9", "a0", "aa"}
	for _, s := range tests {
		_, err := chess.ParseSquare(s)
		require.Error(t, err, s)
	}
}

func TestColorOpponent(t *testing.T) {
	require.Equal(t, chess.Black, chess.White.Opponent())
	require.Equal(t, chess.White, chess.Black.Opponent())
}

func TestRoleString(t *testing.T) {
	tests := map[chess.Role]string{
		chess.Pawn:   "P",
		chess.Knight: "N",
		chess.Bishop: "B",
		chess.Rook:   "R",
		chess.Queen:  "Q",
		chess.King:   "K",
	}
	for role, want := range tests {
		require.Equal(t, want, role.String())
	}
}
