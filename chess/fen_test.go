package chess_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thomas-daniels/chess-huffman-go/chess"
)

func TestFENRoundTrip(t *testing.T) {
	tests := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
		"4k3/8/8/8/8/8/8/4K2R w K - 0 1",
		"8/8/8/8/8/8/8/R3K2R b KQ - 3 20",
	}

	for _, fen := range tests {
		p, err := chess.ParseFEN(fen)
		require.NoError(t, err, fen)
		require.Equal(t, fen, p.String(), "round trip for %q", fen)
	}
}

func TestParseFENRejectsMalformed(t *testing.T) {
	tests := []string{
		"",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0", // missing field
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1",
		"not-a-fen",
	}
	for _, fen := range tests {
		_, err := chess.ParseFEN(fen)
		require.Error(t, err, fen)
	}
}

func TestParseFENPieceCounts(t *testing.T) {
	p, err := chess.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	count := 0
	for sq := chess.Square(0); sq < 64; sq++ {
		if _, _, ok := p.PieceAt(sq); ok {
			count++
		}
	}
	require.Equal(t, 32, count)

	role, color, ok := p.PieceAt(mustSquare(t, "e1"))
	require.True(t, ok)
	require.Equal(t, chess.King, role)
	require.Equal(t, chess.White, color)
}
