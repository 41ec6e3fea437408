package perft_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thomas-daniels/chess-huffman-go/chess"
	"github.com/thomas-daniels/chess-huffman-go/internal/perft"
)

// TestCountMatchesKnownNodeCounts pins perft.Count against the standard
// chess-programming reference values for the initial position.
func TestCountMatchesKnownNodeCounts(t *testing.T) {
	p, err := chess.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	require.NoError(t, err)

	want := []int{1, 20, 400, 8902}
	for depth, w := range want {
		require.Equal(t, w, perft.Count(p, depth), "depth %d", depth)
	}
}
