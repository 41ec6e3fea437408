package chess_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/thomas-daniels/chess-huffman-go/chess"
)

// TestFormatSANShortGame plays the moves d2d4, e7e5, d4xe5, Ke8e7,
// Qd1d2 and checks that FormatSAN produces "1. d4 e5 2. dxe5 Ke7 3.
// Qd2", the notation the PGN encoder round-trips against.
func TestFormatSANShortGame(t *testing.T) {
	p := initialPosition(t)

	moves := []struct{ from, to string }{
		{"d2", "d4"},
		{"e7", "e5"},
		{"d4", "e5"},
		{"e8", "e7"},
		{"d1", "d2"},
	}

	want := []string{"d4", "e5", "dxe5", "Ke7", "Qd2"}

	for i, mv := range moves {
		legal := chess.LegalMoves(p)
		m := findMove(t, legal, mustSquare(t, mv.from), mustSquare(t, mv.to))
		san := chess.FormatSAN(m, p, legal)
		require.Equal(t, want[i], san, "move %d", i)
		p.MakeMove(m)
	}
}

func findMove(t *testing.T, legal []chess.Move, from, to chess.Square) chess.Move {
	t.Helper()
	for _, m := range legal {
		if m.From == from && m.To == to {
			return m
		}
	}
	t.Fatalf("no legal move %s-%s", from, to)
	return chess.Move{}
}

func TestParseSANRoundTripsShortGame(t *testing.T) {
	p := initialPosition(t)
	tokens := []string{"d4", "e5", "dxe5", "Ke7", "Qd2"}

	for _, tok := range tokens {
		m, err := chess.ParseSAN(tok, p)
		require.NoError(t, err, tok)
		p.MakeMove(m)
	}
}

func TestParseSANDisambiguation(t *testing.T) {
	// Knights on b1 and d1 can both reach c3: one must be disambiguated.
	p, err := chess.ParseFEN("4k3/8/8/8/8/8/8/1N1N2K1 w - - 0 1")
	require.NoError(t, err)

	legal := chess.LegalMoves(p)
	var sawB1, sawD1 bool
	for _, m := range legal {
		if m.Role == chess.Knight && m.To == mustSquare(t, "c3") {
			san := chess.FormatSAN(m, p, legal)
			if m.From == mustSquare(t, "b1") {
				require.Equal(t, "Nbc3", san)
				sawB1 = true
			} else if m.From == mustSquare(t, "d1") {
				require.Equal(t, "Ndc3", san)
				sawD1 = true
			}
		}
	}
	require.True(t, sawB1)
	require.True(t, sawD1)

	m, err := chess.ParseSAN("Nbc3", p)
	require.NoError(t, err)
	require.Equal(t, mustSquare(t, "b1"), m.From)

	m, err = chess.ParseSAN("Ndc3", p)
	require.NoError(t, err)
	require.Equal(t, mustSquare(t, "d1"), m.From)
}

func TestParseSANRejectsIllegalMove(t *testing.T) {
	p := initialPosition(t)
	_, err := chess.ParseSAN("e5", p)
	require.Error(t, err)
}
