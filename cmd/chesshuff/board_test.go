package main

import (
	"strings"
	"testing"

	"github.com/thomas-daniels/chess-huffman-go/chess"
)

func TestFormatPositionInitial(t *testing.T) {
	p, err := chess.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	out := formatPosition(p)
	if !strings.Contains(out, "Active color: white") {
		t.Errorf("expected active color white, got:\n%s", out)
	}
	if !strings.Contains(out, "Castling rights: KQkq") {
		t.Errorf("expected full castling rights, got:\n%s", out)
	}
	if !strings.Contains(out, "En passant: none") {
		t.Errorf("expected no en passant target, got:\n%s", out)
	}
	if !strings.Contains(out, "♔") || !strings.Contains(out, "♚") {
		t.Errorf("expected both kings rendered, got:\n%s", out)
	}
}

func TestFormatPositionEnPassantTarget(t *testing.T) {
	p, err := chess.ParseFEN("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	if err != nil {
		t.Fatalf("ParseFEN: %v", err)
	}

	out := formatPosition(p)
	if !strings.Contains(out, "En passant: d6") {
		t.Errorf("expected en passant target d6, got:\n%s", out)
	}
}
