// Package encode implements the move-by-move, whole-game, and
// PGN-driven encoders: each move is replaced by the Huffman code of its
// rank among the legal moves at the current position.
package encode

import (
	"errors"
	"fmt"

	"github.com/thomas-daniels/chess-huffman-go/bitcontainer"
	"github.com/thomas-daniels/chess-huffman-go/chess"
	"github.com/thomas-daniels/chess-huffman-go/huffman"
	"github.com/thomas-daniels/chess-huffman-go/rank"
)

// ErrInvalidMove is returned when a move added to an encoder is not
// legal in the encoder's current position.
var ErrInvalidMove = errors.New("encode: move is not legal in the current position")

// MoveByMoveEncoder tracks a game position move by move, writing the
// Huffman code for each move's rank into an internal bit container.
type MoveByMoveEncoder struct {
	book   *huffman.Book
	pos    chess.Position
	buffer *bitcontainer.Container
}

// NewMoveByMoveEncoder returns an encoder starting at the standard
// initial position.
func NewMoveByMoveEncoder() *MoveByMoveEncoder {
	return &MoveByMoveEncoder{
		book:   huffman.Default(),
		pos:    startPosition(),
		buffer: bitcontainer.New(),
	}
}

func startPosition() chess.Position {
	p, err := chess.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic(fmt.Sprintf("encode: malformed built-in initial FEN: %v", err))
	}
	return p
}

// AddMove ranks m against the encoder's current position, encodes its
// rank, and advances the position. It returns ErrInvalidMove if m is not
// legal in the current position.
func (e *MoveByMoveEncoder) AddMove(m chess.Move) error {
	r, ok := rank.RankOf(e.pos, m)
	if !ok {
		return ErrInvalidMove
	}
	if err := e.book.Encode(r, e.buffer); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	e.pos.MakeMove(m)
	return nil
}

// Clear resets the encoder back to the initial position with an empty
// buffer.
func (e *MoveByMoveEncoder) Clear() {
	e.pos = startPosition()
	e.buffer = bitcontainer.New()
}

// Bytes returns the compact container bytes encoded so far.
func (e *MoveByMoveEncoder) Bytes() []byte {
	return e.buffer.ToBytes()
}

// Position returns the encoder's current position, after every move
// added so far.
func (e *MoveByMoveEncoder) Position() chess.Position {
	return e.pos
}

// EncodeGame encodes a whole game from the initial position and returns
// the compact container bytes. It returns ErrInvalidMove (wrapped with
// the offending move index) on the first illegal move.
func EncodeGame(moves []chess.Move) ([]byte, error) {
	e := NewMoveByMoveEncoder()
	for i, m := range moves {
		if err := e.AddMove(m); err != nil {
			return nil, fmt.Errorf("encode: move %d (%s): %w", i, m, err)
		}
	}
	return e.Bytes(), nil
}
