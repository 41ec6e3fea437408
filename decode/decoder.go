// Package decode implements the decoder side: turning compact
// container bytes back into the sequence of moves and positions they
// encode.
package decode

import (
	"errors"
	"fmt"

	"github.com/thomas-daniels/chess-huffman-go/bitcontainer"
	"github.com/thomas-daniels/chess-huffman-go/chess"
	"github.com/thomas-daniels/chess-huffman-go/huffman"
	"github.com/thomas-daniels/chess-huffman-go/rank"
)

// ErrCorrupt is the single opaque decode error: the bitstream did not
// resolve to a legal sequence of move ranks, with no attempt to
// classify why (truncated input, a code word with no matching rank, or
// a rank beyond the position's legal move count all surface the same
// way).
var ErrCorrupt = errors.New("decode: container does not decode to a legal game")

// Decoder pulls one move at a time out of a compact container,
// replaying it against a running position.
type Decoder struct {
	book *huffman.Book
	it   *bitcontainer.BitIter
	pos  chess.Position
}

// NewDecoder returns a decoder over data, starting at the standard
// initial position.
func NewDecoder(data []byte) (*Decoder, error) {
	c, err := bitcontainer.FromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &Decoder{
		book: huffman.Default(),
		it:   c.Iter(),
		pos:  startPosition(),
	}, nil
}

func startPosition() chess.Position {
	p, err := chess.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic(fmt.Sprintf("decode: malformed built-in initial FEN: %v", err))
	}
	return p
}

// Next decodes the next move in the stream and advances the running
// position. It returns (Move{}, Position{}, false, nil) once the
// container is exhausted cleanly (no partial trailing code word), and a
// non-nil error wrapping ErrCorrupt if the bits don't decode to a legal
// move.
func (d *Decoder) Next() (chess.Move, chess.Position, bool, error) {
	if d.it.Remaining() == 0 {
		return chess.Move{}, chess.Position{}, false, nil
	}

	r, state := d.book.Decode(d.it)
	switch state {
	case huffman.StateIncomplete:
		// Next only calls Decode when Remaining() > 0 (checked above), so
		// reaching Incomplete here means the tree walk consumed at least
		// one bit before running out: a trailing partial code word, not a
		// clean end of stream.
		return chess.Move{}, chess.Position{}, false, ErrCorrupt
	case huffman.StateInvalid:
		return chess.Move{}, chess.Position{}, false, ErrCorrupt
	}

	m, ok := rank.MoveAt(d.pos, r)
	if !ok {
		return chess.Move{}, chess.Position{}, false, ErrCorrupt
	}

	d.pos.MakeMove(m)
	return m, d.pos, true, nil
}

// DecodeGame decodes every move in data, returning the move list and
// the parallel list of positions, where positions[i] is the position
// after moves[i] has been played. It wraps ErrCorrupt if the bitstream
// does not decode cleanly.
func DecodeGame(data []byte) ([]chess.Move, []chess.Position, error) {
	d, err := NewDecoder(data)
	if err != nil {
		return nil, nil, err
	}

	moves := []chess.Move{}
	positions := []chess.Position{}
	for {
		m, p, ok, err := d.Next()
		if err != nil {
			return nil, nil, err
		}
		if !ok {
			break
		}
		moves = append(moves, m)
		positions = append(positions, p)
	}
	return moves, positions, nil
}
