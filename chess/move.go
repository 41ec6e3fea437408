package chess

// MoveKind distinguishes the special-move handling a packed move needs
// during MakeMove.
type MoveKind int

const (
	MoveNormal MoveKind = iota
	MoveCastling
	MovePromotion
	MoveEnPassant
)

// packedMove is a compact move encoding: 16 bits holding the to/from
// squares, an optional promotion role, and the move kind. It is the
// representation move generation works with internally; LegalMoves
// expands it into the public Move struct below.
type packedMove uint16

func newPackedMove(to, from Square, kind MoveKind) packedMove {
	return packedMove(int(to) | int(from)<<6 | int(kind)<<14)
}

func newPromotionMove(to, from Square, promo Role) packedMove {
	// promo is encoded 0=Knight .. 3=Queen, matching promoCode below.
	return packedMove(int(to) | int(from)<<6 | promoCode(promo)<<12 | int(MovePromotion)<<14)
}

func (m packedMove) To() Square     { return Square(m & 0x3F) }
func (m packedMove) From() Square   { return Square(m>>6) & 0x3F }
func (m packedMove) promo() int     { return int(m>>12) & 0x3 }
func (m packedMove) Kind() MoveKind { return MoveKind(m>>14) & 0x3 }

// promoCode/promoRole convert between the 2-bit packed promotion code
// and Role.
func promoCode(r Role) int {
	switch r {
	case Bishop:
		return 1
	case Rook:
		return 2
	case Queen:
		return 3
	default:
		return 0 // Knight
	}
}

func promoRole(code int) Role {
	switch code {
	case 1:
		return Bishop
	case 2:
		return Rook
	case 3:
		return Queen
	default:
		return Knight
	}
}

// CastlingSide identifies which rook a castling move brings home.
type CastlingSide int

const (
	NoCastle CastlingSide = iota
	KingSide
	QueenSide
)

// Move is the public, fully-resolved representation of a legal move:
// the one the move ranker consumes directly, without a further position
// lookup for moved/captured role.
type Move struct {
	From, To  Square
	Role      Role // role of the piece making the move
	Promotion Role // NoRole unless this is a promotion
	Capture   bool
	Captured  Role // NoRole unless Capture is true
	EnPassant bool
	Castle    CastlingSide
}

// IsPromotion reports whether m promotes a pawn.
func (m Move) IsPromotion() bool { return m.Promotion != NoRole }

// String renders the move as a bare from-to-promotion token, e.g. "e2e4"
// or "e7e8q", the UCI-like form used for diagnostics and logging.
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.IsPromotion() {
		switch m.Promotion {
		case Knight:
			s += "n"
		case Bishop:
			s += "b"
		case Rook:
			s += "r"
		case Queen:
			s += "q"
		}
	}
	return s
}
