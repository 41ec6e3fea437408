// pgn.go implements the PGN movetext encoder: mainline SAN tokens
// only, variations and comments skipped, tags ignored.
package encode

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/thomas-daniels/chess-huffman-go/chess"
)

// ErrSAN is returned when a SAN token in the movetext cannot be played
// against the current position, either because it is malformed or
// because the move it names is illegal or ambiguous there.
var ErrSAN = errors.New("encode: SAN token is not playable in the current position")

var (
	sanToken     = regexp.MustCompile(`^([NBRQK]?[a-h]?[1-8]?x?[a-h][1-8](=[NBRQ])?)$|^(O-O(-O)?)$`)
	annotationEx = regexp.MustCompile(`[+#!?]+$`)
	moveNumberEx = regexp.MustCompile(`^\d+\.+$`)
	resultTokens = map[string]bool{"1-0": true, "0-1": true, "1/2-1/2": true, "*": true}
)

// EncodePGN encodes the mainline moves of a single PGN game (tag pairs
// ignored, variations and comments skipped) into the compact container
// format. A SAN token that cannot be resolved surfaces as ErrSAN; a
// resolved move the encoder rejects surfaces as ErrInvalidMove. Both
// carry the offending token.
func EncodePGN(pgn string) ([]byte, error) {
	tokens := tokenizeMainline(pgn)

	e := NewMoveByMoveEncoder()
	for _, tok := range tokens {
		m, err := chess.ParseSAN(tok, e.Position())
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrSAN, tok, err)
		}
		if err := e.AddMove(m); err != nil {
			return nil, fmt.Errorf("encode: %q: %w", tok, err)
		}
	}
	return e.Bytes(), nil
}

// GameResult pairs one game's encoded container bytes with the error
// that aborted it, if any.
type GameResult struct {
	Data []byte
	Err  error
}

// EncodeAllPGN splits a PGN stream into its games and encodes each
// mainline independently, in order. Errors are isolated per game: a
// game that fails to encode contributes its error and the remaining
// games still encode normally.
func EncodeAllPGN(pgn string) []GameResult {
	var results []GameResult
	for _, game := range splitGames(pgn) {
		data, err := EncodePGN(game)
		results = append(results, GameResult{Data: data, Err: err})
	}
	return results
}

// splitGames cuts a PGN stream at game boundaries: a tag section opening
// after movetext has been seen, or a game-terminating result token.
func splitGames(pgn string) []string {
	var games []string
	var cur strings.Builder
	sawMovetext := false

	flush := func() {
		if strings.TrimSpace(cur.String()) != "" {
			games = append(games, cur.String())
		}
		cur.Reset()
		sawMovetext = false
	}

	for _, line := range strings.Split(pgn, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && sawMovetext {
			flush()
		}
		cur.WriteString(line)
		cur.WriteByte('\n')
		if trimmed != "" && !strings.HasPrefix(trimmed, "[") {
			sawMovetext = true
			fields := strings.Fields(trimmed)
			if resultTokens[fields[len(fields)-1]] {
				flush()
			}
		}
	}
	flush()

	return games
}

// tokenizeMainline strips PGN tag pairs, comments, and variations, then
// returns the sequence of SAN tokens remaining in the mainline movetext.
func tokenizeMainline(pgn string) []string {
	var movetext strings.Builder

	for _, line := range strings.Split(pgn, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			continue
		}
		movetext.WriteString(line)
		movetext.WriteByte('\n')
	}

	mainline := stripVariationsAndComments(movetext.String())

	var tokens []string
	for _, field := range strings.Fields(mainline) {
		field = annotationEx.ReplaceAllString(field, "")
		if field == "" || moveNumberEx.MatchString(field) || resultTokens[field] {
			continue
		}
		if sanToken.MatchString(field) {
			tokens = append(tokens, field)
		}
	}
	return tokens
}

// stripVariationsAndComments removes every "(...)" variation and
// "{...}" comment, parens-balanced and nestable.
func stripVariationsAndComments(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	parenDepth, braceDepth := 0, 0
	for _, r := range s {
		switch r {
		case '(':
			parenDepth++
			continue
		case ')':
			if parenDepth > 0 {
				parenDepth--
			}
			continue
		case '{':
			braceDepth++
			continue
		case '}':
			if braceDepth > 0 {
				braceDepth--
			}
			continue
		}
		if parenDepth == 0 && braceDepth == 0 {
			out.WriteRune(r)
		}
	}
	return out.String()
}
