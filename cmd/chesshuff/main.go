// chesshuff is a command-line front end for the compact move container:
// it encodes a PGN file's mainline down to the compressed bitstream, or
// decodes a compressed bitstream back out to a move list and final
// position.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/seekerror/build"
	"github.com/seekerror/logw"

	"github.com/thomas-daniels/chess-huffman-go/chess"
	"github.com/thomas-daniels/chess-huffman-go/decode"
	"github.com/thomas-daniels/chess-huffman-go/encode"
)

// version is the build stamp the -version flag reports.
var version = build.NewVersion(0, 1, 0)

var (
	in      = flag.String("in", "", "Input file (PGN for encode, container bytes for decode)")
	out     = flag.String("out", "", "Output file (default: stdout)")
	board   = flag.Bool("board", false, "Print the final board position (decode only)")
	showVer = flag.Bool("version", false, "Print the version and exit")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: chesshuff -in FILE [-out FILE] [-board] <encode|decode>

chesshuff converts between PGN movetext and the compact Huffman-coded
move container this module implements.

Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	if *showVer {
		fmt.Println(version)
		return
	}

	args := flag.Args()
	if len(args) != 1 || *in == "" {
		flag.Usage()
		logw.Exitf(ctx, "exactly one of encode or decode is required, along with -in")
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		logw.Exitf(ctx, "reading %s: %v", *in, err)
	}

	switch strings.ToLower(args[0]) {
	case "encode":
		runEncode(ctx, string(data))
	case "decode":
		runDecode(ctx, data)
	default:
		flag.Usage()
		logw.Exitf(ctx, "unknown subcommand %q", args[0])
	}
}

func runEncode(ctx context.Context, pgn string) {
	packed, err := encode.EncodePGN(pgn)
	if err != nil {
		logw.Exitf(ctx, "encode: %v", err)
	}

	logw.Infof(ctx, "encoded %d bytes from %s", len(packed), *in)
	writeOutput(ctx, packed)
}

func runDecode(ctx context.Context, data []byte) {
	moves, positions, err := decode.DecodeGame(data)
	if err != nil {
		logw.Exitf(ctx, "decode: %v", err)
	}

	pos := startPosition()
	if len(positions) > 0 {
		pos = positions[len(positions)-1]
	}

	logw.Infof(ctx, "decoded %d moves from %s", len(moves), *in)

	var sb strings.Builder
	replay := startPosition()
	for i, m := range moves {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if i%2 == 0 {
			fmt.Fprintf(&sb, "%d.", i/2+1)
		}
		legal := chess.LegalMoves(replay)
		sb.WriteString(chess.FormatSAN(m, replay, legal))
		replay.MakeMove(m)
		sb.WriteByte(' ')
	}
	sb.WriteString(result(pos))
	sb.WriteByte('\n')

	if *board {
		sb.WriteString("\n")
		sb.WriteString(formatPosition(pos))
	}

	writeOutput(ctx, []byte(sb.String()))
}

func startPosition() chess.Position {
	p, err := chess.ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic(err)
	}
	return p
}

// result reports the game outcome implied by the final position: "*"
// if the side to move still has legal moves, 1-0/0-1 on checkmate, and
// 1/2-1/2 on stalemate. Draws by repetition or the fifty-move rule are
// not modeled, so they never surface here.
func result(pos chess.Position) string {
	if len(chess.LegalMoves(pos)) > 0 {
		return "*"
	}
	if chess.IsInCheck(pos) {
		if pos.ActiveColor == chess.White {
			return "0-1"
		}
		return "1-0"
	}
	return "1/2-1/2"
}

func writeOutput(ctx context.Context, data []byte) {
	if *out == "" {
		os.Stdout.Write(data)
		if len(data) == 0 || data[len(data)-1] != '\n' {
			fmt.Println()
		}
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logw.Exitf(ctx, "writing %s: %v", *out, err)
	}
}
