package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

func TestParseFEN(t *testing.T) {
	e := New()
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *chess.Position) bool {
				return p.Board.Get(chess.E1) == chess.W(chess.King) &&
					p.Board.Get(chess.E8) == chess.B(chess.King) &&
					p.Board.Get(chess.E2) == chess.W(chess.Pawn) &&
					p.Board.Get(chess.E7) == chess.B(chess.Pawn) &&
					p.ToMove == chess.White &&
					p.Castling == chess.AllCastling &&
					p.Kings == [chess.NumColours]chess.Square{chess.E1, chess.E8}
			},
		},
		{
			name: "after 1.e4 with no capturing pawn",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.Board.Get(chess.E4) == chess.W(chess.Pawn) &&
					p.Board.Get(chess.E2) == chess.Empty &&
					p.ToMove == chess.Black &&
					!p.EnPassant
			},
		},
		{
			name: "capturable en passant square",
			fen:  "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			checkFn: func(p *chess.Position) bool {
				return p.EnPassant && p.EPSquare == chess.F6 && p.FullmoveNumber == 3
			},
		},
		{
			name: "castling rights without a rook are dropped",
			fen:  "r3k2r/8/8/8/8/8/8/R3K3 w KQkq - 0 1",
			checkFn: func(p *chess.Position) bool {
				return p.Castling == chess.WhiteQueenside|chess.BlackKingside|chess.BlackQueenside
			},
		},
		{
			name: "clocks optional",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - -",
			checkFn: func(p *chess.Position) bool {
				return p.HalfmoveClock == 0 && p.FullmoveNumber == 1 && p.Castling == chess.NoCastling
			},
		},
		{
			name: "clocks parsed",
			fen:  "4k3/8/8/8/8/8/8/4K3 b - - 37 80",
			checkFn: func(p *chess.Position) bool {
				return p.HalfmoveClock == 37 && p.FullmoveNumber == 80 && p.ToMove == chess.Black
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := e.ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q) error = %v", tt.fen, err)
			}
			if !tt.checkFn(&pos) {
				t.Errorf("ParseFEN(%q) position check failed: got %s", tt.fen, FEN(&pos))
			}
		})
	}
}

func TestParseFENErrors(t *testing.T) {
	e := New()
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"placement only", "4k3/8/8/8/8/8/8/4K3"},
		{"five fields", "4k3/8/8/8/8/8/8/4K3 w - - 0"},
		{"no kings", "8/8/8/8/8/8/8/8 w - - 0 1"},
		{"two white kings", "4k3/8/8/8/8/8/8/3KK3 w - - 0 1"},
		{"invalid piece", "4k3/8/8/8/8/8/8/3XK3 w - - 0 1"},
		{"seven ranks", "4k3/8/8/8/8/8/4K3 w - - 0 1"},
		{"rank overflow", "4k3/8/8/8/8/8/8/4K4 w - - 0 1"},
		{"rank too short", "4k3/8/8/8/8/8/8/4K2 w - - 0 1"},
		{"bad side to move", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling letter", "r3k2r/8/8/8/8/8/8/R3K2R w KX - 0 1"},
		{"repeated castling letter", "r3k2r/8/8/8/8/8/8/R3K2R w KK - 0 1"},
		{"en passant off rank", "4k3/8/8/8/4P3/8/8/4K3 b - e5 0 1"},
		{"en passant without pawn", "4k3/8/8/8/8/8/8/4K3 b - e3 0 1"},
		{"en passant bad square", "4k3/8/8/8/8/8/8/4K3 b - z9 0 1"},
		{"pawn on last rank", "P3k3/8/8/8/8/8/8/4K3 w - - 0 1"},
		{"pawn on first rank", "4k3/8/8/8/8/8/8/p3K3 w - - 0 1"},
		{"side not to move in check", "4k3/8/8/8/8/8/8/4R1K1 w - - 0 1"},
		{"bad halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1"},
		{"zero fullmove number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.ParseFEN(tt.fen)
			if err == nil {
				t.Fatalf("ParseFEN(%q) succeeded; want error", tt.fen)
			}
			if !stderrors.Is(err, errors.ErrInvalidFEN) {
				t.Errorf("ParseFEN(%q) error = %v; want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestFENRoundTrip(t *testing.T) {
	e := New()
	tests := []string{
		InitialFEN,
		KiwipeteFEN,
		"r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
		"rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
		"8/8/8/8/8/8/8/4K2k w - - 12 40",
		"r3k3/8/8/8/8/8/8/4K2R b Kq - 3 17",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			pos, err := e.ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN() error = %v", err)
			}
			if got := FEN(&pos); got != fen {
				t.Errorf("FEN() = %q; want %q", got, fen)
			}
		})
	}
}

func TestFENMatchesStartingPosition(t *testing.T) {
	start := chess.StartingPosition()
	if got := FEN(&start); got != InitialFEN {
		t.Errorf("FEN(StartingPosition()) = %q; want %q", got, InitialFEN)
	}
	parsed := New().MustParseFEN(InitialFEN)
	if parsed != start {
		t.Error("ParseFEN(InitialFEN) differs from StartingPosition()")
	}
}
