package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

func TestSAN(t *testing.T) {
	e := New()
	tests := []struct {
		name string
		fen  string
		move string
		want string
	}{
		{"pawn push", InitialFEN, "e2e4", "e4"},
		{"knight move", InitialFEN, "g1f3", "Nf3"},
		{"kingside castle", KiwipeteFEN, "e1g1", "O-O"},
		{"queenside castle", KiwipeteFEN, "e1c1", "O-O-O"},
		{"piece capture", KiwipeteFEN, "e5f7", "Nxf7"},
		{"pawn capture", KiwipeteFEN, "d5e6", "dxe6"},
		{"en passant", "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2", "e5d6", "exd6"},
		{"file disambiguation a", "2k5/8/8/8/8/8/4K3/R6R w - - 0 1", "a1d1", "Rad1"},
		{"file disambiguation h", "2k5/8/8/8/8/8/4K3/R6R w - - 0 1", "h1d1", "Rhd1"},
		{"rank disambiguation", "2k5/8/8/R7/8/8/4K3/R7 w - - 0 1", "a1a3", "R1a3"},
		{"square disambiguation", "1k6/8/8/8/4Q2Q/8/K7/7Q w - - 0 1", "h4e1", "Qh4e1"},
		{"file disambiguation of three", "1k6/8/8/8/4Q2Q/8/K7/7Q w - - 0 1", "e4e1", "Qee1"},
		{"default promotion", "8/P3k3/8/8/8/8/8/K7 w - - 0 1", "a7a8", "a8=Q"},
		{"underpromotion", "8/P3k3/8/8/8/8/8/K7 w - - 0 1", "a7a8n", "a8=N"},
		{"check", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "a1a8", "Ra8+"},
		{"checkmate", "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq - 0 2", "d8h4", "Qh4#"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, e, tt.fen)
			m, err := chess.ParseMove(tt.move)
			if err != nil {
				t.Fatalf("ParseMove(%q) error = %v", tt.move, err)
			}
			if !e.IsLegal(&pos, NormalizeMove(&pos, m)) {
				t.Fatalf("%s is not legal in %s", tt.move, tt.fen)
			}
			if got := e.SAN(&pos, m); got != tt.want {
				t.Errorf("SAN(%s) = %q; want %q", tt.move, got, tt.want)
			}
		})
	}
}
