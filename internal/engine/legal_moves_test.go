package engine

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

// KiwipeteFEN is the standard move generator stress position.
const KiwipeteFEN = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"

// mustPosition parses fen or fails the test.
func mustPosition(t *testing.T, e *Engine, fen string) chess.Position {
	t.Helper()
	pos, err := e.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q) error = %v", fen, err)
	}
	return pos
}

// play applies UCI moves in sequence, failing on the first illegal one.
func play(t *testing.T, e *Engine, pos chess.Position, moves string) chess.Position {
	t.Helper()
	for _, m := range testutil.MustParseMoves(t, moves) {
		m = NormalizeMove(&pos, m)
		if !e.IsLegal(&pos, m) {
			t.Fatalf("%v is illegal in %s", m, FEN(&pos))
		}
		pos = e.Apply(pos, m)
	}
	return pos
}

func TestLegalMovesStartingPosition(t *testing.T) {
	e := New()
	pos := chess.StartingPosition()

	moves := e.LegalMoves(&pos)
	if len(moves) != 20 {
		t.Fatalf("len(LegalMoves) = %d; want 20", len(moves))
	}

	squares := e.LegalMoveSquares(&pos)
	if len(squares) != 10 {
		t.Errorf("len(LegalMoveSquares) = %d; want 10", len(squares))
	}
	testutil.AssertEqual(t, squares[chess.E2], []chess.Square{chess.E3, chess.E4}, "e2 destinations")
	testutil.AssertEqual(t, squares[chess.B1], []chess.Square{chess.A3, chess.C3}, "b1 destinations")
	testutil.AssertEqual(t, squares[chess.G1], []chess.Square{chess.F3, chess.H3}, "g1 destinations")
	if _, ok := squares[chess.E1]; ok {
		t.Error("king has no legal moves but appears in LegalMoveSquares")
	}
}

func TestLegalMovesScenarios(t *testing.T) {
	e := New()
	tests := []struct {
		name string
		fen  string
		want string // every legal move, any order
	}{
		{
			name: "pinned bishop cannot move",
			fen:  "4k3/4r3/8/8/8/8/4B3/4K3 w - - 0 1",
			want: "e1d1 e1d2 e1f1 e1f2",
		},
		{
			name: "double check allows only king moves",
			fen:  "4k3/8/8/8/8/5n2/8/r3K3 w - - 0 1",
			want: "e1e2 e1f2",
		},
		{
			name: "checkmate has no moves",
			fen:  "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			want: "",
		},
		{
			name: "stalemate has no moves",
			fen:  "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			want: "",
		},
		{
			name: "promotion generates all four pieces",
			fen:  "8/P3k3/8/8/8/8/8/K7 w - - 0 1",
			want: "a7a8q a7a8r a7a8b a7a8n a1a2 a1b1 a1b2",
		},
		{
			name: "en passant capture",
			fen:  "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 2",
			want: "e5e6 e5d6 e1d1 e1d2 e1e2 e1f1 e1f2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, e, tt.fen)
			testutil.AssertSameMoves(t, e.LegalMoves(&pos), testutil.MustParseMoves(t, tt.want))
		})
	}
}

func TestCastlingConditions(t *testing.T) {
	e := New()
	kingside := chess.NewMove(chess.E1, chess.G1)
	queenside := chess.NewMove(chess.E1, chess.C1)

	tests := []struct {
		name          string
		fen           string
		wantKingside  bool
		wantQueenside bool
	}{
		{"both available", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", true, true},
		{"no rights", "r3k2r/8/8/8/8/8/8/R3K2R w kq - 0 1", false, false},
		{"transit square attacked", "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", false, true},
		{"destination attacked", "r3k1r1/8/8/8/8/8/8/R3K2R w KQq - 0 1", false, true},
		{"rook path attacked is fine", "1r2k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, true},
		{"king in check", "4k3/4r3/8/8/8/8/8/R3K2R w KQ - 0 1", false, false},
		{"path blocked", "4k3/8/8/8/8/8/8/RN2K2R w KQ - 0 1", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, e, tt.fen)
			if got := e.IsLegal(&pos, kingside); got != tt.wantKingside {
				t.Errorf("kingside castling legal = %v; want %v", got, tt.wantKingside)
			}
			if got := e.IsLegal(&pos, queenside); got != tt.wantQueenside {
				t.Errorf("queenside castling legal = %v; want %v", got, tt.wantQueenside)
			}
		})
	}
}

func TestLegalMoveSquaresDeduplicatesPromotions(t *testing.T) {
	e := New()
	pos := mustPosition(t, e, "8/P3k3/8/8/8/8/8/K7 w - - 0 1")
	squares := e.LegalMoveSquares(&pos)
	testutil.AssertEqual(t, squares[chess.A7], []chess.Square{chess.A8})
}

func TestNormalizeMove(t *testing.T) {
	e := New()
	pos := mustPosition(t, e, "8/P3k3/8/8/8/8/8/K7 w - - 0 1")

	tests := []struct {
		name string
		in   chess.Move
		want chess.Move
	}{
		{"promotion defaults to queen", chess.NewMove(chess.A7, chess.A8), chess.Move{From: chess.A7, To: chess.A8, Promotion: chess.Queen}},
		{"explicit piece kept", chess.Move{From: chess.A7, To: chess.A8, Promotion: chess.Knight}, chess.Move{From: chess.A7, To: chess.A8, Promotion: chess.Knight}},
		{"king move untouched", chess.NewMove(chess.A1, chess.B1), chess.NewMove(chess.A1, chess.B1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeMove(&pos, tt.in); got != tt.want {
				t.Errorf("NormalizeMove(%v) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsLegalRejectsPromotionOnOrdinaryMove(t *testing.T) {
	e := New()
	pos := chess.StartingPosition()
	if e.IsLegal(&pos, chess.Move{From: chess.E2, To: chess.E4, Promotion: chess.Queen}) {
		t.Error("e2e4q accepted; want rejected")
	}
	if !e.IsLegal(&pos, chess.NewMove(chess.E2, chess.E4)) {
		t.Error("e2e4 rejected; want accepted")
	}
}

func TestCheckThreats(t *testing.T) {
	e := New()
	tests := []struct {
		name string
		fen  string
		want []chess.Square
	}{
		{"not in check", InitialFEN, []chess.Square{}},
		{"queen check", "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", []chess.Square{chess.H4}},
		{"double check ascending", "4k3/8/8/8/8/5n2/8/r3K3 w - - 0 1", []chess.Square{chess.A1, chess.F3}},
		{"pawn check", "4k3/8/8/8/8/8/3p4/4K3 w - - 0 1", []chess.Square{chess.D2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, e, tt.fen)
			testutil.AssertEqual(t, e.CheckThreats(&pos), tt.want)
			if got := e.InCheck(&pos, pos.ToMove); got != (len(tt.want) > 0) {
				t.Errorf("InCheck() = %v; want %v", got, len(tt.want) > 0)
			}
		})
	}
}

func TestIsSquareAttackedBlocking(t *testing.T) {
	e := New()
	pos := mustPosition(t, e, "4k3/8/8/8/8/8/4P3/4R1K1 w - - 0 1")
	if e.IsSquareAttacked(&pos, chess.E4, chess.White) {
		t.Error("e4 reported attacked through the e2 pawn")
	}
	if !e.IsSquareAttacked(&pos, chess.E2, chess.White) {
		t.Error("e2 defended by the rook not reported")
	}
	if !e.IsSquareAttacked(&pos, chess.D3, chess.White) || !e.IsSquareAttacked(&pos, chess.F3, chess.White) {
		t.Error("pawn attacks on d3/f3 not reported")
	}
}
