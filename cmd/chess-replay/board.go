package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/session"
)

// boardStyle holds the cell colours of a board diagram.
type boardStyle struct {
	light, dark  *color.Color
	lastMove     *color.Color
	check        *color.Color
	white, black *color.Color
}

func newBoardStyle(enabled bool) *boardStyle {
	s := &boardStyle{
		light:    color.New(color.BgHiWhite),
		dark:     color.New(color.BgGreen),
		lastMove: color.New(color.BgYellow),
		check:    color.New(color.BgRed),
		white:    color.New(color.FgHiWhite, color.Bold),
		black:    color.New(color.FgBlack, color.Bold),
	}
	if !enabled {
		for _, c := range []*color.Color{s.light, s.dark, s.lastMove, s.check, s.white, s.black} {
			c.DisableColor()
		}
	}
	return s
}

// renderBoard draws the session's board from its perspective. Ranks are
// labelled on the left and files underneath; empty squares show as '.'.
func renderBoard(s *session.Session, colour bool) string {
	style := newBoardStyle(colour)
	g := s.Game()
	pos := g.Position()

	highlight := map[chess.Square]*color.Color{}
	if m, ok := g.LatestMove(); ok {
		highlight[m.From] = style.lastMove
		highlight[m.To] = style.lastMove
	}
	if g.InCheck() {
		highlight[pos.KingSquare(pos.ToMove)] = style.check
	}

	ranks := []int{8, 7, 6, 5, 4, 3, 2, 1}
	files := []int{1, 2, 3, 4, 5, 6, 7, 8}
	if s.Perspective() == chess.Black {
		ranks, files = files, ranks
	}

	var sb strings.Builder
	for _, rank := range ranks {
		fmt.Fprintf(&sb, "%d ", rank)
		for _, file := range files {
			sq := chess.Square((rank-1)*chess.BoardSize + file - 1)
			sb.WriteString(style.cell(sq, pos.Board.Get(sq), highlight[sq]))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  ")
	for _, file := range files {
		fmt.Fprintf(&sb, " %c ", 'a'+file-1)
	}
	sb.WriteByte('\n')
	return sb.String()
}

func (s *boardStyle) cell(sq chess.Square, cp chess.ColouredPiece, highlight *color.Color) string {
	text := " . "
	if !cp.IsEmpty() {
		piece := s.white
		if cp.Colour() == chess.Black {
			piece = s.black
		}
		text = " " + piece.Sprint(string(cp.FENLetter())) + " "
	}

	background := highlight
	if background == nil {
		background = s.dark
		if sq.IsLight() {
			background = s.light
		}
	}
	return background.Sprint(text)
}

// statusLine describes the game state under the board.
func statusLine(s *session.Session) string {
	g := s.Game()
	result := g.Metadata().Result
	switch g.Status() {
	case chess.Checkmate:
		winner, _ := g.Winner()
		return fmt.Sprintf("Checkmate: %s wins (%s)", winner, result)
	case chess.Stalemate:
		return fmt.Sprintf("Stalemate (%s)", result)
	case chess.Draw:
		return fmt.Sprintf("Draw by %s (%s)", g.DrawReason(), result)
	}
	if g.InCheck() {
		return fmt.Sprintf("%s to move, in check", g.SideToMove())
	}
	return fmt.Sprintf("%s to move", g.SideToMove())
}

// writeBoard writes the diagram, the status line and the FEN.
func writeBoard(w io.Writer, s *session.Session, colour bool) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n%s\n", renderBoard(s, colour), statusLine(s), s.Game().FEN())
	return err
}
