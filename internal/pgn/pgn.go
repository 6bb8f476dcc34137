package pgn

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/game"
)

// TagFormat selects which tags are written.
type TagFormat int

const (
	AllTags        TagFormat = iota // Roster, setup, dates, termination and extras
	SevenTagRoster                  // Only the seven tag roster
	NoTags                          // Movetext only
)

// Notation selects how moves are written.
type Notation int

const (
	SAN Notation = iota
	UCI
)

// Options controls PGN export.
type Options struct {
	TagFormat     TagFormat
	Notation      Notation
	MaxLineLength int
	MoveNumbers   bool
}

// DefaultOptions returns options for standard PGN: all tags, SAN movetext with
// move numbers, wrapped at 80 columns.
func DefaultOptions() Options {
	return Options{
		TagFormat:     AllTags,
		Notation:      SAN,
		MaxLineLength: DefaultLineLength,
		MoveNumbers:   true,
	}
}

// String returns g in PGN with the default options.
func String(g *game.Game) string {
	var sb strings.Builder
	_ = Write(&sb, g, DefaultOptions()) // strings.Builder does not fail
	return sb.String()
}

// Write writes g to w as a single PGN game followed by a blank line.
func Write(w io.Writer, g *game.Game, opts Options) error {
	if opts.TagFormat != NoTags {
		for _, pair := range Tags(g, opts.TagFormat) {
			if _, err := fmt.Fprintf(w, "[%s \"%s\"]\n", pair.Name, escapeTagValue(pair.Value)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	lw := NewLineWriter(w, opts.MaxLineLength)
	writeMoves(lw, g, opts)
	lw.Write(result(g))
	lw.NewLine()
	lw.NewLine()
	return lw.Err()
}

// Tags returns the tag pairs written for g. A game that did not begin from
// the initial position carries SetUp and FEN tags after the roster, in
// either format, so the movetext can be replayed.
func Tags(g *game.Game, format TagFormat) []chess.TagPair {
	pairs := g.Metadata().TagPairs()
	roster := len(chess.SevenTagRoster)
	extra := pairs[roster:]
	if format == SevenTagRoster {
		extra = nil
	}
	if g.IsStandardStart() {
		return append(pairs[:roster:roster], extra...)
	}

	tags := make([]chess.TagPair, 0, len(pairs)+2)
	tags = append(tags, pairs[:roster]...)
	tags = append(tags,
		chess.TagPair{Name: "SetUp", Value: "1"},
		chess.TagPair{Name: "FEN", Value: g.StartFEN()},
	)
	return append(tags, extra...)
}

func writeMoves(lw *LineWriter, g *game.Game, opts Options) {
	start := g.StartPosition()
	moveNum := start.FullmoveNumber
	isWhite := start.ToMove == chess.White

	for i, entry := range g.History() {
		if opts.MoveNumbers {
			if isWhite {
				lw.Write(fmt.Sprintf("%d.", moveNum))
			} else if i == 0 {
				lw.Write(fmt.Sprintf("%d...", moveNum))
			}
		}

		if opts.Notation == UCI {
			lw.Write(entry.Move.String())
		} else {
			lw.Write(entry.SAN)
		}

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}
}

func result(g *game.Game) string {
	if r := g.Metadata().Result; r != "" {
		return r
	}
	return chess.ResultOngoing
}

// escapeTagValue escapes special characters in tag values.
func escapeTagValue(s string) string {
	if !strings.ContainsAny(s, "\\\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "\"", "\\\"")
	return s
}
