package pgn

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/game"
)

// RawGame is one game as read from PGN, before its moves are checked.
type RawGame struct {
	Tags   []chess.TagPair
	Moves  []string // Main line move text, annotations included
	Result string   // Game termination marker, empty if missing
}

// Tag returns the value of the named tag, or "" if absent.
func (r *RawGame) Tag(name string) string {
	for _, pair := range r.Tags {
		if pair.Name == name {
			return pair.Value
		}
	}
	return ""
}

// Reader reads successive games from PGN text. Comments, NAGs and
// variations are skipped.
type Reader struct {
	lex    *lexer
	peeked *token
}

// NewReader returns a Reader reading from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{lex: newLexer(r)}
}

func (rd *Reader) next() (token, error) {
	if rd.peeked != nil {
		tok := *rd.peeked
		rd.peeked = nil
		return tok, nil
	}
	return rd.lex.next()
}

// Next returns the next game, or io.EOF when the input is exhausted.
func (rd *Reader) Next() (*RawGame, error) {
	tok, err := rd.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == eofToken {
		return nil, io.EOF
	}

	raw := &RawGame{}
	for tok.kind == tagToken {
		raw.Tags = append(raw.Tags, chess.TagPair{Name: tok.name, Value: tok.value})
		if tok, err = rd.next(); err != nil {
			return nil, err
		}
	}
	for tok.kind == moveToken {
		raw.Moves = append(raw.Moves, tok.value)
		if tok, err = rd.next(); err != nil {
			return nil, err
		}
	}

	switch tok.kind {
	case resultToken:
		raw.Result = tok.value
	case tagToken:
		// A new game started without a termination marker.
		rd.peeked = &tok
	}
	return raw, nil
}

// ReadAll replays every game in r.
func ReadAll(e *engine.Engine, r io.Reader) ([]*game.Game, error) {
	rd := NewReader(r)
	var games []*game.Game
	for {
		raw, err := rd.Next()
		if err == io.EOF {
			return games, nil
		}
		if err != nil {
			return games, err
		}
		g, err := NewGame(e, raw)
		if err != nil {
			return games, fmt.Errorf("game %d: %w", len(games)+1, err)
		}
		games = append(games, g)
	}
}

// NewGame replays raw through e. The start position comes from the FEN tag
// when present. Result and Termination are derived from the replay, not
// taken from the tags. A move that cannot be resolved yields a
// *errors.MoveError.
func NewGame(e *engine.Engine, raw *RawGame) (*game.Game, error) {
	meta := metadataFromTags(raw.Tags)

	var g *game.Game
	if fen := raw.Tag("FEN"); fen != "" {
		var err error
		if g, err = game.NewFromFEN(e, meta, fen); err != nil {
			return nil, errors.Wrap(err, "FEN tag")
		}
	} else {
		g = game.New(e, meta)
	}

	for i, text := range raw.Moves {
		if g.Status().IsTerminal() {
			return nil, &errors.MoveError{Err: errors.ErrGameOver, PlyNum: i + 1, MoveText: text}
		}
		pos := g.Position()
		m, err := ResolveMove(e, &pos, text)
		if err != nil {
			return nil, &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: text}
		}
		if err := g.PlayMove(e, m); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ResolveMove finds the legal move in pos written as text. SAN is matched
// against the engine's own rendering, ignoring check marks, annotation
// glyphs, '=' before a promotion piece and zeros for castling. Coordinate
// notation such as "e2e4" is accepted as a fallback.
func ResolveMove(e *engine.Engine, pos *chess.Position, text string) (chess.Move, error) {
	want := normalizeSAN(text)
	if want == "" {
		return chess.Move{}, errors.ErrInvalidMove
	}

	for _, m := range e.LegalMoves(pos) {
		if normalizeSAN(e.SAN(pos, m)) == want {
			return m, nil
		}
	}

	if m, err := chess.ParseMove(text); err == nil {
		if m = engine.NormalizeMove(pos, m); e.IsLegal(pos, m) {
			return m, nil
		}
	}
	return chess.Move{}, errors.ErrIllegalMove
}

func normalizeSAN(text string) string {
	text = strings.TrimRight(text, "+#!?")
	switch text {
	case "0-0":
		return "O-O"
	case "0-0-0":
		return "O-O-O"
	}
	return strings.ReplaceAll(text, "=", "")
}

// metadataFromTags builds game metadata from imported tags. The creation
// time comes from UTCDate and UTCTime, falling back to Date.
func metadataFromTags(tags []chess.TagPair) chess.PGNMetadata {
	meta := chess.PGNMetadata{ID: uuid.New()}
	values := make(map[string]string, len(tags))
	for _, tag := range tags {
		values[tag.Name] = tag.Value
		switch tag.Name {
		case "Date", "UTCDate", "UTCTime", "SetUp", "FEN", "Result", "Termination":
			continue
		}
		meta.SetTag(tag.Name, tag.Value)
	}

	if t, err := time.Parse(chess.PGNDateLayout+" "+chess.PGNTimeLayout,
		values["UTCDate"]+" "+values["UTCTime"]); err == nil {
		meta.CreatedAt = t
	} else if t, err := time.Parse(chess.PGNDateLayout, values["Date"]); err == nil {
		meta.CreatedAt = t
	}
	return meta
}
