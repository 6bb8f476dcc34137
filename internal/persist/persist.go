package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/game"
	"github.com/lgbarn/chesscore-go/internal/session"
)

// EncodeGame returns the indented JSON document for g.
func EncodeGame(g *game.Game) ([]byte, error) {
	return json.MarshalIndent(GameToDocument(g), "", "  ")
}

// DecodeGame restores a game from a document written by EncodeGame. Any
// malformed or inconsistent document yields a *errors.DecodeError wrapping
// errors.ErrCorruptState.
func DecodeGame(e *engine.Engine, data []byte) (*game.Game, error) {
	var doc GameDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, corrupt("document", "game JSON", err.Error())
	}
	return RestoreGame(e, &doc)
}

// EncodeSession returns the indented JSON document for s.
func EncodeSession(s *session.Session) ([]byte, error) {
	return json.MarshalIndent(SessionToDocument(s), "", "  ")
}

// DecodeSession restores a session from a document written by EncodeSession.
func DecodeSession(e *engine.Engine, data []byte) (*session.Session, error) {
	var doc SessionDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, corrupt("document", "session JSON", err.Error())
	}
	return RestoreSession(e, &doc)
}

// DecodeAny restores a session from either a session or a bare game
// document. A bare game gets default session preferences.
func DecodeAny(e *engine.Engine, data []byte) (*session.Session, error) {
	var probe struct {
		Game json.RawMessage `json:"game"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, corrupt("document", "JSON object", err.Error())
	}
	if probe.Game != nil {
		return DecodeSession(e, data)
	}
	g, err := DecodeGame(e, data)
	if err != nil {
		return nil, err
	}
	return session.FromGame(g), nil
}

// SaveSession writes s to path, creating its directory if needed.
func SaveSession(path string, s *session.Session) error {
	data, err := EncodeSession(s)
	if err != nil {
		return errors.Wrap(err, "encoding session")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return errors.Wrapf(err, "creating save directory for %s", path)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

// LoadSession reads a session or game document from path.
func LoadSession(e *engine.Engine, path string) (*session.Session, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is supplied by the user
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	s, err := DecodeAny(e, data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return s, nil
}

// GameToDocument converts g to its document form.
func GameToDocument(g *game.Game) GameDocument {
	meta := g.Metadata()
	history := g.History()

	doc := GameDocument{
		Version: DocumentVersion,
		Metadata: MetadataDocument{
			ID:          meta.ID.String(),
			CreatedAt:   meta.CreatedAt,
			Event:       meta.Event,
			Site:        meta.Site,
			Round:       meta.Round,
			White:       meta.White,
			Black:       meta.Black,
			Result:      meta.Result,
			Termination: meta.Termination,
			Tags:        meta.Tags,
		},
		StartFEN:   g.StartFEN(),
		Moves:      make([]MoveDocument, len(history)),
		Status:     g.Status(),
		DrawReason: g.DrawReason(),
		SideToMove: g.SideToMove(),
		FEN:        g.FEN(),
	}
	for i, entry := range history {
		doc.Moves[i] = MoveDocument{
			UCI: entry.Move.String(),
			SAN: entry.SAN,
			FEN: entry.FEN,
		}
	}
	return doc
}

// RestoreGame rebuilds a game by replaying doc's moves from its start
// position, checking every recorded value against the replay.
func RestoreGame(e *engine.Engine, doc *GameDocument) (*game.Game, error) {
	if doc.Version != DocumentVersion {
		return nil, corrupt("version", fmt.Sprint(DocumentVersion), fmt.Sprint(doc.Version))
	}

	meta, err := restoreMetadata(&doc.Metadata)
	if err != nil {
		return nil, err
	}

	g, err := game.NewFromFEN(e, meta, doc.StartFEN)
	if err != nil {
		return nil, corrupt("start_fen", "valid FEN", err.Error())
	}

	for i, md := range doc.Moves {
		field := fmt.Sprintf("moves[%d]", i)
		m, err := chess.ParseMove(md.UCI)
		if err != nil {
			return nil, corrupt(field+".uci", "UCI move", err.Error())
		}
		if err := g.PlayMove(e, m); err != nil {
			return nil, corrupt(field+".uci", "legal move", err.Error())
		}
		entry := g.History()[i]
		if entry.SAN != md.SAN {
			return nil, corrupt(field+".san", entry.SAN, md.SAN)
		}
		if entry.FEN != md.FEN {
			return nil, corrupt(field+".fen", entry.FEN, md.FEN)
		}
	}

	if err := checkFinalState(g, doc); err != nil {
		return nil, err
	}
	return g, nil
}

func restoreMetadata(md *MetadataDocument) (chess.PGNMetadata, error) {
	id, err := uuid.Parse(md.ID)
	if err != nil {
		return chess.PGNMetadata{}, corrupt("metadata.id", "UUID", md.ID)
	}
	meta := chess.PGNMetadata{
		ID:        id,
		CreatedAt: md.CreatedAt,
		Event:     md.Event,
		Site:      md.Site,
		Round:     md.Round,
		White:     md.White,
		Black:     md.Black,
	}
	for name, value := range md.Tags {
		meta.SetTag(name, value)
	}
	return meta, nil
}

// checkFinalState compares the replayed game with the recorded outcome.
// Result and Termination are derived by the game, so they are checked
// rather than trusted.
func checkFinalState(g *game.Game, doc *GameDocument) error {
	meta := g.Metadata()
	switch {
	case g.Status() != doc.Status:
		return corrupt("status", g.Status().String(), doc.Status.String())
	case g.DrawReason() != doc.DrawReason:
		return corrupt("draw_reason", g.DrawReason().String(), doc.DrawReason.String())
	case g.SideToMove() != doc.SideToMove:
		return corrupt("side_to_move", g.SideToMove().String(), doc.SideToMove.String())
	case g.FEN() != doc.FEN:
		return corrupt("fen", g.FEN(), doc.FEN)
	case meta.Result != doc.Metadata.Result:
		return corrupt("metadata.result", meta.Result, doc.Metadata.Result)
	case meta.Termination != doc.Metadata.Termination:
		return corrupt("metadata.termination", meta.Termination, doc.Metadata.Termination)
	}
	return nil
}

// SessionToDocument converts s to its document form.
func SessionToDocument(s *session.Session) SessionDocument {
	doc := SessionDocument{
		Version:         DocumentVersion,
		Game:            GameToDocument(s.Game()),
		PromotionPiece:  s.PromotionPiece(),
		Perspective:     s.Perspective(),
		AutoPerspective: s.AutoPerspective(),
	}
	if c, ok := s.PlayedColour(); ok {
		doc.PlayedColour = &c
	}
	return doc
}

// RestoreSession rebuilds a session from doc.
func RestoreSession(e *engine.Engine, doc *SessionDocument) (*session.Session, error) {
	if doc.Version != DocumentVersion {
		return nil, corrupt("version", fmt.Sprint(DocumentVersion), fmt.Sprint(doc.Version))
	}
	g, err := RestoreGame(e, &doc.Game)
	if err != nil {
		return nil, err
	}

	s := session.FromGame(g)
	if err := s.SetPromotionPiece(doc.PromotionPiece); err != nil {
		return nil, corrupt("promotion_piece", "queen, rook, bishop or knight", doc.PromotionPiece.String())
	}
	s.SetPerspective(doc.Perspective)
	if doc.PlayedColour != nil {
		s.SetPlayedColour(*doc.PlayedColour)
	}
	// Restore the stored perspective as is; enabling auto would re-derive it.
	if doc.AutoPerspective {
		s.SetAutoPerspective(true)
		s.SetPerspective(doc.Perspective)
	}
	return s, nil
}

func corrupt(field, expected, got string) error {
	return &errors.DecodeError{
		Err:      errors.ErrCorruptState,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}
