package chess

import (
	"sort"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
)

// PGN result tokens.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultOngoing   = "*"
)

// PGN date and time layouts.
const (
	PGNDateLayout = "2006.01.02"
	PGNTimeLayout = "15:04:05"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	"Event",
	"Site",
	"Date",
	"Round",
	"White",
	"Black",
	"Result",
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// TagPair is a single PGN tag.
type TagPair struct {
	Name  string
	Value string
}

// PGNMetadata is the header information that accompanies a game's moves.
// It is fixed when the game starts; only Result and Termination change,
// once, when the game ends.
type PGNMetadata struct {
	ID          uuid.UUID
	CreatedAt   time.Time
	Event       string
	Site        string
	Round       string
	White       string
	Black       string
	Result      string
	Termination string

	// Tags holds any further tags, keyed by tag name.
	Tags map[string]string
}

// NewPGNMetadata creates metadata for a game started at now.
func NewPGNMetadata(now time.Time) PGNMetadata {
	return PGNMetadata{
		ID:        uuid.New(),
		CreatedAt: now.UTC().Truncate(time.Second),
		Event:     "Casual Game",
		Site:      "?",
		Round:     "-",
		White:     "?",
		Black:     "?",
		Result:    ResultOngoing,
	}
}

// NowPGNMetadata creates metadata stamped with the current time.
func NowPGNMetadata() PGNMetadata {
	return NewPGNMetadata(time.Now())
}

// SandboxPGNMetadata creates metadata for a local sandbox game, giving each
// side a generated player name.
func SandboxPGNMetadata(now time.Time) PGNMetadata {
	meta := NewPGNMetadata(now)
	meta.Event = "Sandbox"
	meta.Site = "Local"
	meta.White = petname.Generate(2, "-")
	meta.Black = petname.Generate(2, "-")
	for meta.Black == meta.White {
		meta.Black = petname.Generate(2, "-")
	}
	return meta
}

// Date returns the PGN Date tag value.
func (m PGNMetadata) Date() string {
	if m.CreatedAt.IsZero() {
		return "????.??.??"
	}
	return m.CreatedAt.UTC().Format(PGNDateLayout)
}

// Clone returns a copy that shares no mutable state with m.
func (m PGNMetadata) Clone() PGNMetadata {
	clone := m
	if m.Tags != nil {
		clone.Tags = make(map[string]string, len(m.Tags))
		for k, v := range m.Tags {
			clone.Tags[k] = v
		}
	}
	return clone
}

// SetTag sets an extra tag. Seven tag roster names are routed to their fields.
func (m *PGNMetadata) SetTag(name, value string) {
	switch name {
	case "Event":
		m.Event = value
	case "Site":
		m.Site = value
	case "Round":
		m.Round = value
	case "White":
		m.White = value
	case "Black":
		m.Black = value
	case "Result":
		m.Result = value
	case "Termination":
		m.Termination = value
	default:
		if m.Tags == nil {
			m.Tags = make(map[string]string)
		}
		m.Tags[name] = value
	}
}

// GetTag returns a tag value, or empty string if not present.
func (m PGNMetadata) GetTag(name string) string {
	for _, pair := range m.TagPairs() {
		if pair.Name == name {
			return pair.Value
		}
	}
	return ""
}

// TagPairs returns the tags in export order: the seven tag roster, then
// UTCDate, UTCTime and Termination, then any extra tags sorted by name.
// Empty roster values are written as "?".
func (m PGNMetadata) TagPairs() []TagPair {
	roster := map[string]string{
		"Event":  m.Event,
		"Site":   m.Site,
		"Date":   m.Date(),
		"Round":  m.Round,
		"White":  m.White,
		"Black":  m.Black,
		"Result": m.Result,
	}
	if roster["Result"] == "" {
		roster["Result"] = ResultOngoing
	}

	pairs := make([]TagPair, 0, len(SevenTagRoster)+3+len(m.Tags))
	for _, name := range SevenTagRoster {
		value := roster[name]
		if value == "" {
			value = "?"
		}
		pairs = append(pairs, TagPair{Name: name, Value: value})
	}

	if !m.CreatedAt.IsZero() {
		pairs = append(pairs,
			TagPair{Name: "UTCDate", Value: m.CreatedAt.UTC().Format(PGNDateLayout)},
			TagPair{Name: "UTCTime", Value: m.CreatedAt.UTC().Format(PGNTimeLayout)},
		)
	}
	if m.Termination != "" {
		pairs = append(pairs, TagPair{Name: "Termination", Value: m.Termination})
	}

	names := make([]string, 0, len(m.Tags))
	for name := range m.Tags {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		pairs = append(pairs, TagPair{Name: name, Value: m.Tags[name]})
	}
	return pairs
}
