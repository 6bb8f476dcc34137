package pgn

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// tokenKind is the kind of a token handed to the reader. Comments, NAGs,
// move numbers and variations are consumed by the lexer itself.
type tokenKind int

const (
	eofToken tokenKind = iota
	tagToken
	moveToken
	resultToken
)

type token struct {
	kind  tokenKind
	name  string // Tag name
	value string // Tag value, move text or result
	line  int
}

// lexer tokenizes PGN input.
type lexer struct {
	r        *bufio.Reader
	line     int
	ravDepth int
}

func newLexer(r io.Reader) *lexer {
	return &lexer{r: bufio.NewReader(r), line: 1}
}

// next returns the next main-line token.
func (l *lexer) next() (token, error) {
	for {
		c, err := l.r.ReadByte()
		if err == io.EOF {
			if l.ravDepth > 0 {
				return token{}, l.errorf("unterminated variation")
			}
			return token{kind: eofToken, line: l.line}, nil
		}
		if err != nil {
			return token{}, err
		}

		switch {
		case c == '\n':
			l.line++
		case c == ' ' || c == '\t' || c == '\r' || c == '.':
		case c == '[':
			return l.readTag()
		case c == '{':
			if err := l.skipComment(); err != nil {
				return token{}, err
			}
		case c == ';' || c == '%':
			l.skipLine()
		case c == '(':
			l.ravDepth++
		case c == ')':
			if l.ravDepth == 0 {
				return token{}, l.errorf("unbalanced ')'")
			}
			l.ravDepth--
		case c == '$':
			l.readSymbol()
		case c == '*':
			if l.ravDepth == 0 {
				return token{kind: resultToken, value: "*", line: l.line}, nil
			}
		case isSymbolChar(c):
			_ = l.r.UnreadByte()
			sym := l.readSymbol()
			if l.ravDepth > 0 || isMoveNumber(sym) {
				continue
			}
			if isResult(sym) {
				return token{kind: resultToken, value: sym, line: l.line}, nil
			}
			return token{kind: moveToken, value: sym, line: l.line}, nil
		default:
			return token{}, l.errorf("unexpected character %q", c)
		}
	}
}

// readTag reads the rest of a [Name "value"] tag pair.
func (l *lexer) readTag() (token, error) {
	l.skipSpaces()
	name := l.readSymbol()
	if name == "" {
		return token{}, l.errorf("missing tag name")
	}
	l.skipSpaces()
	if c, err := l.r.ReadByte(); err != nil || c != '"' {
		return token{}, l.errorf("missing value for tag %s", name)
	}

	var value strings.Builder
	for {
		c, err := l.r.ReadByte()
		if err != nil || c == '\n' {
			return token{}, l.errorf("unterminated value for tag %s", name)
		}
		if c == '"' {
			break
		}
		if c == '\\' {
			if c, err = l.r.ReadByte(); err != nil {
				return token{}, l.errorf("unterminated value for tag %s", name)
			}
		}
		value.WriteByte(c)
	}

	l.skipSpaces()
	if c, err := l.r.ReadByte(); err != nil || c != ']' {
		return token{}, l.errorf("missing ']' after tag %s", name)
	}
	return token{kind: tagToken, name: name, value: value.String(), line: l.line}, nil
}

func (l *lexer) skipComment() error {
	start := l.line
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			return fmt.Errorf("line %d: unterminated comment: %w", start, errors.ErrInvalidPGN)
		}
		switch c {
		case '\n':
			l.line++
		case '}':
			return nil
		}
	}
}

func (l *lexer) skipLine() {
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			return
		}
		if c == '\n' {
			l.line++
			return
		}
	}
}

func (l *lexer) skipSpaces() {
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			return
		}
		if c != ' ' && c != '\t' {
			_ = l.r.UnreadByte()
			return
		}
	}
}

func (l *lexer) readSymbol() string {
	var sb strings.Builder
	for {
		c, err := l.r.ReadByte()
		if err != nil {
			return sb.String()
		}
		if !isSymbolChar(c) {
			_ = l.r.UnreadByte()
			return sb.String()
		}
		sb.WriteByte(c)
	}
}

func (l *lexer) errorf(format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s: %w", l.line, fmt.Sprintf(format, args...), errors.ErrInvalidPGN)
}

// isSymbolChar reports whether c may appear in a tag name, move or result.
func isSymbolChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("_+#=:-/!?", c) >= 0
}

func isMoveNumber(sym string) bool {
	for i := 0; i < len(sym); i++ {
		if sym[i] < '0' || sym[i] > '9' {
			return false
		}
	}
	return sym != ""
}

func isResult(sym string) bool {
	switch sym {
	case "1-0", "0-1", "1/2-1/2", "*":
		return true
	}
	return false
}
