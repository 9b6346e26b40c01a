package compiler

import (
	"bufio"
	"fmt"
	"io"
)

type tokenKind string

const (
	tokenKindChar       = tokenKind("character")
	tokenKindRepeat     = tokenKind("*")
	tokenKindAlt        = tokenKind("|")
	tokenKindGroupOpen  = tokenKind("(")
	tokenKindGroupClose = tokenKind(")")
	tokenKindEOF        = tokenKind("EOF")
)

type token struct {
	kind tokenKind
	char rune

	// offset is the rune offset of the token in the pattern.
	offset int
}

const nullChar = '\u0000'

func newToken(kind tokenKind, char rune) *token {
	return &token{
		kind: kind,
		char: char,
	}
}

func (t *token) String() string {
	if t.kind == tokenKindChar {
		return string(t.char)
	}
	return string(t.kind)
}

type lexer struct {
	src        *bufio.Reader
	offset     int
	reachedEOF bool
}

func newLexer(src io.Reader) *lexer {
	return &lexer{
		src:        bufio.NewReader(src),
		offset:     0,
		reachedEOF: false,
	}
}

func (l *lexer) next() (*token, error) {
	offset := l.offset
	tok, err := l.scan()
	if err != nil {
		return nil, err
	}
	tok.offset = offset
	return tok, nil
}

func (l *lexer) scan() (*token, error) {
	c, eof, err := l.read()
	if err != nil {
		return nil, err
	}
	if eof {
		return newToken(tokenKindEOF, nullChar), nil
	}

	switch c {
	case '*':
		return newToken(tokenKindRepeat, nullChar), nil
	case '|':
		return newToken(tokenKindAlt, nullChar), nil
	case '(':
		return newToken(tokenKindGroupOpen, nullChar), nil
	case ')':
		return newToken(tokenKindGroupClose, nullChar), nil
	case '\\':
		c, eof, err := l.read()
		if err != nil {
			return nil, err
		}
		if eof {
			return nil, &SyntaxError{
				Expected: []string{string(tokenKindChar)},
				Actual:   string(tokenKindEOF),
				Offset:   l.offset,
				Message:  "incompleted escape sequence; unexpected EOF follows \\ character",
			}
		}
		return newToken(tokenKindChar, c), nil
	default:
		return newToken(tokenKindChar, c), nil
	}
}

func (l *lexer) read() (rune, bool, error) {
	if l.reachedEOF {
		return nullChar, true, nil
	}
	c, _, err := l.src.ReadRune()
	if err != nil {
		if err == io.EOF {
			l.reachedEOF = true
			return nullChar, true, nil
		}
		return nullChar, false, fmt.Errorf("failed to read a pattern: %w", err)
	}
	l.offset++
	return c, false, nil
}
