package compiler

import (
	"errors"
	"io"
	"runtime"
)

type parser struct {
	lex       *lexer
	peekedTok *token
	lastTok   *token
}

func newParser(src io.Reader) *parser {
	return &parser{
		lex:       newLexer(src),
		peekedTok: nil,
		lastTok:   nil,
	}
}

func (p *parser) parse() (ast astNode, retErr error) {
	defer func() {
		err := recover()
		if err == nil {
			return
		}
		// Syntax and read errors unwind the descent via panic; runtime errors are bugs.
		e, ok := err.(error)
		if !ok {
			panic(err)
		}
		var rtErr runtime.Error
		if errors.As(e, &rtErr) {
			panic(err)
		}
		ast = nil
		retErr = e
	}()

	alt := p.parseAlt()
	p.expect(tokenKindEOF)
	return alt, nil
}

func (p *parser) parseAlt() astNode {
	left := p.parseConcat()
	for {
		if !p.consume(tokenKindAlt) {
			break
		}
		right := p.parseConcat()
		left = newAltNode(left, right)
	}
	return left
}

func (p *parser) parseConcat() astNode {
	if !p.startsFactor() {
		return newEmptyNode()
	}
	left := p.parseRepeat()
	for p.startsFactor() {
		right := p.parseRepeat()
		left = newConcatNode(left, right)
	}
	return left
}

func (p *parser) parseRepeat() astNode {
	group := p.parseGroup()
	if p.consume(tokenKindRepeat) {
		return newRepeatNode(group)
	}
	return group
}

func (p *parser) parseGroup() astNode {
	if p.consume(tokenKindGroupOpen) {
		alt := p.parseAlt()
		p.expect(tokenKindGroupClose)
		return alt
	}
	if p.consume(tokenKindChar) {
		return newSymbolNode(p.lastTok.char)
	}
	panic(newUnexpectedTokenError(p.peek(), tokenKindGroupOpen, tokenKindChar))
}

func (p *parser) startsFactor() bool {
	tok := p.peek()
	return tok.kind == tokenKindGroupOpen || tok.kind == tokenKindChar
}

func (p *parser) expect(expected tokenKind) {
	if !p.consume(expected) {
		panic(newUnexpectedTokenError(p.peek(), expected))
	}
}

func (p *parser) consume(expected tokenKind) bool {
	tok := p.peek()
	if tok.kind != expected {
		return false
	}
	p.peekedTok = nil
	p.lastTok = tok
	return true
}

func (p *parser) peek() *token {
	if p.peekedTok != nil {
		return p.peekedTok
	}
	tok, err := p.lex.next()
	if err != nil {
		panic(err)
	}
	p.peekedTok = tok
	return tok
}
