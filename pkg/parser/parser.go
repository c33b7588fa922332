// Package parser implements the structural, event-producing recursive
// descent parser over the curly-brace C++ subset tokenized by pkg/token. It
// does not build a tree; instead it announces what it finds on a
// *event.Bus as it walks the token stream, in source order, the same way
// this corpus's header parser walks tokens with a cursor and a stack of
// parser helper methods rather than a generated grammar.
package parser

import (
	"cppgen/pkg/event"
	"cppgen/pkg/token"
)

// Parser walks a pre-tokenized input once, publishing events to a bus as it
// recognizes namespaces, enums, classes, and their members. All per-parse
// state lives on the receiver and is reset at the top of Parse, so a single
// Parser value can be reused across files.
type Parser struct {
	bus    *event.Bus
	tokens []token.Token
	pos    int

	scopeDepth int
}

// New creates a Parser that publishes to bus.
func New(bus *event.Bus) *Parser {
	return &Parser{bus: bus}
}

// Parse tokenizes content and walks it top to bottom, publishing events to
// the Parser's bus as constructs are recognized. It returns true if the
// entire input was consumed by recognized top-level constructs, and the
// unconsumed suffix of content otherwise — the parser never panics or
// returns an error for malformed input, per the total-function failure
// model: a partial catalog built from partial events remains valid.
func (p *Parser) Parse(content string) (ok bool, leftover string) {
	p.tokens = token.NewTokenizer(content).Tokenize()
	p.pos = 0
	p.scopeDepth = 0

	for !p.atEnd() {
		p.skipIgnorable()
		if p.atEnd() {
			return true, ""
		}
		if !p.parseTopLevel() {
			return false, p.remainderText()
		}
	}
	return true, ""
}

// parseTopLevel recognizes exactly one top-level construct starting at the
// current position, or the standalone braces that appear between them.
// It reports whether a construct (including an ignorable run) was
// recognized and consumed.
func (p *Parser) parseTopLevel() bool {
	t := p.peek()
	switch {
	case t.Type == token.Namespace:
		return p.parseNamespace()
	case t.Type == token.Enum:
		return p.parseEnum()
	case t.Type == token.Template:
		return p.parseTemplateSkip()
	case t.Type == token.Class || t.Type == token.Struct:
		return p.parseClassOrStruct()
	case t.Type == token.Using || t.Type == token.Typedef:
		return p.parseUsingSkip()
	case t.Type == token.DoubleLeftBracket:
		p.parseAnnotation()
		return true
	case t.Type == token.LeftBrace:
		p.advance()
		p.scopePush()
		return true
	case t.Type == token.RightBrace:
		p.scopePop()
		p.advance()
		return true
	default:
		return false
	}
}

// remainderText reconstitutes the unconsumed suffix from the current token
// position onward, for callers that report the leftover on failure.
func (p *Parser) remainderText() string {
	var out string
	for _, t := range p.tokens[p.pos:] {
		out += t.Value
	}
	return out
}

// scopePush emits a scope-push event and increments the depth counter.
func (p *Parser) scopePush() {
	p.bus.Publish(event.Event{Kind: event.ScopePush, ScopeDepth: p.scopeDepth})
	p.scopeDepth++
}

// scopePop decrements the depth counter and emits a scope-pop event. It
// does not consume the closing brace token; callers advance past it
// themselves once they've decided what else the brace closes.
func (p *Parser) scopePop() {
	p.scopeDepth--
	p.bus.Publish(event.Event{Kind: event.ScopePop, ScopeDepth: p.scopeDepth})
}

// ignoreScopes consumes a '{' already at the current position and
// everything up to and including its matching '}', recursing for nested
// braces, without emitting any events — the helper used to skip function
// and constructor bodies.
func (p *Parser) ignoreScopes() {
	if !p.check(token.LeftBrace) {
		return
	}
	depth := 0
	for !p.atEnd() {
		t := p.peek()
		switch t.Type {
		case token.LeftBrace:
			depth++
		case token.RightBrace:
			depth--
			p.advance()
			if depth == 0 {
				return
			}
			continue
		}
		p.advance()
	}
}
