package parser

import (
	"strings"

	"cppgen/pkg/event"
	"cppgen/pkg/token"
)

// advance returns the current token and moves the cursor forward one
// position, stopping at EOF.
func (p *Parser) advance() token.Token {
	t := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

// peek returns the token at the current position without consuming it.
func (p *Parser) peek() token.Token {
	if p.pos >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[p.pos]
}

// peekAhead returns the token offset positions past the current one,
// skipping nothing — callers that need to look past ignorable tokens must
// call skipIgnorable first.
func (p *Parser) peekAhead(offset int) token.Token {
	idx := p.pos + offset
	if idx >= len(p.tokens) {
		return token.Token{Type: token.EOF}
	}
	return p.tokens[idx]
}

// peekSignificant returns the n-th non-ignorable token from the current
// cursor position (0 being the first one), skipping over any whitespace or
// comments in between. Unlike peekAhead, it never returns an ignorable
// token, which makes it safe for lookahead across token boundaries that
// may or may not have intervening whitespace in the source.
func (p *Parser) peekSignificant(n int) token.Token {
	offset := 0
	seen := 0
	for {
		t := p.peekAhead(offset)
		if t.Type == token.EOF {
			return t
		}
		if t.Ignorable() {
			offset++
			continue
		}
		if seen == n {
			return t
		}
		seen++
		offset++
	}
}

// atEnd reports whether the cursor has reached the EOF token.
func (p *Parser) atEnd() bool {
	return p.peek().Type == token.EOF
}

// check reports whether the current token has the given type.
func (p *Parser) check(t token.Type) bool {
	return p.peek().Type == t
}

// match consumes and returns true if the current token has the given type,
// otherwise leaves the cursor untouched and returns false.
func (p *Parser) match(t token.Type) bool {
	if !p.check(t) {
		return false
	}
	p.advance()
	return true
}

// skipIgnorable advances past any run of whitespace, comments, and
// preprocessor directives (pragma once, include, and any other directive
// the grammar doesn't otherwise special-case) sitting at the cursor. An
// "#include" directive is announced on the bus before being discarded, so
// a caller that cares which headers were referenced doesn't have to
// re-scan the token stream itself.
func (p *Parser) skipIgnorable() {
	for !p.atEnd() && p.peek().Ignorable() {
		t := p.peek()
		if t.Type == token.Preprocessor && strings.HasPrefix(strings.TrimSpace(t.Value), "#include") {
			p.bus.Publish(event.Event{Kind: event.IncludeDirective, Include: strings.TrimSpace(t.Value)})
		}
		p.advance()
	}
}

// parseEnhancedIdentifier consumes a single base identifier (or type-like
// keyword) followed by any immediately-continuing qualification: "::" plus
// another identifier, a template argument list in matching "<" ">", or a
// trailing "&"/"*". It stops, without consuming anything, at a plain
// identifier reached across ignorable tokens — that identifier is the
// member or method name, not a second word of the type — so "void draw"
// yields the type "void" with the cursor left sitting on "draw".
func (p *Parser) parseEnhancedIdentifier() string {
	p.skipIgnorable()
	t := p.peek()
	if t.Type != token.Identifier && !token.IsKeyword(t.Type) {
		return ""
	}
	out := p.advance().Value

	for {
		mark := p.pos
		p.skipIgnorable()
		switch p.peek().Type {
		case token.DoubleColon:
			out += p.advance().Value
			p.skipIgnorable()
			if p.check(token.Identifier) {
				out += p.advance().Value
			}
		case token.Less:
			out += p.advance().Value
			out += p.consumeBalancedAngleText()
		case token.Ampersand, token.Star:
			out += p.advance().Value
		default:
			p.pos = mark
			return out
		}
	}
}

// consumeBalancedAngleText consumes everything up to and including the
// "<"'s matching ">", recursing through nested angle brackets, and returns
// the consumed text verbatim.
func (p *Parser) consumeBalancedAngleText() string {
	depth := 1
	var out string
	for !p.atEnd() && depth > 0 {
		t := p.peek()
		switch t.Type {
		case token.Less:
			depth++
		case token.Greater:
			depth--
		}
		out += t.Value
		p.advance()
	}
	return out
}

// parseIdentifier consumes a single identifier token and returns its text,
// or "" if the current token is not an identifier.
func (p *Parser) parseIdentifier() string {
	p.skipIgnorable()
	if !p.check(token.Identifier) {
		return ""
	}
	return p.advance().Value
}

// skipToSemicolon consumes tokens up to and including the next top-level
// semicolon, used for using/typedef declarations and member initializers
// that the grammar does not otherwise interpret.
func (p *Parser) skipToSemicolon() {
	depth := 0
	for !p.atEnd() {
		t := p.peek()
		switch t.Type {
		case token.LeftBrace, token.LeftParen, token.LeftBracket:
			depth++
		case token.RightBrace, token.RightParen, token.RightBracket:
			depth--
		case token.Semicolon:
			if depth <= 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}

// skipBalancedAngles consumes a '<' already at the current position and
// everything up to its matching '>', recursing for nested angle brackets.
// Used for template parameter lists, which the simple parser only needs to
// skip rather than interpret.
func (p *Parser) skipBalancedAngles() {
	if !p.check(token.Less) {
		return
	}
	depth := 0
	for !p.atEnd() {
		switch p.peek().Type {
		case token.Less:
			depth++
		case token.Greater:
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
