package parser

import (
	"cppgen/pkg/event"
	"cppgen/pkg/token"
)

// parseEnum recognizes "enum" ["class"] IDENT "{" (IDENT ["=" value] [","])* "}" ";".
// An anonymous enum (no identifier before the brace) is ignored entirely:
// its body is skipped via ignoreScopes and no events are emitted, and the
// trailing semicolon, if present, is consumed.
func (p *Parser) parseEnum() bool {
	start := p.pos
	p.advance() // 'enum'
	p.skipIgnorable()

	isClass := p.match(token.Class)
	p.skipIgnorable()

	name := p.parseIdentifier()
	p.skipIgnorable()

	if !p.check(token.LeftBrace) {
		p.pos = start
		return false
	}

	if name == "" {
		p.ignoreScopes()
		p.skipIgnorable()
		p.match(token.Semicolon)
		return true
	}

	kind := event.EnumPush
	if isClass {
		kind = event.EnumClassPush
	}
	p.bus.Publish(event.Event{Kind: kind, Name: name, ScopeDepth: p.scopeDepth})

	p.advance() // '{'
	p.scopePush()

	for {
		p.skipIgnorable()
		if p.atEnd() || p.check(token.RightBrace) {
			break
		}
		ident := p.parseIdentifier()
		if ident == "" {
			// Unrecognized token inside the enum body; bail out rather
			// than loop forever on malformed input.
			break
		}
		p.bus.Publish(event.Event{Kind: event.EnumIdentifier, Name: ident})

		p.skipIgnorable()
		if p.match(token.Equals) {
			p.skipEnumValue()
		}
		p.skipIgnorable()
		p.match(token.Comma)
	}

	p.skipIgnorable()
	p.match(token.RightBrace)
	p.scopePop()

	p.skipIgnorable()
	p.match(token.Semicolon)
	return true
}

// skipEnumValue consumes an enumerator's initializer expression, stopping
// before the next comma or closing brace at the same nesting level.
func (p *Parser) skipEnumValue() {
	depth := 0
	for !p.atEnd() {
		t := p.peek()
		switch t.Type {
		case token.LeftParen, token.LeftBracket:
			depth++
		case token.RightParen, token.RightBracket:
			depth--
		case token.Comma, token.RightBrace:
			if depth <= 0 {
				return
			}
		}
		p.advance()
	}
}
