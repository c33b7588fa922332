package parser

import (
	"cppgen/pkg/event"
	"cppgen/pkg/token"
)

// parseMemberOrMethod recognizes zero or more qualifier keywords, an
// enhanced-identifier type, a plain identifier name, and then either a
// parameter list (a method) or an optional initializer (a member),
// emitting method-found or member-found. It also handles a leading
// "using"/"typedef" declaration inside a class body, which the caller
// dispatches here because it shares the same "consume to semicolon, no
// event" shape as at top level.
func (p *Parser) parseMemberOrMethod() bool {
	if p.check(token.Using) || p.check(token.Typedef) {
		p.skipToSemicolon()
		return true
	}

	start := p.pos

	var isStatic, isConst, isVirtual bool
qualifiers:
	for {
		p.skipIgnorable()
		switch p.peek().Type {
		case token.Static:
			isStatic = true
			p.advance()
		case token.Const:
			isConst = true
			p.advance()
		case token.Virtual:
			isVirtual = true
			p.advance()
		default:
			break qualifiers
		}
	}

	p.skipIgnorable()
	typ := p.parseEnhancedIdentifier()
	if typ == "" {
		p.pos = start
		return false
	}

	p.skipIgnorable()
	name := p.parseIdentifier()
	if name == "" {
		p.pos = start
		return false
	}

	p.skipIgnorable()
	if p.check(token.LeftParen) {
		p.skipParameterList()
	trailingQualifiers:
		for {
			p.skipIgnorable()
			switch {
			case p.match(token.Override):
				isVirtual = true
			case p.match(token.Const):
				isConst = true
			default:
				break trailingQualifiers
			}
		}
		p.skipIgnorable()

		switch {
		case p.check(token.LeftBrace):
			p.ignoreScopes()
			p.skipIgnorable()
			p.match(token.Semicolon)
		case p.match(token.Equals):
			p.skipToSemicolon()
		default:
			p.match(token.Semicolon)
		}

		p.bus.Publish(event.Event{
			Kind:    event.MethodFound,
			Type:    typ,
			Name:    name,
			Const:   isConst,
			Static:  isStatic,
			Virtual: isVirtual,
		})
		return true
	}

	p.skipIgnorable()
	if p.match(token.Equals) {
		p.skipToSemicolon()
	} else {
		p.skipIgnorable()
		p.match(token.Semicolon)
	}

	p.bus.Publish(event.Event{
		Kind:   event.MemberFound,
		Type:   typ,
		Name:   name,
		Const:  isConst,
		Static: isStatic,
	})
	return true
}
