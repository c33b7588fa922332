package parser

import (
	"cppgen/pkg/event"
	"cppgen/pkg/token"
)

// parseClassOrStruct recognizes a class or struct definition: the
// class/struct keyword, a name, an optional inheritance clause, and a
// braced body, finishing with class-pop. Annotations directly preceding
// "class"/"struct" are not handled here — they flow through
// parseTopLevel's own DoubleLeftBracket branch before this is ever called,
// and get attached to the upcoming class by the class driver's "not
// currently inside a class" rule.
func (p *Parser) parseClassOrStruct() bool {
	start := p.pos
	isStruct := p.check(token.Struct)
	p.advance() // 'class' or 'struct'
	p.skipIgnorable()

	name := p.parseIdentifier()
	if name == "" {
		p.pos = start
		return false
	}
	p.skipIgnorable()

	if p.check(token.Semicolon) {
		// Forward declaration: "class Foo;" — nothing to record.
		p.advance()
		return true
	}

	var parents []struct {
		access event.Access
		name   string
	}
	if p.match(token.Colon) {
		parents = p.parseInheritanceList()
	}
	p.skipIgnorable()

	if !p.check(token.LeftBrace) {
		p.pos = start
		return false
	}

	kind := event.ClassPush
	if isStruct {
		kind = event.StructPush
	}
	p.bus.Publish(event.Event{Kind: kind, Name: name, ScopeDepth: p.scopeDepth})
	for _, parent := range parents {
		p.bus.Publish(event.Event{Kind: event.ClassParent, Name: parent.name, Access: parent.access})
	}

	p.advance() // '{'
	p.scopePush()

	p.parseClassBody(name)

	p.skipIgnorable()
	p.match(token.RightBrace)
	p.scopePop()
	p.skipIgnorable()
	p.match(token.Semicolon)

	p.bus.Publish(event.Event{Kind: event.ClassPop})
	return true
}

// parseInheritanceList consumes a comma-separated list of parent classes,
// each with an optional leading access keyword, stopping right before the
// opening brace.
func (p *Parser) parseInheritanceList() []struct {
	access event.Access
	name   string
} {
	var parents []struct {
		access event.Access
		name   string
	}
	for {
		p.skipIgnorable()
		access := event.AccessNone
		switch p.peek().Type {
		case token.Public:
			access = event.AccessPublic
			p.advance()
		case token.Private:
			access = event.AccessPrivate
			p.advance()
		case token.Protected:
			access = event.AccessProtected
			p.advance()
		}
		p.skipIgnorable()
		p.match(token.Virtual) // virtual inheritance qualifier, recorded nowhere
		name := p.parseEnhancedIdentifier()
		if name != "" {
			parents = append(parents, struct {
				access event.Access
				name   string
			}{access, name})
		}
		p.skipIgnorable()
		if p.match(token.Comma) {
			continue
		}
		break
	}
	return parents
}

// parseClassBody walks the repeated body production inside a class or
// struct until it finds the closing brace, which it leaves unconsumed for
// the caller. className is used to recognize constructors and the
// destructor, which are skipped without emitting an event.
func (p *Parser) parseClassBody(className string) {
	for {
		p.skipIgnorable()
		if p.atEnd() || p.check(token.RightBrace) {
			return
		}

		switch {
		case p.check(token.DoubleLeftBracket):
			p.parseAnnotation()
		case p.check(token.Template):
			p.skipNestedTemplate()
		case p.check(token.Public):
			p.advance()
			p.skipIgnorable()
			if p.match(token.Colon) {
				p.bus.Publish(event.Event{Kind: event.AccessChange, Access: event.AccessPublic})
			}
		case p.check(token.Private):
			p.advance()
			p.skipIgnorable()
			if p.match(token.Colon) {
				p.bus.Publish(event.Event{Kind: event.AccessChange, Access: event.AccessPrivate})
			}
		case p.check(token.Protected):
			p.advance()
			p.skipIgnorable()
			if p.match(token.Colon) {
				p.bus.Publish(event.Event{Kind: event.AccessChange, Access: event.AccessProtected})
			}
		case p.isConstructorOrDestructor(className):
			p.skipConstructorOrDestructor()
		default:
			if !p.parseMemberOrMethod() {
				// Unrecognized token inside the class body: consume it so
				// the loop makes progress rather than spinning forever on
				// malformed input.
				p.advance()
			}
		}
	}
}

// skipNestedTemplate consumes "template" "<" ... ">" and whatever
// declaration follows it inside a class body, without emitting events.
func (p *Parser) skipNestedTemplate() {
	p.advance() // 'template'
	p.skipIgnorable()
	p.skipBalancedAngles()
	p.skipIgnorable()
	for !p.atEnd() && !p.check(token.LeftBrace) && !p.check(token.Semicolon) {
		p.advance()
	}
	if p.check(token.LeftBrace) {
		p.ignoreScopes()
		p.skipIgnorable()
		p.match(token.Semicolon)
	} else {
		p.match(token.Semicolon)
	}
}

// isConstructorOrDestructor reports whether the tokens at the cursor spell
// a constructor ("ClassName(") or destructor ("~ClassName(" or
// "virtual ~ClassName(") for the enclosing class.
func (p *Parser) isConstructorOrDestructor(className string) bool {
	n := 0
	for p.peekSignificant(n).Type == token.Virtual {
		n++
	}
	t := p.peekSignificant(n)
	if t.Type == token.Tilde {
		n++
		t = p.peekSignificant(n)
	}
	if t.Type != token.Identifier || t.Value != className {
		return false
	}
	n++
	return p.peekSignificant(n).Type == token.LeftParen
}

// skipConstructorOrDestructor consumes a constructor or destructor
// declaration or definition entirely: the optional virtual/tilde, the
// name, the parameter list, and either "= default" / "= delete", a body,
// or a bare semicolon. No event is emitted.
func (p *Parser) skipConstructorOrDestructor() {
	p.skipIgnorable()
	p.match(token.Virtual)
	p.skipIgnorable()
	p.match(token.Tilde)
	p.skipIgnorable()
	p.advance() // name
	p.skipParameterList()
	p.skipIgnorable()

	// Member-initializer list, e.g. "Foo() : x(0), y(1) {}".
	if p.match(token.Colon) {
		for !p.atEnd() && !p.check(token.LeftBrace) && !p.check(token.Semicolon) {
			p.advance()
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
}

// skipParameterList consumes a '(' already at or ahead of the current
// position and everything up to its matching ')'.
func (p *Parser) skipParameterList() {
	p.skipIgnorable()
	if !p.check(token.LeftParen) {
		return
	}
	depth := 0
	for !p.atEnd() {
		switch p.peek().Type {
		case token.LeftParen:
			depth++
		case token.RightParen:
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
