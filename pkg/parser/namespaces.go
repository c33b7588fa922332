package parser

import (
	"cppgen/pkg/event"
	"cppgen/pkg/token"
)

// parseNamespace recognizes "namespace" IDENT ("::" IDENT)* "{", emitting a
// namespace-push per identifier (for compound declarations like
// "namespace fr::codegen {") followed by a single scope-push for the brace.
func (p *Parser) parseNamespace() bool {
	start := p.pos
	p.advance() // 'namespace'

	var names []string
	for {
		name := p.parseIdentifier()
		if name == "" {
			p.pos = start
			return false
		}
		names = append(names, name)
		p.skipIgnorable()
		if p.match(token.DoubleColon) {
			continue
		}
		break
	}

	p.skipIgnorable()
	if !p.check(token.LeftBrace) {
		p.pos = start
		return false
	}

	for _, name := range names {
		p.bus.Publish(event.Event{Kind: event.NamespacePush, Name: name, ScopeDepth: p.scopeDepth})
	}
	p.advance() // '{'
	p.scopePush()
	return true
}
