package parser

import "cppgen/pkg/token"

// parseTemplateSkip recognizes "template" "<" ... ">" followed by a class
// or struct definition, and discards the whole thing: the outer braces are
// skipped without emitting any class or member events, because template
// bodies contain patterns this parser cannot safely interpret.
func (p *Parser) parseTemplateSkip() bool {
	start := p.pos
	p.advance() // 'template'
	p.skipIgnorable()

	if !p.check(token.Less) {
		p.pos = start
		return false
	}
	p.skipBalancedAngles()
	p.skipIgnorable()

	switch {
	case p.check(token.Class) || p.check(token.Struct):
		p.advance()
		p.skipIgnorable()
		p.parseIdentifier() // optional name
		p.skipIgnorable()
		if p.check(token.Colon) {
			p.skipPastInheritanceClause()
		}
		p.skipIgnorable()
		p.ignoreScopes()
		p.skipIgnorable()
		p.match(token.Semicolon)
		return true
	case p.check(token.Using):
		p.skipToSemicolon()
		return true
	default:
		// A templated free function: skip the signature and body/semicolon.
		for !p.atEnd() && !p.check(token.LeftBrace) && !p.check(token.Semicolon) {
			p.advance()
		}
		if p.check(token.LeftBrace) {
			p.ignoreScopes()
		} else {
			p.match(token.Semicolon)
		}
		return true
	}
}

// skipPastInheritanceClause consumes a ':' already at the current position
// and the parent list that follows it, stopping right before the opening
// brace, without recording anything — used only by the template-skip path,
// which discards the whole declaration.
func (p *Parser) skipPastInheritanceClause() {
	p.advance() // ':'
	for !p.atEnd() && !p.check(token.LeftBrace) {
		p.advance()
	}
}
