package parser

// parseUsingSkip recognizes a top-level "using" or "typedef" declaration
// and discards it: consume up to the next semicolon, no event emitted.
func (p *Parser) parseUsingSkip() bool {
	p.skipToSemicolon()
	return true
}
