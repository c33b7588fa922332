package parser

import (
	"cppgen/pkg/event"
	"cppgen/pkg/token"
)

// parseAnnotation recognizes "[[" ... "]]" and emits an annotation-found
// event carrying the raw inner text. It returns the inner text, or "" if
// the current token is not a "[[".
func (p *Parser) parseAnnotation() string {
	if !p.check(token.DoubleLeftBracket) {
		return ""
	}
	p.advance() // '[['

	var text string
	for !p.atEnd() && !p.check(token.DoubleRightBracket) {
		text += p.advance().Value
	}
	p.match(token.DoubleRightBracket)

	p.bus.Publish(event.Event{Kind: event.AnnotationFound, Annotation: text})
	return text
}
