// Package lineparser implements a lightweight line-by-line class
// tracker: a recognizer that watches a stream of lines for class or
// struct openings and closings without re-entering the full token-driven
// parser in pkg/parser. It mirrors that parser's narrow, single-purpose
// file layout — one small file, one job — rather than its grammar.
package lineparser

import (
	"bufio"
	"io"
	"regexp"
	"strings"
)

var classOrStruct = regexp.MustCompile(`\b(?:class|struct)\s+(\w+)`)

// MiniParser recognizes "class IDENT"/"struct IDENT" and "};" inside a
// stream of lines fed to it one at a time via Feed. It is deliberately
// unaware of scope depth: any "};" is treated as a class end, trusting the
// convention that classes close this way and that no unrelated "};"
// appears at toplevel. This is a known limitation, not a bug to fix here.
type MiniParser struct {
	onClassPush []func(name string)
	onClassPop  []func()
	onLine      []func(line string)
}

// New creates a MiniParser with no subscribers.
func New() *MiniParser {
	return &MiniParser{}
}

// OnClassPush registers fn to run whenever a "class IDENT" or
// "struct IDENT" is recognized.
func (m *MiniParser) OnClassPush(fn func(name string)) {
	m.onClassPush = append(m.onClassPush, fn)
}

// OnClassPop registers fn to run whenever a "};" is recognized.
func (m *MiniParser) OnClassPop(fn func()) {
	m.onClassPop = append(m.onClassPop, fn)
}

// OnLine registers fn to run for every line, after the class-push/pop
// recognizers have run on it, carrying the line unmodified so downstream
// filters always see the original text.
func (m *MiniParser) OnLine(fn func(line string)) {
	m.onLine = append(m.onLine, fn)
}

// Feed processes one line: it runs the recognizer, firing class-push or
// class-pop callbacks as appropriate, then forwards the line verbatim to
// every line subscriber.
func (m *MiniParser) Feed(line string) {
	if match := classOrStruct.FindStringSubmatch(line); match != nil {
		for _, fn := range m.onClassPush {
			fn(match[1])
		}
	}
	if strings.Contains(line, "};") {
		for _, fn := range m.onClassPop {
			fn()
		}
	}
	for _, fn := range m.onLine {
		fn(line)
	}
}

// Run feeds every line of r to the MiniParser in order.
func (m *MiniParser) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m.Feed(scanner.Text())
	}
	return scanner.Err()
}
