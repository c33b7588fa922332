// Package diag renders diagnostics for conditions the filter pipeline and
// the CLI layer can recover from but still want surfaced to the user —
// the line filters' "sentinel seen with no current class" case chief
// among them. It trades the structured, LSP-shaped diagnostics of this
// corpus's query parser for a single severity-colored line, since the
// line pipeline has no source ranges to report.
package diag

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
)

// Severity classifies a Diagnostic for coloring and, eventually, filtering.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic is a single user-facing notice, e.g. a sentinel encountered
// outside any class, or a class referenced by a filter that the catalog
// never saw.
type Diagnostic struct {
	Severity Severity
	Message  string
	File     string
	Line     int
}

// String renders the diagnostic the way Emit writes it, without the color
// codes, for callers that want the plain text (tests, log files).
func (d Diagnostic) String() string {
	loc := d.File
	if d.Line > 0 {
		loc = fmt.Sprintf("%s:%d", d.File, d.Line)
	}
	if loc == "" {
		return fmt.Sprintf("[%s] %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", d.Severity, loc, d.Message)
}

// Emit writes the diagnostic to stderr, colored by severity.
func Emit(d Diagnostic) {
	text := d.String()
	switch d.Severity {
	case SeverityError:
		fmt.Fprintln(os.Stderr, pterm.Red(text))
	default:
		fmt.Fprintln(os.Stderr, pterm.Yellow(text))
	}
}

// Warnf is a convenience for the common case: a warning with no
// file/line, built from a format string.
func Warnf(format string, args ...interface{}) {
	Emit(Diagnostic{Severity: SeverityWarning, Message: fmt.Sprintf(format, args...)})
}
