package linefilter

import (
	"fmt"
	"strings"

	"cppgen/pkg/catalog"
	"cppgen/pkg/diag"
)

// getSetSentinel is the line, once whitespace is stripped, that triggers
// getter/setter expansion.
const getSetSentinel = "[[genGetSetMethods]]"

// GetSetFilter expands getSetSentinel into a getter for every member with
// GenerateGetter set, followed by a setter for every member with
// GenerateSetter set, both in source order. The catalog is re-keyed by
// bare class name on construction, matching the mini-parser's class-push
// events, which only ever carry a bare name.
type GetSetFilter struct {
	Filter
	classes map[string]catalog.ClassData
}

// NewGetSetFilter creates a filter backed by cat, re-keyed by bare class
// name.
func NewGetSetFilter(cat *catalog.Catalog) *GetSetFilter {
	return &GetSetFilter{classes: cat.ByBareClassName()}
}

// HandleLine is the subscriber function to pass to an upstream OnLine.
func (f *GetSetFilter) HandleLine(line string) {
	if strings.TrimSpace(line) != getSetSentinel {
		f.Emit(line)
		return
	}

	class, ok := f.classes[f.current]
	if !ok {
		diag.Warnf("%s seen with no known enclosing class (current=%q)", getSetSentinel, f.current)
		f.Emit(line)
		return
	}

	for _, m := range class.Members {
		if m.GenerateGetter {
			f.Emit(fmt.Sprintf("%s get%s() const { return %s; }", m.Type, m.Name, m.Name))
		}
	}
	for _, m := range class.Members {
		if m.GenerateSetter {
			f.Emit(fmt.Sprintf("void set%s(const %s& val) { %s = val; }", m.Name, m.Type, m.Name))
		}
	}
}
