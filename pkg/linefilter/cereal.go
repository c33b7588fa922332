package linefilter

import (
	"fmt"
	"strings"

	"cppgen/pkg/catalog"
	"cppgen/pkg/diag"
)

// cerealSentinel is the line, once whitespace is stripped, that triggers
// save/load expansion.
const cerealSentinel = "[[genCerealLoadSave]]"

// CerealFilter expands cerealSentinel into a templated save() and load()
// pair. A member is included iff its own Serializable flag is set or the
// enclosing class's Serializable flag is set; field order is source
// order. save wraps each field in a cereal::make_nvp named-value pair;
// load reads the field by its bare name.
type CerealFilter struct {
	Filter
	classes map[string]catalog.ClassData
}

// NewCerealFilter creates a filter backed by cat, re-keyed by bare class
// name.
func NewCerealFilter(cat *catalog.Catalog) *CerealFilter {
	return &CerealFilter{classes: cat.ByBareClassName()}
}

// HandleLine is the subscriber function to pass to an upstream OnLine.
func (f *CerealFilter) HandleLine(line string) {
	if strings.TrimSpace(line) != cerealSentinel {
		f.Emit(line)
		return
	}

	class, ok := f.classes[f.current]
	if !ok {
		diag.Warnf("%s seen with no known enclosing class (current=%q)", cerealSentinel, f.current)
		f.Emit(line)
		return
	}

	var fields []catalog.MemberData
	for _, m := range class.Members {
		if m.Serializable || class.Serializable {
			fields = append(fields, m)
		}
	}

	f.Emit("template <typename Archive> void save(Archive& ar) const {")
	for _, m := range fields {
		f.Emit(fmt.Sprintf("    ar(cereal::make_nvp(\"%s\", %s));", m.Name, m.Name))
	}
	f.Emit("}")

	f.Emit("template <typename Archive> void load(Archive& ar) {")
	for _, m := range fields {
		f.Emit(fmt.Sprintf("    ar(%s);", m.Name))
	}
	f.Emit("}")
}
