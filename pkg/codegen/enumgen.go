// Package codegen renders the header and source text for the
// generate-enum-functions pipeline: given a set of enums discovered by
// pkg/catalog, it emits a to_string overload and an operator<< overload
// for each one. Callers accumulate the enum set themselves (typically via
// catalog.EnumCollector.OnEnumAvailable into a local map) and pass it in;
// this package holds no state of its own between calls.
package codegen

import (
	"fmt"
	"io"
	"sort"

	"cppgen/pkg/catalog"
)

// sortedKeys returns the fully qualified enum names in enums, sorted, so
// generated output is deterministic across runs.
func sortedKeys(enums map[string]catalog.EnumData) []string {
	keys := make([]string, 0, len(enums))
	for k := range enums {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteEnumHeader writes a header declaring to_string and operator<< for
// every enum in enums, #including enumSource so the generated header is
// self-contained.
func WriteEnumHeader(w io.Writer, enums map[string]catalog.EnumData, enumSource string) error {
	lines := []string{
		"/* This is generated code. Do not edit. Unless you really want to. */",
		"#pragma once",
		"#include <string>",
		"#include <iostream>",
		fmt.Sprintf("#include <%s>", enumSource),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}

	for _, key := range sortedKeys(enums) {
		if _, err := fmt.Fprintf(w, "std::string to_string(const %s& value); // Converts enum to a string representation\n", key); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "std::ostream& operator<<(std::ostream& stream, const %s& value);\n", key); err != nil {
			return err
		}
	}
	return nil
}

// WriteEnumSource writes the to_string and operator<< definitions for
// every enum in enums, #including myHeader (the header WriteEnumHeader
// produced for the same enum set).
func WriteEnumSource(w io.Writer, enums map[string]catalog.EnumData, myHeader string) error {
	if _, err := fmt.Fprintln(w, "/* This is generated code. Do not edit. Unless you really want to. */"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "#include <%s>\n\n", myHeader); err != nil {
		return err
	}

	for _, key := range sortedKeys(enums) {
		e := enums[key]
		if err := writeToString(w, key, e); err != nil {
			return err
		}
		if err := writeStreamOperator(w, key, e); err != nil {
			return err
		}
	}
	return nil
}

// caseLabel returns the case label for an enumerator, and the text to
// render as its string value. The label is always qualified enough to
// compile in the switch: the enum's own name for a class enum, or the
// enclosing namespace for an unscoped enum declared inside one.
//
// The rendered text differs between to_string and operator<<: to_string
// uses the bare identifier even for a namespace-scoped unscoped enum,
// while operator<< renders the namespace-qualified form. This mirrors an
// inconsistency in the original generator rather than a deliberate
// design; qualifyText is true only for the operator<< caller.
func caseLabel(enumKey string, e catalog.EnumData, id string, qualifyText bool) (label, text string) {
	if e.IsClassEnum {
		qualified := enumKey + "::" + id
		return qualified, qualified
	}
	ns := e.Namespace()
	if ns == "" {
		return id, id
	}
	label = ns + "::" + id
	if qualifyText {
		return label, label
	}
	return label, id
}

func writeToString(w io.Writer, key string, e catalog.EnumData) error {
	if _, err := fmt.Fprintf(w, "std::string to_string(const %s& value) {\n", key); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, " switch(value) {"); err != nil {
		return err
	}
	for _, id := range e.Identifiers {
		label, text := caseLabel(key, e, id, false)
		if _, err := fmt.Fprintf(w, "   case %s:\n", label); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "      return \"%s\";\n", text); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "   }"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, " return \"UNKNOWN VALUE\";"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeStreamOperator(w io.Writer, key string, e catalog.EnumData) error {
	if _, err := fmt.Fprintf(w, "std::ostream& operator<<(std::ostream& stream, const %s &value) { \n", key); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, " switch(value) {"); err != nil {
		return err
	}
	for _, id := range e.Identifiers {
		label, text := caseLabel(key, e, id, true)
		if _, err := fmt.Fprintf(w, "    case %s:\n", label); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "      stream << \"%s\";\n", text); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "      break;"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "    default: "); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "      stream << \"UNKNOWN VALUE\";"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "   }"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, " return stream;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "}"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}
