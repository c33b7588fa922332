// Package catalog holds the data model the parser's event stream is
// reduced into (NamespaceEntry, EnumData, MemberData, MethodData,
// ClassData, Catalog) and the three drivers (NamespaceTracker,
// EnumCollector, ClassCollector) that subscribe to a *event.Bus to build it.
package catalog

import "strings"

// NamespaceEntry records a namespace declaration and the scope depth at
// which it was introduced, so a NamespaceTracker knows when the namespace
// has gone out of scope.
type NamespaceEntry struct {
	Name       string `json:"name"`
	ScopeDepth int    `json:"scopeDepth"`
}

// EnumData is everything recorded about one enumeration.
type EnumData struct {
	Namespaces  []string `json:"namespaces"`
	Name        string   `json:"name"`
	IsClassEnum bool     `json:"isClassEnum"`
	DefinedIn   string   `json:"definedIn"`
	Identifiers []string `json:"identifiers"`
}

// Namespace returns the namespaces joined with "::", e.g. "fr::codegen".
func (e *EnumData) Namespace() string {
	return strings.Join(e.Namespaces, "::")
}

// FullyQualifiedName is namespaces + "::" + name, or just name at global
// scope.
func (e *EnumData) FullyQualifiedName() string {
	return join(e.Namespaces, e.Name)
}

func (e *EnumData) clear() {
	e.Namespaces = nil
	e.Name = ""
	e.IsClassEnum = false
	e.Identifiers = nil
}

// MemberData is one data member of a class or struct.
type MemberData struct {
	Type           string `json:"type"`
	Name           string `json:"name"`
	IsPublic       bool   `json:"isPublic"`
	IsProtected    bool   `json:"isProtected"`
	IsConst        bool   `json:"isConst"`
	IsStatic       bool   `json:"isStatic"`
	Serializable   bool   `json:"serializable"`
	GenerateGetter bool   `json:"generateGetter"`
	GenerateSetter bool   `json:"generateSetter"`
}

// MethodData is one method of a class or struct.
type MethodData struct {
	ReturnType  string `json:"returnType"`
	Name        string `json:"name"`
	IsPublic    bool   `json:"isPublic"`
	IsProtected bool   `json:"isProtected"`
	IsConst     bool   `json:"isConst"`
	IsStatic    bool   `json:"isStatic"`
	IsVirtual   bool   `json:"isVirtual"`
}

// ClassData is everything recorded about one class or struct.
type ClassData struct {
	DefinedIn    string       `json:"definedIn"`
	Namespaces   []string     `json:"namespaces"`
	Name         string       `json:"name"`
	Parents      []string     `json:"parents"`
	Methods      []MethodData `json:"methods"`
	Members      []MemberData `json:"members"`
	IsStruct     bool         `json:"isStruct"`
	Serializable bool         `json:"serializable"`
}

// Namespace returns the namespaces joined with "::".
func (c *ClassData) Namespace() string {
	return strings.Join(c.Namespaces, "::")
}

// FullyQualifiedName is namespaces + "::" + name, or just name at global
// scope.
func (c *ClassData) FullyQualifiedName() string {
	return join(c.Namespaces, c.Name)
}

func (c *ClassData) clear() {
	*c = ClassData{}
}

func join(namespaces []string, name string) string {
	if len(namespaces) == 0 {
		return name
	}
	return strings.Join(namespaces, "::") + "::" + name
}

// Catalog is the accumulated result of one or more parses: every discovered
// enum and class, keyed by fully qualified name. On a key collision the
// later definition replaces the earlier one. Neither Catalog nor the
// collectors report the collision; a caller that cares checks for the key
// before inserting (as cmd/index.go does), since the map itself can't
// distinguish "first insert" from "overwrite" after the fact.
type Catalog struct {
	Enums   map[string]EnumData  `json:"enums"`
	Classes map[string]ClassData `json:"classes"`
}

// NewCatalog returns an empty Catalog ready to accumulate into.
func NewCatalog() *Catalog {
	return &Catalog{
		Enums:   make(map[string]EnumData),
		Classes: make(map[string]ClassData),
	}
}

// Merge copies every entry of other into c, later-writer-wins on collision,
// for combining catalogs built from independent per-file parses.
func (c *Catalog) Merge(other *Catalog) {
	for k, v := range other.Enums {
		c.Enums[k] = v
	}
	for k, v := range other.Classes {
		c.Classes[k] = v
	}
}

// ByBareClassName re-keys the class half of the catalog by bare class name
// instead of fully qualified name, for consumers (pkg/linefilter) that only
// know a class by the name the line mini-parser saw on a "class Foo {"
// line, with no namespace context. Collisions across namespaces are a
// known limitation: last writer wins.
func (c *Catalog) ByBareClassName() map[string]ClassData {
	out := make(map[string]ClassData, len(c.Classes))
	for _, class := range c.Classes {
		out[class.Name] = class
	}
	return out
}
