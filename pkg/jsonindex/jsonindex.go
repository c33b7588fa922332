// Package jsonindex encodes and decodes the on-disk JSON form of a
// catalog.Catalog, matching the {"enums": ..., "classes": ...} shape that
// IndexCode.cpp's cereal JSON archive produced: a flat object per
// section, keyed by fully qualified name.
package jsonindex

import (
	"encoding/json"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"cppgen/pkg/catalog"
)

// Encode writes cat to w as indented JSON.
func Encode(w io.Writer, cat *catalog.Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cat); err != nil {
		return errors.Wrap(err, "encoding catalog")
	}
	return nil
}

// Decode reads a catalog.Catalog from r.
func Decode(r io.Reader) (*catalog.Catalog, error) {
	cat := catalog.NewCatalog()
	if err := json.NewDecoder(r).Decode(cat); err != nil {
		return nil, errors.Wrap(err, "decoding catalog")
	}
	if cat.Enums == nil {
		cat.Enums = make(map[string]catalog.EnumData)
	}
	if cat.Classes == nil {
		cat.Classes = make(map[string]catalog.ClassData)
	}
	return cat, nil
}

// WriteFile encodes cat and writes it to path.
func WriteFile(path string, cat *catalog.Catalog) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating %s", path)
	}
	defer f.Close()
	return Encode(f, cat)
}

// ReadFile decodes a catalog.Catalog from path.
func ReadFile(path string) (*catalog.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer f.Close()
	return Decode(f)
}
