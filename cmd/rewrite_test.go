package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cppgen/pkg/catalog"
	"cppgen/pkg/jsonindex"
)

func TestRunRewriteExpandsGetSetSentinel(t *testing.T) {
	dir := t.TempDir()

	cat := catalog.NewCatalog()
	cat.Classes["Widget"] = catalog.ClassData{
		Name: "Widget",
		Members: []catalog.MemberData{
			{Type: "int", Name: "count", GenerateGetter: true, GenerateSetter: true},
		},
	}
	catalogPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, jsonindex.WriteFile(catalogPath, cat))

	input := filepath.Join(dir, "widget.h")
	require.NoError(t, os.WriteFile(input, []byte("class Widget {\npublic:\n\tint count;\n\t[[genGetSetMethods]]\n};\n"), 0644))

	output := filepath.Join(dir, "widget_out.h")

	rewriteInput, rewriteOutput, rewriteCatalog = input, output, catalogPath
	defer func() { rewriteInput, rewriteOutput, rewriteCatalog = "", "", "" }()

	require.NoError(t, runRewrite(rewriteCmd, nil))

	out, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(out), "int getcount() const { return count; }")
	assert.Contains(t, string(out), "void setcount(const int& val) { count = val; }")
}
