package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cppgen/pkg/jsonindex"
)

func TestRunIndexMergesMultipleHeaders(t *testing.T) {
	dir := t.TempDir()

	a := filepath.Join(dir, "a.h")
	require.NoError(t, os.WriteFile(a, []byte(`
class Widget {
public:
	int count;
};
`), 0644))

	b := filepath.Join(dir, "b.h")
	require.NoError(t, os.WriteFile(b, []byte(`
enum class Status {
	Ok,
	Failed
};
`), 0644))

	out := filepath.Join(dir, "catalog.json")

	indexHeaders = []string{a, b}
	indexOutput = out
	defer func() { indexHeaders, indexOutput = nil, "" }()

	require.NoError(t, runIndex(indexCmd, nil))

	cat, err := jsonindex.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, cat.Classes, "Widget")
	assert.Contains(t, cat.Enums, "Status")
}

func TestRunIndexLaterFileWinsOnCollision(t *testing.T) {
	dir := t.TempDir()

	first := filepath.Join(dir, "first.h")
	require.NoError(t, os.WriteFile(first, []byte(`
class Widget {
public:
	int count;
};
`), 0644))

	second := filepath.Join(dir, "second.h")
	require.NoError(t, os.WriteFile(second, []byte(`
class Widget {
public:
	std::string label;
};
`), 0644))

	out := filepath.Join(dir, "catalog.json")

	indexHeaders = []string{first, second}
	indexOutput = out
	defer func() { indexHeaders, indexOutput = nil, "" }()

	require.NoError(t, runIndex(indexCmd, nil))

	cat, err := jsonindex.ReadFile(out)
	require.NoError(t, err)
	require.Len(t, cat.Classes["Widget"].Members, 1)
	assert.Equal(t, "label", cat.Classes["Widget"].Members[0].Name)
}

func TestRunIndexWalksDirectoryAndSkipsIgnored(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "widget.h"), []byte(`
class Widget {
public:
	int count;
};
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "widget_test.h"), []byte(`
class ShouldNotAppear {
public:
	int x;
};
`), 0644))

	configPath = filepath.Join(dir, ".cppgen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("ignore:\n  - '*_test.h'\n"), 0644))
	defer func() { configPath = "" }()

	out := filepath.Join(dir, "catalog.json")
	indexHeaders = []string{dir}
	indexOutput = out
	defer func() { indexHeaders, indexOutput = nil, "" }()

	require.NoError(t, runIndex(indexCmd, nil))

	cat, err := jsonindex.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, cat.Classes, "Widget")
	assert.NotContains(t, cat.Classes, "ShouldNotAppear")
}
