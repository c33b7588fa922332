package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunGenerateWritesHeaderAndSource(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "colors.h")
	require.NoError(t, os.WriteFile(input, []byte(`
namespace fr {
enum class Color {
	Red,
	Green
};
}
`), 0644))

	header := filepath.Join(dir, "colors_gen.h")
	cpp := filepath.Join(dir, "colors_gen.cpp")

	generateInput, generateHeader, generateCpp = input, header, cpp
	defer func() { generateInput, generateHeader, generateCpp = "", "", "" }()

	require.NoError(t, runGenerate(generateCmd, nil))

	headerContent, err := os.ReadFile(header)
	require.NoError(t, err)
	assert.Contains(t, string(headerContent), "to_string(const fr::Color& value)")

	cppContent, err := os.ReadFile(cpp)
	require.NoError(t, err)
	assert.Contains(t, string(cppContent), "case fr::Color::Red:")
	assert.Contains(t, string(cppContent), "return \"fr::Color::Red\";")
}

func TestRunGenerateFailsOnUnparsableInput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.h")
	require.NoError(t, os.WriteFile(input, []byte("@@@ not valid"), 0644))

	generateInput = input
	generateHeader = filepath.Join(dir, "out.h")
	generateCpp = filepath.Join(dir, "out.cpp")
	defer func() { generateInput, generateHeader, generateCpp = "", "", "" }()

	err := runGenerate(generateCmd, nil)
	assert.Error(t, err)
}
