package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIncludePathStripsAngleBrackets(t *testing.T) {
	assert.Equal(t, "widget/widget.h", ParseIncludePath("#include <widget/widget.h>"))
}

func TestParseIncludePathStripsQuotes(t *testing.T) {
	assert.Equal(t, "widget.h", ParseIncludePath(`#include "widget.h"`))
}

func TestResolveIncludeFindsFileUnderConfiguredDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "include"), 0755))
	target := filepath.Join(dir, "include", "widget.h")
	require.NoError(t, os.WriteFile(target, nil, 0644))

	cfg := &Config{IncludeDirs: []string{filepath.Join(dir, "include")}}
	resolved, ok := cfg.ResolveInclude("widget.h")
	require.True(t, ok)
	assert.Equal(t, target, resolved)
}

func TestResolveIncludeNotFoundReturnsFalse(t *testing.T) {
	cfg := &Config{IncludeDirs: []string{t.TempDir()}}
	_, ok := cfg.ResolveInclude("missing.h")
	assert.False(t, ok)
}
