package cmd

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cppgen/pkg/config"
)

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stderr
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stderr = w

	fn()

	w.Close()
	os.Stderr = old
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestReportIncludeNoopWithoutConfiguredDirs(t *testing.T) {
	out := captureStderr(t, func() {
		reportInclude("widget.h", &config.Config{}, `#include "missing.h"`)
	})
	assert.Empty(t, out)
}

func TestReportIncludeWarnsWhenNotFound(t *testing.T) {
	cfg := &config.Config{IncludeDirs: []string{t.TempDir()}}
	out := captureStderr(t, func() {
		reportInclude("widget.h", cfg, `#include "missing.h"`)
	})
	assert.Contains(t, out, "missing.h")
	assert.Contains(t, out, "not found")
}

func TestReportIncludeSilentWhenResolved(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "found.h"), nil, 0644))
	cfg := &config.Config{IncludeDirs: []string{dir}}

	out := captureStderr(t, func() {
		reportInclude("widget.h", cfg, `#include "found.h"`)
	})
	assert.Empty(t, out)
}
