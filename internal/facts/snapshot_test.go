package facts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeExecutable(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0755))
	return path
}

func TestLookup_CollectsEveryPathMatch(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()
	dirC := t.TempDir()

	first := writeExecutable(t, dirA, "tool")
	// dirB has no match on purpose: its index still counts.
	second := writeExecutable(t, dirC, "tool")

	snap := NewSnapshot(strings.Join([]string{dirA, dirB, dirC}, string(os.PathListSeparator)))
	f, err := snap.Lookup("tool")
	require.NoError(t, err)

	require.Len(t, f.ExternalMatches, 2, "every match must be collected, not just the first")
	assert.Equal(t, ExternalMatch{Path: first, PathIndex: 1}, f.ExternalMatches[0])
	assert.Equal(t, ExternalMatch{Path: second, PathIndex: 3}, f.ExternalMatches[1])
}

func TestLookup_SkipsNonExecutableFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data"), []byte("not a program"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0755))

	snap := NewSnapshot(dir)

	f, err := snap.Lookup("data")
	require.NoError(t, err)
	assert.Empty(t, f.ExternalMatches)

	f, err = snap.Lookup("subdir")
	require.NoError(t, err)
	assert.Empty(t, f.ExternalMatches, "directories never count as external matches")
}

func TestLookup_TablesAndSearchCombine(t *testing.T) {
	dir := t.TempDir()
	writeExecutable(t, dir, "echo")

	snap := NewSnapshot(dir)
	snap.Aliases["echo"] = `'echo -n'`
	snap.Functions["echo"] = true

	f, err := snap.Lookup("echo")
	require.NoError(t, err)

	assert.True(t, f.HasAlias)
	assert.Equal(t, `'echo -n'`, f.AliasDefinition)
	assert.True(t, f.HasFunction)
	assert.True(t, f.HasBuiltin, "echo is a bash builtin")
	assert.False(t, f.HasKeyword)
	assert.Len(t, f.ExternalMatches, 1)
}

func TestLookup_UnknownName(t *testing.T) {
	snap := NewSnapshot(t.TempDir())
	f, err := snap.Lookup("nonexistent_xyz")
	require.NoError(t, err)
	assert.True(t, f.Empty())
}

func TestLookup_KeywordTable(t *testing.T) {
	snap := NewSnapshot("")
	for _, kw := range []string{"if", "while", "function", "[["} {
		f, err := snap.Lookup(kw)
		require.NoError(t, err)
		assert.True(t, f.HasKeyword, "expected %q in the keyword table", kw)
	}
}

func TestLookup_PathNamesSkipSearch(t *testing.T) {
	dir := t.TempDir()
	writeExecutable(t, dir, "tool")

	snap := NewSnapshot(dir)
	f, err := snap.Lookup(filepath.Join("bin", "tool"))
	require.NoError(t, err)
	assert.Empty(t, f.ExternalMatches)
}

func TestAllBuiltins(t *testing.T) {
	all := AllBuiltins()
	assert.NotEmpty(t, all)

	seen := make(map[string]bool, len(all))
	for _, name := range all {
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
	assert.True(t, seen["cd"])
	assert.True(t, seen["if"])
}
