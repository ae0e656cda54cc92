package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFindTestData(t *testing.T) {
	root := t.TempDir()

	for _, dir := range []string{
		"cmd/oset/testdata",
		"orderedset",
		"internal/logging/testdata/nested/testdata",
		"_examples/repo/testdata",
		".git/testdata",
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, dir), 0o755))
	}

	paths, err := findTestData(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join("cmd", "oset"),
		filepath.Join("internal", "logging"),
	}, paths)
}

func TestEnsureModPath(t *testing.T) {
	root := t.TempDir()
	assert.ErrorIs(t, ensureModPath(root), errNoModule)

	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"), []byte("module example.com/m\n"), 0o644))
	assert.NoError(t, ensureModPath(root))
}
