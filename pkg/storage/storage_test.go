package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) (*Manager, string) {
	t.Helper()
	dir := t.TempDir()
	logger := zerolog.Nop()
	return New(dir, &logger), dir
}

func TestManager_WriteAndReadFile(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	content := []byte("<FormLabel>Capacity</FormLabel>")
	require.NoError(t, m.WriteFile(ctx, "src/PropertyForm.tsx", content))

	got, err := m.ReadFile(ctx, "src/PropertyForm.tsx")
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestManager_ReadFile_Missing(t *testing.T) {
	m, _ := newTestManager(t)

	_, err := m.ReadFile(context.Background(), "nope.tsx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading file")
}

func TestManager_WriteFileAtomic_LeavesNoTempFile(t *testing.T) {
	m, dir := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.WriteFile(ctx, "a.tsx", []byte("one")))
	require.NoError(t, m.WriteFileAtomic(ctx, "a.tsx", []byte("two")))

	got, err := m.ReadFile(ctx, "a.tsx")
	require.NoError(t, err)
	assert.Equal(t, "two", string(got))

	_, err = os.Stat(filepath.Join(dir, "a.tsx.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestManager_FileExists(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	exists, err := m.FileExists(ctx, "a.tsx")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, m.WriteFile(ctx, "a.tsx", []byte("x")))

	exists, err = m.FileExists(ctx, "a.tsx")
	require.NoError(t, err)
	assert.True(t, exists)
}
