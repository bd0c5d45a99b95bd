package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiffin/internal/domain/service"
)

func TestFileStore_RoundTrip(t *testing.T) {
	s := NewFileStore(t.TempDir())

	require.NoError(t, s.Save("header.payload.signature"))

	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "header.payload.signature", token)
}

func TestFileStore_LoadWithoutSave(t *testing.T) {
	s := NewFileStore(t.TempDir())

	_, err := s.Load()

	assert.ErrorIs(t, err, service.ErrNoToken)
}

func TestFileStore_SaveOverwrites(t *testing.T) {
	s := NewFileStore(t.TempDir())

	require.NoError(t, s.Save("first.token.value"))
	require.NoError(t, s.Save("second.token.value"))

	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "second.token.value", token)
}

func TestFileStore_ClearIsIdempotent(t *testing.T) {
	s := NewFileStore(t.TempDir())

	require.NoError(t, s.Save("some.token.value"))
	require.NoError(t, s.Clear())
	require.NoError(t, s.Clear(), "clearing an empty store is a no-op")

	_, err := s.Load()
	assert.ErrorIs(t, err, service.ErrNoToken)
}

func TestFileStore_CreatesDirectoryOnFirstSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "state")
	s := NewFileStore(dir)

	require.NoError(t, s.Save("tok.en.value"))

	token, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok.en.value", token)
}
