package store_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/muralhq/mural/internal/store"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	s, err := store.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.Get("favorites")
	require.False(t, ok)

	require.NoError(t, s.Set("favorites", `["w1","w3"]`))

	v, ok := s.Get("favorites")
	require.True(t, ok)
	require.Equal(t, `["w1","w3"]`, v)

	require.NoError(t, s.Delete("favorites"))
	_, ok = s.Get("favorites")
	require.False(t, ok)
}

func TestLocalStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := store.NewLocalStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("favorites", `["w2"]`))
	require.NoError(t, s.Close())

	reopened, err := store.NewLocalStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	v, ok := reopened.Get("favorites")
	require.True(t, ok)
	require.Equal(t, `["w2"]`, v)
}

func TestLocalStoreMemoryOnlyMode(t *testing.T) {
	s, err := store.NewLocalStore("")
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Set("k", "v"))
	v, ok := s.Get("k")
	require.True(t, ok)
	require.Equal(t, "v", v)
}
