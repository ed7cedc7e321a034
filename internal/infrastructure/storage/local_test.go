package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreRoundTrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "")
	require.NoError(t, err)
	ctx := context.Background()

	exists, err := store.Exists(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Write(ctx, "abc", strings.NewReader("payload"), 7, "image/png"))

	exists, err = store.Exists(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, exists)

	reader, err := store.Open(ctx, "abc")
	require.NoError(t, err)
	data, err := io.ReadAll(reader)
	reader.Close()
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))

	require.NoError(t, store.Delete(ctx, "abc"))
	exists, err = store.Exists(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStoreDeleteMissingKey(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "")
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), "never-written"))
}

func TestLocalStoreRejectsEscapingKeys(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "")
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"../outside", "a/../../b", ""} {
		err := store.Write(ctx, key, strings.NewReader("x"), 1, "text/plain")
		assert.Error(t, err, "key %q", key)
	}
}

func TestLocalStorePublicURL(t *testing.T) {
	relative, err := NewLocalStore(t.TempDir(), "")
	require.NoError(t, err)
	assert.Equal(t, "/uploads/abc", relative.PublicURL("abc"))

	absolute, err := NewLocalStore(t.TempDir(), "https://cdn.example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/uploads/abc", absolute.PublicURL("abc"))
}
