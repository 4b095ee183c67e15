package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "auth-storage.json")
	store := NewFileStore(path)
	ctx := context.Background()

	s := Session{IsAuthenticated: true, Token: "tok", TokenType: "bearer"}
	assert.NoError(t, store.Save(ctx, &s))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.Equal(t, s, *loaded)
}

func TestFileStoreMissingFile(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))

	loaded, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestFileStoreRawTokenFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")
	assert.NoError(t, os.WriteFile(path, []byte("eyJraWQiOiJsZWdhY3kifQ==\n"), 0o600))

	loaded, err := NewFileStore(path).Load(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, loaded)
	assert.True(t, loaded.IsAuthenticated)
	assert.Equal(t, "eyJraWQiOiJsZWdhY3kifQ==", loaded.Token)
	assert.Equal(t, DefaultTokenType, loaded.TokenType)
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "auth-storage.json")
	store := NewFileStore(path)
	ctx := context.Background()

	// Clearing a file that never existed is not an error.
	assert.NoError(t, store.Clear(ctx))

	assert.NoError(t, store.Save(ctx, &Session{IsAuthenticated: true, Token: "tok"}))
	assert.NoError(t, store.Clear(ctx))

	loaded, err := store.Load(ctx)
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}
