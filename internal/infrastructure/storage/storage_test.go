package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageKey(t *testing.T) {
	key, err := ImageKey("products", "headphones.PNG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "products/"))
	assert.True(t, strings.HasSuffix(key, ".png"))

	other, err := ImageKey("products", "headphones.png")
	require.NoError(t, err)
	assert.NotEqual(t, key, other)
}

func TestImageKeyRejectsUnsupportedExtension(t *testing.T) {
	_, err := ImageKey("products", "malware.exe")
	assert.Error(t, err)

	_, err = ImageKey("products", "noextension")
	assert.Error(t, err)
}

func TestStubImageStorageRoundTrip(t *testing.T) {
	store := NewStubImageStorage("https://cdn.test/")
	ctx := context.Background()

	url, err := store.Upload(ctx, "products/a.png", []byte("payload"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/products/a.png", url)

	exists, err := store.Exists(ctx, "products/a.png")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Delete(ctx, "products/a.png"))

	exists, err = store.Exists(ctx, "products/a.png")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStubImageStorageRequiresKey(t *testing.T) {
	store := NewStubImageStorage("")

	_, err := store.Upload(context.Background(), "", nil, "image/png")
	assert.Error(t, err)
}
