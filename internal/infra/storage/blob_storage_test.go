package storage

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newMemStorage(t *testing.T, prefix string) *blobStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobStorage(bucket, prefix).(*blobStorage)
}

func TestBlobStorage_PutOpenDelete(t *testing.T) {
	ctx := context.Background()
	store := newMemStorage(t, "products/")

	key, err := store.Put(ctx, "abc.png", "image/png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "products/abc.png", key)

	reader, contentType, err := store.Open(ctx, key)
	require.NoError(t, err)
	defer reader.Close()

	body, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", contentType)

	require.NoError(t, store.Delete(ctx, key))

	_, _, err = store.Open(ctx, key)
	assert.ErrorIs(t, err, ErrImageNotFound)
	assert.ErrorIs(t, store.Delete(ctx, key), ErrImageNotFound)
}

func TestBlobStorage_ObjectKey(t *testing.T) {
	store := newMemStorage(t, "products/")

	tests := []struct {
		in   string
		want string
	}{
		{in: "a.png", want: "products/a.png"},
		{in: "products/a.png", want: "products/a.png"},
		{in: "../../etc/passwd", want: "products/etc/passwd"},
		{in: "/x/../y.jpg", want: "products/y.jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, store.objectKey(tt.in))
		})
	}
}
