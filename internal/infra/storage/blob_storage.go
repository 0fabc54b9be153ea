// Package storage keeps product images in a gocloud.dev bucket. The bucket
// URL picks the driver: file:// for local disks, mem:// for tests, gs:// in
// production.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"feira/config"
	domainerrors "feira/internal/domain/errors"
	"feira/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

// ErrImageNotFound is returned by Open and Delete for unknown keys.
var ErrImageNotFound = domainerrors.ErrImageNotFound

type blobStorage struct {
	bucket *blob.Bucket
	prefix string
}

// Params holds dependencies for ImageStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStorage opens the configured bucket and closes it on shutdown.
func NewImageStorage(params Params) (service.ImageStorage, error) {
	bucketURL, prefix := defaultBucketURL, ""
	if cfg := params.Config.Storage; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		prefix = cfg.ImagePrefix
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Logger.Info("Image bucket opened", slog.String("bucket_url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStorage(bucket, prefix), nil
}

// NewBlobStorage wraps an already opened bucket.
func NewBlobStorage(bucket *blob.Bucket, prefix string) service.ImageStorage {
	return &blobStorage{bucket: bucket, prefix: prefix}
}

func (s *blobStorage) objectKey(key string) string {
	key = strings.TrimLeft(path.Clean("/"+key), "/")
	if s.prefix == "" || strings.HasPrefix(key, s.prefix) {
		return key
	}

	return s.prefix + key
}

func (s *blobStorage) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	objectKey := s.objectKey(key)

	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, objectKey, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write image %s", objectKey)
	}

	return objectKey, nil
}

func (s *blobStorage) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	objectKey := s.objectKey(key)

	reader, err := s.bucket.NewReader(ctx, objectKey, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, "", ErrImageNotFound
		}

		return nil, "", errors.Wrapf(err, "failed to open image %s", objectKey)
	}

	return reader, reader.ContentType(), nil
}

func (s *blobStorage) Delete(ctx context.Context, key string) error {
	objectKey := s.objectKey(key)

	if err := s.bucket.Delete(ctx, objectKey); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return ErrImageNotFound
		}

		return errors.Wrapf(err, "failed to delete image %s", objectKey)
	}

	return nil
}
