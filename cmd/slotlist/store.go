package main

import (
	"context"
	"fmt"

	"github.com/hupe1980/slotlist/archive"
	"github.com/hupe1980/slotlist/blobstore"
	"github.com/hupe1980/slotlist/blobstore/minio"
	"github.com/hupe1980/slotlist/blobstore/s3"
	"github.com/hupe1980/slotlist/codec"
)

// openStore opens the archive backend named in cfg. It returns nil when
// archiving is disabled.
func openStore(ctx context.Context, cfg ArchiveConfig) (blobstore.Store, error) {
	switch cfg.Backend {
	case "":
		return nil, nil
	case "local":
		return blobstore.NewLocalStore(cfg.Dir), nil
	case "s3":
		if cfg.S3.Bucket == "" {
			return nil, fmt.Errorf("archive.s3.bucket is required")
		}
		opts := []s3.Option{s3.WithPrefix(cfg.S3.Prefix)}
		if cfg.S3.Region != "" {
			opts = append(opts, s3.WithRegion(cfg.S3.Region))
		}
		if cfg.S3.Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(cfg.S3.Endpoint, cfg.S3.PathStyle))
		}
		store, err := s3.New(ctx, cfg.S3.Bucket, opts...)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "minio":
		store, err := minio.New(cfg.MinIO)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, fmt.Errorf("minio: ensure bucket %s: %w", cfg.MinIO.Bucket, err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown archive backend %q", cfg.Backend)
	}
}

func archiveOptions(cfg ArchiveConfig) ([]archive.Option, error) {
	c, ok := codec.ByName(cfg.Codec)
	if !ok {
		return nil, fmt.Errorf("archive.codec: unknown codec %q", cfg.Codec)
	}
	comp, err := archive.ParseCompression(cfg.Compression)
	if err != nil {
		return nil, err
	}
	return []archive.Option{
		archive.WithCodec(c),
		archive.WithCompression(comp),
		archive.WithParallelism(cfg.Parallelism),
	}, nil
}
