package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hupe1980/parsearch/blobstore"
	"github.com/hupe1980/parsearch/blobstore/minio"
	"github.com/hupe1980/parsearch/blobstore/s3"
)

// openStore resolves a dataset location to a store and the blob name inside it.
//
//	s3://bucket/key
//	minio://host:port/bucket/key
//	path/to/file
func openStore(ctx context.Context, location string) (blobstore.BlobStore, string, error) {
	switch {
	case strings.HasPrefix(location, "s3://"):
		bucket, key, ok := strings.Cut(strings.TrimPrefix(location, "s3://"), "/")
		if !ok || bucket == "" || key == "" {
			return nil, "", fmt.Errorf("invalid s3 location %q, want s3://bucket/key", location)
		}
		store, err := s3.New(ctx, bucket)
		if err != nil {
			return nil, "", err
		}
		return store, key, nil

	case strings.HasPrefix(location, "minio://"):
		parts := strings.SplitN(strings.TrimPrefix(location, "minio://"), "/", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, "", fmt.Errorf("invalid minio location %q, want minio://host/bucket/key", location)
		}
		store, err := minio.New(parts[0], parts[1])
		if err != nil {
			return nil, "", err
		}
		return store, parts[2], nil

	default:
		return blobstore.NewLocalStore(filepath.Dir(location)), filepath.Base(location), nil
	}
}
