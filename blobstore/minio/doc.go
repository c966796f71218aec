// Package minio provides a BlobStore implementation using the MinIO client.
//
// MinIO is an S3-compatible object storage system. This package uses the official
// MinIO Go client and also works with other S3-compatible services such as Ceph,
// SeaweedFS and Garage.
//
// # Basic Usage
//
//	store, err := minio.New("localhost:9000", "datasets",
//	    minio.WithCredentials("minioadmin", "minioadmin"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ds, err := dataset.Load(ctx, store, "iota-1m.bin.lz4")
//
// Without WithCredentials the keys are read from MINIO_ACCESS_KEY and
// MINIO_SECRET_KEY.
package minio
