// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("datasets/"),
//	    s3.WithRegion("us-east-1"),
//	)
//	ds, err := dataset.Load(ctx, store, "iota-1m.bin.zst")
//
// # Features
//
//   - Range reads; whole-blob loads stream in a single request
//   - Multipart uploads for large datasets
//   - Automatic pagination for listing
//   - Configurable prefix and custom endpoints for S3-compatible services
package s3
