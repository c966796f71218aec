// Package blobstore provides storage abstraction for parsearch datasets.
//
// BlobStore is the interface for reading and writing immutable dataset blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with mmap-backed reads
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 with range reads and multipart uploads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	    Put(ctx, name, data) error
//	    List(ctx, prefix) ([]string, error)
//	}
//
// Blobs are read through io.ReaderAt so remote backends can serve ranged reads;
// local blobs additionally implement Mappable for zero-copy access.
package blobstore
