// Package objstore provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified read-only interface for
// pulling corpus dumps (AllPrintings, SKU and price files, deck exports) from a
// bucket. This abstraction supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/objstore/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//
// # Usage
//
//	client, err := objstore.NewClient(config)
//	exists, err := client.BucketExists(ctx, "corpus")
//	rc, err := client.GetObject(ctx, "corpus", "AllPrintings.json", minio.GetObjectOptions{})
package objstore
