// Package s3 provides an S3 implementation of the blobstore.Store interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("slotlist/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	arch := archive.New[int](store)
//
// # Features
//
//   - Uploads through the S3 transfer manager
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
//   - Custom endpoints for S3-compatible services
package s3
