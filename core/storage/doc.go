// Package storage provides the object storage client used for location snapshots.
//
// It wraps the MinIO Go client, which talks to both AWS S3 and self-hosted MinIO.
// Only the operations needed to publish a snapshot are exposed: checking and
// creating the bucket, and uploading an object.
//
// # Client Interface
//
// The Client interface makes storage interactions easy to mock in unit tests
// (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	exists, err := client.BucketExists(ctx, cfg.Storage.Bucket)
package storage
