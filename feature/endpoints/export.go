package endpoints

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"autoscan/feature/endpoints/models"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ExportPrefix is the object prefix of location snapshots.
const ExportPrefix = "exports/"

// Snapshot is the exported state of the endpoints table.
type Snapshot struct {
	GeneratedAt time.Time         `json:"generated_at"`
	Count       int               `json:"count"`
	Endpoints   []models.Endpoint `json:"endpoints"`
}

// ExportReport describes an uploaded snapshot.
type ExportReport struct {
	Bucket string `json:"bucket"`
	Object string `json:"object"`
	Count  int    `json:"count"`
	Size   int64  `json:"size"`
}

// Export uploads the current location of every device as one JSON object.
// The bucket is created when missing.
func (s *Service) Export(ctx context.Context) (*ExportReport, error) {
	if s.client == nil {
		return nil, fmt.Errorf("storage client not configured")
	}

	rows, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	data, err := json.MarshalIndent(Snapshot{
		GeneratedAt: now,
		Count:       len(rows),
		Endpoints:   rows,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		if err := s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", s.bucket, err)
		}
		s.logger.Info("Created export bucket", zap.String("bucket", s.bucket))
	}

	object := ExportPrefix + "endpoints-" + now.Format("20060102T150405Z") + ".json"
	info, err := s.client.PutObject(ctx, s.bucket, object, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return nil, fmt.Errorf("failed to upload snapshot: %w", err)
	}

	s.logger.Info("Snapshot exported",
		zap.String("bucket", s.bucket),
		zap.String("object", object),
		zap.Int("count", len(rows)),
	)

	return &ExportReport{
		Bucket: s.bucket,
		Object: object,
		Count:  len(rows),
		Size:   info.Size,
	}, nil
}
