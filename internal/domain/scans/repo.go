package scans

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, e *ScanEvent) error
	ListAll(ctx context.Context) ([]*ScanEvent, error)
	ListByUploader(ctx context.Context, uploader uuid.UUID) ([]*ScanEvent, error)
}
