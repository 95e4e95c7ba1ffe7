package service

import (
	"context"

	"github.com/google/uuid"
)

// ExportCache holds rendered PDFs for a short time, keyed by resume, template and a
// hash of the inputs.
type ExportCache interface {
	Get(ctx context.Context, resumeID uuid.UUID, key string) ([]byte, bool, error)
	Set(ctx context.Context, resumeID uuid.UUID, key string, pdf []byte) error
	Invalidate(ctx context.Context, resumeID uuid.UUID) error
}
