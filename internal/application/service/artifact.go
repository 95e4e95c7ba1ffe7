package service

import (
	"context"
	"io"
)

// ArtifactStore keeps exported files under slash-separated keys such as
// "users/<owner>/exports/<resume>-modern.pdf". Upload returns a public URL.
type ArtifactStore interface {
	Upload(ctx context.Context, body io.Reader, key string, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
