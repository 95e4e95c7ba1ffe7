package artifact_storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/khoahotran/resume-builder/internal/application/service"
	"github.com/khoahotran/resume-builder/internal/config"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

// NewArtifactStore picks the backend named by storage.provider.
func NewArtifactStore(ctx context.Context, cfg config.Config, log logger.Logger) (service.ArtifactStore, error) {
	switch strings.ToLower(cfg.Storage.Provider) {
	case "", "cloudinary":
		return NewCloudinaryAdapter(cfg, log)
	case "s3":
		return NewS3Adapter(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("unknown storage provider %q", cfg.Storage.Provider)
	}
}
