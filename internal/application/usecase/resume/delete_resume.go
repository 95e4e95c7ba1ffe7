package resume

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/adapters/event"
	"github.com/khoahotran/resume-builder/internal/application/service"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type DeleteResumeUseCase struct {
	resumeRepo resume.Repository
	publisher  service.EventPublisher
	logger     logger.Logger
}

func NewDeleteResumeUseCase(repo resume.Repository, pub service.EventPublisher, log logger.Logger) *DeleteResumeUseCase {
	return &DeleteResumeUseCase{
		resumeRepo: repo,
		publisher:  pub,
		logger:     log,
	}
}

type DeleteResumeInput struct {
	ResumeID uuid.UUID
	OwnerID  uuid.UUID
}

func (uc *DeleteResumeUseCase) Execute(ctx context.Context, input DeleteResumeInput) error {
	ctx, span := tracer.Start(ctx, "DeleteResume")
	defer span.End()

	if err := uc.resumeRepo.Delete(ctx, input.ResumeID, input.OwnerID); err != nil {
		span.RecordError(err)
		return err
	}
	uc.logger.Info("Deleted resume", zap.String("resume_id", input.ResumeID.String()))

	publish(uc.publisher, uc.logger, &resume.Resume{ID: input.ResumeID, OwnerID: input.OwnerID}, event.ResumeEventDeleted)
	return nil
}
