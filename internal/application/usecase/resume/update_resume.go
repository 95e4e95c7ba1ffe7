package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/khoahotran/resume-builder/adapters/event"
	"github.com/khoahotran/resume-builder/internal/application/service"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type UpdateResumeUseCase struct {
	resumeRepo resume.Repository
	publisher  service.EventPublisher
	logger     logger.Logger
}

func NewUpdateResumeUseCase(repo resume.Repository, pub service.EventPublisher, log logger.Logger) *UpdateResumeUseCase {
	return &UpdateResumeUseCase{
		resumeRepo: repo,
		publisher:  pub,
		logger:     log,
	}
}

// UpdateResumeInput replaces the whole record. A blank Template keeps the stored one.
type UpdateResumeInput struct {
	ResumeID uuid.UUID
	OwnerID  uuid.UUID
	Title    string
	Data     resume.Data
	Template string
	Theme    *resume.Theme
}

type UpdateResumeOutput struct {
	Resume *resume.Resume
}

func (uc *UpdateResumeUseCase) Execute(ctx context.Context, input UpdateResumeInput) (*UpdateResumeOutput, error) {
	ctx, span := tracer.Start(ctx, "UpdateResume")
	defer span.End()
	span.SetAttributes(attribute.String("resume_id", input.ResumeID.String()))

	existing, err := uc.resumeRepo.FindByID(ctx, input.ResumeID, input.OwnerID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if input.Template != "" {
		template, err := resolveTemplate(input.Template)
		if err != nil {
			return nil, err
		}
		existing.Template = template
	}
	if input.Theme != nil {
		existing.Theme = *input.Theme
	}
	existing.Title = input.Title
	existing.Data = input.Data.Clone()
	existing.Title = existing.DefaultTitle()
	existing.UpdatedAt = time.Now().UTC()

	if err := existing.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("validation failed", err)
	}

	if err := uc.resumeRepo.Update(ctx, existing); err != nil {
		span.RecordError(err)
		return nil, err
	}

	publish(uc.publisher, uc.logger, existing, event.ResumeEventUpdated)
	return &UpdateResumeOutput{Resume: existing}, nil
}
