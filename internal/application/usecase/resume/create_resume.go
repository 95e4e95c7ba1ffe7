package resume

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/adapters/event"
	"github.com/khoahotran/resume-builder/internal/application/service"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type CreateResumeUseCase struct {
	resumeRepo resume.Repository
	publisher  service.EventPublisher
	logger     logger.Logger
}

func NewCreateResumeUseCase(repo resume.Repository, pub service.EventPublisher, log logger.Logger) *CreateResumeUseCase {
	return &CreateResumeUseCase{
		resumeRepo: repo,
		publisher:  pub,
		logger:     log,
	}
}

type CreateResumeInput struct {
	OwnerID  uuid.UUID
	Title    string
	Data     resume.Data
	Template string
	Theme    resume.Theme
}

type CreateResumeOutput struct {
	Resume *resume.Resume
}

func (uc *CreateResumeUseCase) Execute(ctx context.Context, input CreateResumeInput) (*CreateResumeOutput, error) {
	ctx, span := tracer.Start(ctx, "CreateResume")
	defer span.End()

	template, err := resolveTemplate(input.Template)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	now := time.Now().UTC()
	r := &resume.Resume{
		ID:        uuid.New(),
		OwnerID:   input.OwnerID,
		Title:     input.Title,
		Data:      input.Data.Clone(),
		Template:  template,
		Theme:     input.Theme,
		CreatedAt: now,
		UpdatedAt: now,
	}
	r.Title = r.DefaultTitle()
	if err := r.Validate(); err != nil {
		return nil, apperror.NewInvalidInput("validation failed", err)
	}

	if err := uc.resumeRepo.Save(ctx, r); err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.String("resume_id", r.ID.String()))
	uc.logger.Info("Created resume", zap.String("resume_id", r.ID.String()), zap.String("owner_id", r.OwnerID.String()))

	publish(uc.publisher, uc.logger, r, event.ResumeEventCreated)
	return &CreateResumeOutput{Resume: r}, nil
}
