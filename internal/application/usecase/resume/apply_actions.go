package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/adapters/event"
	"github.com/khoahotran/resume-builder/internal/application/service"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/internal/editor"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

// ApplyActionsUseCase runs section edits against the stored resume and saves the
// result as a whole. A batch either applies completely or not at all.
type ApplyActionsUseCase struct {
	resumeRepo resume.Repository
	publisher  service.EventPublisher
	logger     logger.Logger
}

func NewApplyActionsUseCase(repo resume.Repository, pub service.EventPublisher, log logger.Logger) *ApplyActionsUseCase {
	return &ApplyActionsUseCase{
		resumeRepo: repo,
		publisher:  pub,
		logger:     log,
	}
}

type ApplyActionsInput struct {
	ResumeID uuid.UUID
	OwnerID  uuid.UUID
	Actions  []editor.Envelope
}

type ApplyActionsOutput struct {
	Resume *resume.Resume
}

func (uc *ApplyActionsUseCase) Execute(ctx context.Context, input ApplyActionsInput) (*ApplyActionsOutput, error) {
	ctx, span := tracer.Start(ctx, "ApplyActions")
	defer span.End()
	span.SetAttributes(
		attribute.String("resume_id", input.ResumeID.String()),
		attribute.Int("actions", len(input.Actions)),
	)

	if len(input.Actions) == 0 {
		return nil, apperror.NewInvalidInput("at least one action is required", nil)
	}
	actions, err := editor.DecodeAll(input.Actions)
	if err != nil {
		return nil, apperror.NewInvalidInput(err.Error(), err)
	}

	existing, err := uc.resumeRepo.FindByID(ctx, input.ResumeID, input.OwnerID)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	store := editor.NewStore(existing.Data)
	if err := store.Dispatch(actions...); err != nil {
		span.RecordError(err)
		return nil, actionError(err)
	}

	existing.Data = store.Snapshot()
	existing.UpdatedAt = time.Now().UTC()
	if err := uc.resumeRepo.Update(ctx, existing); err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.logger.Debug("Applied resume actions", zap.String("resume_id", existing.ID.String()), zap.Int("count", len(actions)))
	publish(uc.publisher, uc.logger, existing, event.ResumeEventUpdated)
	return &ApplyActionsOutput{Resume: existing}, nil
}

func actionError(err error) error {
	var fields editor.FieldErrors
	if errors.As(err, &fields) {
		return apperror.NewValidation(fields)
	}
	return apperror.NewInvalidInput(err.Error(), err)
}
