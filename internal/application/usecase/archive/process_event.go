package archive

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/adapters/event"
	"github.com/khoahotran/resume-builder/internal/application/service"
	exportUC "github.com/khoahotran/resume-builder/internal/application/usecase/export"
	"github.com/khoahotran/resume-builder/internal/compose"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

var tracer = otel.Tracer("archive_usecase")

// ProcessResumeEventUseCase is the worker side of resume events. Exports are
// re-rendered and archived; edits and deletes drop cached PDFs.
type ProcessResumeEventUseCase struct {
	resumeRepo resume.Repository
	html       service.HTMLRenderer
	pdf        service.PDFRenderer
	store      service.ArtifactStore
	cache      service.ExportCache
	logger     logger.Logger
}

func NewProcessResumeEventUseCase(
	repo resume.Repository,
	html service.HTMLRenderer,
	pdf service.PDFRenderer,
	store service.ArtifactStore,
	cache service.ExportCache,
	log logger.Logger,
) *ProcessResumeEventUseCase {
	return &ProcessResumeEventUseCase{
		resumeRepo: repo,
		html:       html,
		pdf:        pdf,
		store:      store,
		cache:      cache,
		logger:     log,
	}
}

func (uc *ProcessResumeEventUseCase) Execute(ctx context.Context, payload event.ResumeEventPayload) error {
	ctx, span := tracer.Start(ctx, "ProcessResumeEvent")
	defer span.End()
	span.SetAttributes(
		attribute.String("event_type", string(payload.EventType)),
		attribute.String("resume_id", payload.ResumeID.String()),
	)

	log := uc.logger.With(zap.String("event_type", string(payload.EventType)), zap.String("resume_id", payload.ResumeID.String()))

	switch payload.EventType {
	case event.ResumeEventExported:
		return uc.archive(ctx, payload, log)
	case event.ResumeEventUpdated:
		return uc.invalidate(ctx, payload)
	case event.ResumeEventDeleted:
		if err := uc.invalidate(ctx, payload); err != nil {
			return err
		}
		uc.purge(ctx, payload, log)
		return nil
	default:
		log.Debug("Nothing to do for event")
		return nil
	}
}

func (uc *ProcessResumeEventUseCase) archive(ctx context.Context, payload event.ResumeEventPayload, log logger.Logger) error {
	r, err := uc.resumeRepo.FindByID(ctx, payload.ResumeID, payload.OwnerID)
	if err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			log.Warn("Resume not found, skip archive")
			return nil
		}
		return fmt.Errorf("get resume failed: %w", err)
	}

	tpl := compose.ParseTemplateOrDefault(payload.Template)
	doc := compose.Compose(r.Data, tpl, &r.Theme)

	html, err := uc.html.Render(doc)
	if err != nil {
		return fmt.Errorf("render html failed: %w", err)
	}
	pdf, err := uc.pdf.RenderPDF(ctx, html)
	if err != nil {
		return fmt.Errorf("render pdf failed: %w", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		return fmt.Errorf("render pdf failed: output is not a PDF")
	}

	key := payload.ArtifactKey
	if key == "" {
		key = exportUC.ArtifactKey(r.OwnerID, r.ID, tpl.Name())
	}
	url, err := uc.store.Upload(ctx, bytes.NewReader(pdf), key, "application/pdf")
	if err != nil {
		return fmt.Errorf("upload artifact failed: %w", err)
	}

	log.Info("Archived export", zap.String("key", key), zap.String("url", url))
	return nil
}

func (uc *ProcessResumeEventUseCase) invalidate(ctx context.Context, payload event.ResumeEventPayload) error {
	if err := uc.cache.Invalidate(ctx, payload.ResumeID); err != nil {
		return fmt.Errorf("invalidate export cache failed: %w", err)
	}
	return nil
}

// purge removes archived exports for every template. Missing objects are not errors.
func (uc *ProcessResumeEventUseCase) purge(ctx context.Context, payload event.ResumeEventPayload, log logger.Logger) {
	for _, tpl := range compose.Templates() {
		key := exportUC.ArtifactKey(payload.OwnerID, payload.ResumeID, tpl.Name())
		if err := uc.store.Delete(ctx, key); err != nil {
			log.Warn("Failed to delete archived export", zap.String("key", key), zap.Error(err))
		}
	}
}
