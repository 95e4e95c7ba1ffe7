package export

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/adapters/event"
	"github.com/khoahotran/resume-builder/internal/application/service"
	"github.com/khoahotran/resume-builder/internal/compose"
	"github.com/khoahotran/resume-builder/internal/document"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/internal/domain/selection"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

var errNotPDF = errors.New("renderer output is not a PDF")

// ExportUseCase renders a resume to PDF. Output is only returned once it passed the
// signature check; a failed export leaves nothing behind in the cache.
type ExportUseCase struct {
	composer    composer
	html        service.HTMLRenderer
	pdf         service.PDFRenderer
	cache       service.ExportCache
	publisher   service.EventPublisher
	maxAttempts int
	backoff     func(attempt int) time.Duration
	logger      logger.Logger
}

func NewExportUseCase(
	repo resume.Repository,
	selections selection.Repository,
	html service.HTMLRenderer,
	pdf service.PDFRenderer,
	cache service.ExportCache,
	pub service.EventPublisher,
	maxAttempts int,
	log logger.Logger,
) *ExportUseCase {
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &ExportUseCase{
		composer:    composer{resumeRepo: repo, selections: selections, logger: log},
		html:        html,
		pdf:         pdf,
		cache:       cache,
		publisher:   pub,
		maxAttempts: maxAttempts,
		backoff:     func(attempt int) time.Duration { return time.Duration(1<<attempt) * time.Second },
		logger:      log,
	}
}

type ExportOutput struct {
	Template string
	FileName string
	PDF      []byte
	Cached   bool
}

func (uc *ExportUseCase) Execute(ctx context.Context, input Request) (*ExportOutput, error) {
	ctx, span := tracer.Start(ctx, "Export")
	defer span.End()
	span.SetAttributes(attribute.String("resume_id", input.ResumeID.String()))

	c, err := uc.composer.compose(ctx, input)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	out := &ExportOutput{
		Template: c.template.Name(),
		FileName: compose.FileName(c.resume.Data.PersonalInfo, c.template, "pdf"),
	}
	span.SetAttributes(attribute.String("template", out.Template))

	key, err := cacheKey(c.template, c.doc)
	if err != nil {
		return nil, apperror.NewExport(err)
	}

	if pdf, ok := uc.cached(ctx, c, key); ok {
		out.PDF, out.Cached = pdf, true
		return out, nil
	}

	html, err := uc.html.Render(c.doc)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewExport(err)
	}

	pdf, err := uc.renderWithRetry(ctx, html)
	if err != nil {
		span.RecordError(err)
		uc.logger.Error("Export failed", err, zap.String("resume_id", input.ResumeID.String()), zap.String("template", out.Template))
		return nil, apperror.NewExport(err)
	}
	out.PDF = pdf

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, c.resume.ID, key, pdf); err != nil {
			uc.logger.Warn("Failed to cache export", zap.String("resume_id", c.resume.ID.String()), zap.Error(err))
		}
	}

	payload := event.ResumeEventPayload{
		EventType:   event.ResumeEventExported,
		ResumeID:    c.resume.ID,
		OwnerID:     c.resume.OwnerID,
		Template:    out.Template,
		ArtifactKey: ArtifactKey(c.resume.OwnerID, c.resume.ID, out.Template),
	}
	go func() {
		if err := uc.publisher.PublishResumeEvent(context.Background(), payload); err != nil {
			uc.logger.Error("Failed to publish Kafka 'exported' event", err, zap.String("resume_id", payload.ResumeID.String()))
		}
	}()

	return out, nil
}

func (uc *ExportUseCase) cached(ctx context.Context, c *composed, key string) ([]byte, bool) {
	if uc.cache == nil {
		return nil, false
	}
	pdf, ok, err := uc.cache.Get(ctx, c.resume.ID, key)
	if err != nil {
		uc.logger.Warn("Failed to read export cache", zap.String("resume_id", c.resume.ID.String()), zap.Error(err))
		return nil, false
	}
	return pdf, ok && isPDF(pdf)
}

// renderWithRetry retries transient renderer failures with exponential backoff.
func (uc *ExportUseCase) renderWithRetry(ctx context.Context, html string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt < uc.maxAttempts; attempt++ {
		if attempt > 0 {
			wait := uc.backoff(attempt - 1)
			uc.logger.Warn("Retrying PDF render", zap.Int("attempt", attempt+1), zap.Duration("backoff", wait), zap.Error(lastErr))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(wait):
			}
		}

		pdf, err := uc.pdf.RenderPDF(ctx, html)
		if err == nil && !isPDF(pdf) {
			err = errNotPDF
		}
		if err == nil {
			return pdf, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("render failed after %d attempts: %w", uc.maxAttempts, lastErr)
}

func isPDF(b []byte) bool {
	return bytes.HasPrefix(b, []byte("%PDF"))
}

// cacheKey identifies the rendered output: same template and same document tree
// give the same PDF.
func cacheKey(tpl compose.Template, doc document.Document) (string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("hash document: %w", err)
	}
	sum := sha256.Sum256(raw)
	return tpl.Name() + "-" + hex.EncodeToString(sum[:8]), nil
}
