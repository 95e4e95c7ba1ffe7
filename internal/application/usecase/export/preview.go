package export

import (
	"context"

	"github.com/khoahotran/resume-builder/internal/application/service"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/internal/domain/selection"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type PreviewUseCase struct {
	composer composer
	html     service.HTMLRenderer
	logger   logger.Logger
}

func NewPreviewUseCase(repo resume.Repository, selections selection.Repository, html service.HTMLRenderer, log logger.Logger) *PreviewUseCase {
	return &PreviewUseCase{
		composer: composer{resumeRepo: repo, selections: selections, logger: log},
		html:     html,
		logger:   log,
	}
}

type PreviewOutput struct {
	Template string
	HTML     string
}

func (uc *PreviewUseCase) Execute(ctx context.Context, input Request) (*PreviewOutput, error) {
	ctx, span := tracer.Start(ctx, "Preview")
	defer span.End()

	c, err := uc.composer.compose(ctx, input)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	html, err := uc.html.Render(c.doc)
	if err != nil {
		span.RecordError(err)
		return nil, apperror.NewExport(err)
	}
	return &PreviewOutput{Template: c.template.Name(), HTML: html}, nil
}
