package export

import (
	"context"

	"github.com/khoahotran/resume-builder/internal/document"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/internal/domain/selection"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type DocumentUseCase struct {
	composer composer
}

func NewDocumentUseCase(repo resume.Repository, selections selection.Repository, log logger.Logger) *DocumentUseCase {
	return &DocumentUseCase{composer: composer{resumeRepo: repo, selections: selections, logger: log}}
}

type DocumentOutput struct {
	Template string
	Document document.Document
}

func (uc *DocumentUseCase) Execute(ctx context.Context, input Request) (*DocumentOutput, error) {
	ctx, span := tracer.Start(ctx, "Document")
	defer span.End()

	c, err := uc.composer.compose(ctx, input)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return &DocumentOutput{Template: c.template.Name(), Document: c.doc}, nil
}
