package resume

import (
	"context"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/internal/application/service"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/internal/importer"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

// ParseResumeUseCase turns an uploaded file into resume data. Dates are normalized
// here, once, so later renders never see the raw strings.
type ParseResumeUseCase struct {
	parser  service.ResumeParser
	maxSize int64
	logger  logger.Logger
}

func NewParseResumeUseCase(parser service.ResumeParser, maxSize int64, log logger.Logger) *ParseResumeUseCase {
	return &ParseResumeUseCase{
		parser:  parser,
		maxSize: maxSize,
		logger:  log,
	}
}

type ParseResumeInput struct {
	File io.ReaderAt
	Size int64
}

type ParseResumeOutput struct {
	Data resume.Data
}

func (uc *ParseResumeUseCase) Execute(ctx context.Context, input ParseResumeInput) (*ParseResumeOutput, error) {
	ctx, span := tracer.Start(ctx, "ParseResume")
	defer span.End()
	span.SetAttributes(attribute.Int64("size", input.Size))

	if uc.maxSize > 0 && input.Size > uc.maxSize {
		return nil, apperror.NewInvalidInput("uploaded file is too large", nil)
	}

	parsed, err := uc.parser.Parse(ctx, input.File, input.Size)
	if err != nil {
		span.RecordError(err)
		uc.logger.Warn("Failed to parse resume upload", zap.Error(err))
		return nil, err
	}

	return &ParseResumeOutput{Data: importer.Import(*parsed)}, nil
}
