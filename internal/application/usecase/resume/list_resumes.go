package resume

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type ListResumesUseCase struct {
	resumeRepo resume.Repository
	logger     logger.Logger
}

func NewListResumesUseCase(repo resume.Repository, log logger.Logger) *ListResumesUseCase {
	return &ListResumesUseCase{
		resumeRepo: repo,
		logger:     log,
	}
}

type ListResumesInput struct {
	OwnerID uuid.UUID
	Page    int
	Limit   int
}

type ListResumesOutput struct {
	Resumes []*resume.Resume
}

func (uc *ListResumesUseCase) Execute(ctx context.Context, input ListResumesInput) (*ListResumesOutput, error) {

	if input.Limit <= 0 || input.Limit > 100 {
		input.Limit = 20
	}
	if input.Page <= 0 {
		input.Page = 1
	}
	offset := (input.Page - 1) * input.Limit

	resumes, err := uc.resumeRepo.ListByOwner(ctx, input.OwnerID, input.Limit, offset)
	if err != nil {
		return nil, err
	}
	if resumes == nil {
		resumes = []*resume.Resume{}
	}

	return &ListResumesOutput{Resumes: resumes}, nil
}
