package resume

import (
	"context"

	"github.com/google/uuid"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type GetResumeUseCase struct {
	resumeRepo resume.Repository
	logger     logger.Logger
}

func NewGetResumeUseCase(repo resume.Repository, log logger.Logger) *GetResumeUseCase {
	return &GetResumeUseCase{
		resumeRepo: repo,
		logger:     log,
	}
}

type GetResumeInput struct {
	ResumeID uuid.UUID
	OwnerID  uuid.UUID
}

type GetResumeOutput struct {
	Resume *resume.Resume
}

func (uc *GetResumeUseCase) Execute(ctx context.Context, input GetResumeInput) (*GetResumeOutput, error) {
	r, err := uc.resumeRepo.FindByID(ctx, input.ResumeID, input.OwnerID)
	if err != nil {
		return nil, err
	}
	return &GetResumeOutput{Resume: r}, nil
}
