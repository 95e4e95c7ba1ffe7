package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/resume-builder/internal/domain/user"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/auth"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

const minPasswordLength = 8

type RegisterUseCase struct {
	userRepo user.Repository
	login    *LoginUseCase
	logger   logger.Logger
}

func NewRegisterUseCase(repo user.Repository, jwtSvc *auth.JWTService, log logger.Logger) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: repo,
		login:    NewLoginUseCase(repo, jwtSvc, log),
		logger:   log,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Execute creates the account and signs it in. A taken email is a conflict.
func (uc *RegisterUseCase) Execute(ctx context.Context, input RegisterInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "Register")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(input.Email))
	fields := map[string]string{}
	if strings.TrimSpace(input.Name) == "" {
		fields["name"] = "is required"
	}
	if email == "" || !strings.Contains(email, "@") {
		fields["email"] = "must be a valid email address"
	}
	if len(input.Password) < minPasswordLength {
		fields["password"] = "must be at least 8 characters"
	}
	if len(fields) > 0 {
		err := apperror.NewValidation(fields)
		span.RecordError(err)
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		uc.logger.Error("Failed to hash password", err)
		return nil, apperror.NewInternal("failed to hash password", err)
	}

	u := &user.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := uc.userRepo.Save(ctx, u); err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("user_id", u.ID.String()))
	uc.logger.Info("Registered user", zap.String("user_id", u.ID.String()))
	return uc.login.session(ctx, u)
}
