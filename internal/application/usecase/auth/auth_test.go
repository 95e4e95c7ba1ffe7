package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/resume-builder/internal/domain/user"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/auth"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	args := m.Called(id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Save(ctx context.Context, u *user.User) error {
	return m.Called(u).Error(0)
}

func newJWT() *auth.JWTService {
	return auth.NewJWTService("test-secret", time.Hour)
}

func TestLogin_Success(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)
	u := &user.User{ID: uuid.New(), Email: "ada@example.org", Name: "Ada", PasswordHash: hash}

	repo := new(mockUserRepo)
	repo.On("FindByEmail", "ada@example.org").Return(u, nil)

	jwtSvc := newJWT()
	out, err := NewLoginUseCase(repo, jwtSvc, logger.NewNopLogger()).Execute(context.Background(), LoginInput{
		Email: " ada@example.org ", Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.Equal(t, u.ID.String(), out.ID)
	assert.Equal(t, "Ada", out.Name)
	assert.Equal(t, "ada@example.org", out.Email)

	claims, err := jwtSvc.ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	repo.AssertExpectations(t)
}

func TestLogin_BadCredentials(t *testing.T) {
	hash, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	repo := new(mockUserRepo)
	repo.On("FindByEmail", "ada@example.org").Return(&user.User{ID: uuid.New(), PasswordHash: hash}, nil)
	repo.On("FindByEmail", "nobody@example.org").Return(nil, apperror.NewNotFound("user", "nobody@example.org"))

	uc := NewLoginUseCase(repo, newJWT(), logger.NewNopLogger())

	_, err = uc.Execute(context.Background(), LoginInput{Email: "ada@example.org", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = uc.Execute(context.Background(), LoginInput{Email: "nobody@example.org", Password: "x"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestRegister(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Save", mock.MatchedBy(func(u *user.User) bool {
		return u.Email == "ada@example.org" && u.Name == "Ada" && auth.CheckPasswordHash("correct-horse", u.PasswordHash)
	})).Return(nil).Once()

	out, err := NewRegisterUseCase(repo, newJWT(), logger.NewNopLogger()).Execute(context.Background(), RegisterInput{
		Name: "Ada", Email: "Ada@Example.org", Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, "ada@example.org", out.Email)
	assert.NotEmpty(t, out.AccessToken)
	repo.AssertExpectations(t)
}

func TestRegister_Conflict(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("Save", mock.Anything).Return(apperror.NewConflict("user", "email", "ada@example.org"))

	_, err := NewRegisterUseCase(repo, newJWT(), logger.NewNopLogger()).Execute(context.Background(), RegisterInput{
		Name: "Ada", Email: "ada@example.org", Password: "correct-horse",
	})
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestRegister_Validation(t *testing.T) {
	repo := new(mockUserRepo)

	_, err := NewRegisterUseCase(repo, newJWT(), logger.NewNopLogger()).Execute(context.Background(), RegisterInput{
		Email: "not-an-email", Password: "short",
	})
	require.ErrorIs(t, err, apperror.ErrInvalidInput)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, map[string]string{
		"name":     "is required",
		"email":    "must be a valid email address",
		"password": "must be at least 8 characters",
	}, appErr.Fields)
	repo.AssertNotCalled(t, "Save", mock.Anything)
}
