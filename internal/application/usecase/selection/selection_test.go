package selection

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/resume-builder/internal/compose"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/internal/domain/selection"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Get(ctx context.Context, userID uuid.UUID) (*selection.Selection, error) {
	args := m.Called(userID)
	s, _ := args.Get(0).(*selection.Selection)
	return s, args.Error(1)
}

func (m *mockRepo) Set(ctx context.Context, userID uuid.UUID, sel selection.Selection) error {
	return m.Called(userID, sel).Error(0)
}

func (m *mockRepo) Clear(ctx context.Context, userID uuid.UUID) error {
	return m.Called(userID).Error(0)
}

func TestGet_DefaultsToClassic(t *testing.T) {
	repo := new(mockRepo)
	user := uuid.New()
	repo.On("Get", user).Return(nil, nil)

	sel, err := NewSelectionUseCase(repo, logger.NewNopLogger()).Get(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, "classic", sel.Template)
	assert.Equal(t, compose.Classic{}.DefaultTheme(), sel.Theme)
}

func TestGet_StoreError(t *testing.T) {
	repo := new(mockRepo)
	user := uuid.New()
	repo.On("Get", user).Return(nil, errors.New("redis down"))

	_, err := NewSelectionUseCase(repo, logger.NewNopLogger()).Get(context.Background(), user)
	assert.ErrorIs(t, err, apperror.ErrInternal)
}

func TestSet_NormalizesAndMerges(t *testing.T) {
	repo := new(mockRepo)
	user := uuid.New()
	want := selection.Selection{
		Template: "modern",
		Theme:    resume.Theme{PrimaryColor: "#ff0000"}.Merge(compose.Modern{}.DefaultTheme()),
	}
	repo.On("Set", user, want).Return(nil)

	got, err := NewSelectionUseCase(repo, logger.NewNopLogger()).Set(context.Background(), user, selection.Selection{
		Template: " MODERN ",
		Theme:    resume.Theme{PrimaryColor: "#ff0000"},
	})
	require.NoError(t, err)
	assert.Equal(t, &want, got)
	repo.AssertExpectations(t)
}

func TestSet_RejectsUnknownTemplate(t *testing.T) {
	repo := new(mockRepo)

	_, err := NewSelectionUseCase(repo, logger.NewNopLogger()).Set(context.Background(), uuid.New(), selection.Selection{Template: "fancy"})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	repo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything)
}
