package archive

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/resume-builder/adapters/event"
	"github.com/khoahotran/resume-builder/internal/document"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type mockResumeRepo struct {
	mock.Mock
	resume.Repository
}

func (m *mockResumeRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*resume.Resume, error) {
	args := m.Called(id, ownerID)
	r, _ := args.Get(0).(*resume.Resume)
	return r, args.Error(1)
}

type mockHTML struct{ mock.Mock }

func (m *mockHTML) Render(doc document.Document) (string, error) {
	args := m.Called(doc.Template)
	return args.String(0), args.Error(1)
}

type mockPDF struct{ mock.Mock }

func (m *mockPDF) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	args := m.Called(html)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

type mockStore struct{ mock.Mock }

func (m *mockStore) Upload(ctx context.Context, body io.Reader, key string, contentType string) (string, error) {
	b, _ := io.ReadAll(body)
	args := m.Called(key, contentType, string(b))
	return args.String(0), args.Error(1)
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	return m.Called(key).Error(0)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Get(ctx context.Context, resumeID uuid.UUID, key string) ([]byte, bool, error) {
	args := m.Called(resumeID, key)
	return nil, args.Bool(1), args.Error(2)
}

func (m *mockCache) Set(ctx context.Context, resumeID uuid.UUID, key string, pdf []byte) error {
	return m.Called(resumeID, key).Error(0)
}

func (m *mockCache) Invalidate(ctx context.Context, resumeID uuid.UUID) error {
	return m.Called(resumeID).Error(0)
}

type mocks struct {
	repo  *mockResumeRepo
	html  *mockHTML
	pdf   *mockPDF
	store *mockStore
	cache *mockCache
}

func newUseCase() (*ProcessResumeEventUseCase, mocks) {
	m := mocks{new(mockResumeRepo), new(mockHTML), new(mockPDF), new(mockStore), new(mockCache)}
	return NewProcessResumeEventUseCase(m.repo, m.html, m.pdf, m.store, m.cache, logger.NewNopLogger()), m
}

func TestArchive_Exported(t *testing.T) {
	uc, m := newUseCase()
	r := &resume.Resume{ID: uuid.New(), OwnerID: uuid.New(), Data: resume.Data{
		PersonalInfo: resume.PersonalInfo{FirstName: "Ada", Email: "ada@example.org"},
	}}
	m.repo.On("FindByID", r.ID, r.OwnerID).Return(r, nil)
	m.html.On("Render", "creative").Return("<html/>", nil)
	m.pdf.On("RenderPDF", "<html/>").Return([]byte("%PDF-1.7"), nil)
	m.store.On("Upload", "users/x/exports/y-creative.pdf", "application/pdf", "%PDF-1.7").Return("https://cdn/y.pdf", nil)

	err := uc.Execute(context.Background(), event.ResumeEventPayload{
		EventType:   event.ResumeEventExported,
		ResumeID:    r.ID,
		OwnerID:     r.OwnerID,
		Template:    "creative",
		ArtifactKey: "users/x/exports/y-creative.pdf",
	})
	require.NoError(t, err)
	m.store.AssertExpectations(t)
}

func TestArchive_ResumeGone(t *testing.T) {
	uc, m := newUseCase()
	id, owner := uuid.New(), uuid.New()
	m.repo.On("FindByID", id, owner).Return(nil, apperror.NewNotFound("resume", id.String()))

	err := uc.Execute(context.Background(), event.ResumeEventPayload{EventType: event.ResumeEventExported, ResumeID: id, OwnerID: owner})
	require.NoError(t, err)
	m.store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestArchive_RejectsNonPDF(t *testing.T) {
	uc, m := newUseCase()
	r := &resume.Resume{ID: uuid.New(), OwnerID: uuid.New()}
	m.repo.On("FindByID", r.ID, r.OwnerID).Return(r, nil)
	m.html.On("Render", "classic").Return("<html/>", nil)
	m.pdf.On("RenderPDF", "<html/>").Return([]byte("oops"), nil)

	err := uc.Execute(context.Background(), event.ResumeEventPayload{EventType: event.ResumeEventExported, ResumeID: r.ID, OwnerID: r.OwnerID})
	assert.ErrorContains(t, err, "not a PDF")
	m.store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdated_InvalidatesCache(t *testing.T) {
	uc, m := newUseCase()
	id := uuid.New()
	m.cache.On("Invalidate", id).Return(nil)

	require.NoError(t, uc.Execute(context.Background(), event.ResumeEventPayload{EventType: event.ResumeEventUpdated, ResumeID: id}))
	m.cache.AssertExpectations(t)
}

func TestDeleted_PurgesArtifacts(t *testing.T) {
	uc, m := newUseCase()
	id, owner := uuid.New(), uuid.New()
	m.cache.On("Invalidate", id).Return(nil)
	m.store.On("Delete", "users/"+owner.String()+"/exports/"+id.String()+"-modern.pdf").Return(errors.New("missing")).Once()
	m.store.On("Delete", mock.AnythingOfType("string")).Return(nil)

	require.NoError(t, uc.Execute(context.Background(), event.ResumeEventPayload{EventType: event.ResumeEventDeleted, ResumeID: id, OwnerID: owner}))
	m.store.AssertNumberOfCalls(t, "Delete", 5)
}

func TestDeleted_CacheFailureIsRetried(t *testing.T) {
	uc, m := newUseCase()
	id := uuid.New()
	m.cache.On("Invalidate", id).Return(errors.New("redis down"))

	err := uc.Execute(context.Background(), event.ResumeEventPayload{EventType: event.ResumeEventDeleted, ResumeID: id})
	assert.Error(t, err)
	m.store.AssertNotCalled(t, "Delete", mock.Anything)
}

func TestCreated_Ignored(t *testing.T) {
	uc, _ := newUseCase()
	assert.NoError(t, uc.Execute(context.Background(), event.ResumeEventPayload{EventType: event.ResumeEventCreated}))
}
