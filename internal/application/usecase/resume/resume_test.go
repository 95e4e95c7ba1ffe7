package resume

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/resume-builder/adapters/event"
	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/internal/editor"
	"github.com/khoahotran/resume-builder/internal/importer"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type mockResumeRepo struct {
	mock.Mock
}

func (m *mockResumeRepo) Save(ctx context.Context, r *resume.Resume) error {
	return m.Called(r).Error(0)
}

func (m *mockResumeRepo) Update(ctx context.Context, r *resume.Resume) error {
	return m.Called(r).Error(0)
}

func (m *mockResumeRepo) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	return m.Called(id, ownerID).Error(0)
}

func (m *mockResumeRepo) FindByID(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) (*resume.Resume, error) {
	args := m.Called(id, ownerID)
	r, _ := args.Get(0).(*resume.Resume)
	return r, args.Error(1)
}

func (m *mockResumeRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]*resume.Resume, error) {
	args := m.Called(ownerID, limit, offset)
	rs, _ := args.Get(0).([]*resume.Resume)
	return rs, args.Error(1)
}

// fakePublisher records events; publishing happens on a goroutine.
type fakePublisher struct {
	events chan event.ResumeEventPayload
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{events: make(chan event.ResumeEventPayload, 8)}
}

func (p *fakePublisher) PublishResumeEvent(ctx context.Context, payload event.ResumeEventPayload) error {
	p.events <- payload
	return nil
}

func (p *fakePublisher) next(t *testing.T) event.ResumeEventPayload {
	t.Helper()
	select {
	case e := <-p.events:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")
		return event.ResumeEventPayload{}
	}
}

func sampleData() resume.Data {
	return resume.Data{
		PersonalInfo: resume.PersonalInfo{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.org"},
		Experience: []resume.Experience{
			{ID: "e1", Title: "Analyst", Company: "Engines", StartDate: "2022-01", Current: true},
		},
		Skills: []string{"Go"},
	}
}

func TestCreateResume(t *testing.T) {
	repo := new(mockResumeRepo)
	pub := newFakePublisher()
	owner := uuid.New()

	repo.On("Save", mock.MatchedBy(func(r *resume.Resume) bool {
		return r.OwnerID == owner && r.Template == "classic" && r.Title == "Ada Lovelace Resume"
	})).Return(nil)

	out, err := NewCreateResumeUseCase(repo, pub, logger.NewNopLogger()).Execute(context.Background(), CreateResumeInput{
		OwnerID: owner,
		Data:    sampleData(),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, out.Resume.ID)

	e := pub.next(t)
	assert.Equal(t, event.ResumeEventCreated, e.EventType)
	assert.Equal(t, out.Resume.ID, e.ResumeID)
	assert.Equal(t, owner, e.OwnerID)
	repo.AssertExpectations(t)
}

func TestCreateResume_UnknownTemplate(t *testing.T) {
	repo := new(mockResumeRepo)

	_, err := NewCreateResumeUseCase(repo, newFakePublisher(), logger.NewNopLogger()).Execute(context.Background(), CreateResumeInput{
		OwnerID:  uuid.New(),
		Template: "fancy",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	repo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestListResumes_Paging(t *testing.T) {
	repo := new(mockResumeRepo)
	owner := uuid.New()
	repo.On("ListByOwner", owner, 20, 0).Return(nil, nil)
	repo.On("ListByOwner", owner, 10, 20).Return([]*resume.Resume{{ID: uuid.New()}}, nil)

	uc := NewListResumesUseCase(repo, logger.NewNopLogger())

	out, err := uc.Execute(context.Background(), ListResumesInput{OwnerID: owner})
	require.NoError(t, err)
	assert.NotNil(t, out.Resumes)
	assert.Empty(t, out.Resumes)

	out, err = uc.Execute(context.Background(), ListResumesInput{OwnerID: owner, Page: 3, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, out.Resumes, 1)
}

func TestUpdateResume_KeepsTemplateWhenBlank(t *testing.T) {
	repo := new(mockResumeRepo)
	pub := newFakePublisher()
	owner, id := uuid.New(), uuid.New()
	stored := &resume.Resume{ID: id, OwnerID: owner, Title: "Old", Template: "modern", Data: sampleData()}

	repo.On("FindByID", id, owner).Return(stored, nil)
	repo.On("Update", mock.Anything).Return(nil)

	data := sampleData()
	data.Skills = []string{"Go", "SQL"}
	out, err := NewUpdateResumeUseCase(repo, pub, logger.NewNopLogger()).Execute(context.Background(), UpdateResumeInput{
		ResumeID: id, OwnerID: owner, Title: "New", Data: data,
	})
	require.NoError(t, err)

	assert.Equal(t, "modern", out.Resume.Template)
	assert.Equal(t, "New", out.Resume.Title)
	assert.Equal(t, []string{"Go", "SQL"}, out.Resume.Data.Skills)
	assert.Equal(t, event.ResumeEventUpdated, pub.next(t).EventType)
}

func TestUpdateResume_NotFound(t *testing.T) {
	repo := new(mockResumeRepo)
	owner, id := uuid.New(), uuid.New()
	repo.On("FindByID", id, owner).Return(nil, apperror.NewNotFound("resume", id.String()))

	_, err := NewUpdateResumeUseCase(repo, newFakePublisher(), logger.NewNopLogger()).Execute(context.Background(), UpdateResumeInput{
		ResumeID: id, OwnerID: owner,
	})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestDeleteResume(t *testing.T) {
	repo := new(mockResumeRepo)
	pub := newFakePublisher()
	owner, id := uuid.New(), uuid.New()
	repo.On("Delete", id, owner).Return(nil)

	err := NewDeleteResumeUseCase(repo, pub, logger.NewNopLogger()).Execute(context.Background(), DeleteResumeInput{ResumeID: id, OwnerID: owner})
	require.NoError(t, err)

	e := pub.next(t)
	assert.Equal(t, event.ResumeEventDeleted, e.EventType)
	assert.Equal(t, id, e.ResumeID)
}

func envelope(t *testing.T, typ string, payload any) editor.Envelope {
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return editor.Envelope{Type: typ, Payload: raw}
}

func TestApplyActions(t *testing.T) {
	repo := new(mockResumeRepo)
	pub := newFakePublisher()
	owner, id := uuid.New(), uuid.New()
	repo.On("FindByID", id, owner).Return(&resume.Resume{ID: id, OwnerID: owner, Data: sampleData()}, nil)
	repo.On("Update", mock.Anything).Return(nil)

	out, err := NewApplyActionsUseCase(repo, pub, logger.NewNopLogger()).Execute(context.Background(), ApplyActionsInput{
		ResumeID: id,
		OwnerID:  owner,
		Actions: []editor.Envelope{
			envelope(t, "addExperience", map[string]any{"entry": map[string]any{
				"id": "e2", "title": "Tutor", "company": "Home", "startDate": "2020-01", "endDate": "2021-06",
			}}),
			envelope(t, "reorderExperience", map[string]any{"from": 1, "to": 0}),
			envelope(t, "addSkill", map[string]any{"skill": "SQL"}),
		},
	})
	require.NoError(t, err)

	require.Len(t, out.Resume.Data.Experience, 2)
	assert.Equal(t, "e2", out.Resume.Data.Experience[0].ID)
	assert.Equal(t, []string{"Go", "SQL"}, out.Resume.Data.Skills)
	assert.Equal(t, event.ResumeEventUpdated, pub.next(t).EventType)
}

func TestApplyActions_AllOrNothing(t *testing.T) {
	repo := new(mockResumeRepo)
	owner, id := uuid.New(), uuid.New()
	stored := &resume.Resume{ID: id, OwnerID: owner, Data: sampleData()}
	repo.On("FindByID", id, owner).Return(stored, nil)

	_, err := NewApplyActionsUseCase(repo, newFakePublisher(), logger.NewNopLogger()).Execute(context.Background(), ApplyActionsInput{
		ResumeID: id,
		OwnerID:  owner,
		Actions: []editor.Envelope{
			envelope(t, "addSkill", map[string]any{"skill": "SQL"}),
			envelope(t, "addExperience", map[string]any{"entry": map[string]any{"id": "e3", "company": "X", "startDate": "2020-01"}}),
		},
	})
	require.ErrorIs(t, err, apperror.ErrInvalidInput)

	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Fields, "experience.title")
	assert.Equal(t, []string{"Go"}, stored.Data.Skills)
	repo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestApplyActions_UnknownType(t *testing.T) {
	repo := new(mockResumeRepo)

	_, err := NewApplyActionsUseCase(repo, newFakePublisher(), logger.NewNopLogger()).Execute(context.Background(), ApplyActionsInput{
		ResumeID: uuid.New(),
		OwnerID:  uuid.New(),
		Actions:  []editor.Envelope{{Type: "launchRocket"}},
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

type mockParser struct {
	mock.Mock
}

func (m *mockParser) Parse(ctx context.Context, r io.ReaderAt, size int64) (*importer.ParsedResume, error) {
	args := m.Called(size)
	p, _ := args.Get(0).(*importer.ParsedResume)
	return p, args.Error(1)
}

func TestParseResume_NormalizesDates(t *testing.T) {
	parser := new(mockParser)
	parser.On("Parse", int64(3)).Return(&importer.ParsedResume{
		PersonalInfo: importer.ParsedPersonalInfo{FirstName: "Ada"},
		Experience: []importer.ParsedExperience{
			{Title: "Analyst", Company: "Engines", StartDate: "Jan. 2022", EndDate: "present"},
		},
	}, nil)

	out, err := NewParseResumeUseCase(parser, 1<<20, logger.NewNopLogger()).Execute(context.Background(), ParseResumeInput{
		File: bytes.NewReader([]byte("abc")), Size: 3,
	})
	require.NoError(t, err)

	require.Len(t, out.Data.Experience, 1)
	assert.Equal(t, "2022-01", out.Data.Experience[0].StartDate)
	assert.True(t, out.Data.Experience[0].Current)
	assert.NotEmpty(t, out.Data.Experience[0].ID)
}

func TestParseResume_TooLarge(t *testing.T) {
	parser := new(mockParser)

	_, err := NewParseResumeUseCase(parser, 2, logger.NewNopLogger()).Execute(context.Background(), ParseResumeInput{
		File: bytes.NewReader([]byte("abc")), Size: 3,
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
	parser.AssertNotCalled(t, "Parse", mock.Anything)
}
