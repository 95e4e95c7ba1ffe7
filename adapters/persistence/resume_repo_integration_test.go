package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/khoahotran/resume-builder/internal/domain/resume"
	"github.com/khoahotran/resume-builder/internal/domain/user"
	"github.com/khoahotran/resume-builder/pkg/apperror"
	"github.com/khoahotran/resume-builder/pkg/logger"
)

type ResumeRepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger
	resumeRepo  resume.Repository
	userRepo    user.Repository
	testOwner   *user.User
}

func (s *ResumeRepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()
	s.testLogger = logger.NewNopLogger()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(1*time.Minute),
		),
	)
	if err != nil {
		s.T().Fatalf("Failed to start postgres container: %s", err)
	}
	s.pgContainer = pgContainer

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		s.T().Fatalf("Failed to get connection string: %s", err)
	}

	if err := RunMigrations(dsn, "../../migrations", s.testLogger); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool

	s.resumeRepo = NewPostgresResumeRepo(s.dbPool, s.testLogger)
	s.userRepo = NewPostgresUserRepo(s.dbPool, s.testLogger)

	s.testOwner = &user.User{
		ID:           uuid.New(),
		Email:        "testowner@example.com",
		Name:         "Test Owner",
		PasswordHash: "hashedpassword",
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Save(ctx, s.testOwner); err != nil {
		s.T().Fatalf("Failed to seed owner: %s", err)
	}
}

func (s *ResumeRepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestResumeRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(ResumeRepoIntegrationTestSuite))
}

func (s *ResumeRepoIntegrationTestSuite) newResume(title string) *resume.Resume {
	now := time.Now().UTC().Truncate(time.Millisecond)
	return &resume.Resume{
		ID:       uuid.New(),
		OwnerID:  s.testOwner.ID,
		Title:    title,
		Template: "modern",
		Theme:    resume.Theme{PrimaryColor: "#000000"},
		Data: resume.Data{
			PersonalInfo: resume.PersonalInfo{FirstName: "Ada", Phone: resume.Str("")},
			Experience: []resume.Experience{
				{ID: "e1", Title: "Analyst", Company: "Engines", StartDate: "2022-01", Current: true},
			},
			Skills: []string{"Go"},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (s *ResumeRepoIntegrationTestSuite) Test_Save_And_FindByID() {
	ctx := context.Background()
	newResume := s.newResume("My Resume")

	err := s.resumeRepo.Save(ctx, newResume)
	s.NoError(err)

	found, err := s.resumeRepo.FindByID(ctx, newResume.ID, s.testOwner.ID)

	s.NoError(err)
	s.NotNil(found)
	s.Equal(newResume.Title, found.Title)
	s.Equal(newResume.Data, found.Data)
	s.Equal(newResume.Theme, found.Theme)
	// Provided-but-empty survives the round trip.
	s.NotNil(found.Data.PersonalInfo.Phone)
}

func (s *ResumeRepoIntegrationTestSuite) Test_FindByID_OtherOwner() {
	ctx := context.Background()
	newResume := s.newResume("Private")
	s.NoError(s.resumeRepo.Save(ctx, newResume))

	_, err := s.resumeRepo.FindByID(ctx, newResume.ID, uuid.New())
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *ResumeRepoIntegrationTestSuite) Test_Update_And_Delete() {
	ctx := context.Background()
	newResume := s.newResume("Draft")
	s.NoError(s.resumeRepo.Save(ctx, newResume))

	newResume.Title = "Final"
	newResume.Data.Skills = append(newResume.Data.Skills, "SQL")
	newResume.UpdatedAt = time.Now().UTC()
	s.NoError(s.resumeRepo.Update(ctx, newResume))

	found, err := s.resumeRepo.FindByID(ctx, newResume.ID, s.testOwner.ID)
	s.NoError(err)
	s.Equal("Final", found.Title)
	s.Equal([]string{"Go", "SQL"}, found.Data.Skills)

	s.NoError(s.resumeRepo.Delete(ctx, newResume.ID, s.testOwner.ID))
	s.ErrorIs(s.resumeRepo.Delete(ctx, newResume.ID, s.testOwner.ID), apperror.ErrNotFound)
}

func (s *ResumeRepoIntegrationTestSuite) Test_ListByOwner() {
	ctx := context.Background()
	owner := &user.User{ID: uuid.New(), Email: "lister@example.com", PasswordHash: "x", CreatedAt: time.Now().UTC()}
	s.NoError(s.userRepo.Save(ctx, owner))

	for i, title := range []string{"first", "second", "third"} {
		r := s.newResume(title)
		r.OwnerID = owner.ID
		r.UpdatedAt = r.UpdatedAt.Add(time.Duration(i) * time.Minute)
		s.NoError(s.resumeRepo.Save(ctx, r))
	}

	list, err := s.resumeRepo.ListByOwner(ctx, owner.ID, 2, 0)
	s.NoError(err)
	s.Len(list, 2)
	s.Equal("third", list[0].Title)
	s.Equal("second", list[1].Title)
}

func (s *ResumeRepoIntegrationTestSuite) Test_UserEmailConflict() {
	ctx := context.Background()
	dup := &user.User{ID: uuid.New(), Email: s.testOwner.Email, PasswordHash: "x", CreatedAt: time.Now().UTC()}
	s.ErrorIs(s.userRepo.Save(ctx, dup), apperror.ErrConflict)

	found, err := s.userRepo.FindByEmail(ctx, "TestOwner@Example.com")
	s.NoError(err)
	s.Equal(s.testOwner.ID, found.ID)
}
