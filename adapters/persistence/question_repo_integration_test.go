package persistence

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/khoahotran/codetrackr/internal/domain/activity"
	"github.com/khoahotran/codetrackr/internal/domain/profile"
	"github.com/khoahotran/codetrackr/internal/domain/project"
	"github.com/khoahotran/codetrackr/internal/domain/question"
	"github.com/khoahotran/codetrackr/pkg/apperror"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type RepoIntegrationTestSuite struct {
	suite.Suite
	dbPool      *pgxpool.Pool
	pgContainer *postgres.PostgresContainer
	testLogger  logger.Logger

	questionRepo question.Repository
	projectRepo  project.Repository
	activityRepo activity.Repository
	profileRepo  profile.Repository
}

func (s *RepoIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	m, err := migrate.New("file://../../migrations", dsn)
	if err != nil {
		s.T().Fatalf("Failed to create migrate instance: %s", err)
	}
	if err := m.Up(); err != nil {
		s.T().Fatalf("Failed to run migrations: %s", err)
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		s.T().Fatalf("Failed to create pgxpool: %s", err)
	}
	s.dbPool = pool
	s.testLogger = logger.NewNop()

	s.questionRepo = NewPostgresQuestionRepo(s.dbPool, s.testLogger)
	s.projectRepo = NewPostgresProjectRepo(s.dbPool, s.testLogger)
	s.activityRepo = NewPostgresActivityRepo(s.dbPool, s.testLogger)
	s.profileRepo = NewPostgresProfileRepo(s.dbPool, s.testLogger)
}

func (s *RepoIntegrationTestSuite) TearDownSuite() {
	if s.dbPool != nil {
		s.dbPool.Close()
	}
	if s.pgContainer != nil {
		if err := s.pgContainer.Terminate(context.Background()); err != nil {
			s.T().Fatalf("Failed to terminate postgres container: %s", err)
		}
	}
}

func TestRepoIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode.")
	}
	suite.Run(t, new(RepoIntegrationTestSuite))
}

// seedAccount inserts a fresh account so each test works on its own data.
func (s *RepoIntegrationTestSuite) seedAccount() uuid.UUID {
	id := uuid.New()
	query := `INSERT INTO accounts (id, username, email, password_hash, created_at) VALUES ($1, $2, $3, $4, now())`
	_, err := s.dbPool.Exec(context.Background(), query,
		id, fmt.Sprintf("user_%s", id.String()[:8]), fmt.Sprintf("%s@example.com", id.String()[:8]), "hashedpassword")
	if err != nil {
		s.T().Fatalf("Failed to seed account: %s", err)
	}
	return id
}

func newTestQuestion(ownerID uuid.UUID, title string) *question.Question {
	now := time.Now().UTC()
	return &question.Question{
		ID:         uuid.New(),
		OwnerID:    ownerID,
		Title:      title,
		Difficulty: question.DifficultyEasy,
		Status:     question.StatusNotStarted,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func (s *RepoIntegrationTestSuite) Test_Question_Save_And_FindByID() {
	ctx := context.Background()
	ownerID := s.seedAccount()

	q := newTestQuestion(ownerID, "Two Sum")
	q.Platform = "LeetCode"
	q.TimeSpent = 25

	// Omitted optional URLs persist as NULL.
	s.NoError(s.questionRepo.Save(ctx, q))

	found, err := s.questionRepo.FindByID(ctx, q.ID, ownerID)
	s.NoError(err)
	s.NotNil(found)
	s.Equal(q.Title, found.Title)
	s.Equal(q.Platform, found.Platform)
	s.Equal(q.TimeSpent, found.TimeSpent)
	s.Nil(found.ProblemURL)
	s.Nil(found.SolutionURL)

	// Another account never sees the row.
	_, err = s.questionRepo.FindByID(ctx, q.ID, s.seedAccount())
	s.ErrorIs(err, apperror.ErrNotFound)
}

func (s *RepoIntegrationTestSuite) Test_Question_ListByOwner_Ordering() {
	ctx := context.Background()
	ownerID := s.seedAccount()

	older := newTestQuestion(ownerID, "Older")
	older.UpdatedAt = time.Now().UTC().Add(-2 * time.Hour)
	newer := newTestQuestion(ownerID, "Newer")

	s.NoError(s.questionRepo.Save(ctx, older))
	s.NoError(s.questionRepo.Save(ctx, newer))

	list, err := s.questionRepo.ListByOwner(ctx, ownerID)
	s.NoError(err)
	s.Len(list, 2)
	s.Equal("Newer", list[0].Title)
	s.Equal("Older", list[1].Title)
}

func (s *RepoIntegrationTestSuite) Test_Question_Counts() {
	ctx := context.Background()
	ownerID := s.seedAccount()

	easyDone := newTestQuestion(ownerID, "Easy Done")
	easyDone.Status = question.StatusCompleted
	hard := newTestQuestion(ownerID, "Hard One")
	hard.Difficulty = question.DifficultyHard

	s.NoError(s.questionRepo.Save(ctx, easyDone))
	s.NoError(s.questionRepo.Save(ctx, hard))

	total, err := s.questionRepo.CountByOwner(ctx, ownerID)
	s.NoError(err)
	s.Equal(2, total)

	completed, err := s.questionRepo.CountByOwnerWithStatus(ctx, ownerID, question.StatusCompleted)
	s.NoError(err)
	s.Equal(1, completed)

	byDifficulty, err := s.questionRepo.CountByDifficulty(ctx, ownerID)
	s.NoError(err)
	s.Equal(map[question.Difficulty]int{
		question.DifficultyEasy: 1,
		question.DifficultyHard: 1,
	}, byDifficulty)
	s.NotContains(byDifficulty, question.DifficultyMedium)
}

func (s *RepoIntegrationTestSuite) Test_Question_Delete_CascadesActivities() {
	ctx := context.Background()
	ownerID := s.seedAccount()

	q := newTestQuestion(ownerID, "Short Lived")
	s.NoError(s.questionRepo.Save(ctx, q))
	s.NoError(s.activityRepo.Save(ctx, activity.FromQuestionCreated(q, time.Now().UTC())))

	s.NoError(s.questionRepo.Delete(ctx, q.ID, ownerID))

	_, err := s.questionRepo.FindByID(ctx, q.ID, ownerID)
	s.ErrorIs(err, apperror.ErrNotFound)

	entries, err := s.activityRepo.ListRecentByOwner(ctx, ownerID, 20)
	s.NoError(err)
	s.Empty(entries)
}

func (s *RepoIntegrationTestSuite) Test_Activity_Feed_JoinsTitlesAndLimits() {
	ctx := context.Background()
	ownerID := s.seedAccount()

	q := newTestQuestion(ownerID, "Two Sum")
	s.NoError(s.questionRepo.Save(ctx, q))

	now := time.Now().UTC()
	for i := 0; i < 25; i++ {
		a := activity.FromQuestionCreated(q, now.Add(time.Duration(i)*time.Second))
		s.NoError(s.activityRepo.Save(ctx, a))
	}

	entries, err := s.activityRepo.ListRecentByOwner(ctx, ownerID, 20)
	s.NoError(err)
	s.Len(entries, 20)
	s.NotNil(entries[0].QuestionTitle)
	s.Equal("Two Sum", *entries[0].QuestionTitle)
	s.Nil(entries[0].ProjectTitle)
	// Newest first.
	s.True(!entries[0].CreatedAt.Before(entries[19].CreatedAt))

	count, err := s.activityRepo.CountSince(ctx, ownerID, now.Add(-time.Minute))
	s.NoError(err)
	s.Equal(25, count)
}

func (s *RepoIntegrationTestSuite) Test_Project_Save_And_CountByStatus() {
	ctx := context.Background()
	ownerID := s.seedAccount()

	now := time.Now().UTC()
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	p := &project.Project{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Title:        "CodeTrackr",
		Status:       project.StatusInProgress,
		Technologies: "Go, Postgres, Redis",
		StartDate:    &start,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.NoError(s.projectRepo.Save(ctx, p))

	found, err := s.projectRepo.FindByID(ctx, p.ID, ownerID)
	s.NoError(err)
	s.Equal("Go, Postgres, Redis", found.Technologies)
	s.Nil(found.GithubURL)
	s.Nil(found.LiveURL)
	s.NotNil(found.StartDate)
	s.Equal(start.Format("2006-01-02"), found.StartDate.Format("2006-01-02"))
	s.Nil(found.EndDate)

	byStatus, err := s.projectRepo.CountByStatus(ctx, ownerID)
	s.NoError(err)
	s.Equal(map[project.Status]int{project.StatusInProgress: 1}, byStatus)
}

func (s *RepoIntegrationTestSuite) Test_Profile_GetOrCreate_Idempotent() {
	ctx := context.Background()
	ownerID := s.seedAccount()

	first, err := s.profileRepo.GetOrCreate(ctx, ownerID)
	s.NoError(err)
	s.Equal(ownerID, first.OwnerID)
	s.Empty(first.Bio)

	bio := "grinding leetcode"
	first.Apply(profile.Update{Bio: &bio}, time.Now().UTC())
	s.NoError(s.profileRepo.Update(ctx, first))

	second, err := s.profileRepo.GetOrCreate(ctx, ownerID)
	s.NoError(err)
	s.Equal("grinding leetcode", second.Bio)
}
