package dashboard

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/codetrackr/internal/domain/activity"
	"github.com/khoahotran/codetrackr/internal/domain/project"
	"github.com/khoahotran/codetrackr/internal/domain/question"
)

type statQuestionRepo struct {
	total        int
	completed    int
	byDifficulty map[question.Difficulty]int
}

func (f *statQuestionRepo) Save(ctx context.Context, q *question.Question) error   { return nil }
func (f *statQuestionRepo) Update(ctx context.Context, q *question.Question) error { return nil }
func (f *statQuestionRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return nil
}
func (f *statQuestionRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*question.Question, error) {
	return nil, nil
}
func (f *statQuestionRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*question.Question, error) {
	return nil, nil
}
func (f *statQuestionRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return f.total, nil
}
func (f *statQuestionRepo) CountByOwnerWithStatus(ctx context.Context, ownerID uuid.UUID, status question.Status) (int, error) {
	return f.completed, nil
}
func (f *statQuestionRepo) CountByDifficulty(ctx context.Context, ownerID uuid.UUID) (map[question.Difficulty]int, error) {
	return f.byDifficulty, nil
}

type statProjectRepo struct {
	total     int
	completed int
	byStatus  map[project.Status]int
}

func (f *statProjectRepo) Save(ctx context.Context, p *project.Project) error   { return nil }
func (f *statProjectRepo) Update(ctx context.Context, p *project.Project) error { return nil }
func (f *statProjectRepo) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	return nil
}
func (f *statProjectRepo) FindByID(ctx context.Context, id, ownerID uuid.UUID) (*project.Project, error) {
	return nil, nil
}
func (f *statProjectRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	return nil, nil
}
func (f *statProjectRepo) CountByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	return f.total, nil
}
func (f *statProjectRepo) CountByOwnerWithStatus(ctx context.Context, ownerID uuid.UUID, status project.Status) (int, error) {
	return f.completed, nil
}
func (f *statProjectRepo) CountByStatus(ctx context.Context, ownerID uuid.UUID) (map[project.Status]int, error) {
	return f.byStatus, nil
}

type statActivityRepo struct {
	recent int
}

func (f *statActivityRepo) Save(ctx context.Context, a *activity.Activity) error { return nil }
func (f *statActivityRepo) ListRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*activity.FeedEntry, error) {
	return nil, nil
}
func (f *statActivityRepo) CountSince(ctx context.Context, ownerID uuid.UUID, since time.Time) (int, error) {
	return f.recent, nil
}

func TestGetStatsUseCase_Execute(t *testing.T) {
	t.Run("empty account reports zero rates", func(t *testing.T) {
		uc := NewGetStatsUseCase(
			&statQuestionRepo{byDifficulty: map[question.Difficulty]int{}},
			&statProjectRepo{byStatus: map[project.Status]int{}},
			&statActivityRepo{},
		)

		out, err := uc.Execute(context.Background(), GetStatsInput{OwnerID: uuid.New()})

		require.NoError(t, err)
		assert.Equal(t, 0, out.Stats.TotalQuestions)
		assert.Equal(t, 0.0, out.Stats.CompletionRateQuestions)
		assert.Equal(t, 0.0, out.Stats.CompletionRateProjects)
	})

	t.Run("rates are rounded to one decimal", func(t *testing.T) {
		uc := NewGetStatsUseCase(
			&statQuestionRepo{total: 3, completed: 1, byDifficulty: map[question.Difficulty]int{question.DifficultyEasy: 3}},
			&statProjectRepo{total: 6, completed: 4, byStatus: map[project.Status]int{project.StatusCompleted: 4, project.StatusOnHold: 2}},
			&statActivityRepo{recent: 5},
		)

		out, err := uc.Execute(context.Background(), GetStatsInput{OwnerID: uuid.New()})

		require.NoError(t, err)
		assert.Equal(t, 33.3, out.Stats.CompletionRateQuestions)
		assert.Equal(t, 66.7, out.Stats.CompletionRateProjects)
		assert.Equal(t, 5, out.Stats.RecentActivitiesCount)
	})

	t.Run("group-bys pass through with empty buckets omitted", func(t *testing.T) {
		byDifficulty := map[question.Difficulty]int{question.DifficultyHard: 2}
		byStatus := map[project.Status]int{project.StatusPlanning: 1}
		uc := NewGetStatsUseCase(
			&statQuestionRepo{total: 2, byDifficulty: byDifficulty},
			&statProjectRepo{total: 1, byStatus: byStatus},
			&statActivityRepo{},
		)

		out, err := uc.Execute(context.Background(), GetStatsInput{OwnerID: uuid.New()})

		require.NoError(t, err)
		assert.Equal(t, byDifficulty, out.Stats.QuestionsByDifficulty)
		assert.NotContains(t, out.Stats.QuestionsByDifficulty, question.DifficultyEasy)
		assert.Equal(t, byStatus, out.Stats.ProjectsByStatus)
	})

	t.Run("serializes with the dashboard field names", func(t *testing.T) {
		uc := NewGetStatsUseCase(
			&statQuestionRepo{total: 1, completed: 1, byDifficulty: map[question.Difficulty]int{question.DifficultyEasy: 1}},
			&statProjectRepo{byStatus: map[project.Status]int{}},
			&statActivityRepo{},
		)

		out, err := uc.Execute(context.Background(), GetStatsInput{OwnerID: uuid.New()})
		require.NoError(t, err)

		raw, err := json.Marshal(out.Stats)
		require.NoError(t, err)

		var decoded map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &decoded))
		for _, key := range []string{
			"total_questions", "completed_questions",
			"total_projects", "completed_projects",
			"recent_activities_count",
			"questions_by_difficulty", "projects_by_status",
			"completion_rate_questions", "completion_rate_projects",
		} {
			assert.Contains(t, decoded, key)
		}
	})
}
