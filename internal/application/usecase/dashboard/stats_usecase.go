package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/codetrackr/internal/domain/activity"
	"github.com/khoahotran/codetrackr/internal/domain/project"
	"github.com/khoahotran/codetrackr/internal/domain/question"
)

// recentWindow is the trailing period counted as "recent" activity.
const recentWindow = 7 * 24 * time.Hour

type Stats struct {
	TotalQuestions          int                         `json:"total_questions"`
	CompletedQuestions      int                         `json:"completed_questions"`
	TotalProjects           int                         `json:"total_projects"`
	CompletedProjects       int                         `json:"completed_projects"`
	RecentActivitiesCount   int                         `json:"recent_activities_count"`
	QuestionsByDifficulty   map[question.Difficulty]int `json:"questions_by_difficulty"`
	ProjectsByStatus        map[project.Status]int      `json:"projects_by_status"`
	CompletionRateQuestions float64                     `json:"completion_rate_questions"`
	CompletionRateProjects  float64                     `json:"completion_rate_projects"`
}

type GetStatsUseCase struct {
	questionRepo question.Repository
	projectRepo  project.Repository
	activityRepo activity.Repository
}

func NewGetStatsUseCase(
	qRepo question.Repository,
	pRepo project.Repository,
	aRepo activity.Repository,
) *GetStatsUseCase {
	return &GetStatsUseCase{
		questionRepo: qRepo,
		projectRepo:  pRepo,
		activityRepo: aRepo,
	}
}

type GetStatsInput struct {
	OwnerID uuid.UUID
}

type GetStatsOutput struct {
	Stats *Stats
}

// Execute computes every value fresh from the store; nothing is cached. The
// result set is bounded by one account's data.
func (uc *GetStatsUseCase) Execute(ctx context.Context, input GetStatsInput) (*GetStatsOutput, error) {
	totalQuestions, err := uc.questionRepo.CountByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	completedQuestions, err := uc.questionRepo.CountByOwnerWithStatus(ctx, input.OwnerID, question.StatusCompleted)
	if err != nil {
		return nil, err
	}
	totalProjects, err := uc.projectRepo.CountByOwner(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	completedProjects, err := uc.projectRepo.CountByOwnerWithStatus(ctx, input.OwnerID, project.StatusCompleted)
	if err != nil {
		return nil, err
	}

	weekAgo := time.Now().UTC().Add(-recentWindow)
	recentActivities, err := uc.activityRepo.CountSince(ctx, input.OwnerID, weekAgo)
	if err != nil {
		return nil, err
	}

	byDifficulty, err := uc.questionRepo.CountByDifficulty(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}
	byStatus, err := uc.projectRepo.CountByStatus(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	stats := &Stats{
		TotalQuestions:          totalQuestions,
		CompletedQuestions:      completedQuestions,
		TotalProjects:           totalProjects,
		CompletedProjects:       completedProjects,
		RecentActivitiesCount:   recentActivities,
		QuestionsByDifficulty:   byDifficulty,
		ProjectsByStatus:        byStatus,
		CompletionRateQuestions: completionRate(completedQuestions, totalQuestions),
		CompletionRateProjects:  completionRate(completedProjects, totalProjects),
	}
	return &GetStatsOutput{Stats: stats}, nil
}

// completionRate is completed/total as a percentage rounded to one decimal;
// 0 when total is 0.
func completionRate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	rate := float64(completed) / float64(total) * 100
	return math.Round(rate*10) / 10
}
