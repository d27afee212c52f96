package http

import (
	"time"

	"github.com/khoahotran/codetrackr/internal/domain/activity"
	"github.com/khoahotran/codetrackr/internal/domain/profile"
	"github.com/khoahotran/codetrackr/internal/domain/project"
	"github.com/khoahotran/codetrackr/internal/domain/question"
	"github.com/khoahotran/codetrackr/pkg/apperror"
)

const dateLayout = "2006-01-02"

// Auth DTOs

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Password2 string `json:"password2" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// Profile DTOs

type ProfileDTO struct {
	GithubURL   *string   `json:"github_url"`
	LeetcodeURL *string   `json:"leetcode_url"`
	LinkedinURL *string   `json:"linkedin_url"`
	Bio         string    `json:"bio"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type UpdateProfileRequest struct {
	GithubURL   *string `json:"github_url"`
	LeetcodeURL *string `json:"leetcode_url"`
	LinkedinURL *string `json:"linkedin_url"`
	Bio         *string `json:"bio"`
}

func ToProfileDTO(p *profile.Profile) ProfileDTO {
	return ProfileDTO{
		GithubURL:   p.GithubURL,
		LeetcodeURL: p.LeetcodeURL,
		LinkedinURL: p.LinkedinURL,
		Bio:         p.Bio,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (req *UpdateProfileRequest) ToDomainUpdate() profile.Update {
	return profile.Update{
		GithubURL:   req.GithubURL,
		LeetcodeURL: req.LeetcodeURL,
		LinkedinURL: req.LinkedinURL,
		Bio:         req.Bio,
	}
}

// Question DTOs

type CreateQuestionRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Difficulty  string  `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Status      string  `json:"status" binding:"omitempty,oneof=not_started in_progress completed needs_revision"`
	Platform    string  `json:"platform"`
	ProblemURL  *string `json:"problem_url"`
	SolutionURL *string `json:"solution_url"`
	Notes       string  `json:"notes"`
	TimeSpent   int     `json:"time_spent" binding:"gte=0"`
}

type UpdateQuestionRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Difficulty  *string `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	Status      *string `json:"status" binding:"omitempty,oneof=not_started in_progress completed needs_revision"`
	Platform    *string `json:"platform"`
	ProblemURL  *string `json:"problem_url"`
	SolutionURL *string `json:"solution_url"`
	Notes       *string `json:"notes"`
	TimeSpent   *int    `json:"time_spent" binding:"omitempty,gte=0"`
}

func (req *UpdateQuestionRequest) ToDomainUpdate() question.Update {
	u := question.Update{
		Title:       req.Title,
		Description: req.Description,
		Platform:    req.Platform,
		ProblemURL:  req.ProblemURL,
		SolutionURL: req.SolutionURL,
		Notes:       req.Notes,
		TimeSpent:   req.TimeSpent,
	}
	if req.Difficulty != nil {
		d := question.Difficulty(*req.Difficulty)
		u.Difficulty = &d
	}
	if req.Status != nil {
		s := question.Status(*req.Status)
		u.Status = &s
	}
	return u
}

type QuestionDTO struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Difficulty  string    `json:"difficulty"`
	Status      string    `json:"status"`
	Platform    string    `json:"platform"`
	ProblemURL  *string   `json:"problem_url"`
	SolutionURL *string   `json:"solution_url"`
	Notes       string    `json:"notes"`
	TimeSpent   int       `json:"time_spent"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToQuestionDTO(q *question.Question) QuestionDTO {
	return QuestionDTO{
		ID:          q.ID.String(),
		Title:       q.Title,
		Description: q.Description,
		Difficulty:  string(q.Difficulty),
		Status:      string(q.Status),
		Platform:    q.Platform,
		ProblemURL:  q.ProblemURL,
		SolutionURL: q.SolutionURL,
		Notes:       q.Notes,
		TimeSpent:   q.TimeSpent,
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}

// Project DTOs

type CreateProjectRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description"`
	Status       string  `json:"status" binding:"omitempty,oneof=planning in_progress completed on_hold cancelled"`
	GithubURL    *string `json:"github_url"`
	LiveURL      *string `json:"live_url"`
	Technologies string  `json:"technologies"`
	Notes        string  `json:"notes"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
}

type UpdateProjectRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Status       *string `json:"status" binding:"omitempty,oneof=planning in_progress completed on_hold cancelled"`
	GithubURL    *string `json:"github_url"`
	LiveURL      *string `json:"live_url"`
	Technologies *string `json:"technologies"`
	Notes        *string `json:"notes"`
	StartDate    *string `json:"start_date"`
	EndDate      *string `json:"end_date"`
}

func (req *UpdateProjectRequest) ToDomainUpdate() (project.Update, error) {
	u := project.Update{
		Title:        req.Title,
		Description:  req.Description,
		GithubURL:    req.GithubURL,
		LiveURL:      req.LiveURL,
		Technologies: req.Technologies,
		Notes:        req.Notes,
	}
	if req.Status != nil {
		s := project.Status(*req.Status)
		u.Status = &s
	}
	var err error
	if u.StartDate, err = parseDate(req.StartDate, "start_date"); err != nil {
		return project.Update{}, err
	}
	if u.EndDate, err = parseDate(req.EndDate, "end_date"); err != nil {
		return project.Update{}, err
	}
	return u, nil
}

func parseDate(value *string, field string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *value)
	if err != nil {
		return nil, apperror.NewValidation(map[string]string{field: "must be a date in YYYY-MM-DD format"})
	}
	return &t, nil
}

type ProjectDTO struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	Status           string    `json:"status"`
	GithubURL        *string   `json:"github_url"`
	LiveURL          *string   `json:"live_url"`
	Technologies     string    `json:"technologies"`
	TechnologiesList []string  `json:"technologies_list"`
	Notes            string    `json:"notes"`
	StartDate        *string   `json:"start_date"`
	EndDate          *string   `json:"end_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToProjectDTO(p *project.Project) ProjectDTO {
	return ProjectDTO{
		ID:               p.ID.String(),
		Title:            p.Title,
		Description:      p.Description,
		Status:           string(p.Status),
		GithubURL:        p.GithubURL,
		LiveURL:          p.LiveURL,
		Technologies:     p.Technologies,
		TechnologiesList: p.TechnologiesList(),
		Notes:            p.Notes,
		StartDate:        formatDate(p.StartDate),
		EndDate:          formatDate(p.EndDate),
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// Activity DTOs

type ActivityDTO struct {
	ID            string    `json:"id"`
	ActivityType  string    `json:"activity_type"`
	Description   string    `json:"description"`
	QuestionTitle *string   `json:"question_title"`
	ProjectTitle  *string   `json:"project_title"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToActivityDTO(e *activity.FeedEntry) ActivityDTO {
	return ActivityDTO{
		ID:            e.ID.String(),
		ActivityType:  string(e.Type),
		Description:   e.Description,
		QuestionTitle: e.QuestionTitle,
		ProjectTitle:  e.ProjectTitle,
		CreatedAt:     e.CreatedAt,
	}
}
