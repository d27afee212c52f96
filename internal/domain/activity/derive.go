package activity

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/codetrackr/internal/domain/project"
	"github.com/khoahotran/codetrackr/internal/domain/question"
)

// Derivation rules: every noteworthy mutation maps to zero or one activity
// row. Status comparisons run against the entity's state before the edit was
// applied, so re-submitting the same status derives nothing.

func FromQuestionCreated(q *question.Question, now time.Time) *Activity {
	id := q.ID
	return &Activity{
		ID:          uuid.New(),
		OwnerID:     q.OwnerID,
		Type:        TypeQuestionCreated,
		Description: fmt.Sprintf("Created question: %s", q.Title),
		QuestionID:  &id,
		CreatedAt:   now,
	}
}

// FromQuestionStatusChange returns nil when the status did not change.
func FromQuestionStatusChange(prev question.Status, q *question.Question, now time.Time) *Activity {
	if prev == q.Status {
		return nil
	}
	id := q.ID
	a := &Activity{
		ID:         uuid.New(),
		OwnerID:    q.OwnerID,
		QuestionID: &id,
		CreatedAt:  now,
	}
	if q.Status == question.StatusCompleted {
		a.Type = TypeQuestionCompleted
		a.Description = fmt.Sprintf("Completed question: %s", q.Title)
	} else {
		a.Type = TypeQuestionUpdated
		a.Description = fmt.Sprintf("Updated question: %s", q.Title)
	}
	return a
}

func FromProjectCreated(p *project.Project, now time.Time) *Activity {
	id := p.ID
	return &Activity{
		ID:          uuid.New(),
		OwnerID:     p.OwnerID,
		Type:        TypeProjectCreated,
		Description: fmt.Sprintf("Created project: %s", p.Title),
		ProjectID:   &id,
		CreatedAt:   now,
	}
}

// FromProjectStatusChange returns nil when the status did not change.
func FromProjectStatusChange(prev project.Status, p *project.Project, now time.Time) *Activity {
	if prev == p.Status {
		return nil
	}
	id := p.ID
	a := &Activity{
		ID:        uuid.New(),
		OwnerID:   p.OwnerID,
		ProjectID: &id,
		CreatedAt: now,
	}
	if p.Status == project.StatusCompleted {
		a.Type = TypeProjectCompleted
		a.Description = fmt.Sprintf("Completed project: %s", p.Title)
	} else {
		a.Type = TypeProjectUpdated
		a.Description = fmt.Sprintf("Updated project: %s", p.Title)
	}
	return a
}
