package activity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/codetrackr/internal/domain/project"
	"github.com/khoahotran/codetrackr/internal/domain/question"
)

var now = time.Date(2026, 5, 20, 10, 0, 0, 0, time.UTC)

func TestFromQuestionCreated(t *testing.T) {
	q := &question.Question{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Title:   "Two Sum",
		Status:  question.StatusNotStarted,
	}

	a := FromQuestionCreated(q, now)

	require.NotNil(t, a)
	assert.Equal(t, TypeQuestionCreated, a.Type)
	assert.Equal(t, "Created question: Two Sum", a.Description)
	assert.Equal(t, q.OwnerID, a.OwnerID)
	require.NotNil(t, a.QuestionID)
	assert.Equal(t, q.ID, *a.QuestionID)
	assert.Nil(t, a.ProjectID)
	assert.Equal(t, now, a.CreatedAt)
}

func TestFromQuestionStatusChange(t *testing.T) {
	testCases := []struct {
		name     string
		prev     question.Status
		next     question.Status
		wantType Type
		wantDesc string
	}{
		{"same status derives nothing", question.StatusInProgress, question.StatusInProgress, "", ""},
		{"to completed", question.StatusInProgress, question.StatusCompleted, TypeQuestionCompleted, "Completed question: Two Sum"},
		{"to in_progress", question.StatusNotStarted, question.StatusInProgress, TypeQuestionUpdated, "Updated question: Two Sum"},
		{"away from completed", question.StatusCompleted, question.StatusNeedsRevision, TypeQuestionUpdated, "Updated question: Two Sum"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := &question.Question{
				ID:      uuid.New(),
				OwnerID: uuid.New(),
				Title:   "Two Sum",
				Status:  tc.next,
			}

			a := FromQuestionStatusChange(tc.prev, q, now)

			if tc.wantType == "" {
				assert.Nil(t, a)
				return
			}
			require.NotNil(t, a)
			assert.Equal(t, tc.wantType, a.Type)
			assert.Equal(t, tc.wantDesc, a.Description)
			require.NotNil(t, a.QuestionID)
			assert.Equal(t, q.ID, *a.QuestionID)
		})
	}
}

func TestFromProjectCreated(t *testing.T) {
	p := &project.Project{
		ID:      uuid.New(),
		OwnerID: uuid.New(),
		Title:   "CodeTrackr",
		Status:  project.StatusPlanning,
	}

	a := FromProjectCreated(p, now)

	require.NotNil(t, a)
	assert.Equal(t, TypeProjectCreated, a.Type)
	assert.Equal(t, "Created project: CodeTrackr", a.Description)
	require.NotNil(t, a.ProjectID)
	assert.Equal(t, p.ID, *a.ProjectID)
	assert.Nil(t, a.QuestionID)
}

func TestFromProjectStatusChange(t *testing.T) {
	testCases := []struct {
		name     string
		prev     project.Status
		next     project.Status
		wantType Type
		wantDesc string
	}{
		{"same status derives nothing", project.StatusPlanning, project.StatusPlanning, "", ""},
		{"to completed", project.StatusInProgress, project.StatusCompleted, TypeProjectCompleted, "Completed project: CodeTrackr"},
		{"to on_hold", project.StatusInProgress, project.StatusOnHold, TypeProjectUpdated, "Updated project: CodeTrackr"},
		{"to cancelled", project.StatusPlanning, project.StatusCancelled, TypeProjectUpdated, "Updated project: CodeTrackr"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := &project.Project{
				ID:      uuid.New(),
				OwnerID: uuid.New(),
				Title:   "CodeTrackr",
				Status:  tc.next,
			}

			a := FromProjectStatusChange(tc.prev, p, now)

			if tc.wantType == "" {
				assert.Nil(t, a)
				return
			}
			require.NotNil(t, a)
			assert.Equal(t, tc.wantType, a.Type)
			assert.Equal(t, tc.wantDesc, a.Description)
			require.NotNil(t, a.ProjectID)
			assert.Equal(t, p.ID, *a.ProjectID)
		})
	}
}
