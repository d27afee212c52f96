package question

import (
	"errors"

	"github.com/khoahotran/codetrackr/internal/domain/question"
	"github.com/khoahotran/codetrackr/pkg/apperror"
)

// asValidation maps domain validation errors to field-level API errors.
func asValidation(err error) error {
	switch {
	case errors.Is(err, question.ErrTitleRequired):
		return apperror.NewValidation(map[string]string{"title": err.Error()})
	case errors.Is(err, question.ErrInvalidStatus):
		return apperror.NewValidation(map[string]string{"status": err.Error()})
	case errors.Is(err, question.ErrInvalidDifficulty):
		return apperror.NewValidation(map[string]string{"difficulty": err.Error()})
	case errors.Is(err, question.ErrNegativeTimeSpent):
		return apperror.NewValidation(map[string]string{"time_spent": err.Error()})
	}
	return apperror.NewInvalidInput("question validation failed", err)
}
