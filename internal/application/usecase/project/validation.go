package project

import (
	"errors"

	"github.com/khoahotran/codetrackr/internal/domain/project"
	"github.com/khoahotran/codetrackr/pkg/apperror"
)

// asValidation maps domain validation errors to field-level API errors.
func asValidation(err error) error {
	switch {
	case errors.Is(err, project.ErrTitleRequired):
		return apperror.NewValidation(map[string]string{"title": err.Error()})
	case errors.Is(err, project.ErrInvalidStatus):
		return apperror.NewValidation(map[string]string{"status": err.Error()})
	}
	return apperror.NewInvalidInput("project validation failed", err)
}
