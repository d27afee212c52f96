package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	activityUC "github.com/khoahotran/codetrackr/internal/application/usecase/activity"
	"github.com/khoahotran/codetrackr/pkg/apperror"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type ActivityHandler struct {
	listActivitiesUseCase *activityUC.ListActivitiesUseCase
	logger                logger.Logger
}

func NewActivityHandler(listUC *activityUC.ListActivitiesUseCase, log logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		listActivitiesUseCase: listUC,
		logger:                log,
	}
}

func (h *ActivityHandler) ListActivities(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	input := activityUC.ListActivitiesInput{OwnerID: ownerID}
	output, err := h.listActivitiesUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	dtos := make([]ActivityDTO, len(output.Activities))
	for i, e := range output.Activities {
		dtos[i] = ToActivityDTO(e)
	}
	c.JSON(http.StatusOK, dtos)
}
