package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	dashboardUC "github.com/khoahotran/codetrackr/internal/application/usecase/dashboard"
	"github.com/khoahotran/codetrackr/pkg/apperror"
	"github.com/khoahotran/codetrackr/pkg/logger"
)

type DashboardHandler struct {
	getStatsUseCase *dashboardUC.GetStatsUseCase
	logger          logger.Logger
}

func NewDashboardHandler(statsUC *dashboardUC.GetStatsUseCase, log logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		getStatsUseCase: statsUC,
		logger:          log,
	}
}

func (h *DashboardHandler) GetStats(c *gin.Context) {
	ownerID, ok := GetOwnerIDFromGinContext(c)
	if !ok {
		c.Error(apperror.NewPermissionDenied("ownerID not found in context"))
		return
	}

	input := dashboardUC.GetStatsInput{OwnerID: ownerID}
	output, err := h.getStatsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Stats)
}
