package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"chefviral/internal/application/dashboard/dto"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
	"chefviral/internal/shared/utils"
)

type getDashboardStatsUseCase interface {
	Execute(ctx context.Context, userID uint) (*dto.DashboardStatsResponse, error)
}

type DashboardHandler struct {
	statsUC getDashboardStatsUseCase
	logger  logger.Interface
}

func NewDashboardHandler(statsUC getDashboardStatsUseCase, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{statsUC: statsUC, logger: logger}
}

// Stats returns the owner's dashboard aggregates.
// GET /dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("sessão inválida"))
		return
	}

	result, err := h.statsUC.Execute(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("failed to load dashboard stats", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
