package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"chefviral/internal/application/billing/dto"
	"chefviral/internal/shared/utils"
)

type getPlansUseCase interface {
	Execute(ctx context.Context) *dto.PlansResponse
}

type PlanHandler struct {
	plansUC getPlansUseCase
}

func NewPlanHandler(plansUC getPlansUseCase) *PlanHandler {
	return &PlanHandler{plansUC: plansUC}
}

// GetPlans lists the public plan catalog with checkout metadata.
// GET /plans
func (h *PlanHandler) GetPlans(c *gin.Context) {
	utils.OKResponse(c, h.plansUC.Execute(c.Request.Context()))
}
