package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"chefviral/internal/application/onboarding/dto"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
	"chefviral/internal/shared/utils"
)

type completeOnboardingUseCase interface {
	Execute(ctx context.Context, userID uint, request dto.CompleteOnboardingRequest) (*dto.OnboardingResponse, error)
}

type OnboardingHandler struct {
	completeUC completeOnboardingUseCase
	logger     logger.Interface
}

func NewOnboardingHandler(completeUC completeOnboardingUseCase, logger logger.Interface) *OnboardingHandler {
	return &OnboardingHandler{completeUC: completeUC, logger: logger}
}

// Complete provisions the business profile and starter catalog.
// POST /onboarding
func (h *OnboardingHandler) Complete(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("sessão inválida"))
		return
	}

	var req dto.CompleteOnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.completeUC.Execute(c.Request.Context(), userID, req)
	if err != nil {
		h.logger.Errorw("onboarding failed", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "cadastro concluído, seu cardápio está no ar")
}
