package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"chefviral/internal/application/generation/dto"
	"chefviral/internal/shared/constants"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
	"chefviral/internal/shared/utils"
)

type generateContentUseCase interface {
	Execute(ctx context.Context, userID uint, request dto.GenerateContentRequest) (*dto.GenerateContentResponse, error)
}

type listHistoryUseCase interface {
	Execute(ctx context.Context, userID uint, limit int) (*dto.HistoryResponse, error)
}

type GenerationHandler struct {
	generateUC generateContentUseCase
	historyUC  listHistoryUseCase
	logger     logger.Interface
}

func NewGenerationHandler(
	generateUC generateContentUseCase,
	historyUC listHistoryUseCase,
	logger logger.Interface,
) *GenerationHandler {
	return &GenerationHandler{generateUC: generateUC, historyUC: historyUC, logger: logger}
}

// Generate runs one campaign generation for the owner.
// POST /generate
func (h *GenerationHandler) Generate(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("sessão inválida"))
		return
	}

	var req dto.GenerateContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.generateUC.Execute(c.Request.Context(), userID, req)
	if err != nil {
		h.logger.Errorw("content generation failed", "user_id", userID, "mode", req.Mode, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// History returns the owner's most recent generated items.
// GET /content/history
func (h *GenerationHandler) History(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("sessão inválida"))
		return
	}

	limit := utils.QueryInt(c, "limit", constants.DefaultHistorySize)

	result, err := h.historyUC.Execute(c.Request.Context(), userID, limit)
	if err != nil {
		h.logger.Errorw("failed to list content history", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
