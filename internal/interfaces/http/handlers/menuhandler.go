package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"chefviral/internal/application/menu/dto"
	"chefviral/internal/shared/logger"
	"chefviral/internal/shared/utils"
)

type getPublicMenuUseCase interface {
	Execute(ctx context.Context, slug string) (*dto.PublicMenuResponse, error)
}

type trackEventUseCase interface {
	Execute(ctx context.Context, slug string, request dto.TrackEventRequest) (*dto.TrackEventResponse, error)
}

type MenuHandler struct {
	getMenuUC getPublicMenuUseCase
	trackUC   trackEventUseCase
	logger    logger.Interface
}

func NewMenuHandler(getMenuUC getPublicMenuUseCase, trackUC trackEventUseCase, logger logger.Interface) *MenuHandler {
	return &MenuHandler{getMenuUC: getMenuUC, trackUC: trackUC, logger: logger}
}

// GetMenu serves the public menu for a slug. No authentication.
// GET /m/:slug
func (h *MenuHandler) GetMenu(c *gin.Context) {
	result, err := h.getMenuUC.Execute(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// TrackEvent records a visitor event. The write is fire-and-forget, so the
// handler answers before the row lands.
// POST /m/:slug/events
func (h *MenuHandler) TrackEvent(c *gin.Context) {
	var req dto.TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.trackUC.Execute(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.AcceptedResponse(c, result)
}
