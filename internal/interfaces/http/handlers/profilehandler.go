package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"chefviral/internal/application/profile/dto"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
	"chefviral/internal/shared/utils"
)

// maxBrandingUpload caps how much of the multipart body the handler reads.
// The asset store enforces the configured per-file limit on top of this.
const maxBrandingUpload = 8 << 20

type getProfileUseCase interface {
	Execute(ctx context.Context, userID uint) (*dto.ProfileResponse, error)
}

type updateProfileUseCase interface {
	Execute(ctx context.Context, userID uint, request dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type uploadBrandingUseCase interface {
	Execute(ctx context.Context, userID uint, slot string, data []byte) (*dto.UploadBrandingResponse, error)
}

type ProfileHandler struct {
	getUC    getProfileUseCase
	updateUC updateProfileUseCase
	uploadUC uploadBrandingUseCase
	logger   logger.Interface
}

func NewProfileHandler(
	getUC getProfileUseCase,
	updateUC updateProfileUseCase,
	uploadUC uploadBrandingUseCase,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{getUC: getUC, updateUC: updateUC, uploadUC: uploadUC, logger: logger}
}

// Get returns the owner's business profile.
// GET /profile
func (h *ProfileHandler) Get(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("sessão inválida"))
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), userID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Update edits the owner's business profile. The slug never changes here.
// PUT /profile
func (h *ProfileHandler) Update(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("sessão inválida"))
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), userID, req)
	if err != nil {
		h.logger.Errorw("failed to update profile", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// UploadBranding stores a logo or banner image for the owner's menu page.
// POST /profile/branding/:slot
func (h *ProfileHandler) UploadBranding(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("sessão inválida"))
		return
	}

	slot := c.Param("slot")

	file, _, err := c.Request.FormFile("file")
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("envie o arquivo no campo 'file'"))
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxBrandingUpload+1))
	if err != nil {
		h.logger.Errorw("failed to read branding upload", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, errors.NewInternalError("falha ao ler o arquivo enviado"))
		return
	}
	if len(content) > maxBrandingUpload {
		utils.ErrorResponseWithError(c, errors.NewValidationError("arquivo muito grande"))
		return
	}

	result, err := h.uploadUC.Execute(c.Request.Context(), userID, slot, content)
	if err != nil {
		h.logger.Errorw("failed to store branding asset", "user_id", userID, "slot", slot, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
