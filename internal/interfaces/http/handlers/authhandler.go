package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"chefviral/internal/application/auth/dto"
	"chefviral/internal/shared/logger"
	"chefviral/internal/shared/utils"
)

type requestLoginLinkUseCase interface {
	Execute(ctx context.Context, request dto.RequestLoginLinkRequest) error
}

type verifyLoginTokenUseCase interface {
	Execute(ctx context.Context, request dto.VerifyLoginTokenRequest) (*dto.SessionResponse, error)
}

type AuthHandler struct {
	requestLinkUC requestLoginLinkUseCase
	verifyTokenUC verifyLoginTokenUseCase
	logger        logger.Interface
}

func NewAuthHandler(
	requestLinkUC requestLoginLinkUseCase,
	verifyTokenUC verifyLoginTokenUseCase,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		requestLinkUC: requestLinkUC,
		verifyTokenUC: verifyTokenUC,
		logger:        logger,
	}
}

// RequestLoginLink sends a one-time login link to the given email.
// POST /auth/login-link
func (h *AuthHandler) RequestLoginLink(c *gin.Context) {
	var req dto.RequestLoginLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.requestLinkUC.Execute(c.Request.Context(), req); err != nil {
		h.logger.Errorw("failed to issue login link", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "link de acesso enviado para o seu e-mail", nil)
}

// VerifyLoginToken exchanges a one-time token for a session.
// POST /auth/verify
func (h *AuthHandler) VerifyLoginToken(c *gin.Context) {
	var req dto.VerifyLoginTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.verifyTokenUC.Execute(c.Request.Context(), req)
	if err != nil {
		h.logger.Warnw("login token verification failed", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, session)
}
