package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"chefviral/internal/application/catalog/dto"
	"chefviral/internal/shared/errors"
	"chefviral/internal/shared/logger"
	"chefviral/internal/shared/utils"
)

type addProductUseCase interface {
	Execute(ctx context.Context, userID uint, request dto.AddProductRequest) (*dto.ProductResponse, error)
}

type listProductsUseCase interface {
	Execute(ctx context.Context, userID uint) (*dto.ProductListResponse, error)
}

type updateProductUseCase interface {
	Execute(ctx context.Context, userID uint, sid string, request dto.UpdateProductRequest) (*dto.ProductResponse, error)
}

type deleteProductUseCase interface {
	Execute(ctx context.Context, userID uint, sid string) error
}

type ProductHandler struct {
	addUC    addProductUseCase
	listUC   listProductsUseCase
	updateUC updateProductUseCase
	deleteUC deleteProductUseCase
	logger   logger.Interface
}

func NewProductHandler(
	addUC addProductUseCase,
	listUC listProductsUseCase,
	updateUC updateProductUseCase,
	deleteUC deleteProductUseCase,
	logger logger.Interface,
) *ProductHandler {
	return &ProductHandler{
		addUC:    addUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger,
	}
}

// Add creates a product in the owner's catalog.
// POST /products
func (h *ProductHandler) Add(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("sessão inválida"))
		return
	}

	var req dto.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.addUC.Execute(c.Request.Context(), userID, req)
	if err != nil {
		h.logger.Errorw("failed to add product", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// List returns the owner's full catalog.
// GET /products
func (h *ProductHandler) List(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("sessão inválida"))
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), userID)
	if err != nil {
		h.logger.Errorw("failed to list products", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Update edits a product the owner controls.
// PUT /products/:sid
func (h *ProductHandler) Update(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("sessão inválida"))
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), userID, c.Param("sid"), req)
	if err != nil {
		h.logger.Errorw("failed to update product", "user_id", userID, "product_sid", c.Param("sid"), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// Delete removes a product the owner controls.
// DELETE /products/:sid
func (h *ProductHandler) Delete(c *gin.Context) {
	userID, ok := utils.GetUserID(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("sessão inválida"))
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), userID, c.Param("sid")); err != nil {
		h.logger.Errorw("failed to delete product", "user_id", userID, "product_sid", c.Param("sid"), "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "produto removido", nil)
}
