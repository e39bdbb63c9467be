package handlers

import (
	"context"

	"github.com/gin-gonic/gin"

	"chefviral/internal/application/discovery/dto"
	"chefviral/internal/shared/logger"
	"chefviral/internal/shared/utils"
)

type searchProductsUseCase interface {
	Execute(ctx context.Context, request dto.SearchRequest) (*dto.SearchResponse, error)
}

type DiscoveryHandler struct {
	searchUC searchProductsUseCase
	logger   logger.Interface
}

func NewDiscoveryHandler(searchUC searchProductsUseCase, logger logger.Interface) *DiscoveryHandler {
	return &DiscoveryHandler{searchUC: searchUC, logger: logger}
}

// Search runs the public cross-tenant product search.
// GET /discovery/search
func (h *DiscoveryHandler) Search(c *gin.Context) {
	req := dto.SearchRequest{
		Location: c.Query("location"),
		Category: c.Query("category"),
		Query:    c.Query("q"),
	}
	req.MinPrice, req.MinPriceSet = utils.QueryFloat(c, "min_price")
	req.MaxPrice, req.MaxPriceSet = utils.QueryFloat(c, "max_price")

	result, err := h.searchUC.Execute(c.Request.Context(), req)
	if err != nil {
		h.logger.Errorw("discovery search failed", "location", req.Location, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
