package admin

import (
	"errors"

	"github.com/provider-next/internal/http/response"
	"github.com/provider-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProductAvailability 获取商品可用性 (Admin)
func (h *Handler) GetProductAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	availability, err := h.InventoryService.Availability(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, availability)
}

// ProductAvailabilityRequest 商品可用性更新请求
type ProductAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// UpdateProductAvailability 设置或清除商品的缺货阻断
func (h *Handler) UpdateProductAvailability(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ProductAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Available == nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	availability, err := h.InventoryService.SetAvailability(id, *req.Available)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		case errors.Is(err, service.ErrAvailabilityUpdateFailed):
			respondError(c, response.CodeInternal, "error.availability_update_failed", err)
		default:
			respondError(c, response.CodeInternal, "error.availability_update_failed", err)
		}
		return
	}
	response.Success(c, availability)
}
