package public

import (
	"errors"
	"strings"

	"github.com/provider-next/internal/constants"
	"github.com/provider-next/internal/http/response"
	"github.com/provider-next/internal/repository"
	"github.com/provider-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProductAvailability 查询商品可购买状态（公开）
func (h *Handler) GetProductAvailability(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	availability, err := h.InventoryService.AvailabilityBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	// 公开接口只暴露购买可用性，不泄露内部标记
	response.Success(c, gin.H{
		"slug":      availability.Slug,
		"title":     availability.Title,
		"available": availability.Available,
	})
}

// GetOrderFulfillments 按订单编号查询交付进度（公开）
func (h *Handler) GetOrderFulfillments(c *gin.Context) {
	orderNo := strings.TrimSpace(c.Param("order_no"))
	if orderNo == "" {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	order, err := h.OrderRepo.GetByOrderNo(orderNo)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	if order == nil {
		respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		return
	}

	entries := make([]gin.H, 0, len(order.Fulfillments))
	for _, fulfillment := range order.Fulfillments {
		entry := gin.H{
			"status":     fulfillment.Status,
			"carrier":    fulfillment.Carrier,
			"shipped_at": fulfillment.ShippedAt,
		}
		if fulfillment.Status == constants.FulfillmentStatusShipped || fulfillment.Status == constants.FulfillmentStatusCompleted {
			entry["tracking_number"] = fulfillment.TrackingNumber
			entry["tracking_url"] = fulfillment.TrackingURL
		}
		entries = append(entries, entry)
	}
	response.Success(c, gin.H{
		"order_no":     order.OrderNo,
		"order_status": order.Status,
		"fulfillments": entries,
	})
}

// GetActiveProviders 查询启用中的供货方名录（公开，仅名称与类型）
func (h *Handler) GetActiveProviders(c *gin.Context) {
	filter := repository.ProviderListFilter{
		Page:     1,
		PageSize: 100,
		Status:   constants.ProviderStatusActive,
	}
	providers, _, err := h.ProviderService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.provider_fetch_failed", err)
		return
	}

	entries := make([]gin.H, 0, len(providers))
	for _, provider := range providers {
		entries = append(entries, gin.H{
			"name":    provider.Name,
			"type":    provider.Type,
			"website": provider.Website,
		})
	}
	response.Success(c, entries)
}
