package admin

import (
	"errors"
	"strconv"

	"github.com/provider-next/internal/http/response"
	"github.com/provider-next/internal/models"
	"github.com/provider-next/internal/repository"
	"github.com/provider-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetAdminFulfillments 获取交付单列表 (Admin)
func (h *Handler) GetAdminFulfillments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	orderID, _ := strconv.ParseUint(c.Query("order_id"), 10, 64)
	providerID, _ := strconv.ParseUint(c.Query("provider_id"), 10, 64)

	filter := repository.FulfillmentListFilter{
		Page:       page,
		PageSize:   pageSize,
		OrderID:    uint(orderID),
		ProviderID: uint(providerID),
		Status:     c.Query("status"),
		WithItems:  true,
	}

	fulfillments, total, err := h.FulfillmentService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fulfillment_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, fulfillments, pagination)
}

// GetAdminFulfillment 获取交付单详情 (Admin)
func (h *Handler) GetAdminFulfillment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fulfillment, err := h.FulfillmentService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrFulfillmentNotFound) {
			respondError(c, response.CodeNotFound, "error.fulfillment_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.fulfillment_fetch_failed", err)
		return
	}
	response.Success(c, fulfillment)
}

// FulfillmentShipRequest 发货请求
type FulfillmentShipRequest struct {
	TrackingNumber string `json:"tracking_number"`
	TrackingURL    string `json:"tracking_url"`
	Carrier        string `json:"carrier"`
}

// ShipFulfillment 标记交付单已发货
func (h *Handler) ShipFulfillment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req FulfillmentShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	fulfillment, err := h.FulfillmentService.MarkShipped(id, service.ShipInput{
		TrackingNumber: req.TrackingNumber,
		TrackingURL:    req.TrackingURL,
		Carrier:        req.Carrier,
	})
	if err != nil {
		respondFulfillmentError(c, err, "error.fulfillment_update_failed")
		return
	}
	response.Success(c, fulfillment)
}

// CompleteFulfillment 标记交付单已完成
func (h *Handler) CompleteFulfillment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fulfillment, err := h.FulfillmentService.Complete(id)
	if err != nil {
		respondFulfillmentError(c, err, "error.fulfillment_update_failed")
		return
	}
	response.Success(c, fulfillment)
}

// CancelFulfillment 取消交付单
func (h *Handler) CancelFulfillment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fulfillment, err := h.FulfillmentService.Cancel(id)
	if err != nil {
		respondFulfillmentError(c, err, "error.fulfillment_update_failed")
		return
	}
	response.Success(c, fulfillment)
}

// UpdateFulfillmentTracking 更新交付单物流信息
func (h *Handler) UpdateFulfillmentTracking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req FulfillmentShipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	fulfillment, err := h.FulfillmentService.UpdateTracking(id, service.ShipInput{
		TrackingNumber: req.TrackingNumber,
		TrackingURL:    req.TrackingURL,
		Carrier:        req.Carrier,
	})
	if err != nil {
		respondFulfillmentError(c, err, "error.fulfillment_update_failed")
		return
	}
	response.Success(c, fulfillment)
}

// FulfillmentItemUpdate 单个交付条目的调整请求
type FulfillmentItemUpdate struct {
	ItemID            uint        `json:"item_id" binding:"required"`
	FulfilledQuantity *int        `json:"fulfilled_quantity"`
	Metadata          models.JSON `json:"metadata"`
}

// UpdateFulfillmentItemsRequest 批量调整交付条目请求
type UpdateFulfillmentItemsRequest struct {
	Items []FulfillmentItemUpdate `json:"items" binding:"required"`
}

// UpdateFulfillmentItems 调整交付条目的交付进度
func (h *Handler) UpdateFulfillmentItems(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateFulfillmentItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	inputs := make([]service.FulfillmentItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		inputs = append(inputs, service.FulfillmentItemInput{
			ItemID:            item.ItemID,
			FulfilledQuantity: item.FulfilledQuantity,
			Metadata:          item.Metadata,
		})
	}

	fulfillment, err := h.FulfillmentService.UpdateItems(id, inputs)
	if err != nil {
		respondFulfillmentError(c, err, "error.fulfillment_update_failed")
		return
	}
	response.Success(c, fulfillment)
}

// DeleteFulfillment 删除已取消的交付单
func (h *Handler) DeleteFulfillment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.FulfillmentService.Delete(id); err != nil {
		respondFulfillmentError(c, err, "error.fulfillment_delete_failed")
		return
	}
	response.Success(c, gin.H{"id": id})
}

func respondFulfillmentError(c *gin.Context, err error, fallbackKey string) {
	switch {
	case errors.Is(err, service.ErrFulfillmentNotFound):
		respondError(c, response.CodeNotFound, "error.fulfillment_not_found", nil)
	case errors.Is(err, service.ErrFulfillmentNotPending):
		respondError(c, response.CodeConflict, "error.fulfillment_not_pending", nil)
	case errors.Is(err, service.ErrFulfillmentNotShipped):
		respondError(c, response.CodeConflict, "error.fulfillment_not_shipped", nil)
	case errors.Is(err, service.ErrFulfillmentTerminal):
		respondError(c, response.CodeConflict, "error.fulfillment_terminal", nil)
	case errors.Is(err, service.ErrFulfillmentNotTerminal):
		respondError(c, response.CodeConflict, "error.fulfillment_not_terminal", nil)
	case errors.Is(err, service.ErrFulfillmentItemUnknown):
		respondError(c, response.CodeBadRequest, "error.fulfillment_item_unknown", nil)
	case errors.Is(err, service.ErrFulfillmentItemInvalid):
		respondError(c, response.CodeBadRequest, "error.fulfillment_item_invalid", nil)
	case errors.Is(err, service.ErrFulfillmentStateConflict):
		respondError(c, response.CodeConflict, "error.fulfillment_state_conflict", nil)
	default:
		respondError(c, response.CodeInternal, fallbackKey, err)
	}
}
