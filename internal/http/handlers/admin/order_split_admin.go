package admin

import (
	"errors"

	"github.com/provider-next/internal/http/response"
	"github.com/provider-next/internal/models"
	"github.com/provider-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SplitItemRequest 拆单条目请求
type SplitItemRequest struct {
	OrderItemID uint `json:"order_item_id" binding:"required"`
	Quantity    int  `json:"quantity" binding:"required"`
}

// SplitGroupRequest 拆单分组请求
type SplitGroupRequest struct {
	ProviderID uint               `json:"provider_id" binding:"required"`
	Items      []SplitItemRequest `json:"items" binding:"required"`
	Metadata   models.JSON        `json:"metadata"`
}

// SplitOrderRequest 订单拆分请求
type SplitOrderRequest struct {
	Groups []SplitGroupRequest `json:"groups" binding:"required"`
}

// SplitOrder 将订单拆分为多个供货方交付单
func (h *Handler) SplitOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req SplitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	groups := make([]service.SplitGroupInput, 0, len(req.Groups))
	for _, group := range req.Groups {
		input := service.SplitGroupInput{
			ProviderID: group.ProviderID,
			Metadata:   group.Metadata,
		}
		for _, item := range group.Items {
			input.Items = append(input.Items, service.SplitItemInput{
				OrderItemID: item.OrderItemID,
				Quantity:    item.Quantity,
			})
		}
		groups = append(groups, input)
	}

	fulfillments, err := h.FulfillmentService.SplitOrder(orderID, groups)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		case errors.Is(err, service.ErrOrderCanceled):
			respondError(c, response.CodeBadRequest, "error.order_canceled", nil)
		case errors.Is(err, service.ErrOrderAlreadySplit):
			respondError(c, response.CodeConflict, "error.order_already_split", nil)
		case errors.Is(err, service.ErrSplitInvalid):
			respondError(c, response.CodeBadRequest, "error.split_invalid", nil)
		case errors.Is(err, service.ErrSplitItemUnknown):
			respondError(c, response.CodeBadRequest, "error.split_item_unknown", nil)
		case errors.Is(err, service.ErrSplitUnderAllocated):
			respondError(c, response.CodeBadRequest, "error.split_under_allocated", nil)
		case errors.Is(err, service.ErrSplitOverAllocated):
			respondError(c, response.CodeBadRequest, "error.split_over_allocated", nil)
		case errors.Is(err, service.ErrProviderNotFound):
			respondError(c, response.CodeNotFound, "error.provider_not_found", nil)
		case errors.Is(err, service.ErrProviderInactive):
			respondError(c, response.CodeConflict, "error.provider_inactive", nil)
		default:
			respondError(c, response.CodeInternal, "error.split_create_failed", err)
		}
		return
	}
	response.Success(c, fulfillments)
}

// GetOrderSplitSummary 获取订单拆单汇总
func (h *Handler) GetOrderSplitSummary(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	summary, err := h.FulfillmentService.GetSplitSummary(orderID)
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			respondError(c, response.CodeNotFound, "error.order_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	response.Success(c, summary)
}

// GetOrderFulfillments 获取订单的全部交付单 (Admin)
func (h *Handler) GetOrderFulfillments(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	fulfillments, err := h.FulfillmentService.ListByOrder(orderID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.fulfillment_fetch_failed", err)
		return
	}
	response.Success(c, fulfillments)
}

// GetAdminOrder 获取订单详情 (Admin)
func (h *Handler) GetAdminOrder(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	order, err := h.OrderRepo.GetByID(orderID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.order_fetch_failed", err)
		return
	}
	if order == nil {
		respondError(c, response.CodeNotFound, "error.order_not_found", nil)
		return
	}
	response.Success(c, order)
}
