package admin

import (
	"errors"
	"strconv"

	"github.com/provider-next/internal/http/response"
	"github.com/provider-next/internal/repository"
	"github.com/provider-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AssignmentCreateRequest 创建商品供货关联请求
type AssignmentCreateRequest struct {
	ProductID         uint   `json:"product_id" binding:"required"`
	ProviderID        uint   `json:"provider_id" binding:"required"`
	ProviderProductID string `json:"provider_product_id"`
	CostPrice         string `json:"cost_price"`
	IsAvailable       *bool  `json:"is_available"`
}

// AssignmentUpdateRequest 更新商品供货关联请求
type AssignmentUpdateRequest struct {
	ProviderProductID *string `json:"provider_product_id"`
	CostPrice         *string `json:"cost_price"`
	IsAvailable       *bool   `json:"is_available"`
}

// GetAdminAssignments 获取商品供货关联列表 (Admin)
func (h *Handler) GetAdminAssignments(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	providerID, _ := strconv.ParseUint(c.Query("provider_id"), 10, 64)
	productID, _ := strconv.ParseUint(c.Query("product_id"), 10, 64)
	onlyAvailable, _ := strconv.ParseBool(c.DefaultQuery("only_available", "false"))

	filter := repository.ProductProviderListFilter{
		Page:          page,
		PageSize:      pageSize,
		ProviderID:    uint(providerID),
		ProductID:     uint(productID),
		Search:        c.Query("search"),
		OnlyAvailable: onlyAvailable,
	}

	assignments, total, err := h.AssignmentService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.assignment_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, assignments, pagination)
}

// GetAdminAssignment 获取商品供货关联详情 (Admin)
func (h *Handler) GetAdminAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignment, err := h.AssignmentService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			respondError(c, response.CodeNotFound, "error.assignment_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.assignment_fetch_failed", err)
		return
	}
	response.Success(c, assignment)
}

// CreateAssignment 创建商品供货关联
func (h *Handler) CreateAssignment(c *gin.Context) {
	var req AssignmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	costPrice := decimal.Zero
	if req.CostPrice != "" {
		parsed, err := decimal.NewFromString(req.CostPrice)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		costPrice = parsed
	}

	assignment, err := h.AssignmentService.Assign(service.AssignInput{
		ProductID:         req.ProductID,
		ProviderID:        req.ProviderID,
		ProviderProductID: req.ProviderProductID,
		CostPrice:         costPrice,
		IsAvailable:       req.IsAvailable,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		case errors.Is(err, service.ErrProviderNotFound):
			respondError(c, response.CodeNotFound, "error.provider_not_found", nil)
		case errors.Is(err, service.ErrProviderInactive):
			respondError(c, response.CodeConflict, "error.provider_inactive", nil)
		case errors.Is(err, service.ErrAssignmentExists):
			respondError(c, response.CodeConflict, "error.assignment_exists", nil)
		default:
			respondError(c, response.CodeInternal, "error.assignment_create_failed", err)
		}
		return
	}
	response.Success(c, assignment)
}

// UpdateAssignment 更新商品供货关联
func (h *Handler) UpdateAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AssignmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	input := service.UpdateAssignmentInput{
		ProviderProductID: req.ProviderProductID,
		IsAvailable:       req.IsAvailable,
	}
	if req.CostPrice != nil {
		parsed, err := decimal.NewFromString(*req.CostPrice)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		input.CostPrice = &parsed
	}

	assignment, err := h.AssignmentService.Update(id, input)
	if err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			respondError(c, response.CodeNotFound, "error.assignment_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.assignment_update_failed", err)
		return
	}
	response.Success(c, assignment)
}

// DeleteAssignment 删除商品供货关联
func (h *Handler) DeleteAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.AssignmentService.Delete(id); err != nil {
		if errors.Is(err, service.ErrAssignmentNotFound) {
			respondError(c, response.CodeNotFound, "error.assignment_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.assignment_delete_failed", err)
		return
	}
	response.Success(c, gin.H{"id": id})
}
