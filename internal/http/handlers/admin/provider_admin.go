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

// ProviderCreateRequest 创建供货方请求
type ProviderCreateRequest struct {
	Name        string      `json:"name" binding:"required"`
	Type        string      `json:"type"`
	Description string      `json:"description"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Website     string      `json:"website"`
	Address     string      `json:"address"`
	Config      models.JSON `json:"config"`
	Metadata    models.JSON `json:"metadata"`
	IsActive    *bool       `json:"is_active"`
}

// ProviderUpdateRequest 更新供货方请求
type ProviderUpdateRequest struct {
	Name        *string     `json:"name"`
	Type        *string     `json:"type"`
	Description *string     `json:"description"`
	Email       *string     `json:"email"`
	Phone       *string     `json:"phone"`
	Website     *string     `json:"website"`
	Address     *string     `json:"address"`
	Config      models.JSON `json:"config"`
	Metadata    models.JSON `json:"metadata"`
	IsActive    *bool       `json:"is_active"`
}

// GetAdminProviders 获取供货方列表 (Admin)
func (h *Handler) GetAdminProviders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.ProviderListFilter{
		Page:     page,
		PageSize: pageSize,
		Type:     c.Query("type"),
		Status:   c.Query("status"),
		Name:     c.Query("search"),
	}

	providers, total, err := h.ProviderService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.provider_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, providers, pagination)
}

// GetAdminProvider 获取供货方详情 (Admin)
func (h *Handler) GetAdminProvider(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	provider, err := h.ProviderService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrProviderNotFound) {
			respondError(c, response.CodeNotFound, "error.provider_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.provider_fetch_failed", err)
		return
	}
	response.Success(c, provider)
}

// CreateProvider 创建供货方
func (h *Handler) CreateProvider(c *gin.Context) {
	var req ProviderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	provider, err := h.ProviderService.Create(service.CreateProviderInput{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Email:       req.Email,
		Phone:       req.Phone,
		Website:     req.Website,
		Address:     req.Address,
		Config:      req.Config,
		Metadata:    req.Metadata,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProviderNameRequired):
			respondError(c, response.CodeBadRequest, "error.provider_name_required", nil)
		case errors.Is(err, service.ErrProviderNameExists):
			respondError(c, response.CodeConflict, "error.provider_name_exists", nil)
		default:
			respondError(c, response.CodeInternal, "error.provider_create_failed", err)
		}
		return
	}
	response.Success(c, provider)
}

// UpdateProvider 更新供货方
func (h *Handler) UpdateProvider(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ProviderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	provider, err := h.ProviderService.Update(id, service.UpdateProviderInput{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Email:       req.Email,
		Phone:       req.Phone,
		Website:     req.Website,
		Address:     req.Address,
		Config:      req.Config,
		Metadata:    req.Metadata,
		IsActive:    req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProviderNotFound):
			respondError(c, response.CodeNotFound, "error.provider_not_found", nil)
		case errors.Is(err, service.ErrProviderNameRequired):
			respondError(c, response.CodeBadRequest, "error.provider_name_required", nil)
		case errors.Is(err, service.ErrProviderNameExists):
			respondError(c, response.CodeConflict, "error.provider_name_exists", nil)
		default:
			respondError(c, response.CodeInternal, "error.provider_update_failed", err)
		}
		return
	}
	response.Success(c, provider)
}

// DeleteProvider 删除供货方
func (h *Handler) DeleteProvider(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.ProviderService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrProviderNotFound):
			respondError(c, response.CodeNotFound, "error.provider_not_found", nil)
		case errors.Is(err, service.ErrProviderHasFulfillments):
			respondError(c, response.CodeConflict, "error.provider_has_fulfillments", nil)
		case errors.Is(err, service.ErrProviderHasProducts):
			respondError(c, response.CodeConflict, "error.provider_has_products", nil)
		default:
			respondError(c, response.CodeInternal, "error.provider_delete_failed", err)
		}
		return
	}
	response.Success(c, gin.H{"id": id})
}

// ProviderActiveRequest 启停供货方请求
type ProviderActiveRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// SetProviderActive 启用或停用供货方
func (h *Handler) SetProviderActive(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req ProviderActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	provider, err := h.ProviderService.SetActive(id, *req.IsActive)
	if err != nil {
		if errors.Is(err, service.ErrProviderNotFound) {
			respondError(c, response.CodeNotFound, "error.provider_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.provider_update_failed", err)
		return
	}
	response.Success(c, provider)
}
