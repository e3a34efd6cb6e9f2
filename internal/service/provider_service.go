package service

import (
	"strings"

	"github.com/provider-next/internal/constants"
	"github.com/provider-next/internal/models"
	"github.com/provider-next/internal/repository"
)

// ProviderService 供货方服务
type ProviderService struct {
	providerRepo repository.ProviderRepository
}

// NewProviderService 创建供货方服务
func NewProviderService(providerRepo repository.ProviderRepository) *ProviderService {
	return &ProviderService{providerRepo: providerRepo}
}

// CreateProviderInput 创建供货方输入
type CreateProviderInput struct {
	Name        string
	Type        string
	Description string
	Email       string
	Phone       string
	Website     string
	Address     string
	Config      models.JSON
	Metadata    models.JSON
	IsActive    *bool
}

// UpdateProviderInput 更新供货方输入（nil 字段不修改）
type UpdateProviderInput struct {
	Name        *string
	Type        *string
	Description *string
	Email       *string
	Phone       *string
	Website     *string
	Address     *string
	Config      models.JSON
	Metadata    models.JSON
	IsActive    *bool
}

// Create 创建供货方，名称大小写不敏感唯一
func (s *ProviderService) Create(input CreateProviderInput) (*models.Provider, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrProviderNameRequired
	}
	existing, err := s.providerRepo.GetByName(name)
	if err != nil {
		return nil, ErrProviderFetchFailed
	}
	if existing != nil {
		return nil, ErrProviderNameExists
	}

	ptype := normalizeProviderType(input.Type)
	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}
	provider := &models.Provider{
		Name:         name,
		Type:         ptype,
		Description:  strings.TrimSpace(input.Description),
		Email:        strings.TrimSpace(input.Email),
		Phone:        strings.TrimSpace(input.Phone),
		Website:      strings.TrimSpace(input.Website),
		Address:      strings.TrimSpace(input.Address),
		ConfigJSON:   input.Config,
		MetadataJSON: input.Metadata,
		IsActive:     isActive,
	}
	if err := s.providerRepo.Create(provider); err != nil {
		return nil, ErrProviderCreateFailed
	}
	return provider, nil
}

// Get 获取供货方详情
func (s *ProviderService) Get(id uint) (*models.Provider, error) {
	provider, err := s.providerRepo.GetByID(id)
	if err != nil {
		return nil, ErrProviderFetchFailed
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	return provider, nil
}

// List 分页查询供货方
func (s *ProviderService) List(filter repository.ProviderListFilter) ([]models.Provider, int64, error) {
	providers, total, err := s.providerRepo.List(filter)
	if err != nil {
		return nil, 0, ErrProviderFetchFailed
	}
	return providers, total, nil
}

// Update 更新供货方
func (s *ProviderService) Update(id uint, input UpdateProviderInput) (*models.Provider, error) {
	provider, err := s.providerRepo.GetByID(id)
	if err != nil {
		return nil, ErrProviderFetchFailed
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, ErrProviderNameRequired
		}
		if !strings.EqualFold(name, provider.Name) {
			existing, err := s.providerRepo.GetByName(name)
			if err != nil {
				return nil, ErrProviderFetchFailed
			}
			if existing != nil && existing.ID != provider.ID {
				return nil, ErrProviderNameExists
			}
		}
		updates["name"] = name
	}
	if input.Type != nil {
		updates["type"] = normalizeProviderType(*input.Type)
	}
	if input.Description != nil {
		updates["description"] = strings.TrimSpace(*input.Description)
	}
	if input.Email != nil {
		updates["email"] = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		updates["phone"] = strings.TrimSpace(*input.Phone)
	}
	if input.Website != nil {
		updates["website"] = strings.TrimSpace(*input.Website)
	}
	if input.Address != nil {
		updates["address"] = strings.TrimSpace(*input.Address)
	}
	if input.Config != nil {
		updates["config_json"] = input.Config
	}
	if input.Metadata != nil {
		updates["metadata_json"] = input.Metadata
	}
	if input.IsActive != nil {
		updates["is_active"] = *input.IsActive
	}
	if len(updates) == 0 {
		return provider, nil
	}

	if err := s.providerRepo.UpdateFields(id, updates); err != nil {
		return nil, ErrProviderUpdateFailed
	}
	updated, err := s.providerRepo.GetByID(id)
	if err != nil || updated == nil {
		return nil, ErrProviderFetchFailed
	}
	return updated, nil
}

// SetActive 启用或停用供货方
func (s *ProviderService) SetActive(id uint, active bool) (*models.Provider, error) {
	return s.Update(id, UpdateProviderInput{IsActive: &active})
}

// Delete 删除供货方，存在未完结交付单或商品关联时拒绝
func (s *ProviderService) Delete(id uint) error {
	provider, err := s.providerRepo.GetByID(id)
	if err != nil {
		return ErrProviderFetchFailed
	}
	if provider == nil {
		return ErrProviderNotFound
	}

	openCount, err := s.providerRepo.CountOpenFulfillments(id)
	if err != nil {
		return ErrProviderFetchFailed
	}
	if openCount > 0 {
		return ErrProviderHasFulfillments
	}
	assignmentCount, err := s.providerRepo.CountAssignments(id)
	if err != nil {
		return ErrProviderFetchFailed
	}
	if assignmentCount > 0 {
		return ErrProviderHasProducts
	}

	if err := s.providerRepo.Delete(id); err != nil {
		return ErrProviderDeleteFailed
	}
	return nil
}

func normalizeProviderType(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case constants.ProviderTypeShipping:
		return constants.ProviderTypeShipping
	case constants.ProviderTypeInventory:
		return constants.ProviderTypeInventory
	default:
		return constants.ProviderTypeFulfillment
	}
}
