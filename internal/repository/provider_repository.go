package repository

import (
	"errors"
	"strings"

	"github.com/provider-next/internal/constants"
	"github.com/provider-next/internal/models"

	"gorm.io/gorm"
)

// ProviderRepository 供应商数据访问接口
type ProviderRepository interface {
	Create(provider *models.Provider) error
	GetByID(id uint) (*models.Provider, error)
	GetByName(name string) (*models.Provider, error)
	List(filter ProviderListFilter) ([]models.Provider, int64, error)
	UpdateFields(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	CountOpenFulfillments(providerID uint) (int64, error)
	CountAssignments(providerID uint) (int64, error)
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) ProviderRepository
}

// GormProviderRepository GORM 实现
type GormProviderRepository struct {
	db *gorm.DB
}

// NewProviderRepository 创建供应商仓库
func NewProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProviderRepository) WithTx(tx *gorm.DB) ProviderRepository {
	if tx == nil {
		return r
	}
	return &GormProviderRepository{db: tx}
}

// Transaction 执行事务
func (r *GormProviderRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// Create 创建供应商
func (r *GormProviderRepository) Create(provider *models.Provider) error {
	return r.db.Create(provider).Error
}

// GetByID 根据 ID 获取供应商
func (r *GormProviderRepository) GetByID(id uint) (*models.Provider, error) {
	var provider models.Provider
	if err := r.db.First(&provider, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

// GetByName 根据名称获取供应商（不区分大小写）
func (r *GormProviderRepository) GetByName(name string) (*models.Provider, error) {
	var provider models.Provider
	if err := r.db.Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).First(&provider).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &provider, nil
}

// List 供应商列表
func (r *GormProviderRepository) List(filter ProviderListFilter) ([]models.Provider, int64, error) {
	providers := make([]models.Provider, 0)

	query := r.db.Model(&models.Provider{})
	if providerType := strings.TrimSpace(filter.Type); providerType != "" {
		query = query.Where("type = ?", providerType)
	}
	switch strings.ToLower(strings.TrimSpace(filter.Status)) {
	case constants.ProviderStatusActive:
		query = query.Where("is_active = ?", true)
	case constants.ProviderStatusInactive:
		query = query.Where("is_active = ?", false)
	}
	if name := strings.TrimSpace(filter.Name); name != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("created_at DESC, id DESC").Find(&providers).Error; err != nil {
		return nil, 0, err
	}
	return providers, total, nil
}

// UpdateFields 更新供应商字段
func (r *GormProviderRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.Provider{}).Where("id = ?", id).Updates(updates).Error
}

// Delete 删除供应商
func (r *GormProviderRepository) Delete(id uint) error {
	return r.db.Delete(&models.Provider{}, id).Error
}

// CountOpenFulfillments 统计供应商未完结的交付单数量
func (r *GormProviderRepository) CountOpenFulfillments(providerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProviderFulfillment{}).
		Where("provider_id = ?", providerID).
		Where("status NOT IN ?", []string{constants.FulfillmentStatusCompleted, constants.FulfillmentStatusCanceled}).
		Count(&count).Error
	return count, err
}

// CountAssignments 统计供应商的商品分配数量
func (r *GormProviderRepository) CountAssignments(providerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProductProvider{}).
		Where("provider_id = ?", providerID).
		Count(&count).Error
	return count, err
}
