package repository

import (
	"errors"
	"strings"

	"github.com/provider-next/internal/models"

	"gorm.io/gorm"
)

// ProductProviderRepository 商品与供货方关联数据访问接口
type ProductProviderRepository interface {
	Create(assignment *models.ProductProvider) error
	GetByID(id uint) (*models.ProductProvider, error)
	GetByPair(productID, providerID uint) (*models.ProductProvider, error)
	List(filter ProductProviderListFilter) ([]models.ProductProvider, int64, error)
	ListByProduct(productID uint) ([]models.ProductProvider, error)
	UpdateFields(id uint, updates map[string]interface{}) error
	Delete(id uint) error
	CountAvailableByProduct(productID uint) (int64, error)
	WithTx(tx *gorm.DB) ProductProviderRepository
}

// GormProductProviderRepository GORM 实现
type GormProductProviderRepository struct {
	db *gorm.DB
}

// NewProductProviderRepository 创建商品供货关联仓库
func NewProductProviderRepository(db *gorm.DB) *GormProductProviderRepository {
	return &GormProductProviderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProductProviderRepository) WithTx(tx *gorm.DB) ProductProviderRepository {
	if tx == nil {
		return r
	}
	return &GormProductProviderRepository{db: tx}
}

// Create 创建关联
func (r *GormProductProviderRepository) Create(assignment *models.ProductProvider) error {
	return r.db.Create(assignment).Error
}

// GetByID 根据 ID 获取关联
func (r *GormProductProviderRepository) GetByID(id uint) (*models.ProductProvider, error) {
	var assignment models.ProductProvider
	if err := r.db.Preload("Product").Preload("Provider").First(&assignment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

// GetByPair 根据商品与供货方获取关联
func (r *GormProductProviderRepository) GetByPair(productID, providerID uint) (*models.ProductProvider, error) {
	var assignment models.ProductProvider
	err := r.db.Where("product_id = ? AND provider_id = ?", productID, providerID).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

// List 分页查询关联
func (r *GormProductProviderRepository) List(filter ProductProviderListFilter) ([]models.ProductProvider, int64, error) {
	query := r.db.Model(&models.ProductProvider{})

	if filter.ProviderID > 0 {
		query = query.Where("provider_id = ?", filter.ProviderID)
	}
	if filter.ProductID > 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.OnlyAvailable {
		query = query.Where("is_available = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Joins("JOIN products ON products.id = product_providers.product_id").
			Where("LOWER(products.slug) LIKE ? OR LOWER(products.title) LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var assignments []models.ProductProvider
	err := applyPagination(query, filter.Page, filter.PageSize).
		Preload("Product").Preload("Provider").
		Order("product_providers.created_at DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, 0, err
	}
	return assignments, total, nil
}

// ListByProduct 获取商品的全部供货关联
func (r *GormProductProviderRepository) ListByProduct(productID uint) ([]models.ProductProvider, error) {
	var assignments []models.ProductProvider
	err := r.db.Where("product_id = ?", productID).
		Preload("Provider").
		Order("created_at ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// UpdateFields 按字段更新关联
func (r *GormProductProviderRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	return r.db.Model(&models.ProductProvider{}).Where("id = ?", id).Updates(updates).Error
}

// Delete 删除关联
func (r *GormProductProviderRepository) Delete(id uint) error {
	return r.db.Delete(&models.ProductProvider{}, id).Error
}

// CountAvailableByProduct 统计商品当前可用的供货关联数量
func (r *GormProductProviderRepository) CountAvailableByProduct(productID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProductProvider{}).
		Where("product_id = ? AND is_available = ?", productID, true).
		Count(&count).Error
	return count, err
}
