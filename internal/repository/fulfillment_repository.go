package repository

import (
	"errors"

	"github.com/provider-next/internal/models"

	"gorm.io/gorm"
)

// FulfillmentRepository 交付单数据访问接口
type FulfillmentRepository interface {
	Create(fulfillment *models.ProviderFulfillment) error
	GetByID(id uint) (*models.ProviderFulfillment, error)
	List(filter FulfillmentListFilter) ([]models.ProviderFulfillment, int64, error)
	ListByOrder(orderID uint) ([]models.ProviderFulfillment, error)
	CountByOrder(orderID uint) (int64, error)
	UpdateFields(id uint, updates map[string]interface{}) error
	// TransitionStatus 条件更新：仅当当前状态等于 fromStatus 时写入，
	// 返回受影响行数，供调用方识别并发状态变更。
	TransitionStatus(id uint, fromStatus, toStatus string, updates map[string]interface{}) (int64, error)
	UpdateItem(item *models.ProviderFulfillmentItem) error
	Delete(id uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) FulfillmentRepository
}

// GormFulfillmentRepository GORM 实现
type GormFulfillmentRepository struct {
	db *gorm.DB
}

// NewFulfillmentRepository 创建交付单仓库
func NewFulfillmentRepository(db *gorm.DB) *GormFulfillmentRepository {
	return &GormFulfillmentRepository{db: db}
}

// WithTx 绑定事务
func (r *GormFulfillmentRepository) WithTx(tx *gorm.DB) FulfillmentRepository {
	if tx == nil {
		return r
	}
	return &GormFulfillmentRepository{db: tx}
}

// Transaction 执行事务
func (r *GormFulfillmentRepository) Transaction(fn func(tx *gorm.DB) error) error {
	if fn == nil {
		return nil
	}
	return r.db.Transaction(fn)
}

// Create 创建交付单及其条目
func (r *GormFulfillmentRepository) Create(fulfillment *models.ProviderFulfillment) error {
	return r.db.Create(fulfillment).Error
}

// GetByID 根据 ID 获取交付单
func (r *GormFulfillmentRepository) GetByID(id uint) (*models.ProviderFulfillment, error) {
	var fulfillment models.ProviderFulfillment
	query := r.db.Preload("Items").Preload("Provider")
	if err := query.First(&fulfillment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &fulfillment, nil
}

// List 交付单列表
func (r *GormFulfillmentRepository) List(filter FulfillmentListFilter) ([]models.ProviderFulfillment, int64, error) {
	fulfillments := make([]models.ProviderFulfillment, 0)

	query := r.db.Model(&models.ProviderFulfillment{})
	if filter.OrderID != 0 {
		query = query.Where("order_id = ?", filter.OrderID)
	}
	if filter.ProviderID != 0 {
		query = query.Where("provider_id = ?", filter.ProviderID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at <= ?", *filter.CreatedTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.WithItems {
		query = query.Preload("Items")
	}
	query = query.Preload("Provider")
	query = applyPagination(query, filter.Page, filter.PageSize)
	if err := query.Order("created_at DESC, id DESC").Find(&fulfillments).Error; err != nil {
		return nil, 0, err
	}
	return fulfillments, total, nil
}

// ListByOrder 根据订单 ID 获取全部交付单
func (r *GormFulfillmentRepository) ListByOrder(orderID uint) ([]models.ProviderFulfillment, error) {
	fulfillments := make([]models.ProviderFulfillment, 0)
	err := r.db.Where("order_id = ?", orderID).
		Preload("Items").
		Preload("Provider").
		Order("id ASC").
		Find(&fulfillments).Error
	if err != nil {
		return nil, err
	}
	return fulfillments, nil
}

// CountByOrder 统计订单的交付单数量
func (r *GormFulfillmentRepository) CountByOrder(orderID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.ProviderFulfillment{}).
		Where("order_id = ?", orderID).
		Count(&count).Error
	return count, err
}

// UpdateFields 更新交付单字段（不含状态）
func (r *GormFulfillmentRepository) UpdateFields(id uint, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.Model(&models.ProviderFulfillment{}).Where("id = ?", id).Updates(updates).Error
}

// TransitionStatus 条件状态更新
func (r *GormFulfillmentRepository) TransitionStatus(id uint, fromStatus, toStatus string, updates map[string]interface{}) (int64, error) {
	values := map[string]interface{}{"status": toStatus}
	for key, value := range updates {
		values[key] = value
	}
	result := r.db.Model(&models.ProviderFulfillment{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Updates(values)
	return result.RowsAffected, result.Error
}

// UpdateItem 更新交付条目
func (r *GormFulfillmentRepository) UpdateItem(item *models.ProviderFulfillmentItem) error {
	return r.db.Save(item).Error
}

// Delete 删除交付单及其条目
func (r *GormFulfillmentRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("fulfillment_id = ?", id).Delete(&models.ProviderFulfillmentItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.ProviderFulfillment{}, id).Error
	})
}
