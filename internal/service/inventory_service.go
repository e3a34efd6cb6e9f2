package service

import (
	"context"

	"github.com/provider-next/internal/cache"
	"github.com/provider-next/internal/constants"
	"github.com/provider-next/internal/logger"
	"github.com/provider-next/internal/models"
	"github.com/provider-next/internal/queue"
	"github.com/provider-next/internal/repository"

	"gorm.io/gorm"
)

// InventoryService 商品可用性服务
type InventoryService struct {
	productRepo    repository.ProductRepository
	assignmentRepo repository.ProductProviderRepository
	queueClient    *queue.Client
}

// NewInventoryService 创建商品可用性服务
func NewInventoryService(productRepo repository.ProductRepository, assignmentRepo repository.ProductProviderRepository, queueClient *queue.Client) *InventoryService {
	return &InventoryService{
		productRepo:    productRepo,
		assignmentRepo: assignmentRepo,
		queueClient:    queueClient,
	}
}

// ProductAvailability 商品可用性视图
type ProductAvailability struct {
	ProductID          uint   `json:"product_id"`
	Slug               string `json:"slug"`
	Title              string `json:"title"`
	IsPublished        bool   `json:"is_published"`
	BackorderBlocked   bool   `json:"backorder_blocked"`
	AvailableProviders int64  `json:"available_providers"`
	Available          bool   `json:"available"`
}

// Availability 计算商品可用性：已上架且未被缺货标记阻断即为可购买。
// 优先读缓存，未命中时回源计算并回填。
func (s *InventoryService) Availability(productID uint) (*ProductAvailability, error) {
	if state, hit, err := cache.GetAvailabilityState(context.Background(), productID); err != nil {
		logger.Warnw("inventory_availability_cache_read_failed", "product_id", productID, "error", err)
	} else if hit {
		return &ProductAvailability{
			ProductID:          state.ProductID,
			Slug:               state.Slug,
			Title:              state.Title,
			IsPublished:        state.IsPublished,
			BackorderBlocked:   state.BackorderBlocked,
			AvailableProviders: state.AvailableProviders,
			Available:          state.Available,
		}, nil
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, ErrProductFetchFailed
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	providerCount, err := s.assignmentRepo.CountAvailableByProduct(productID)
	if err != nil {
		return nil, ErrProductFetchFailed
	}

	blocked := backorderBlocked(product)
	availability := &ProductAvailability{
		ProductID:          product.ID,
		Slug:               product.Slug,
		Title:              product.Title,
		IsPublished:        product.IsPublished,
		BackorderBlocked:   blocked,
		AvailableProviders: providerCount,
		Available:          product.IsPublished && !blocked,
	}
	if err := cache.SetAvailabilityState(context.Background(), &cache.AvailabilityState{
		ProductID:          availability.ProductID,
		Slug:               availability.Slug,
		Title:              availability.Title,
		IsPublished:        availability.IsPublished,
		BackorderBlocked:   availability.BackorderBlocked,
		AvailableProviders: availability.AvailableProviders,
		Available:          availability.Available,
	}); err != nil {
		logger.Warnw("inventory_availability_cache_write_failed", "product_id", productID, "error", err)
	}
	return availability, nil
}

// AvailabilityBySlug 按商品 slug 计算可用性
func (s *InventoryService) AvailabilityBySlug(slug string) (*ProductAvailability, error) {
	product, err := s.productRepo.GetBySlug(slug)
	if err != nil {
		return nil, ErrProductFetchFailed
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return s.Availability(product.ID)
}

// SetAvailability 同步翻转商品发布状态与缺货阻断标记，并同事务更新供货关联的可用位
func (s *InventoryService) SetAvailability(productID uint, available bool) (*ProductAvailability, error) {
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, ErrProductFetchFailed
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	metadata := models.JSON{}
	for key, value := range product.MetadataJSON {
		metadata[key] = value
	}
	if available {
		delete(metadata, constants.ProductMetaBackorderUnavailable)
	} else {
		metadata[constants.ProductMetaBackorderUnavailable] = true
	}

	// 发布状态与缺货标记必须同事务翻转，避免出现「已发布但标记缺货」的中间态
	err = s.productRepo.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.WithTx(tx).UpdateFields(productID, map[string]interface{}{
			"metadata_json": metadata,
			"is_published":  available,
		}); err != nil {
			return err
		}
		return tx.Model(&models.ProductProvider{}).
			Where("product_id = ?", productID).
			Update("is_available", available).Error
	})
	if err != nil {
		return nil, ErrAvailabilityUpdateFailed
	}
	if err := cache.DelAvailabilityState(context.Background(), productID); err != nil {
		logger.Warnw("inventory_availability_cache_del_failed", "product_id", productID, "error", err)
	}

	if s.queueClient != nil {
		if err := s.queueClient.EnqueueProductAvailabilitySync(queue.ProductAvailabilitySyncPayload{
			ProductID: productID,
		}); err != nil {
			logger.Warnw("inventory_enqueue_availability_sync_failed", "product_id", productID, "error", err)
		}
	}
	return s.Availability(productID)
}

func backorderBlocked(product *models.Product) bool {
	if product == nil || len(product.MetadataJSON) == 0 {
		return false
	}
	switch value := product.MetadataJSON[constants.ProductMetaBackorderUnavailable].(type) {
	case bool:
		return value
	case string:
		return value == "true" || value == "1"
	case float64:
		return value != 0
	default:
		return false
	}
}
