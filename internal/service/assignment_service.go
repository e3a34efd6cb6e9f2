package service

import (
	"context"
	"strings"

	"github.com/provider-next/internal/cache"
	"github.com/provider-next/internal/logger"
	"github.com/provider-next/internal/models"
	"github.com/provider-next/internal/repository"

	"github.com/shopspring/decimal"
)

// AssignmentService 商品供货关联服务
type AssignmentService struct {
	assignmentRepo repository.ProductProviderRepository
	productRepo    repository.ProductRepository
	providerRepo   repository.ProviderRepository
}

// NewAssignmentService 创建商品供货关联服务
func NewAssignmentService(assignmentRepo repository.ProductProviderRepository, productRepo repository.ProductRepository, providerRepo repository.ProviderRepository) *AssignmentService {
	return &AssignmentService{
		assignmentRepo: assignmentRepo,
		productRepo:    productRepo,
		providerRepo:   providerRepo,
	}
}

// AssignInput 创建关联输入
type AssignInput struct {
	ProductID         uint
	ProviderID        uint
	ProviderProductID string
	CostPrice         decimal.Decimal
	IsAvailable       *bool
}

// UpdateAssignmentInput 更新关联输入（nil 字段不修改）
type UpdateAssignmentInput struct {
	ProviderProductID *string
	CostPrice         *decimal.Decimal
	IsAvailable       *bool
}

// Assign 将商品挂到供货方，重复关联返回冲突
func (s *AssignmentService) Assign(input AssignInput) (*models.ProductProvider, error) {
	if input.ProductID == 0 || input.ProviderID == 0 {
		return nil, ErrAssignmentCreateFailed
	}

	product, err := s.productRepo.GetByID(input.ProductID)
	if err != nil {
		return nil, ErrProductFetchFailed
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	provider, err := s.providerRepo.GetByID(input.ProviderID)
	if err != nil {
		return nil, ErrProviderFetchFailed
	}
	if provider == nil {
		return nil, ErrProviderNotFound
	}
	if !provider.IsActive {
		return nil, ErrProviderInactive
	}

	existing, err := s.assignmentRepo.GetByPair(input.ProductID, input.ProviderID)
	if err != nil {
		return nil, ErrAssignmentFetchFailed
	}
	if existing != nil {
		return nil, ErrAssignmentExists
	}

	isAvailable := true
	if input.IsAvailable != nil {
		isAvailable = *input.IsAvailable
	}
	assignment := &models.ProductProvider{
		ProductID:         input.ProductID,
		ProviderID:        input.ProviderID,
		ProviderProductID: strings.TrimSpace(input.ProviderProductID),
		CostPrice:         models.NewMoneyFromDecimal(input.CostPrice),
		IsAvailable:       isAvailable,
	}
	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, ErrAssignmentCreateFailed
	}
	s.invalidateAvailability(assignment.ProductID)
	return s.Get(assignment.ID)
}

// invalidateAvailability 关联变动会影响可用供货方数量，失效可用性缓存
func (s *AssignmentService) invalidateAvailability(productID uint) {
	if err := cache.DelAvailabilityState(context.Background(), productID); err != nil {
		logger.Warnw("assignment_availability_cache_del_failed", "product_id", productID, "error", err)
	}
}

// Get 获取关联详情
func (s *AssignmentService) Get(id uint) (*models.ProductProvider, error) {
	assignment, err := s.assignmentRepo.GetByID(id)
	if err != nil {
		return nil, ErrAssignmentFetchFailed
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound
	}
	return assignment, nil
}

// List 分页查询关联
func (s *AssignmentService) List(filter repository.ProductProviderListFilter) ([]models.ProductProvider, int64, error) {
	assignments, total, err := s.assignmentRepo.List(filter)
	if err != nil {
		return nil, 0, ErrAssignmentFetchFailed
	}
	return assignments, total, nil
}

// Update 更新关联
func (s *AssignmentService) Update(id uint, input UpdateAssignmentInput) (*models.ProductProvider, error) {
	assignment, err := s.assignmentRepo.GetByID(id)
	if err != nil {
		return nil, ErrAssignmentFetchFailed
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound
	}

	updates := map[string]interface{}{}
	if input.ProviderProductID != nil {
		updates["provider_product_id"] = strings.TrimSpace(*input.ProviderProductID)
	}
	if input.CostPrice != nil {
		updates["cost_price"] = models.NewMoneyFromDecimal(*input.CostPrice)
	}
	if input.IsAvailable != nil {
		updates["is_available"] = *input.IsAvailable
	}
	if len(updates) == 0 {
		return assignment, nil
	}
	if err := s.assignmentRepo.UpdateFields(id, updates); err != nil {
		return nil, ErrAssignmentUpdateFailed
	}
	s.invalidateAvailability(assignment.ProductID)
	return s.Get(id)
}

// Delete 删除关联
func (s *AssignmentService) Delete(id uint) error {
	assignment, err := s.assignmentRepo.GetByID(id)
	if err != nil {
		return ErrAssignmentFetchFailed
	}
	if assignment == nil {
		return ErrAssignmentNotFound
	}
	if err := s.assignmentRepo.Delete(id); err != nil {
		return ErrAssignmentDeleteFailed
	}
	s.invalidateAvailability(assignment.ProductID)
	return nil
}
