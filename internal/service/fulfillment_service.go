package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/provider-next/internal/constants"
	"github.com/provider-next/internal/logger"
	"github.com/provider-next/internal/models"
	"github.com/provider-next/internal/queue"
	"github.com/provider-next/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FulfillmentService 供货方交付服务
type FulfillmentService struct {
	orderRepo       repository.OrderRepository
	providerRepo    repository.ProviderRepository
	fulfillmentRepo repository.FulfillmentRepository
	queueClient     *queue.Client
}

// NewFulfillmentService 创建交付服务
func NewFulfillmentService(orderRepo repository.OrderRepository, providerRepo repository.ProviderRepository, fulfillmentRepo repository.FulfillmentRepository, queueClient *queue.Client) *FulfillmentService {
	return &FulfillmentService{
		orderRepo:       orderRepo,
		providerRepo:    providerRepo,
		fulfillmentRepo: fulfillmentRepo,
		queueClient:     queueClient,
	}
}

// SplitItemInput 拆单条目输入
type SplitItemInput struct {
	OrderItemID uint
	Quantity    int
}

// SplitGroupInput 拆单分组输入，每组对应一个供货方的交付单
type SplitGroupInput struct {
	ProviderID uint
	Items      []SplitItemInput
	Metadata   models.JSON
}

// SplitOrder 将订单按供货方拆分为多个交付单。
// 各分组数量之和必须与订单条目数量逐项严格相等，整体事务执行，任一校验失败则不产生任何交付单。
func (s *FulfillmentService) SplitOrder(orderID uint, groups []SplitGroupInput) ([]models.ProviderFulfillment, error) {
	if orderID == 0 || len(groups) == 0 {
		return nil, ErrSplitInvalid
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if order.Status == constants.OrderStatusCanceled {
		return nil, ErrOrderCanceled
	}
	if len(order.Fulfillments) > 0 {
		return nil, ErrOrderAlreadySplit
	}
	if len(order.Items) == 0 {
		return nil, ErrSplitInvalid
	}

	itemQuantity := make(map[uint]int, len(order.Items))
	for _, item := range order.Items {
		itemQuantity[item.ID] = item.Quantity
	}

	splitQuantity := make(map[uint]int, len(order.Items))
	for _, group := range groups {
		if group.ProviderID == 0 || len(group.Items) == 0 {
			return nil, ErrSplitInvalid
		}
		for _, item := range group.Items {
			if item.OrderItemID == 0 || item.Quantity <= 0 {
				return nil, ErrSplitInvalid
			}
			ordered, ok := itemQuantity[item.OrderItemID]
			if !ok {
				return nil, ErrSplitItemUnknown
			}
			splitQuantity[item.OrderItemID] += item.Quantity
			if splitQuantity[item.OrderItemID] > ordered {
				return nil, ErrSplitOverAllocated
			}
		}
	}
	for orderItemID, ordered := range itemQuantity {
		if splitQuantity[orderItemID] < ordered {
			return nil, ErrSplitUnderAllocated
		}
	}

	providers := make(map[uint]*models.Provider, len(groups))
	for _, group := range groups {
		if _, ok := providers[group.ProviderID]; ok {
			continue
		}
		provider, err := s.providerRepo.GetByID(group.ProviderID)
		if err != nil {
			return nil, ErrProviderFetchFailed
		}
		if provider == nil {
			return nil, ErrProviderNotFound
		}
		if !provider.IsActive {
			return nil, ErrProviderInactive
		}
		providers[group.ProviderID] = provider
	}

	now := time.Now()
	var created []models.ProviderFulfillment
	err = models.DB.Transaction(func(tx *gorm.DB) error {
		existing, err := s.fulfillmentRepo.WithTx(tx).CountByOrder(orderID)
		if err != nil {
			return err
		}
		if existing > 0 {
			return ErrOrderAlreadySplit
		}

		fulfillmentRepo := s.fulfillmentRepo.WithTx(tx)
		for _, group := range groups {
			fulfillment := &models.ProviderFulfillment{
				OrderID:      orderID,
				ProviderID:   group.ProviderID,
				Status:       constants.FulfillmentStatusPending,
				MetadataJSON: group.Metadata,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			for _, item := range group.Items {
				fulfillment.Items = append(fulfillment.Items, models.ProviderFulfillmentItem{
					OrderItemID: item.OrderItemID,
					Quantity:    item.Quantity,
				})
			}
			if err := fulfillmentRepo.Create(fulfillment); err != nil {
				return fmt.Errorf("create fulfillment for provider %d: %v", group.ProviderID, err)
			}
			created = append(created, *fulfillment)
		}

		if err := s.orderRepo.WithTx(tx).UpdateStatus(orderID, constants.OrderStatusFulfilling, map[string]interface{}{
			"updated_at": now,
		}); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		if err == ErrOrderAlreadySplit {
			return nil, ErrOrderAlreadySplit
		}
		logger.Warnw("fulfillment_split_tx_failed", "order_id", orderID, "error", err)
		return nil, fmt.Errorf("%w: %v", ErrSplitCreateFailed, err)
	}

	for _, fulfillment := range created {
		s.notifyStatus(&fulfillment, constants.FulfillmentStatusPending)
	}
	return created, nil
}

// Get 获取交付单详情
func (s *FulfillmentService) Get(id uint) (*models.ProviderFulfillment, error) {
	fulfillment, err := s.fulfillmentRepo.GetByID(id)
	if err != nil {
		return nil, ErrFulfillmentFetchFailed
	}
	if fulfillment == nil {
		return nil, ErrFulfillmentNotFound
	}
	return fulfillment, nil
}

// List 分页查询交付单
func (s *FulfillmentService) List(filter repository.FulfillmentListFilter) ([]models.ProviderFulfillment, int64, error) {
	fulfillments, total, err := s.fulfillmentRepo.List(filter)
	if err != nil {
		return nil, 0, ErrFulfillmentFetchFailed
	}
	return fulfillments, total, nil
}

// ListByOrder 获取订单的全部交付单
func (s *FulfillmentService) ListByOrder(orderID uint) ([]models.ProviderFulfillment, error) {
	fulfillments, err := s.fulfillmentRepo.ListByOrder(orderID)
	if err != nil {
		return nil, ErrFulfillmentFetchFailed
	}
	return fulfillments, nil
}

// ShipInput 发货输入
type ShipInput struct {
	TrackingNumber string
	TrackingURL    string
	Carrier        string
}

// MarkShipped 将待发货交付单标记为已发货
func (s *FulfillmentService) MarkShipped(id uint, input ShipInput) (*models.ProviderFulfillment, error) {
	fulfillment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if isTerminalStatus(fulfillment.Status) {
		return nil, ErrFulfillmentTerminal
	}
	if fulfillment.Status != constants.FulfillmentStatusPending {
		return nil, ErrFulfillmentNotPending
	}

	now := time.Now()
	updates := map[string]interface{}{
		"shipped_at": now,
	}
	if tracking := strings.TrimSpace(input.TrackingNumber); tracking != "" {
		updates["tracking_number"] = tracking
	}
	if url := strings.TrimSpace(input.TrackingURL); url != "" {
		updates["tracking_url"] = url
	}
	if carrier := strings.TrimSpace(input.Carrier); carrier != "" {
		updates["carrier"] = carrier
	}
	return s.transition(id, constants.FulfillmentStatusPending, constants.FulfillmentStatusShipped, updates)
}

// Complete 将已发货交付单标记为已完成
func (s *FulfillmentService) Complete(id uint) (*models.ProviderFulfillment, error) {
	fulfillment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if isTerminalStatus(fulfillment.Status) {
		return nil, ErrFulfillmentTerminal
	}
	if fulfillment.Status != constants.FulfillmentStatusShipped {
		return nil, ErrFulfillmentNotShipped
	}

	now := time.Now()
	updated, err := s.transition(id, constants.FulfillmentStatusShipped, constants.FulfillmentStatusCompleted, map[string]interface{}{
		"delivered_at": now,
	})
	if err != nil {
		return nil, err
	}
	s.syncOrderStatus(updated.OrderID, now)
	return updated, nil
}

// Cancel 取消待发货交付单，已发货的交付单不可取消
func (s *FulfillmentService) Cancel(id uint) (*models.ProviderFulfillment, error) {
	fulfillment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if isTerminalStatus(fulfillment.Status) {
		return nil, ErrFulfillmentTerminal
	}
	if fulfillment.Status != constants.FulfillmentStatusPending {
		return nil, ErrFulfillmentNotPending
	}

	now := time.Now()
	updated, err := s.transition(id, constants.FulfillmentStatusPending, constants.FulfillmentStatusCanceled, map[string]interface{}{
		"canceled_at": now,
	})
	if err != nil {
		return nil, err
	}
	s.syncOrderStatus(updated.OrderID, now)
	return updated, nil
}

// UpdateTracking 更新物流信息，仅限未完结的交付单
func (s *FulfillmentService) UpdateTracking(id uint, input ShipInput) (*models.ProviderFulfillment, error) {
	fulfillment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if isTerminalStatus(fulfillment.Status) {
		return nil, ErrFulfillmentTerminal
	}

	updates := map[string]interface{}{
		"tracking_number": strings.TrimSpace(input.TrackingNumber),
		"tracking_url":    strings.TrimSpace(input.TrackingURL),
		"carrier":         strings.TrimSpace(input.Carrier),
		"updated_at":      time.Now(),
	}
	if err := s.fulfillmentRepo.UpdateFields(id, updates); err != nil {
		return nil, ErrFulfillmentUpdateFailed
	}
	return s.Get(id)
}

// FulfillmentItemInput 更新交付条目输入（nil 字段不修改）
type FulfillmentItemInput struct {
	ItemID            uint
	FulfilledQuantity *int
	Metadata          models.JSON
}

// UpdateItems 更新交付条目的交付进度与元数据，状态流转不走此路径。
// 已交付数量不得超过分配数量，终态交付单不可调整。
func (s *FulfillmentService) UpdateItems(id uint, inputs []FulfillmentItemInput) (*models.ProviderFulfillment, error) {
	if len(inputs) == 0 {
		return nil, ErrFulfillmentItemInvalid
	}
	fulfillment, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if isTerminalStatus(fulfillment.Status) {
		return nil, ErrFulfillmentTerminal
	}

	items := make(map[uint]*models.ProviderFulfillmentItem, len(fulfillment.Items))
	for i := range fulfillment.Items {
		items[fulfillment.Items[i].ID] = &fulfillment.Items[i]
	}

	changed := make([]*models.ProviderFulfillmentItem, 0, len(inputs))
	for _, input := range inputs {
		item, ok := items[input.ItemID]
		if !ok {
			return nil, ErrFulfillmentItemUnknown
		}
		if input.FulfilledQuantity != nil {
			if *input.FulfilledQuantity < 0 || *input.FulfilledQuantity > item.Quantity {
				return nil, ErrFulfillmentItemInvalid
			}
			item.FulfilledQuantity = *input.FulfilledQuantity
		}
		if input.Metadata != nil {
			item.MetadataJSON = input.Metadata
		}
		changed = append(changed, item)
	}

	err = s.fulfillmentRepo.Transaction(func(tx *gorm.DB) error {
		repo := s.fulfillmentRepo.WithTx(tx)
		for _, item := range changed {
			if err := repo.UpdateItem(item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, ErrFulfillmentUpdateFailed
	}
	return s.Get(id)
}

// SplitSummaryEntry 拆单汇总单条
type SplitSummaryEntry struct {
	FulfillmentID uint            `json:"fulfillment_id"`
	ProviderID    uint            `json:"provider_id"`
	ProviderName  string          `json:"provider_name"`
	Status        string          `json:"status"`
	ItemCount     int             `json:"item_count"`
	TotalQuantity int             `json:"total_quantity"`
	Amount        decimal.Decimal `json:"amount"`
}

// SplitSummary 订单拆单汇总
type SplitSummary struct {
	OrderID     uint                `json:"order_id"`
	OrderNo     string              `json:"order_no"`
	OrderStatus string              `json:"order_status"`
	Currency    string              `json:"currency"`
	Entries     []SplitSummaryEntry `json:"entries"`
	TotalAmount decimal.Decimal     `json:"total_amount"`
}

// GetSplitSummary 按供货方汇总订单的拆单结果与金额
func (s *FulfillmentService) GetSplitSummary(orderID uint) (*SplitSummary, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	unitPrice := make(map[uint]decimal.Decimal, len(order.Items))
	for _, item := range order.Items {
		unitPrice[item.ID] = item.UnitPrice.Decimal
	}

	summary := &SplitSummary{
		OrderID:     order.ID,
		OrderNo:     order.OrderNo,
		OrderStatus: order.Status,
		Currency:    order.Currency,
		Entries:     make([]SplitSummaryEntry, 0, len(order.Fulfillments)),
		TotalAmount: decimal.Zero,
	}
	for _, fulfillment := range order.Fulfillments {
		entry := SplitSummaryEntry{
			FulfillmentID: fulfillment.ID,
			ProviderID:    fulfillment.ProviderID,
			Status:        fulfillment.Status,
			ItemCount:     len(fulfillment.Items),
			Amount:        decimal.Zero,
		}
		if fulfillment.Provider != nil {
			entry.ProviderName = fulfillment.Provider.Name
		}
		for _, item := range fulfillment.Items {
			entry.TotalQuantity += item.Quantity
			price, ok := unitPrice[item.OrderItemID]
			if !ok {
				continue
			}
			entry.Amount = entry.Amount.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
		}
		if fulfillment.Status != constants.FulfillmentStatusCanceled {
			summary.TotalAmount = summary.TotalAmount.Add(entry.Amount)
		}
		summary.Entries = append(summary.Entries, entry)
	}
	return summary, nil
}

// Delete 删除终态（已完成/已取消）交付单
func (s *FulfillmentService) Delete(id uint) error {
	fulfillment, err := s.Get(id)
	if err != nil {
		return err
	}
	if !isTerminalStatus(fulfillment.Status) {
		return ErrFulfillmentNotTerminal
	}
	if err := s.fulfillmentRepo.Delete(id); err != nil {
		return ErrFulfillmentDeleteFailed
	}
	return nil
}

// transition 条件更新状态，命中行数为零表示状态被并发修改
func (s *FulfillmentService) transition(id uint, from, to string, updates map[string]interface{}) (*models.ProviderFulfillment, error) {
	affected, err := s.fulfillmentRepo.TransitionStatus(id, from, to, updates)
	if err != nil {
		return nil, ErrFulfillmentUpdateFailed
	}
	if affected == 0 {
		return nil, ErrFulfillmentStateConflict
	}
	updated, err := s.fulfillmentRepo.GetByID(id)
	if err != nil || updated == nil {
		return nil, ErrFulfillmentFetchFailed
	}
	s.notifyStatus(updated, to)
	return updated, nil
}

// syncOrderStatus 按交付单终态重算订单状态，失败仅告警
func (s *FulfillmentService) syncOrderStatus(orderID uint, now time.Time) {
	fulfillments, err := s.fulfillmentRepo.ListByOrder(orderID)
	if err != nil {
		logger.Warnw("fulfillment_sync_order_status_failed", "order_id", orderID, "error", err)
		return
	}

	completed := 0
	canceled := 0
	for _, fulfillment := range fulfillments {
		switch fulfillment.Status {
		case constants.FulfillmentStatusCompleted:
			completed++
		case constants.FulfillmentStatusCanceled:
			canceled++
		default:
			return
		}
	}

	var status string
	switch {
	case completed == len(fulfillments):
		status = constants.OrderStatusFulfilled
	case completed > 0:
		status = constants.OrderStatusPartiallyFulfilled
	default:
		status = constants.OrderStatusPaid
	}
	if err := s.orderRepo.UpdateStatus(orderID, status, map[string]interface{}{"updated_at": now}); err != nil {
		logger.Warnw("fulfillment_sync_order_status_failed", "order_id", orderID, "status", status, "error", err)
	}
}

func (s *FulfillmentService) notifyStatus(fulfillment *models.ProviderFulfillment, status string) {
	if s.queueClient == nil {
		return
	}
	err := s.queueClient.EnqueueFulfillmentStatusNotice(queue.FulfillmentStatusNoticePayload{
		FulfillmentID: fulfillment.ID,
		OrderID:       fulfillment.OrderID,
		ProviderID:    fulfillment.ProviderID,
		Status:        status,
	})
	if err != nil {
		logger.Warnw("fulfillment_enqueue_status_notice_failed",
			"fulfillment_id", fulfillment.ID,
			"order_id", fulfillment.OrderID,
			"status", status,
			"error", err,
		)
	}
}

func isTerminalStatus(status string) bool {
	return status == constants.FulfillmentStatusCompleted || status == constants.FulfillmentStatusCanceled
}
