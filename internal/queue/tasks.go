package queue

import (
	"encoding/json"

	"github.com/provider-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskFulfillmentStatusNotice 交付单状态通知任务
	TaskFulfillmentStatusNotice = constants.TaskFulfillmentStatusNotice
	// TaskProductAvailabilitySync 商品可用性同步任务
	TaskProductAvailabilitySync = constants.TaskProductAvailabilitySync
)

// FulfillmentStatusNoticePayload 交付单状态通知任务载荷
type FulfillmentStatusNoticePayload struct {
	FulfillmentID uint   `json:"fulfillment_id"`
	OrderID       uint   `json:"order_id"`
	ProviderID    uint   `json:"provider_id"`
	Status        string `json:"status"`
}

// ProductAvailabilitySyncPayload 商品可用性同步任务载荷
type ProductAvailabilitySyncPayload struct {
	ProductID uint `json:"product_id"`
}

// NewFulfillmentStatusNoticeTask 创建交付单状态通知任务
func NewFulfillmentStatusNoticeTask(payload FulfillmentStatusNoticePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskFulfillmentStatusNotice, body), nil
}

// NewProductAvailabilitySyncTask 创建商品可用性同步任务
func NewProductAvailabilitySyncTask(payload ProductAvailabilitySyncPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskProductAvailabilitySync, body), nil
}
