package worker

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/provider-next/internal/container"
	"github.com/provider-next/internal/logger"
	"github.com/provider-next/internal/queue"
	"github.com/provider-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*container.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *container.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskFulfillmentStatusNotice, c.handleFulfillmentStatusNotice)
	mux.HandleFunc(queue.TaskProductAvailabilitySync, c.handleProductAvailabilitySync)
}

func (c *Consumer) handleFulfillmentStatusNotice(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_status_notice_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.FulfillmentStatusNoticePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_status_notice_unmarshal_failed", "error", err)
		return err
	}
	if payload.FulfillmentID == 0 {
		logger.Debugw("worker_status_notice_skip_invalid_payload", "fulfillment_id", payload.FulfillmentID)
		return nil
	}

	fulfillment, err := c.FulfillmentService.Get(payload.FulfillmentID)
	if err != nil {
		if errors.Is(err, service.ErrFulfillmentNotFound) {
			logger.Debugw("worker_status_notice_skip_not_found", "fulfillment_id", payload.FulfillmentID)
			return nil
		}
		logger.Warnw("worker_status_notice_fetch_failed", "fulfillment_id", payload.FulfillmentID, "error", err)
		return err
	}

	receiver := ""
	if fulfillment.Provider != nil {
		receiver = strings.TrimSpace(fulfillment.Provider.Email)
	}
	if receiver == "" {
		logger.Debugw("worker_status_notice_skip_empty_receiver",
			"fulfillment_id", fulfillment.ID,
			"provider_id", fulfillment.ProviderID,
		)
		return nil
	}

	// 通知投递目前走结构化日志出口，后续接入邮件/Webhook 渠道时在此分发
	logger.Infow("worker_status_notice_delivered",
		"fulfillment_id", fulfillment.ID,
		"order_id", fulfillment.OrderID,
		"provider_id", fulfillment.ProviderID,
		"receiver", receiver,
		"status", fulfillment.Status,
		"tracking_number", fulfillment.TrackingNumber,
	)
	return nil
}

func (c *Consumer) handleProductAvailabilitySync(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_availability_sync_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.ProductAvailabilitySyncPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_availability_sync_unmarshal_failed", "error", err)
		return err
	}
	if payload.ProductID == 0 {
		logger.Debugw("worker_availability_sync_skip_invalid_payload", "product_id", payload.ProductID)
		return nil
	}

	availability, err := c.InventoryService.Availability(payload.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			logger.Debugw("worker_availability_sync_skip_product_not_found", "product_id", payload.ProductID)
			return nil
		}
		logger.Warnw("worker_availability_sync_failed", "product_id", payload.ProductID, "error", err)
		return err
	}
	logger.Infow("worker_availability_sync_refreshed",
		"product_id", availability.ProductID,
		"available", availability.Available,
		"available_providers", availability.AvailableProviders,
	)
	return nil
}
