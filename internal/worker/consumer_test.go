package worker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/provider-next/internal/constants"
	"github.com/provider-next/internal/container"
	"github.com/provider-next/internal/models"
	"github.com/provider-next/internal/queue"
	"github.com/provider-next/internal/repository"
	"github.com/provider-next/internal/service"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupConsumerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:consumer_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Provider{},
		&models.Order{},
		&models.OrderItem{},
		&models.Product{},
		&models.ProductProvider{},
		&models.ProviderFulfillment{},
		&models.ProviderFulfillmentItem{},
	); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	models.DB = db

	orderRepo := repository.NewOrderRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	fulfillmentRepo := repository.NewFulfillmentRepository(db)
	productRepo := repository.NewProductRepository(db)
	assignmentRepo := repository.NewProductProviderRepository(db)

	c := &container.Container{
		FulfillmentService: service.NewFulfillmentService(orderRepo, providerRepo, fulfillmentRepo, nil),
		InventoryService:   service.NewInventoryService(productRepo, assignmentRepo, nil),
	}
	return NewConsumer(c), db
}

func TestConsumerStatusNoticeUnknownFulfillment(t *testing.T) {
	consumer, _ := setupConsumerTest(t)

	task, err := queue.NewFulfillmentStatusNoticeTask(queue.FulfillmentStatusNoticePayload{
		FulfillmentID: 99999,
		OrderID:       1,
		ProviderID:    1,
		Status:        constants.FulfillmentStatusShipped,
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}

	// 交付单已不存在时任务直接消化，不应重试
	if err := consumer.handleFulfillmentStatusNotice(context.Background(), task); err != nil {
		t.Fatalf("expected nil for missing fulfillment, got: %v", err)
	}
}

func TestConsumerStatusNoticeDelivered(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	provider := models.Provider{Name: "acme", Type: constants.ProviderTypeFulfillment, Email: "ops@acme.example.com", IsActive: true}
	if err := db.Create(&provider).Error; err != nil {
		t.Fatalf("create provider failed: %v", err)
	}
	fulfillment := models.ProviderFulfillment{OrderID: 1, ProviderID: provider.ID, Status: constants.FulfillmentStatusShipped}
	if err := db.Create(&fulfillment).Error; err != nil {
		t.Fatalf("create fulfillment failed: %v", err)
	}

	task, err := queue.NewFulfillmentStatusNoticeTask(queue.FulfillmentStatusNoticePayload{
		FulfillmentID: fulfillment.ID,
		OrderID:       fulfillment.OrderID,
		ProviderID:    provider.ID,
		Status:        constants.FulfillmentStatusShipped,
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleFulfillmentStatusNotice(context.Background(), task); err != nil {
		t.Fatalf("handle status notice failed: %v", err)
	}
}

func TestConsumerStatusNoticeBadPayload(t *testing.T) {
	consumer, _ := setupConsumerTest(t)
	task := asynq.NewTask(constants.TaskFulfillmentStatusNotice, []byte("not-json"))
	if err := consumer.handleFulfillmentStatusNotice(context.Background(), task); err == nil {
		t.Fatal("malformed payload should surface an error")
	}
}

func TestConsumerAvailabilitySync(t *testing.T) {
	consumer, db := setupConsumerTest(t)

	product := models.Product{Slug: "wireless-earbuds", Title: "无线耳机", IsPublished: true}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	task, err := queue.NewProductAvailabilitySyncTask(queue.ProductAvailabilitySyncPayload{ProductID: product.ID})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleProductAvailabilitySync(context.Background(), task); err != nil {
		t.Fatalf("handle availability sync failed: %v", err)
	}

	// 商品已删除时任务同样直接消化
	missing, err := queue.NewProductAvailabilitySyncTask(queue.ProductAvailabilitySyncPayload{ProductID: 99999})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleProductAvailabilitySync(context.Background(), missing); err != nil {
		t.Fatalf("expected nil for missing product, got: %v", err)
	}
}
