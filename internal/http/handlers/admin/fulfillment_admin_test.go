package admin

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/provider-next/internal/constants"
	"github.com/provider-next/internal/container"
	"github.com/provider-next/internal/http/response"
	"github.com/provider-next/internal/models"
	"github.com/provider-next/internal/repository"
	"github.com/provider-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupFulfillmentHandlerTest(t *testing.T) (*Handler, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:fulfillment_handler_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
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

	c := &container.Container{
		FulfillmentService: service.NewFulfillmentService(orderRepo, providerRepo, fulfillmentRepo, nil),
	}
	return New(c), db
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response failed: %v (%s)", err, w.Body.String())
	}
	return resp
}

func seedHandlerOrder(t *testing.T, db *gorm.DB) *models.Order {
	t.Helper()
	order := models.Order{
		OrderNo:       fmt.Sprintf("PN%d", time.Now().UnixNano()),
		Status:        constants.OrderStatusPaid,
		Currency:      "USD",
		TotalAmount:   models.NewMoneyFromDecimal(decimal.RequireFromString("79.90")),
		CustomerEmail: "buyer@example.com",
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	item := models.OrderItem{OrderID: order.ID, ProductID: 1, Title: "无线耳机", UnitPrice: models.NewMoneyFromDecimal(decimal.RequireFromString("79.90")), Quantity: 1}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("create order item failed: %v", err)
	}
	order.Items = []models.OrderItem{item}
	return &order
}

func TestRespondFulfillmentErrorCodes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"未发货禁止完成", service.ErrFulfillmentNotShipped, response.CodeConflict},
		{"非待处理禁止取消", service.ErrFulfillmentNotPending, response.CodeConflict},
		{"终态禁止变更", service.ErrFulfillmentTerminal, response.CodeConflict},
		{"非终态禁止删除", service.ErrFulfillmentNotTerminal, response.CodeConflict},
		{"并发状态冲突", service.ErrFulfillmentStateConflict, response.CodeConflict},
		{"交付单不存在", service.ErrFulfillmentNotFound, response.CodeNotFound},
		{"条目不属于交付单", service.ErrFulfillmentItemUnknown, response.CodeBadRequest},
		{"条目数量非法", service.ErrFulfillmentItemInvalid, response.CodeBadRequest},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", nil)
			respondFulfillmentError(c, tc.err, "error.fulfillment_update_failed")
			resp := decodeEnvelope(t, w)
			if resp.StatusCode != tc.wantCode {
				t.Fatalf("status_code = %d, want %d", resp.StatusCode, tc.wantCode)
			}
		})
	}
}

func TestCompleteFulfillmentHandlerConflict(t *testing.T) {
	h, db := setupFulfillmentHandlerTest(t)
	order := seedHandlerOrder(t, db)
	provider := models.Provider{Name: "acme-handler", Type: constants.ProviderTypeFulfillment, IsActive: true}
	if err := db.Create(&provider).Error; err != nil {
		t.Fatalf("create provider failed: %v", err)
	}
	fulfillments, err := h.FulfillmentService.SplitOrder(order.ID, []service.SplitGroupInput{
		{ProviderID: provider.ID, Items: []service.SplitItemInput{{OrderItemID: order.Items[0].ID, Quantity: 1}}},
	})
	if err != nil {
		t.Fatalf("split order failed: %v", err)
	}

	r := gin.New()
	r.POST("/admin/fulfillments/:id/complete", h.CompleteFulfillment)

	// 未发货的交付单直接完成属于状态冲突
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/fulfillments/%d/complete", fulfillments[0].ID), nil)
	r.ServeHTTP(w, req)
	resp := decodeEnvelope(t, w)
	if resp.StatusCode != response.CodeConflict {
		t.Fatalf("status_code = %d, want %d", resp.StatusCode, response.CodeConflict)
	}
}

func TestSplitOrderHandlerInactiveProviderConflict(t *testing.T) {
	h, db := setupFulfillmentHandlerTest(t)
	order := seedHandlerOrder(t, db)
	inactive := models.Provider{Name: "dormant-handler", Type: constants.ProviderTypeFulfillment, IsActive: false}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatalf("create provider failed: %v", err)
	}

	r := gin.New()
	r.POST("/admin/orders/:id/split", h.SplitOrder)

	body, err := json.Marshal(SplitOrderRequest{
		Groups: []SplitGroupRequest{
			{ProviderID: inactive.ID, Items: []SplitItemRequest{{OrderItemID: order.Items[0].ID, Quantity: 1}}},
		},
	})
	if err != nil {
		t.Fatalf("marshal request failed: %v", err)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/admin/orders/%d/split", order.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	resp := decodeEnvelope(t, w)
	if resp.StatusCode != response.CodeConflict {
		t.Fatalf("status_code = %d, want %d", resp.StatusCode, response.CodeConflict)
	}
}
