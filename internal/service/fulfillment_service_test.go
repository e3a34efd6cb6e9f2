package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/provider-next/internal/constants"
	"github.com/provider-next/internal/models"
	"github.com/provider-next/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func setupFulfillmentServiceTest(t *testing.T) (*FulfillmentService, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:fulfillment_service_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
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

	svc := NewFulfillmentService(
		repository.NewOrderRepository(db),
		repository.NewProviderRepository(db),
		repository.NewFulfillmentRepository(db),
		nil,
	)
	return svc, db
}

func seedFulfillmentProvider(t *testing.T, db *gorm.DB, name string, active bool) *models.Provider {
	t.Helper()
	provider := models.Provider{
		Name:     name,
		Type:     constants.ProviderTypeFulfillment,
		Email:    fmt.Sprintf("%s@example.com", name),
		IsActive: active,
	}
	if err := db.Create(&provider).Error; err != nil {
		t.Fatalf("create provider failed: %v", err)
	}
	return &provider
}

func seedPaidOrder(t *testing.T, db *gorm.DB) *models.Order {
	t.Helper()
	order := models.Order{
		OrderNo:       fmt.Sprintf("PN%d", time.Now().UnixNano()),
		Status:        constants.OrderStatusPaid,
		Currency:      "USD",
		TotalAmount:   models.NewMoneyFromDecimal(decimal.RequireFromString("248.80")),
		CustomerEmail: "buyer@example.com",
	}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("create order failed: %v", err)
	}
	items := []models.OrderItem{
		{OrderID: order.ID, ProductID: 1, Title: "无线耳机", UnitPrice: models.NewMoneyFromDecimal(decimal.RequireFromString("79.90")), Quantity: 2},
		{OrderID: order.ID, ProductID: 2, Title: "机械键盘", UnitPrice: models.NewMoneyFromDecimal(decimal.RequireFromString("89.00")), Quantity: 1},
	}
	if err := db.Create(&items).Error; err != nil {
		t.Fatalf("create order items failed: %v", err)
	}
	order.Items = items
	return &order
}

func TestFulfillmentServiceSplitOrder(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	order := seedPaidOrder(t, db)
	providerA := seedFulfillmentProvider(t, db, "acme", true)
	providerB := seedFulfillmentProvider(t, db, "northwind", true)

	fulfillments, err := svc.SplitOrder(order.ID, []SplitGroupInput{
		{ProviderID: providerA.ID, Items: []SplitItemInput{{OrderItemID: order.Items[0].ID, Quantity: 2}}},
		{ProviderID: providerB.ID, Items: []SplitItemInput{{OrderItemID: order.Items[1].ID, Quantity: 1}}},
	})
	if err != nil {
		t.Fatalf("split order failed: %v", err)
	}
	if len(fulfillments) != 2 {
		t.Fatalf("expected 2 fulfillments, got: %d", len(fulfillments))
	}
	for _, fulfillment := range fulfillments {
		if fulfillment.Status != constants.FulfillmentStatusPending {
			t.Fatalf("expected pending fulfillment, got: %s", fulfillment.Status)
		}
	}

	var updated models.Order
	if err := db.First(&updated, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if updated.Status != constants.OrderStatusFulfilling {
		t.Fatalf("expected order fulfilling, got: %s", updated.Status)
	}

	var itemCount int64
	if err := db.Model(&models.ProviderFulfillmentItem{}).Count(&itemCount).Error; err != nil {
		t.Fatalf("count fulfillment items failed: %v", err)
	}
	if itemCount != 2 {
		t.Fatalf("expected 2 fulfillment items, got: %d", itemCount)
	}
}

func TestFulfillmentServiceSplitOrderSplitAcrossProviders(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	order := seedPaidOrder(t, db)
	providerA := seedFulfillmentProvider(t, db, "acme", true)
	providerB := seedFulfillmentProvider(t, db, "northwind", true)

	// 同一条目的数量可以跨供货方拆分，只要逐项总和一致
	fulfillments, err := svc.SplitOrder(order.ID, []SplitGroupInput{
		{ProviderID: providerA.ID, Items: []SplitItemInput{
			{OrderItemID: order.Items[0].ID, Quantity: 1},
			{OrderItemID: order.Items[1].ID, Quantity: 1},
		}},
		{ProviderID: providerB.ID, Items: []SplitItemInput{
			{OrderItemID: order.Items[0].ID, Quantity: 1},
		}},
	})
	if err != nil {
		t.Fatalf("split order failed: %v", err)
	}
	if len(fulfillments) != 2 {
		t.Fatalf("expected 2 fulfillments, got: %d", len(fulfillments))
	}
}

func TestFulfillmentServiceSplitOrderValidation(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	order := seedPaidOrder(t, db)
	provider := seedFulfillmentProvider(t, db, "acme", true)

	cases := []struct {
		name   string
		groups []SplitGroupInput
		want   error
	}{
		{
			name: "under allocated",
			groups: []SplitGroupInput{
				{ProviderID: provider.ID, Items: []SplitItemInput{{OrderItemID: order.Items[0].ID, Quantity: 2}}},
			},
			want: ErrSplitUnderAllocated,
		},
		{
			name: "over allocated",
			groups: []SplitGroupInput{
				{ProviderID: provider.ID, Items: []SplitItemInput{
					{OrderItemID: order.Items[0].ID, Quantity: 3},
					{OrderItemID: order.Items[1].ID, Quantity: 1},
				}},
			},
			want: ErrSplitOverAllocated,
		},
		{
			name: "unknown order item",
			groups: []SplitGroupInput{
				{ProviderID: provider.ID, Items: []SplitItemInput{
					{OrderItemID: order.Items[0].ID, Quantity: 2},
					{OrderItemID: 99999, Quantity: 1},
				}},
			},
			want: ErrSplitItemUnknown,
		},
		{
			name: "zero quantity",
			groups: []SplitGroupInput{
				{ProviderID: provider.ID, Items: []SplitItemInput{{OrderItemID: order.Items[0].ID, Quantity: 0}}},
			},
			want: ErrSplitInvalid,
		},
		{
			name:   "empty groups",
			groups: nil,
			want:   ErrSplitInvalid,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SplitOrder(order.ID, tc.groups)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got: %v", tc.want, err)
			}
		})
	}

	// 任一校验失败都不得留下交付单
	var count int64
	if err := db.Model(&models.ProviderFulfillment{}).Count(&count).Error; err != nil {
		t.Fatalf("count fulfillments failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no fulfillments after failed splits, got: %d", count)
	}
}

func TestFulfillmentServiceSplitOrderInactiveProvider(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	order := seedPaidOrder(t, db)
	provider := seedFulfillmentProvider(t, db, "globex", false)

	_, err := svc.SplitOrder(order.ID, []SplitGroupInput{
		{ProviderID: provider.ID, Items: []SplitItemInput{
			{OrderItemID: order.Items[0].ID, Quantity: 2},
			{OrderItemID: order.Items[1].ID, Quantity: 1},
		}},
	})
	if !errors.Is(err, ErrProviderInactive) {
		t.Fatalf("expected ErrProviderInactive, got: %v", err)
	}
}

func TestFulfillmentServiceSplitOrderAlreadySplit(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	order := seedPaidOrder(t, db)
	provider := seedFulfillmentProvider(t, db, "acme", true)

	groups := []SplitGroupInput{
		{ProviderID: provider.ID, Items: []SplitItemInput{
			{OrderItemID: order.Items[0].ID, Quantity: 2},
			{OrderItemID: order.Items[1].ID, Quantity: 1},
		}},
	}
	if _, err := svc.SplitOrder(order.ID, groups); err != nil {
		t.Fatalf("first split failed: %v", err)
	}
	_, err := svc.SplitOrder(order.ID, groups)
	if !errors.Is(err, ErrOrderAlreadySplit) {
		t.Fatalf("expected ErrOrderAlreadySplit, got: %v", err)
	}
}

func TestFulfillmentServiceSplitOrderCanceledOrder(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	order := seedPaidOrder(t, db)
	provider := seedFulfillmentProvider(t, db, "acme", true)
	if err := db.Model(&models.Order{}).Where("id = ?", order.ID).Update("status", constants.OrderStatusCanceled).Error; err != nil {
		t.Fatalf("cancel order failed: %v", err)
	}

	_, err := svc.SplitOrder(order.ID, []SplitGroupInput{
		{ProviderID: provider.ID, Items: []SplitItemInput{
			{OrderItemID: order.Items[0].ID, Quantity: 2},
			{OrderItemID: order.Items[1].ID, Quantity: 1},
		}},
	})
	if !errors.Is(err, ErrOrderCanceled) {
		t.Fatalf("expected ErrOrderCanceled, got: %v", err)
	}
}

func TestFulfillmentServiceSplitOrderTxFailureKeepsCause(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	order := seedPaidOrder(t, db)
	provider := seedFulfillmentProvider(t, db, "acme-txfail", true)

	// 表缺失触发事务失败，错误需保留底层原因且仍可用哨兵判定
	if err := db.Migrator().DropTable(&models.ProviderFulfillmentItem{}); err != nil {
		t.Fatalf("drop table failed: %v", err)
	}
	_, err := svc.SplitOrder(order.ID, []SplitGroupInput{
		{ProviderID: provider.ID, Items: []SplitItemInput{
			{OrderItemID: order.Items[0].ID, Quantity: 2},
			{OrderItemID: order.Items[1].ID, Quantity: 1},
		}},
	})
	if !errors.Is(err, ErrSplitCreateFailed) {
		t.Fatalf("expected ErrSplitCreateFailed, got: %v", err)
	}
	if err.Error() == ErrSplitCreateFailed.Error() {
		t.Fatalf("expected underlying cause in error, got: %v", err)
	}
}

func splitForLifecycle(t *testing.T, svc *FulfillmentService, db *gorm.DB) (*models.Order, []models.ProviderFulfillment) {
	t.Helper()
	order := seedPaidOrder(t, db)
	providerA := seedFulfillmentProvider(t, db, fmt.Sprintf("acme_%d", time.Now().UnixNano()), true)
	providerB := seedFulfillmentProvider(t, db, fmt.Sprintf("northwind_%d", time.Now().UnixNano()), true)
	fulfillments, err := svc.SplitOrder(order.ID, []SplitGroupInput{
		{ProviderID: providerA.ID, Items: []SplitItemInput{{OrderItemID: order.Items[0].ID, Quantity: 2}}},
		{ProviderID: providerB.ID, Items: []SplitItemInput{{OrderItemID: order.Items[1].ID, Quantity: 1}}},
	})
	if err != nil {
		t.Fatalf("split order failed: %v", err)
	}
	return order, fulfillments
}

func TestFulfillmentServiceLifecycle(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	order, fulfillments := splitForLifecycle(t, svc, db)

	shipped, err := svc.MarkShipped(fulfillments[0].ID, ShipInput{
		TrackingNumber: "SF123456",
		Carrier:        "顺丰速运",
	})
	if err != nil {
		t.Fatalf("mark shipped failed: %v", err)
	}
	if shipped.Status != constants.FulfillmentStatusShipped {
		t.Fatalf("expected shipped, got: %s", shipped.Status)
	}
	if shipped.ShippedAt == nil {
		t.Fatal("shipped_at should be set")
	}
	if shipped.TrackingNumber != "SF123456" {
		t.Fatalf("tracking number want SF123456, got: %s", shipped.TrackingNumber)
	}

	completed, err := svc.Complete(shipped.ID)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if completed.Status != constants.FulfillmentStatusCompleted {
		t.Fatalf("expected completed, got: %s", completed.Status)
	}
	if completed.DeliveredAt == nil {
		t.Fatal("delivered_at should be set")
	}

	// 其他交付单仍在进行，订单状态不变
	var mid models.Order
	if err := db.First(&mid, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if mid.Status != constants.OrderStatusFulfilling {
		t.Fatalf("expected order fulfilling, got: %s", mid.Status)
	}

	if _, err := svc.MarkShipped(fulfillments[1].ID, ShipInput{TrackingNumber: "YT789"}); err != nil {
		t.Fatalf("mark second shipped failed: %v", err)
	}
	if _, err := svc.Complete(fulfillments[1].ID); err != nil {
		t.Fatalf("complete second failed: %v", err)
	}

	var final models.Order
	if err := db.First(&final, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if final.Status != constants.OrderStatusFulfilled {
		t.Fatalf("expected order fulfilled, got: %s", final.Status)
	}
}

func TestFulfillmentServiceLifecycleGuards(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	_, fulfillments := splitForLifecycle(t, svc, db)

	// 待发货不能直接完成
	if _, err := svc.Complete(fulfillments[0].ID); !errors.Is(err, ErrFulfillmentNotShipped) {
		t.Fatalf("expected ErrFulfillmentNotShipped, got: %v", err)
	}

	shipped, err := svc.MarkShipped(fulfillments[0].ID, ShipInput{})
	if err != nil {
		t.Fatalf("mark shipped failed: %v", err)
	}

	// 已发货不能取消，也不能重复发货
	if _, err := svc.Cancel(shipped.ID); !errors.Is(err, ErrFulfillmentNotPending) {
		t.Fatalf("expected ErrFulfillmentNotPending, got: %v", err)
	}
	if _, err := svc.MarkShipped(shipped.ID, ShipInput{}); !errors.Is(err, ErrFulfillmentNotPending) {
		t.Fatalf("expected ErrFulfillmentNotPending, got: %v", err)
	}

	completed, err := svc.Complete(shipped.ID)
	if err != nil {
		t.Fatalf("complete failed: %v", err)
	}

	// 终态不可再流转
	if _, err := svc.MarkShipped(completed.ID, ShipInput{}); !errors.Is(err, ErrFulfillmentTerminal) {
		t.Fatalf("expected ErrFulfillmentTerminal, got: %v", err)
	}
	if _, err := svc.Complete(completed.ID); !errors.Is(err, ErrFulfillmentTerminal) {
		t.Fatalf("expected ErrFulfillmentTerminal, got: %v", err)
	}
	if _, err := svc.Cancel(completed.ID); !errors.Is(err, ErrFulfillmentTerminal) {
		t.Fatalf("expected ErrFulfillmentTerminal, got: %v", err)
	}
}

func TestFulfillmentServiceCancelRestoresOrderStatus(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	order, fulfillments := splitForLifecycle(t, svc, db)

	for _, fulfillment := range fulfillments {
		canceled, err := svc.Cancel(fulfillment.ID)
		if err != nil {
			t.Fatalf("cancel failed: %v", err)
		}
		if canceled.Status != constants.FulfillmentStatusCanceled {
			t.Fatalf("expected canceled, got: %s", canceled.Status)
		}
		if canceled.CanceledAt == nil {
			t.Fatal("canceled_at should be set")
		}
	}

	// 全部取消后订单回到已支付
	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if reloaded.Status != constants.OrderStatusPaid {
		t.Fatalf("expected order paid, got: %s", reloaded.Status)
	}
}

func TestFulfillmentServicePartiallyFulfilled(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	order, fulfillments := splitForLifecycle(t, svc, db)

	if _, err := svc.MarkShipped(fulfillments[0].ID, ShipInput{}); err != nil {
		t.Fatalf("mark shipped failed: %v", err)
	}
	if _, err := svc.Complete(fulfillments[0].ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if _, err := svc.Cancel(fulfillments[1].ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	var reloaded models.Order
	if err := db.First(&reloaded, order.ID).Error; err != nil {
		t.Fatalf("reload order failed: %v", err)
	}
	if reloaded.Status != constants.OrderStatusPartiallyFulfilled {
		t.Fatalf("expected order partially_fulfilled, got: %s", reloaded.Status)
	}
}

func TestFulfillmentServiceUpdateTracking(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	_, fulfillments := splitForLifecycle(t, svc, db)

	updated, err := svc.UpdateTracking(fulfillments[0].ID, ShipInput{
		TrackingNumber: "JD20260901",
		TrackingURL:    "https://track.example.com/JD20260901",
		Carrier:        "京东物流",
	})
	if err != nil {
		t.Fatalf("update tracking failed: %v", err)
	}
	if updated.TrackingNumber != "JD20260901" || updated.Carrier != "京东物流" {
		t.Fatalf("tracking not updated: %+v", updated)
	}
	if updated.Status != constants.FulfillmentStatusPending {
		t.Fatalf("tracking update should not change status, got: %s", updated.Status)
	}

	if _, err := svc.Cancel(fulfillments[0].ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if _, err := svc.UpdateTracking(fulfillments[0].ID, ShipInput{TrackingNumber: "X"}); !errors.Is(err, ErrFulfillmentTerminal) {
		t.Fatalf("expected ErrFulfillmentTerminal, got: %v", err)
	}
}

func TestFulfillmentServiceUpdateItems(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	_, fulfillments := splitForLifecycle(t, svc, db)

	target := fulfillments[0].Items[0]
	qty := 1
	updated, err := svc.UpdateItems(fulfillments[0].ID, []FulfillmentItemInput{
		{ItemID: target.ID, FulfilledQuantity: &qty, Metadata: models.JSON{"batch": "B-01"}},
	})
	if err != nil {
		t.Fatalf("update items failed: %v", err)
	}
	if len(updated.Items) != 1 {
		t.Fatalf("expected 1 item, got: %d", len(updated.Items))
	}
	if updated.Items[0].FulfilledQuantity != 1 {
		t.Fatalf("fulfilled quantity not updated: %d", updated.Items[0].FulfilledQuantity)
	}
	if updated.Items[0].MetadataJSON["batch"] != "B-01" {
		t.Fatalf("metadata not updated: %+v", updated.Items[0].MetadataJSON)
	}

	over := target.Quantity + 1
	if _, err := svc.UpdateItems(fulfillments[0].ID, []FulfillmentItemInput{
		{ItemID: target.ID, FulfilledQuantity: &over},
	}); !errors.Is(err, ErrFulfillmentItemInvalid) {
		t.Fatalf("expected ErrFulfillmentItemInvalid, got: %v", err)
	}

	// 条目属于另一张交付单
	foreign := fulfillments[1].Items[0]
	if _, err := svc.UpdateItems(fulfillments[0].ID, []FulfillmentItemInput{
		{ItemID: foreign.ID, FulfilledQuantity: &qty},
	}); !errors.Is(err, ErrFulfillmentItemUnknown) {
		t.Fatalf("expected ErrFulfillmentItemUnknown, got: %v", err)
	}

	if _, err := svc.UpdateItems(fulfillments[0].ID, nil); !errors.Is(err, ErrFulfillmentItemInvalid) {
		t.Fatalf("expected ErrFulfillmentItemInvalid for empty input, got: %v", err)
	}

	if _, err := svc.Cancel(fulfillments[0].ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if _, err := svc.UpdateItems(fulfillments[0].ID, []FulfillmentItemInput{
		{ItemID: target.ID, FulfilledQuantity: &qty},
	}); !errors.Is(err, ErrFulfillmentTerminal) {
		t.Fatalf("expected ErrFulfillmentTerminal, got: %v", err)
	}
}

func TestFulfillmentServiceStateConflict(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	_, fulfillments := splitForLifecycle(t, svc, db)

	// 读取与流转之间被并发改写，条件更新影响 0 行
	if err := db.Model(&models.ProviderFulfillment{}).
		Where("id = ?", fulfillments[0].ID).
		Update("status", constants.FulfillmentStatusShipped).Error; err != nil {
		t.Fatalf("race update failed: %v", err)
	}
	_, err := svc.transition(fulfillments[0].ID, constants.FulfillmentStatusPending, constants.FulfillmentStatusCanceled, map[string]interface{}{})
	if !errors.Is(err, ErrFulfillmentStateConflict) {
		t.Fatalf("expected ErrFulfillmentStateConflict, got: %v", err)
	}
}

func TestFulfillmentServiceGetSplitSummary(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	order, fulfillments := splitForLifecycle(t, svc, db)

	summary, err := svc.GetSplitSummary(order.ID)
	if err != nil {
		t.Fatalf("get split summary failed: %v", err)
	}
	if summary.OrderID != order.ID || summary.OrderNo != order.OrderNo {
		t.Fatalf("summary order mismatch: %+v", summary)
	}
	if len(summary.Entries) != 2 {
		t.Fatalf("expected 2 entries, got: %d", len(summary.Entries))
	}
	// 2 x 79.90 + 1 x 89.00
	if !summary.TotalAmount.Equal(decimal.RequireFromString("248.80")) {
		t.Fatalf("expected total 248.80, got: %s", summary.TotalAmount)
	}
	for _, entry := range summary.Entries {
		if entry.ProviderName == "" {
			t.Fatalf("entry should carry provider name: %+v", entry)
		}
	}

	// 取消的交付单保留在明细中，但不计入总额
	if _, err := svc.Cancel(fulfillments[1].ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	summary, err = svc.GetSplitSummary(order.ID)
	if err != nil {
		t.Fatalf("get split summary failed: %v", err)
	}
	if len(summary.Entries) != 2 {
		t.Fatalf("expected 2 entries after cancel, got: %d", len(summary.Entries))
	}
	if !summary.TotalAmount.Equal(decimal.RequireFromString("159.80")) {
		t.Fatalf("expected total 159.80 after cancel, got: %s", summary.TotalAmount)
	}
}

func TestFulfillmentServiceDelete(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	_, fulfillments := splitForLifecycle(t, svc, db)

	if err := svc.Delete(fulfillments[0].ID); !errors.Is(err, ErrFulfillmentNotTerminal) {
		t.Fatalf("expected ErrFulfillmentNotTerminal, got: %v", err)
	}

	if _, err := svc.Cancel(fulfillments[0].ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if err := svc.Delete(fulfillments[0].ID); err != nil {
		t.Fatalf("delete canceled fulfillment failed: %v", err)
	}
	got, err := svc.Get(fulfillments[0].ID)
	if !errors.Is(err, ErrFulfillmentNotFound) {
		t.Fatalf("expected ErrFulfillmentNotFound after delete, got: %v (%+v)", err, got)
	}

	// 已完成同为终态，允许删除
	if _, err := svc.MarkShipped(fulfillments[1].ID, ShipInput{TrackingNumber: "SF900001"}); err != nil {
		t.Fatalf("mark shipped failed: %v", err)
	}
	if err := svc.Delete(fulfillments[1].ID); !errors.Is(err, ErrFulfillmentNotTerminal) {
		t.Fatalf("expected ErrFulfillmentNotTerminal for shipped, got: %v", err)
	}
	if _, err := svc.Complete(fulfillments[1].ID); err != nil {
		t.Fatalf("complete failed: %v", err)
	}
	if err := svc.Delete(fulfillments[1].ID); err != nil {
		t.Fatalf("delete completed fulfillment failed: %v", err)
	}
}

func TestFulfillmentServiceList(t *testing.T) {
	svc, db := setupFulfillmentServiceTest(t)
	order, fulfillments := splitForLifecycle(t, svc, db)

	list, total, err := svc.List(repository.FulfillmentListFilter{Page: 1, PageSize: 10, OrderID: order.ID})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Fatalf("expected 2 fulfillments, got total=%d len=%d", total, len(list))
	}

	list, total, err = svc.List(repository.FulfillmentListFilter{Page: 1, PageSize: 10, ProviderID: fulfillments[0].ProviderID})
	if err != nil {
		t.Fatalf("list by provider failed: %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Fatalf("expected 1 fulfillment for provider, got total=%d len=%d", total, len(list))
	}

	if _, err := svc.MarkShipped(fulfillments[0].ID, ShipInput{}); err != nil {
		t.Fatalf("mark shipped failed: %v", err)
	}
	list, total, err = svc.List(repository.FulfillmentListFilter{Page: 1, PageSize: 10, Status: constants.FulfillmentStatusShipped})
	if err != nil {
		t.Fatalf("list by status failed: %v", err)
	}
	if total != 1 || list[0].ID != fulfillments[0].ID {
		t.Fatalf("expected shipped fulfillment %d, got total=%d", fulfillments[0].ID, total)
	}
}
