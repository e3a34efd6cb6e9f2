package main

import (
	"fmt"

	"github.com/provider-next/internal/config"
	"github.com/provider-next/internal/constants"
	"github.com/provider-next/internal/logger"
	"github.com/provider-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 供货方
	providers := []models.Provider{
		{
			Name:    "Acme Logistics",
			Type:    constants.ProviderTypeShipping,
			Email:   "ops@acme-logistics.example",
			Phone:   "+1-555-0100",
			Website: "https://acme-logistics.example",
			Address: "100 Dock Street, Oakland, CA",
		},
		{
			Name:    "Northwind Fulfillment",
			Type:    constants.ProviderTypeFulfillment,
			Email:   "warehouse@northwind.example",
			Phone:   "+1-555-0101",
			Website: "https://northwind.example",
			Address: "22 Harbor Way, Seattle, WA",
		},
		{
			Name:     "Globex Inventory",
			Type:     constants.ProviderTypeInventory,
			Email:    "stock@globex.example",
			IsActive: false,
		},
	}
	for i := range providers {
		if i < 2 {
			providers[i].IsActive = true
		}
		var existing models.Provider
		if err := models.DB.Where("name = ?", providers[i].Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&providers[i]).Error; err != nil {
				stdLog.Printf("Failed to create provider %s: %v", providers[i].Name, err)
			} else {
				stdLog.Printf("Created provider: %s", providers[i].Name)
			}
		} else {
			providers[i] = existing
			stdLog.Printf("Provider already exists: %s", providers[i].Name)
		}
	}

	// 商品
	products := []models.Product{
		{
			Slug:        "wireless-earbuds",
			Title:       "Wireless Earbuds",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(59.90)),
			Tags:        models.StringArray{"audio", "electronics"},
			IsPublished: true,
		},
		{
			Slug:        "mechanical-keyboard",
			Title:       "Mechanical Keyboard",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(129.00)),
			Tags:        models.StringArray{"peripherals"},
			IsPublished: true,
		},
		{
			Slug:        "usb-c-hub",
			Title:       "USB-C Hub",
			PriceAmount: models.NewMoneyFromDecimal(decimal.NewFromFloat(39.50)),
			Tags:        models.StringArray{"accessories"},
			IsPublished: true,
			MetadataJSON: models.JSON{
				constants.ProductMetaBackorderUnavailable: true,
			},
		},
	}
	for i := range products {
		var existing models.Product
		if err := models.DB.Where("slug = ?", products[i].Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&products[i]).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", products[i].Slug, err)
			} else {
				stdLog.Printf("Created product: %s", products[i].Slug)
			}
		} else {
			products[i] = existing
			stdLog.Printf("Product already exists: %s", products[i].Slug)
		}
	}

	// 商品供货关联
	assignments := []models.ProductProvider{
		{
			ProductID:         products[0].ID,
			ProviderID:        providers[1].ID,
			ProviderProductID: "NW-EB-001",
			CostPrice:         models.NewMoneyFromDecimal(decimal.NewFromFloat(32.00)),
			IsAvailable:       true,
		},
		{
			ProductID:         products[1].ID,
			ProviderID:        providers[1].ID,
			ProviderProductID: "NW-KB-014",
			CostPrice:         models.NewMoneyFromDecimal(decimal.NewFromFloat(71.50)),
			IsAvailable:       true,
		},
		{
			ProductID:         products[2].ID,
			ProviderID:        providers[0].ID,
			ProviderProductID: "ACME-HUB-7",
			CostPrice:         models.NewMoneyFromDecimal(decimal.NewFromFloat(18.80)),
			IsAvailable:       false,
		},
	}
	for _, assignment := range assignments {
		if assignment.ProductID == 0 || assignment.ProviderID == 0 {
			continue
		}
		var existing models.ProductProvider
		err := models.DB.Where("product_id = ? AND provider_id = ?", assignment.ProductID, assignment.ProviderID).
			First(&existing).Error
		if err != nil {
			if err := models.DB.Create(&assignment).Error; err != nil {
				stdLog.Printf("Failed to create assignment %d/%d: %v", assignment.ProductID, assignment.ProviderID, err)
			} else {
				stdLog.Printf("Created assignment: product=%d provider=%d", assignment.ProductID, assignment.ProviderID)
			}
		} else {
			stdLog.Printf("Assignment already exists: product=%d provider=%d", assignment.ProductID, assignment.ProviderID)
		}
	}

	// 演示订单
	orderNo := "PN202609010001"
	var existingOrder models.Order
	if err := models.DB.Where("order_no = ?", orderNo).First(&existingOrder).Error; err != nil {
		order := models.Order{
			OrderNo:       orderNo,
			Status:        constants.OrderStatusPaid,
			Currency:      "USD",
			TotalAmount:   models.NewMoneyFromDecimal(decimal.NewFromFloat(248.80)),
			CustomerEmail: "buyer@example.com",
		}
		if err := models.DB.Create(&order).Error; err != nil {
			stdLog.Fatalf("Failed to create demo order: %v", err)
		}
		items := []models.OrderItem{
			{
				OrderID:   order.ID,
				ProductID: products[0].ID,
				Title:     products[0].Title,
				UnitPrice: products[0].PriceAmount,
				Quantity:  2,
			},
			{
				OrderID:   order.ID,
				ProductID: products[1].ID,
				Title:     products[1].Title,
				UnitPrice: products[1].PriceAmount,
				Quantity:  1,
			},
		}
		if err := models.DB.Create(&items).Error; err != nil {
			stdLog.Fatalf("Failed to create demo order items: %v", err)
		}
		stdLog.Printf("Created demo order: %s", orderNo)
	} else {
		stdLog.Printf("Demo order already exists: %s", orderNo)
	}

	fmt.Println("Seed finished.")
}
