package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表（发布状态与缺货标记的载体，可用性由二者推导）
type Product struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                      // 主键
	Slug         string         `gorm:"uniqueIndex;not null" json:"slug"`                          // 唯一标识
	Title        string         `gorm:"not null" json:"title"`                                     // 标题
	PriceAmount  Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price_amount"` // 售价
	Tags         StringArray    `gorm:"type:json" json:"tags"`                                     // 标签
	MetadataJSON JSON           `gorm:"type:json" json:"metadata"`                                 // 元数据（含缺货标记）
	IsPublished  bool           `gorm:"default:true;index" json:"is_published"`                    // 是否发布
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	// 关联
	Providers []ProductProvider `gorm:"foreignKey:ProductID" json:"providers,omitempty"` // 供应商分配
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// ProductProvider 商品供应商分配表
type ProductProvider struct {
	ID                uint      `gorm:"primarykey" json:"id"`                                               // 主键
	ProductID         uint      `gorm:"uniqueIndex:idx_product_provider;not null" json:"product_id"`        // 商品ID
	ProviderID        uint      `gorm:"uniqueIndex:idx_product_provider;index;not null" json:"provider_id"` // 供应商ID
	ProviderProductID string    `gorm:"type:varchar(100)" json:"provider_product_id,omitempty"`             // 供应商侧商品编码
	CostPrice         Money     `gorm:"type:decimal(20,2);not null;default:0" json:"cost_price"`            // 成本价
	IsAvailable       bool      `gorm:"default:true" json:"is_available"`                                   // 供应商侧是否可供货
	CreatedAt         time.Time `json:"created_at"`                                                         // 创建时间
	UpdatedAt         time.Time `json:"updated_at"`                                                         // 更新时间

	// 关联
	Product  *Product  `gorm:"foreignKey:ProductID" json:"product,omitempty"`   // 商品信息
	Provider *Provider `gorm:"foreignKey:ProviderID" json:"provider,omitempty"` // 供应商信息
}

// TableName 指定表名
func (ProductProvider) TableName() string {
	return "product_providers"
}
