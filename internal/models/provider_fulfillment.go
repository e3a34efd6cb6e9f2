package models

import (
	"time"

	"gorm.io/gorm"
)

// ProviderFulfillment 供应商交付单表
type ProviderFulfillment struct {
	ID             uint           `gorm:"primarykey" json:"id"`                               // 主键
	OrderID        uint           `gorm:"index:idx_pf_order;not null" json:"order_id"`        // 订单ID
	ProviderID     uint           `gorm:"index;not null" json:"provider_id"`                  // 供应商ID
	Status         string         `gorm:"index;not null;default:'pending'" json:"status"`     // 状态（pending/shipped/completed/canceled）
	TrackingNumber string         `gorm:"type:varchar(100)" json:"tracking_number,omitempty"` // 运单号
	TrackingURL    string         `gorm:"type:varchar(500)" json:"tracking_url,omitempty"`    // 运单查询链接
	Carrier        string         `gorm:"type:varchar(100)" json:"carrier,omitempty"`         // 承运方
	MetadataJSON   JSON           `gorm:"type:json" json:"metadata"`                          // 元数据
	ShippedAt      *time.Time     `gorm:"index" json:"shipped_at,omitempty"`                  // 发货时间
	DeliveredAt    *time.Time     `gorm:"index" json:"delivered_at,omitempty"`                // 送达时间
	CanceledAt     *time.Time     `json:"canceled_at,omitempty"`                              // 取消时间
	CreatedAt      time.Time      `gorm:"index" json:"created_at"`                            // 创建时间
	UpdatedAt      time.Time      `json:"updated_at"`                                         // 更新时间
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`                                     // 软删除时间

	// 关联
	Provider *Provider                 `gorm:"foreignKey:ProviderID" json:"provider,omitempty"` // 供应商信息
	Items    []ProviderFulfillmentItem `gorm:"foreignKey:FulfillmentID" json:"items,omitempty"` // 交付条目
}

// TableName 指定表名
func (ProviderFulfillment) TableName() string {
	return "provider_fulfillments"
}

// ProviderFulfillmentItem 供应商交付条目表
type ProviderFulfillmentItem struct {
	ID                uint           `gorm:"primarykey" json:"id"`                          // 主键
	FulfillmentID     uint           `gorm:"index;not null" json:"provider_fulfillment_id"` // 交付单ID
	OrderItemID       uint           `gorm:"index;not null" json:"order_item_id"`           // 订单条目ID
	Quantity          int            `gorm:"not null" json:"quantity"`                      // 分配数量（必须大于 0）
	FulfilledQuantity int            `gorm:"not null;default:0" json:"fulfilled_quantity"`  // 已交付数量
	MetadataJSON      JSON           `gorm:"type:json" json:"metadata"`                     // 元数据
	CreatedAt         time.Time      `json:"created_at"`                                    // 创建时间
	UpdatedAt         time.Time      `json:"updated_at"`                                    // 更新时间
	DeletedAt         gorm.DeletedAt `gorm:"index" json:"-"`                                // 软删除时间
}

// TableName 指定表名
func (ProviderFulfillmentItem) TableName() string {
	return "provider_fulfillment_items"
}
