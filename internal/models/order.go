package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表（商城主站的只读镜像，拆分校验的数据来源）
type Order struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                      // 主键
	OrderNo       string         `gorm:"uniqueIndex;not null" json:"order_no"`                      // 订单编号
	Status        string         `gorm:"index;not null" json:"status"`                              // 订单状态
	Currency      string         `gorm:"not null;default:'USD'" json:"currency"`                    // 币种
	TotalAmount   Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_amount"` // 订单总额
	CustomerEmail string         `gorm:"index" json:"customer_email,omitempty"`                     // 客户邮箱
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	// 关联
	Items        []OrderItem           `gorm:"foreignKey:OrderID" json:"items,omitempty"`        // 订单条目
	Fulfillments []ProviderFulfillment `gorm:"foreignKey:OrderID" json:"fulfillments,omitempty"` // 供应商交付单
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}

// OrderItem 订单条目表（只读镜像）
type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`                                    // 主键
	OrderID   uint           `gorm:"index;not null" json:"order_id"`                          // 订单ID
	ProductID uint           `gorm:"index;not null" json:"product_id"`                        // 商品ID
	Title     string         `gorm:"not null" json:"title"`                                   // 商品标题快照
	UnitPrice Money          `gorm:"type:decimal(20,2);not null;default:0" json:"unit_price"` // 单价
	Quantity  int            `gorm:"not null" json:"quantity"`                                // 下单数量
	CreatedAt time.Time      `json:"created_at"`                                              // 创建时间
	UpdatedAt time.Time      `json:"updated_at"`                                              // 更新时间
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`                                          // 软删除时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
