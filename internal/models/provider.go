package models

import (
	"time"

	"gorm.io/gorm"
)

// Provider 供应商表
type Provider struct {
	ID           uint           `gorm:"primarykey" json:"id"`                                        // 主键
	Name         string         `gorm:"uniqueIndex;not null" json:"name"`                            // 名称（唯一）
	Type         string         `gorm:"type:varchar(20);not null;default:'fulfillment'" json:"type"` // 类型（shipping/fulfillment/inventory）
	Description  string         `gorm:"type:text" json:"description,omitempty"`                      // 描述
	Email        string         `gorm:"type:varchar(200)" json:"email,omitempty"`                    // 联系邮箱
	Phone        string         `gorm:"type:varchar(50)" json:"phone,omitempty"`                     // 联系电话
	Website      string         `gorm:"type:varchar(200)" json:"website,omitempty"`                  // 网站
	Address      string         `gorm:"type:text" json:"address,omitempty"`                          // 地址
	ConfigJSON   JSON           `gorm:"type:json" json:"config"`                                     // 对接配置
	MetadataJSON JSON           `gorm:"type:json" json:"metadata"`                                   // 元数据
	IsActive     bool           `gorm:"default:true;index" json:"is_active"`                         // 是否启用
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`                                     // 创建时间
	UpdatedAt    time.Time      `json:"updated_at"`                                                  // 更新时间
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`                                              // 软删除时间

	// 关联
	Fulfillments []ProviderFulfillment `gorm:"foreignKey:ProviderID" json:"fulfillments,omitempty"` // 交付单
	Products     []ProductProvider     `gorm:"foreignKey:ProviderID" json:"products,omitempty"`     // 商品分配
}

// TableName 指定表名
func (Provider) TableName() string {
	return "providers"
}

// Status 返回供应商状态文案
func (p Provider) Status() string {
	if p.IsActive {
		return "active"
	}
	return "inactive"
}
