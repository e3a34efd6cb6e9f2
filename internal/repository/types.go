package repository

import "time"

// ProviderListFilter 查询供应商列表的过滤条件
type ProviderListFilter struct {
	Page     int
	PageSize int
	Type     string
	Status   string // active / inactive，空值表示全部
	Name     string // 名称子串，不区分大小写
}

// FulfillmentListFilter 查询交付单列表的过滤条件
type FulfillmentListFilter struct {
	Page        int
	PageSize    int
	OrderID     uint
	ProviderID  uint
	Status      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	WithItems   bool
}

// ProductProviderListFilter 查询商品分配列表的过滤条件
type ProductProviderListFilter struct {
	Page          int
	PageSize      int
	ProviderID    uint
	ProductID     uint
	Search        string // 匹配供应商侧编码或商品 slug
	OnlyAvailable bool
}
