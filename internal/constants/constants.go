package constants

// 供应商类型常量
const (
	ProviderTypeShipping    = "shipping"
	ProviderTypeFulfillment = "fulfillment"
	ProviderTypeInventory   = "inventory"
)

// 供应商状态常量
const (
	ProviderStatusActive   = "active"
	ProviderStatusInactive = "inactive"
)

// 交付单状态常量
const (
	FulfillmentStatusPending   = "pending"
	FulfillmentStatusShipped   = "shipped"
	FulfillmentStatusCompleted = "completed"
	FulfillmentStatusCanceled  = "canceled"
)

// 订单状态常量（来自商城主站的只读镜像）
const (
	OrderStatusPending            = "pending"
	OrderStatusPaid               = "paid"
	OrderStatusFulfilling         = "fulfilling"
	OrderStatusPartiallyFulfilled = "partially_fulfilled"
	OrderStatusFulfilled          = "fulfilled"
	OrderStatusCanceled           = "canceled"
)

// 商品可用性元数据键
const (
	ProductMetaBackorderUnavailable = "backorder_unavailable"
)

// 队列名称常量
const (
	QueueDefault = "default"
)

// 异步任务类型常量
const (
	TaskFulfillmentStatusNotice = "fulfillment:status_notice"
	TaskProductAvailabilitySync = "product:availability_sync"
)
