package service

import "errors"

// 服务层错误定义
var (
	// ErrProviderNotFound 供货方不存在
	ErrProviderNotFound = errors.New("provider not found")
	// ErrProviderNameRequired 供货方名称必填
	ErrProviderNameRequired = errors.New("provider name required")
	// ErrProviderNameExists 供货方名称已存在
	ErrProviderNameExists = errors.New("provider name exists")
	// ErrProviderInactive 供货方已停用
	ErrProviderInactive = errors.New("provider inactive")
	// ErrProviderHasFulfillments 供货方存在未完结交付单
	ErrProviderHasFulfillments = errors.New("provider has open fulfillments")
	// ErrProviderHasProducts 供货方存在商品关联
	ErrProviderHasProducts = errors.New("provider has product assignments")
	// ErrProviderFetchFailed 供货方查询失败
	ErrProviderFetchFailed = errors.New("provider fetch failed")
	// ErrProviderCreateFailed 供货方创建失败
	ErrProviderCreateFailed = errors.New("provider create failed")
	// ErrProviderUpdateFailed 供货方更新失败
	ErrProviderUpdateFailed = errors.New("provider update failed")
	// ErrProviderDeleteFailed 供货方删除失败
	ErrProviderDeleteFailed = errors.New("provider delete failed")

	// ErrAssignmentExists 商品供货关联已存在
	ErrAssignmentExists = errors.New("product provider assignment exists")
	// ErrAssignmentNotFound 商品供货关联不存在
	ErrAssignmentNotFound = errors.New("product provider assignment not found")
	// ErrAssignmentFetchFailed 商品供货关联查询失败
	ErrAssignmentFetchFailed = errors.New("product provider assignment fetch failed")
	// ErrAssignmentCreateFailed 商品供货关联创建失败
	ErrAssignmentCreateFailed = errors.New("product provider assignment create failed")
	// ErrAssignmentUpdateFailed 商品供货关联更新失败
	ErrAssignmentUpdateFailed = errors.New("product provider assignment update failed")
	// ErrAssignmentDeleteFailed 商品供货关联删除失败
	ErrAssignmentDeleteFailed = errors.New("product provider assignment delete failed")

	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderFetchFailed 订单查询失败
	ErrOrderFetchFailed = errors.New("order fetch failed")
	// ErrOrderAlreadySplit 订单已拆分
	ErrOrderAlreadySplit = errors.New("order already split")
	// ErrOrderCanceled 订单已取消
	ErrOrderCanceled = errors.New("order canceled")

	// ErrSplitInvalid 拆单输入不合法
	ErrSplitInvalid = errors.New("split input invalid")
	// ErrSplitUnderAllocated 拆单数量少于订单数量
	ErrSplitUnderAllocated = errors.New("split quantities under-allocated")
	// ErrSplitOverAllocated 拆单数量超出订单数量
	ErrSplitOverAllocated = errors.New("split quantities over-allocated")
	// ErrSplitItemUnknown 拆单引用了订单之外的条目
	ErrSplitItemUnknown = errors.New("split references unknown order item")
	// ErrSplitCreateFailed 拆单创建失败
	ErrSplitCreateFailed = errors.New("split create failed")

	// ErrFulfillmentNotFound 交付单不存在
	ErrFulfillmentNotFound = errors.New("fulfillment not found")
	// ErrFulfillmentFetchFailed 交付单查询失败
	ErrFulfillmentFetchFailed = errors.New("fulfillment fetch failed")
	// ErrFulfillmentCreateFailed 交付单创建失败
	ErrFulfillmentCreateFailed = errors.New("fulfillment create failed")
	// ErrFulfillmentUpdateFailed 交付单更新失败
	ErrFulfillmentUpdateFailed = errors.New("fulfillment update failed")
	// ErrFulfillmentDeleteFailed 交付单删除失败
	ErrFulfillmentDeleteFailed = errors.New("fulfillment delete failed")
	// ErrFulfillmentNotPending 交付单不处于待发货状态
	ErrFulfillmentNotPending = errors.New("fulfillment not pending")
	// ErrFulfillmentNotShipped 交付单尚未发货
	ErrFulfillmentNotShipped = errors.New("fulfillment not shipped")
	// ErrFulfillmentTerminal 交付单已处于终态
	ErrFulfillmentTerminal = errors.New("fulfillment already terminal")
	// ErrFulfillmentNotTerminal 交付单未进入终态，不可删除
	ErrFulfillmentNotTerminal = errors.New("fulfillment not terminal")
	// ErrFulfillmentStateConflict 交付单状态被并发修改
	ErrFulfillmentStateConflict = errors.New("fulfillment state conflict")
	// ErrFulfillmentItemUnknown 交付条目不属于该交付单
	ErrFulfillmentItemUnknown = errors.New("fulfillment item unknown")
	// ErrFulfillmentItemInvalid 交付条目数量非法
	ErrFulfillmentItemInvalid = errors.New("fulfillment item invalid")

	// ErrProductNotFound 商品不存在
	ErrProductNotFound = errors.New("product not found")
	// ErrProductFetchFailed 商品查询失败
	ErrProductFetchFailed = errors.New("product fetch failed")
	// ErrAvailabilityUpdateFailed 商品可用性更新失败
	ErrAvailabilityUpdateFailed = errors.New("availability update failed")

	// ErrInvalidCredentials 用户名或密码错误
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrJWTSecretMissing JWT 密钥未配置
	ErrJWTSecretMissing = errors.New("jwt secret missing")
	// ErrTokenInvalid 令牌无效
	ErrTokenInvalid = errors.New("token invalid")
)
