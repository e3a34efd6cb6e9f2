package i18n

// catalog 文案目录，按语言分组
var catalog = map[string]map[string]string{
	LocaleZhCN: {
		"error.bad_request":            "请求参数不合法",
		"error.unauthorized":           "未登录或登录已过期",
		"error.auth_header_missing":    "缺少认证信息",
		"error.auth_header_invalid":    "认证信息格式错误",
		"error.token_invalid":          "登录凭证无效",
		"error.jwt_secret_missing":     "服务端未配置 JWT 密钥",
		"error.invalid_credentials":    "用户名或密码错误",
		"error.login_too_many":         "登录尝试过于频繁，请 %d 秒后再试",
		"error.rate_limited":           "请求过于频繁，请 %d 秒后再试",
		"error.rate_limit_unavailable": "限流服务暂不可用",
		"error.internal":               "服务器内部错误",

		"error.provider_not_found":        "供应商不存在",
		"error.provider_name_required":    "供应商名称不能为空",
		"error.provider_name_exists":      "供应商名称已存在",
		"error.provider_inactive":         "供应商已停用，无法接受新交付",
		"error.provider_has_fulfillments": "供应商仍有未完结的交付单，无法删除",
		"error.provider_has_products":     "供应商仍有商品分配记录，无法删除",
		"error.provider_fetch_failed":     "获取供应商失败",
		"error.provider_create_failed":    "创建供应商失败",
		"error.provider_update_failed":    "更新供应商失败",
		"error.provider_delete_failed":    "删除供应商失败",

		"error.assignment_exists":        "该商品已分配给此供应商",
		"error.assignment_not_found":     "商品分配记录不存在",
		"error.assignment_fetch_failed":  "获取商品分配失败",
		"error.assignment_create_failed": "分配商品失败",
		"error.assignment_update_failed": "更新商品分配失败",
		"error.assignment_delete_failed": "取消商品分配失败",

		"error.order_not_found":     "订单不存在",
		"error.order_fetch_failed":  "获取订单失败",
		"error.order_already_split": "订单已拆分，不能重复拆分",
		"error.order_canceled":      "订单已取消，无法拆分",

		"error.split_invalid":         "拆分请求不合法",
		"error.split_create_failed":   "订单拆分失败",
		"error.split_under_allocated": "拆分数量不足",
		"error.split_over_allocated":  "拆分数量超出订单数量",
		"error.split_item_unknown":    "拆分引用了订单中不存在的条目",

		"error.fulfillment_not_found":      "交付单不存在",
		"error.fulfillment_fetch_failed":   "获取交付单失败",
		"error.fulfillment_create_failed":  "创建交付单失败",
		"error.fulfillment_update_failed":  "更新交付单失败",
		"error.fulfillment_delete_failed":  "删除交付单失败",
		"error.fulfillment_not_pending":    "交付单不在待发货状态",
		"error.fulfillment_not_shipped":    "交付单尚未发货，无法完成",
		"error.fulfillment_terminal":       "交付单已完结，不允许该操作",
		"error.fulfillment_not_terminal":   "仅已完成或已取消的交付单可以删除",
		"error.fulfillment_state_conflict": "交付单状态发生并发变更，请刷新后重试",
		"error.fulfillment_item_unknown":   "交付条目不属于该交付单",
		"error.fulfillment_item_invalid":   "交付条目数量非法",

		"error.product_not_found":          "商品不存在",
		"error.product_fetch_failed":       "获取商品失败",
		"error.availability_update_failed": "更新商品可用性失败",
	},
	LocaleEnUS: {
		"error.bad_request":            "invalid request parameters",
		"error.unauthorized":           "not logged in or session expired",
		"error.auth_header_missing":    "missing authorization header",
		"error.auth_header_invalid":    "malformed authorization header",
		"error.token_invalid":          "invalid token",
		"error.jwt_secret_missing":     "server JWT secret not configured",
		"error.invalid_credentials":    "invalid username or password",
		"error.login_too_many":         "too many login attempts, retry in %d seconds",
		"error.rate_limited":           "too many requests, retry in %d seconds",
		"error.rate_limit_unavailable": "rate limiter unavailable",
		"error.internal":               "internal server error",

		"error.provider_not_found":        "provider not found",
		"error.provider_name_required":    "provider name is required",
		"error.provider_name_exists":      "provider name already exists",
		"error.provider_inactive":         "provider is inactive and cannot accept new fulfillments",
		"error.provider_has_fulfillments": "provider still has open fulfillments and cannot be deleted",
		"error.provider_has_products":     "provider still has product assignments and cannot be deleted",
		"error.provider_fetch_failed":     "failed to fetch provider",
		"error.provider_create_failed":    "failed to create provider",
		"error.provider_update_failed":    "failed to update provider",
		"error.provider_delete_failed":    "failed to delete provider",

		"error.assignment_exists":        "product is already assigned to this provider",
		"error.assignment_not_found":     "product assignment not found",
		"error.assignment_fetch_failed":  "failed to fetch product assignments",
		"error.assignment_create_failed": "failed to assign product",
		"error.assignment_update_failed": "failed to update product assignment",
		"error.assignment_delete_failed": "failed to unassign product",

		"error.order_not_found":     "order not found",
		"error.order_fetch_failed":  "failed to fetch order",
		"error.order_already_split": "order has already been split",
		"error.order_canceled":      "order is canceled and cannot be split",

		"error.split_invalid":         "invalid split request",
		"error.split_create_failed":   "failed to split order",
		"error.split_under_allocated": "split quantity is less than order quantity",
		"error.split_over_allocated":  "split quantity exceeds order quantity",
		"error.split_item_unknown":    "split references an item not on the order",

		"error.fulfillment_not_found":      "provider fulfillment not found",
		"error.fulfillment_fetch_failed":   "failed to fetch provider fulfillment",
		"error.fulfillment_create_failed":  "failed to create provider fulfillment",
		"error.fulfillment_update_failed":  "failed to update provider fulfillment",
		"error.fulfillment_delete_failed":  "failed to delete provider fulfillment",
		"error.fulfillment_not_pending":    "fulfillment is not pending",
		"error.fulfillment_not_shipped":    "cannot complete a fulfillment that is not shipped",
		"error.fulfillment_terminal":       "fulfillment is in a terminal state",
		"error.fulfillment_not_terminal":   "only completed or canceled fulfillments can be deleted",
		"error.fulfillment_state_conflict": "fulfillment status changed concurrently, refresh and retry",
		"error.fulfillment_item_unknown":   "item does not belong to this fulfillment",
		"error.fulfillment_item_invalid":   "invalid fulfillment item quantity",

		"error.product_not_found":          "product not found",
		"error.product_fetch_failed":       "failed to fetch product",
		"error.availability_update_failed": "failed to update product availability",
	},
}
