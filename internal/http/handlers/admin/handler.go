package admin

import "github.com/provider-next/internal/container"

// Handler 后台管理接口处理器入口
// 说明：该处理器仅用于管理端 API。
type Handler struct {
	*container.Container
}

// New 创建后台处理器
func New(c *container.Container) *Handler {
	return &Handler{Container: c}
}
