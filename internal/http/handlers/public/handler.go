package public

import "github.com/provider-next/internal/container"

// Handler 前台/公开接口处理器入口
// 说明：该处理器仅用于前台、游客侧 API。
type Handler struct {
	*container.Container
}

// New 创建前台处理器
func New(c *container.Container) *Handler {
	return &Handler{Container: c}
}
