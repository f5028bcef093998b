package store

import "github.com/tokri-shop/internal/provider"

// Handler 店面接口处理器入口
// 说明：该处理器覆盖商品浏览、用户注册登录、购物车与结算。
type Handler struct {
	*provider.Container
}

// New 创建店面处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
