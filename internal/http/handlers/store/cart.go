package store

import (
	"github.com/tokri-shop/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CartQuantityRequest 购物车数量请求（可省略，默认 1）
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// AddToCart 添加商品到购物车
func (h *Handler) AddToCart(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	var req CartQuantityRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.CartService.AddLine(sess, productID, req.Quantity); err != nil {
		respondCartMutationError(c, err)
		return
	}
	if !h.saveSession(c, sess) {
		return
	}

	requestLog(c).Infow("cart_line_added", "user_id", sess.UserID, "product_id", productID)
	response.SuccessWithMsg(c, "已加入购物车", gin.H{"redirect": "/cart"})
}

// BuyNow 立即购买（购物车整体替换为单行）
func (h *Handler) BuyNow(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "product_id")
	if !ok {
		return
	}

	var req CartQuantityRequest
	_ = c.ShouldBindJSON(&req)

	if err := h.CartService.ReplaceWithSingle(sess, productID, req.Quantity); err != nil {
		respondCartMutationError(c, err)
		return
	}
	if !h.saveSession(c, sess) {
		return
	}

	requestLog(c).Infow("cart_replaced_for_buy_now", "user_id", sess.UserID, "product_id", productID)
	response.SuccessWithMsg(c, "已准备结算", gin.H{"redirect": "/checkout"})
}

// GetCart 查看购物车
func (h *Handler) GetCart(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}

	view, err := h.CartService.View(sess)
	if err != nil {
		respondError(c, response.CodeInternal, "购物车获取失败", err)
		return
	}
	response.Success(c, view)
}
