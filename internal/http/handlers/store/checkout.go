package store

import (
	"github.com/tokri-shop/internal/http/response"
	"github.com/tokri-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutRequest 结算请求
type CheckoutRequest struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// CheckoutForm 结算表单描述与购物车摘要
func (h *Handler) CheckoutForm(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}

	view, err := h.CartService.View(sess)
	if err != nil {
		respondError(c, response.CodeInternal, "购物车获取失败", err)
		return
	}

	response.Success(c, gin.H{
		"action": "/checkout",
		"fields": []gin.H{
			{"name": "address", "type": "textarea"},
			{"name": "email", "type": "email"},
			{"name": "phone", "type": "tel", "min_length": 10, "max_length": 15},
		},
		"cart": view,
	})
}

// Checkout 提交结算（每个购物车行生成一条订单，全部成功后清空购物车）
func (h *Handler) Checkout(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求格式错误", err)
		return
	}

	orders, err := h.CheckoutService.Checkout(sess.UserID, sess, service.CheckoutForm{
		Address: req.Address,
		Email:   req.Email,
		Phone:   req.Phone,
	})
	if err != nil {
		respondCheckoutError(c, err)
		return
	}

	h.CartService.Clear(sess)
	if !h.saveSession(c, sess) {
		return
	}

	response.SuccessWithMsg(c, "下单成功", gin.H{
		"orders":   orders,
		"redirect": "/",
	})
}

// ListOrders 用户订单列表
func (h *Handler) ListOrders(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}

	details, err := h.CheckoutService.ListOrders(sess.UserID)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	response.Success(c, gin.H{"orders": details})
}
