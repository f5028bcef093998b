package store

import (
	"errors"
	"strconv"

	"github.com/tokri-shop/internal/http/response"
	"github.com/tokri-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// Home 商品目录首页
func (h *Handler) Home(c *gin.Context) {
	products, err := h.CatalogService.List()
	if err != nil {
		if errors.Is(err, service.ErrCatalogEmpty) {
			respondError(c, response.CodeInternal, "商品目录为空", nil)
			return
		}
		respondError(c, response.CodeInternal, "商品列表获取失败", err)
		return
	}
	response.Success(c, gin.H{"products": products})
}

// ProductDetail 商品详情
func (h *Handler) ProductDetail(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.CatalogService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "商品不存在")
			return
		}
		respondError(c, response.CodeInternal, "商品详情获取失败", err)
		return
	}
	response.Success(c, gin.H{"product": product})
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		response.NotFound(c, "商品不存在")
		return 0, false
	}
	return uint(id), true
}
