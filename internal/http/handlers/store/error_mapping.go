package store

import (
	"errors"

	"github.com/tokri-shop/internal/http/response"
	"github.com/tokri-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	if fieldErrs, ok := service.AsFieldErrors(err); ok {
		respondFieldErrors(c, fieldErrs)
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var cartMutationErrorRules = []mappedHandlerError{
	{target: service.ErrUnauthenticated, code: response.CodeUnauthorized, msg: "请先登录"},
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "商品不存在"},
}

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrUnauthenticated, code: response.CodeUnauthorized, msg: "请先登录"},
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, msg: "购物车为空"},
}

func respondCartMutationError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartMutationErrorRules, response.CodeInternal, "购物车更新失败")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "下单失败")
}
