package store

import (
	"github.com/tokri-shop/internal/http/response"
	"github.com/tokri-shop/internal/logger"
	"github.com/tokri-shop/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// requestLog 提供携带 request_id 的日志实例。
func requestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get("request_id"); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// respondError 返回错误响应，并在有原始错误时记录日志。
func respondError(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		requestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// respondFieldErrors 返回表单校验错误（附带字段级信息）
func respondFieldErrors(c *gin.Context, errs service.FieldErrors) {
	response.ErrorWithData(c, response.CodeBadRequest, errs.Error(), gin.H{
		"fields": errs.Fields(),
	})
}
