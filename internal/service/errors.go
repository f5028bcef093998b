package service

import (
	"errors"
	"strings"
)

// 业务错误定义
var (
	ErrEmailExists        = errors.New("该邮箱已被注册")
	ErrInvalidCredentials = errors.New("邮箱或密码错误")
	ErrUnauthenticated    = errors.New("请先登录")
	ErrNotFound           = errors.New("资源不存在")
	ErrCatalogEmpty       = errors.New("商品目录为空")
	ErrEmptyCart          = errors.New("购物车为空")
)

// FieldError 单个字段的校验错误
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// FieldErrors 表单校验错误集合
type FieldErrors []FieldError

// Error 实现 error 接口
func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return "表单校验失败"
	}
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return strings.Join(parts, "; ")
}

// Fields 转换为 field -> message 映射
func (e FieldErrors) Fields() map[string]string {
	fields := make(map[string]string, len(e))
	for _, fe := range e {
		if _, ok := fields[fe.Field]; !ok {
			fields[fe.Field] = fe.Message
		}
	}
	return fields
}

// AsFieldErrors 判断错误是否为表单校验错误
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fieldErrs FieldErrors
	if errors.As(err, &fieldErrs) {
		return fieldErrs, true
	}
	return nil, false
}
