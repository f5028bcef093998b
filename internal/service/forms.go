package service

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

const (
	nameMinLength     = 2
	nameMaxLength     = 100
	passwordMinLength = 8
	phoneMinLength    = 10
	phoneMaxLength    = 15
)

// SignupForm 注册表单
type SignupForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninForm 登录表单
type SigninForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CheckoutForm 结算表单
type CheckoutForm struct {
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
}

// ValidateSignupForm 校验注册表单
func ValidateSignupForm(form SignupForm, passwordMin int) error {
	if passwordMin < passwordMinLength {
		passwordMin = passwordMinLength
	}

	var errs FieldErrors
	name := strings.TrimSpace(form.Name)
	if length := utf8.RuneCountInString(name); length < nameMinLength || length > nameMaxLength {
		errs = append(errs, FieldError{Field: "name", Message: "姓名长度需在 2 到 100 个字符之间"})
	}
	if !isValidEmail(form.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "邮箱格式不正确"})
	}
	if utf8.RuneCountInString(form.Password) < passwordMin {
		errs = append(errs, FieldError{Field: "password", Message: "密码长度不能少于 8 个字符"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateSigninForm 校验登录表单
func ValidateSigninForm(form SigninForm) error {
	var errs FieldErrors
	if !isValidEmail(form.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "邮箱格式不正确"})
	}
	if strings.TrimSpace(form.Password) == "" {
		errs = append(errs, FieldError{Field: "password", Message: "请输入密码"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ValidateCheckoutForm 校验结算联系信息
func ValidateCheckoutForm(form CheckoutForm) error {
	var errs FieldErrors
	if strings.TrimSpace(form.Address) == "" {
		errs = append(errs, FieldError{Field: "address", Message: "收货地址不能为空"})
	}
	if !isValidEmail(form.Email) {
		errs = append(errs, FieldError{Field: "email", Message: "邮箱格式不正确"})
	}
	phone := strings.TrimSpace(form.Phone)
	if length := len(phone); length < phoneMinLength || length > phoneMaxLength {
		errs = append(errs, FieldError{Field: "phone", Message: "电话号码长度需在 10 到 15 位之间"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NormalizeEmail 规范化邮箱（去空白并转小写）
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil {
		return false
	}
	return addr.Address == trimmed
}
