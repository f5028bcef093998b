package store

import (
	"errors"

	"github.com/tokri-shop/internal/http/response"
	"github.com/tokri-shop/internal/service"

	"github.com/gin-gonic/gin"
)

// SignupRequest 注册请求
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupForm 注册表单描述
func (h *Handler) SignupForm(c *gin.Context) {
	response.Success(c, gin.H{
		"action": "/signup",
		"fields": []gin.H{
			{"name": "name", "type": "text", "min_length": 2, "max_length": 100},
			{"name": "email", "type": "email"},
			{"name": "password", "type": "password", "min_length": 8},
		},
	})
}

// Signup 用户注册
func (h *Handler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求格式错误", err)
		return
	}

	user, err := h.UserAuthService.Register(service.SignupForm{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if fieldErrs, ok := service.AsFieldErrors(err); ok {
			respondFieldErrors(c, fieldErrs)
			return
		}
		if errors.Is(err, service.ErrEmailExists) {
			respondError(c, response.CodeBadRequest, "该邮箱已被注册", nil)
			return
		}
		respondError(c, response.CodeInternal, "注册失败", err)
		return
	}

	response.SuccessWithMsg(c, "注册成功，请登录", gin.H{
		"user":     user,
		"redirect": "/signin",
	})
}

// SigninRequest 登录请求
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninForm 登录表单描述
func (h *Handler) SigninForm(c *gin.Context) {
	response.Success(c, gin.H{
		"action": "/signin",
		"fields": []gin.H{
			{"name": "email", "type": "email"},
			{"name": "password", "type": "password"},
		},
	})
}

// Signin 用户登录（登录后将用户绑定到当前会话）
func (h *Handler) Signin(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}

	var req SigninRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "请求格式错误", err)
		return
	}

	user, err := h.UserAuthService.Authenticate(service.SigninForm{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if fieldErrs, ok := service.AsFieldErrors(err); ok {
			respondFieldErrors(c, fieldErrs)
			return
		}
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, response.CodeUnauthorized, "邮箱或密码错误", nil)
			return
		}
		respondError(c, response.CodeInternal, "登录失败", err)
		return
	}

	sess.BindUser(user.ID)
	if !h.saveSession(c, sess) {
		return
	}

	response.SuccessWithMsg(c, "登录成功", gin.H{
		"user":     user,
		"redirect": "/",
	})
}

// Logout 退出登录（仅解绑用户，购物车保留在会话中）
func (h *Handler) Logout(c *gin.Context) {
	sess, ok := getSession(c)
	if !ok {
		return
	}

	sess.UnbindUser()
	if !h.saveSession(c, sess) {
		return
	}

	response.SuccessWithMsg(c, "已退出登录", gin.H{"redirect": "/"})
}
