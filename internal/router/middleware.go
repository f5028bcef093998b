package router

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/tokri-shop/internal/config"
	"github.com/tokri-shop/internal/http/response"
	"github.com/tokri-shop/internal/logger"
	"github.com/tokri-shop/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"
const requestIDHeader = "X-Request-ID"
const sessionContextKey = "session"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Cache-Control",
			"X-Requested-With",
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.L()
	}
	sugar := logger.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if len(c.Errors) > 0 {
			log.Errorw("request", "errors", c.Errors.String())
			return
		}
		log.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	value, ok := c.Get(requestIDKey)
	if !ok {
		return ""
	}
	if requestID, ok := value.(string); ok {
		return requestID
	}
	return ""
}

// SessionMiddleware 会话中间件：从 Cookie 恢复会话，无效则新建并重新下发 Cookie
func SessionMiddleware(store session.Store, codec *session.TokenCodec, cookieName string, maxAgeSeconds int) gin.HandlerFunc {
	if strings.TrimSpace(cookieName) == "" {
		cookieName = "tokri_session"
	}
	return func(c *gin.Context) {
		sess := resolveSession(c, store, codec, cookieName)
		if sess == nil {
			sess = session.NewSession()
			if err := store.Save(c.Request.Context(), sess); err != nil {
				logger.Errorw("session_create_failed", "error", err)
				response.Error(c, response.CodeInternal, "会话不可用")
				c.Abort()
				return
			}
			token, err := codec.Encode(sess.ID)
			if err != nil {
				logger.Errorw("session_token_sign_failed", "error", err)
				response.Error(c, response.CodeInternal, "会话不可用")
				c.Abort()
				return
			}
			c.SetCookie(cookieName, token, maxAgeSeconds, "/", "", false, true)
		}

		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

func resolveSession(c *gin.Context, store session.Store, codec *session.TokenCodec, cookieName string) *session.Session {
	cookie, err := c.Cookie(cookieName)
	if err != nil || strings.TrimSpace(cookie) == "" {
		return nil
	}
	sessionID, err := codec.Decode(cookie)
	if err != nil {
		logger.Debugw("session_token_rejected", "error", err)
		return nil
	}
	sess, err := store.Get(c.Request.Context(), sessionID)
	if err != nil {
		if err != session.ErrNotFound {
			logger.Warnw("session_load_failed", "error", err)
		}
		return nil
	}
	return sess
}

// AuthRequiredMiddleware 登录校验中间件：未登录返回 401 并附带前端跳转地址
func AuthRequiredMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.Get(sessionContextKey)
		if !ok {
			response.UnauthorizedWithRedirect(c, "请先登录", "/signin")
			c.Abort()
			return
		}
		sess, ok := value.(*session.Session)
		if !ok || !sess.Authenticated() {
			response.UnauthorizedWithRedirect(c, "请先登录", "/signin")
			c.Abort()
			return
		}
		c.Next()
	}
}
