package store

import (
	"github.com/tokri-shop/internal/http/response"
	"github.com/tokri-shop/internal/session"

	"github.com/gin-gonic/gin"
)

const sessionContextKey = "session"

func getSession(c *gin.Context) (*session.Session, bool) {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		respondError(c, response.CodeInternal, "会话不可用", nil)
		return nil, false
	}
	sess, ok := value.(*session.Session)
	if !ok || sess == nil {
		respondError(c, response.CodeInternal, "会话不可用", nil)
		return nil, false
	}
	return sess, true
}

func (h *Handler) saveSession(c *gin.Context, sess *session.Session) bool {
	if err := h.SessionStore.Save(c.Request.Context(), sess); err != nil {
		respondError(c, response.CodeInternal, "会话保存失败", err)
		return false
	}
	return true
}
