package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound 会话不存在或已过期
var ErrNotFound = errors.New("会话不存在")

// CartLine 购物车行（按加入顺序保存，同一商品可出现多行）
type CartLine struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// Session 会话记录
type Session struct {
	ID        string     `json:"id"`
	UserID    uint       `json:"user_id"` // 0 表示未登录
	Cart      []CartLine `json:"cart"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewSession 创建空会话
func NewSession() *Session {
	now := time.Now()
	return &Session{
		ID:        uuid.NewString(),
		Cart:      []CartLine{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Authenticated 是否已绑定登录用户
func (s *Session) Authenticated() bool {
	return s != nil && s.UserID != 0
}

// BindUser 绑定登录用户
func (s *Session) BindUser(userID uint) {
	s.UserID = userID
}

// UnbindUser 解绑登录用户（购物车保留）
func (s *Session) UnbindUser() {
	s.UserID = 0
}

// Store 会话存储接口
type Store interface {
	// Get 按会话 ID 读取；不存在或过期返回 ErrNotFound
	Get(ctx context.Context, id string) (*Session, error)
	// Save 写入会话并刷新有效期
	Save(ctx context.Context, sess *Session) error
	// Delete 删除会话
	Delete(ctx context.Context, id string) error
}
