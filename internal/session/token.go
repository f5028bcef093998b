package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenCodec 会话 Cookie 编解码器（HS256 签名，载荷只含会话 ID）
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec 创建编解码器
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// tokenClaims 会话 Token 声明
type tokenClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Encode 签发会话 Token
func (c *TokenCodec) Encode(sessionID string) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode 解析并校验会话 Token，返回会话 ID
func (c *TokenCodec) Decode(tokenString string) (string, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	token, err := parser.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", errors.New("无效的会话 token")
	}
	return claims.SessionID, nil
}
