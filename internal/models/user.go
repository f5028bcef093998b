package models

import (
	"time"
)

// User 用户表
type User struct {
	ID           uint      `gorm:"primarykey" json:"id"`              // 主键
	Name         string    `gorm:"not null" json:"name"`              // 姓名
	Email        string    `gorm:"uniqueIndex;not null" json:"email"` // 邮箱（小写存储）
	PasswordHash string    `gorm:"not null" json:"-"`                 // 密码哈希（不返回给前端）
	CreatedAt    time.Time `gorm:"index" json:"created_at"`           // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                        // 更新时间
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
