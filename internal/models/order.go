package models

import (
	"time"
)

// Order 订单表（每个购物车行生成一条订单记录，不保存下单时价格）
type Order struct {
	ID        uint      `gorm:"primarykey" json:"id"`               // 主键
	UserID    uint      `gorm:"index;not null" json:"user_id"`      // 用户ID
	ProductID uint      `gorm:"index;not null" json:"product_id"`   // 商品ID
	Quantity  int       `gorm:"not null;default:1" json:"quantity"` // 数量
	Address   string    `gorm:"type:text;not null" json:"address"`  // 收货地址
	Email     string    `gorm:"not null" json:"email"`              // 联系邮箱
	Phone     string    `gorm:"not null" json:"phone"`              // 联系电话
	CreatedAt time.Time `gorm:"index" json:"created_at"`            // 下单时间
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
