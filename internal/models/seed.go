package models

import (
	"github.com/tokri-shop/internal/logger"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultCatalog 默认商品目录
func DefaultCatalog() []Product {
	return []Product{
		{
			Name:        "Wireless Headphones",
			Description: "Comfortable over-ear wireless headphones with long battery life.",
			Price:       NewMoneyFromDecimal(decimal.NewFromInt(4500)),
			Image:       "headphones.png",
		},
		{
			Name:        "Casual T-Shirt",
			Description: "Soft cotton t-shirt available in multiple colors.",
			Price:       NewMoneyFromDecimal(decimal.NewFromInt(1500)),
			Image:       "tshirt.png",
		},
		{
			Name:        "Smart Watch",
			Description: "Fitness tracking smart watch with heart rate monitor.",
			Price:       NewMoneyFromDecimal(decimal.NewFromInt(8500)),
			Image:       "smartwatch.png",
		},
		{
			Name:        "Kitchen Blender",
			Description: "High power blender for smoothies and soups.",
			Price:       NewMoneyFromDecimal(decimal.NewFromInt(3500)),
			Image:       "blender.png",
		},
	}
}

// SeedCatalog 初始化默认商品目录（仅当商品表为空时写入，可重复执行）
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		logger.Infow("catalog_seed_skipped", "existing_products", count)
		return nil
	}

	products := DefaultCatalog()
	if err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&products).Error
	}); err != nil {
		return err
	}

	logger.Infow("catalog_seeded", "products", len(products))
	return nil
}
