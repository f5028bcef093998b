package main

import (
	"fmt"

	"github.com/tokri-shop/internal/config"
	"github.com/tokri-shop/internal/logger"
	"github.com/tokri-shop/internal/models"
)

func main() {
	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 写入默认商品目录（商品表非空时跳过）
	if err := models.SeedCatalog(models.DB); err != nil {
		stdLog.Fatalf("Failed to seed catalog: %v", err)
	}

	var productCount int64
	if err := models.DB.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		stdLog.Fatalf("Failed to count products: %v", err)
	}

	fmt.Println("\nSeed finished.")
	fmt.Printf("- %d products in catalog\n", productCount)
}
