package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/tokri-shop/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newOrderRepoTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:order_repo_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Order{}); err != nil {
		t.Fatalf("auto migrate order failed: %v", err)
	}
	return db
}

func testOrder(userID, productID uint, quantity int) models.Order {
	return models.Order{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
		Address:   "1 Main Street",
		Email:     "buyer@example.com",
		Phone:     "0123456789",
	}
}

func TestCreateBatchRollsBackOnFailure(t *testing.T) {
	db := newOrderRepoTestDB(t)
	repo := NewOrderRepository(db)

	first := testOrder(1, 1, 1)
	first.ID = 7
	second := testOrder(1, 2, 1)
	second.ID = 7 // 主键冲突触发第二条写入失败

	if err := repo.CreateBatch([]models.Order{first, second}); err == nil {
		t.Fatalf("duplicate primary key should fail the batch")
	}

	count, err := repo.CountByUser(1)
	if err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("failed batch should roll back all rows, got %d", count)
	}
}

func TestCreateBatchAndListByUser(t *testing.T) {
	db := newOrderRepoTestDB(t)
	repo := NewOrderRepository(db)

	if err := repo.CreateBatch([]models.Order{
		testOrder(1, 10, 1),
		testOrder(1, 20, 2),
		testOrder(2, 10, 1),
	}); err != nil {
		t.Fatalf("create batch failed: %v", err)
	}

	orders, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("user 1 orders want 2 got %d", len(orders))
	}
	// 最近下单的排在前面
	if orders[0].ProductID != 20 || orders[1].ProductID != 10 {
		t.Fatalf("orders should be newest first, got %d then %d", orders[0].ProductID, orders[1].ProductID)
	}

	count, err := repo.CountByUser(2)
	if err != nil {
		t.Fatalf("count orders failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("user 2 orders want 1 got %d", count)
	}
}

func TestCreateBatchEmptyIsNoop(t *testing.T) {
	db := newOrderRepoTestDB(t)
	repo := NewOrderRepository(db)

	if err := repo.CreateBatch(nil); err != nil {
		t.Fatalf("empty batch should succeed, got %v", err)
	}
}
