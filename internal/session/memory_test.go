package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreSaveAndGet(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	sess := NewSession()
	sess.BindUser(3)
	sess.Cart = []CartLine{{ProductID: 1, Quantity: 2}}
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if loaded.UserID != 3 {
		t.Fatalf("user id want 3 got %d", loaded.UserID)
	}
	if len(loaded.Cart) != 1 || loaded.Cart[0].ProductID != 1 {
		t.Fatalf("cart not restored: %+v", loaded.Cart)
	}

	// 读取结果是副本，修改不应影响存储内容
	loaded.Cart[0].Quantity = 99
	again, err := store.Get(ctx, sess.ID)
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if again.Cart[0].Quantity != 2 {
		t.Fatalf("stored cart should be isolated from returned copy, got qty %d", again.Cart[0].Quantity)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)
	ctx := context.Background()

	sess := NewSession()
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	time.Sleep(30 * time.Millisecond)
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expired session want ErrNotFound got %v", err)
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	sess := NewSession()
	if err := store.Save(ctx, sess); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Delete(ctx, sess.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted session want ErrNotFound got %v", err)
	}
}

func TestMemoryStoreUnknownID(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	if _, err := store.Get(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id want ErrNotFound got %v", err)
	}
}
