package service

import (
	"github.com/tokri-shop/internal/logger"
	"github.com/tokri-shop/internal/models"
	"github.com/tokri-shop/internal/repository"
	"github.com/tokri-shop/internal/session"
)

// CheckoutService 结算服务
type CheckoutService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository) *CheckoutService {
	return &CheckoutService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
	}
}

// OrderDetail 订单视图（商品价格按当前价实时计算）
type OrderDetail struct {
	Order    models.Order    `json:"order"`
	Product  *models.Product `json:"product,omitempty"`
	Subtotal models.Money    `json:"subtotal"`
}

// Checkout 结算：每个购物车行生成一条订单，整体事务提交
// 成功后由调用方清空购物车并保存会话
func (s *CheckoutService) Checkout(userID uint, sess *session.Session, form CheckoutForm) ([]models.Order, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	if sess == nil || len(sess.Cart) == 0 {
		return nil, ErrEmptyCart
	}
	if err := ValidateCheckoutForm(form); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(sess.Cart))
	for _, line := range sess.Cart {
		orders = append(orders, models.Order{
			UserID:    userID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Address:   form.Address,
			Email:     NormalizeEmail(form.Email),
			Phone:     form.Phone,
		})
	}

	if err := s.orderRepo.CreateBatch(orders); err != nil {
		logger.Errorw("checkout_commit_failed", "user_id", userID, "lines", len(orders), "error", err)
		return nil, err
	}

	logger.Infow("checkout_committed", "user_id", userID, "orders", len(orders))
	return orders, nil
}

// ListOrders 用户订单列表（金额按当前商品价格计算）
func (s *CheckoutService) ListOrders(userID uint) ([]OrderDetail, error) {
	if userID == 0 {
		return nil, ErrUnauthenticated
	}
	orders, err := s.orderRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return []OrderDetail{}, nil
	}

	ids := make([]uint, 0, len(orders))
	for _, order := range orders {
		ids = append(ids, order.ProductID)
	}
	products, err := s.productRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	details := make([]OrderDetail, 0, len(orders))
	for _, order := range orders {
		detail := OrderDetail{
			Order:    order,
			Subtotal: models.ZeroMoney(),
		}
		if product, ok := byID[order.ProductID]; ok {
			p := product
			detail.Product = &p
			detail.Subtotal = product.Price.MulQuantity(order.Quantity)
		}
		details = append(details, detail)
	}
	return details, nil
}
