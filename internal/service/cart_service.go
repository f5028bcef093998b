package service

import (
	"github.com/tokri-shop/internal/models"
	"github.com/tokri-shop/internal/repository"
	"github.com/tokri-shop/internal/session"
)

// CartService 购物车服务（购物车保存在会话中，不落库）
type CartService struct {
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(productRepo repository.ProductRepository) *CartService {
	return &CartService{productRepo: productRepo}
}

// CartItemView 购物车行视图
type CartItemView struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Subtotal models.Money   `json:"subtotal"`
}

// CartView 购物车视图
type CartView struct {
	Items []CartItemView `json:"items"`
	Total models.Money   `json:"total"`
	Empty bool           `json:"empty"`
}

// AddLine 追加购物车行（同一商品重复添加会产生多行）
func (s *CartService) AddLine(sess *session.Session, productID uint, quantity int) error {
	if !sess.Authenticated() {
		return ErrUnauthenticated
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return FieldErrors{{Field: "quantity", Message: "数量必须大于 0"}}
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}

	sess.Cart = append(sess.Cart, session.CartLine{ProductID: productID, Quantity: quantity})
	return nil
}

// ReplaceWithSingle 立即购买：整个购物车替换为单行
func (s *CartService) ReplaceWithSingle(sess *session.Session, productID uint, quantity int) error {
	if !sess.Authenticated() {
		return ErrUnauthenticated
	}
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return FieldErrors{{Field: "quantity", Message: "数量必须大于 0"}}
	}

	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrNotFound
	}

	sess.Cart = []session.CartLine{{ProductID: productID, Quantity: quantity}}
	return nil
}

// View 购物车视图（已下架商品的行静默跳过，不计入合计）
func (s *CartService) View(sess *session.Session) (*CartView, error) {
	view := &CartView{
		Items: []CartItemView{},
		Total: models.ZeroMoney(),
	}
	if sess == nil || len(sess.Cart) == 0 {
		view.Empty = true
		return view, nil
	}

	ids := make([]uint, 0, len(sess.Cart))
	for _, line := range sess.Cart {
		ids = append(ids, line.ProductID)
	}
	products, err := s.productRepo.ListByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	for _, line := range sess.Cart {
		product, ok := byID[line.ProductID]
		if !ok {
			continue
		}
		subtotal := product.Price.MulQuantity(line.Quantity)
		view.Items = append(view.Items, CartItemView{
			Product:  product,
			Quantity: line.Quantity,
			Subtotal: subtotal,
		})
		view.Total = view.Total.AddMoney(subtotal)
	}

	view.Empty = len(view.Items) == 0
	return view, nil
}

// Clear 清空购物车
func (s *CartService) Clear(sess *session.Session) {
	if sess == nil {
		return
	}
	sess.Cart = []session.CartLine{}
}
