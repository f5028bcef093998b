package service

import (
	"github.com/tokri-shop/internal/models"
	"github.com/tokri-shop/internal/repository"
)

// CatalogService 商品目录服务
type CatalogService struct {
	productRepo repository.ProductRepository
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(productRepo repository.ProductRepository) *CatalogService {
	return &CatalogService{productRepo: productRepo}
}

// List 商品列表（目录为空视为异常状态）
func (s *CatalogService) List() ([]models.Product, error) {
	products, err := s.productRepo.List()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrCatalogEmpty
	}
	return products, nil
}

// Get 商品详情
func (s *CatalogService) Get(id uint) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrNotFound
	}
	return product, nil
}
