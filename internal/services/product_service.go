package services

import (
	"context"
	"fmt"
	"time"

	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/pkg/auth"
	"golang-storefront-gateway/pkg/cache"
)

type ProductService struct {
	catalogAPI  CatalogAPI
	cache       Cache
	invalidator CacheInvalidator
}

func NewProductService(catalogAPI CatalogAPI, cache Cache, invalidator CacheInvalidator) *ProductService {
	return &ProductService{
		catalogAPI:  catalogAPI,
		cache:       cache,
		invalidator: invalidator,
	}
}

func normalizeFilter(filter *models.ProductFilter) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100 // Maximum limit
	}
}

// GetProducts is the storefront browse listing: filters plus pagination,
// cached per filter combination.
func (s *ProductService) GetProducts(ctx context.Context, filter models.ProductFilter) (*models.ProductPage, error) {
	normalizeFilter(&filter)

	// Try cache first
	cacheKey := fmt.Sprintf("products:%s:%s:%s:%s:%d:%d",
		filter.Category, filter.Search, filter.MinPrice, filter.MaxPrice, filter.Page, filter.Limit)
	var cached models.ProductPage
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	page, err := s.catalogAPI.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	// Cache for 15 minutes
	s.cache.Set(ctx, cacheKey, page, time.Minute*15)

	return page, nil
}

func (s *ProductService) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	// Try cache first
	cacheKey := "product:" + productID
	var cached models.Product
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	product, err := s.catalogAPI.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	// Cache for 30 minutes
	s.cache.Set(ctx, cacheKey, product, time.Minute*30)

	return product, nil
}

// Admin console operations. The Catalog Service owns validation and storage;
// the gateway forwards and keeps its read cache honest.

func (s *ProductService) CreateProduct(ctx context.Context, session auth.Session, product *models.Product) (*models.Product, error) {
	created, err := s.catalogAPI.CreateProduct(ctx, session.Token, product)
	if err != nil {
		return nil, err
	}
	s.invalidator.Invalidate(ctx, cache.MutationProductChanged, created.ID)
	return created, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, session auth.Session, productID string, product *models.Product) (*models.Product, error) {
	updated, err := s.catalogAPI.UpdateProduct(ctx, session.Token, productID, product)
	if err != nil {
		return nil, err
	}
	s.invalidator.Invalidate(ctx, cache.MutationProductChanged, productID)
	return updated, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, session auth.Session, productID string) error {
	if err := s.catalogAPI.DeleteProduct(ctx, session.Token, productID); err != nil {
		return err
	}
	return s.invalidator.Invalidate(ctx, cache.MutationProductChanged, productID)
}
