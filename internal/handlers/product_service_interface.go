package handlers

import (
	"context"

	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/pkg/auth"
)

// ProductServiceInterface defines the contract for product service
type ProductServiceInterface interface {
	GetProducts(ctx context.Context, filter models.ProductFilter) (*models.ProductPage, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	CreateProduct(ctx context.Context, session auth.Session, product *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, session auth.Session, productID string, product *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, session auth.Session, productID string) error
}
