package handlers

import (
	"context"

	"golang-storefront-gateway/internal/services"
	"golang-storefront-gateway/pkg/auth"
)

// CartServiceInterface defines the contract for cart service
type CartServiceInterface interface {
	GetCart(ctx context.Context, session auth.Session) (*services.CartView, error)
	AddItem(ctx context.Context, session auth.Session, productID string, quantity int) (*services.CartView, error)
	UpdateItem(ctx context.Context, session auth.Session, productID string, quantity int) (*services.CartView, error)
	RemoveItem(ctx context.Context, session auth.Session, productID string) (*services.CartView, error)
	ClearCart(ctx context.Context, session auth.Session) error
}
