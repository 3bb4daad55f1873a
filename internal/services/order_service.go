package services

import (
	"context"
	"fmt"
	"time"

	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/pkg/auth"
	"golang-storefront-gateway/pkg/cache"
)

type OrderService struct {
	orderAPI    OrderAPI
	cache       Cache
	invalidator CacheInvalidator
}

func NewOrderService(orderAPI OrderAPI, cache Cache, invalidator CacheInvalidator) *OrderService {
	return &OrderService{
		orderAPI:    orderAPI,
		cache:       cache,
		invalidator: invalidator,
	}
}

// GetOrders returns a page of the session user's order history.
func (s *OrderService) GetOrders(ctx context.Context, session auth.Session, page, limit int) (*models.OrderPage, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	// Try cache first
	cacheKey := fmt.Sprintf("orders:%s:%d:%d", session.UserID, page, limit)
	var cached models.OrderPage
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	orders, err := s.orderAPI.ListOrders(ctx, session.Token, page, limit)
	if err != nil {
		return nil, err
	}

	// Cache for 5 minutes; order placement invalidates orders:{user}:* anyway.
	s.cache.Set(ctx, cacheKey, orders, time.Minute*5)

	return orders, nil
}

func (s *OrderService) GetOrder(ctx context.Context, session auth.Session, orderID string) (*models.Order, error) {
	// Keyed by order and user so one user's cached read never serves another;
	// ownership is enforced upstream per token.
	cacheKey := fmt.Sprintf("order:%s:%s", orderID, session.UserID)
	var cached models.Order
	if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
		return &cached, nil
	}

	order, err := s.orderAPI.GetOrder(ctx, session.Token, orderID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cacheKey, order, time.Minute*5)

	return order, nil
}

// UpdateOrderStatus is the admin console operation; the Order Service owns
// the status state machine and rejects invalid transitions.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, session auth.Session, orderID, status string) (*models.Order, error) {
	order, err := s.orderAPI.UpdateOrderStatus(ctx, session.Token, orderID, status)
	if err != nil {
		return nil, err
	}
	s.invalidator.Invalidate(ctx, cache.MutationOrderStatusChanged, orderID)
	return order, nil
}
