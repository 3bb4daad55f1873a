package services

import (
	"context"
	"fmt"
	"time"

	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/internal/pricing"
	"golang-storefront-gateway/pkg/auth"
	"golang-storefront-gateway/pkg/cache"
)

// Cart snapshots go stale quickly, so they get a short TTL on top of the
// explicit invalidation every mutation performs.
const cartCacheTTL = 30 * time.Second

type CartService struct {
	cartAPI     CartAPI
	cache       Cache
	invalidator CacheInvalidator
}

func NewCartService(cartAPI CartAPI, cache Cache, invalidator CacheInvalidator) *CartService {
	return &CartService{
		cartAPI:     cartAPI,
		cache:       cache,
		invalidator: invalidator,
	}
}

// CartView is the cart page payload: the snapshot plus the locally derived
// pricing summary. The summary is display-only; the Order Service computes
// the authoritative charge.
type CartView struct {
	Cart        *models.CartSnapshot `json:"cart"`
	Summary     pricing.Summary      `json:"summary"`
	CanCheckout bool                 `json:"can_checkout"`
}

func buildCartView(snapshot *models.CartSnapshot) *CartView {
	return &CartView{
		Cart:        snapshot,
		Summary:     pricing.Compute(snapshot.Lines).Rounded(),
		CanCheckout: !snapshot.IsEmpty(),
	}
}

func cartCacheKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

// GetCart returns the session user's cart with its pricing summary. A fetch
// failure is returned whole; no stale snapshot is served in its place.
func (s *CartService) GetCart(ctx context.Context, session auth.Session) (*CartView, error) {
	// Try cache first
	var cached models.CartSnapshot
	if err := s.cache.Get(ctx, cartCacheKey(session.UserID), &cached); err == nil {
		return buildCartView(&cached), nil
	}

	snapshot, err := s.cartAPI.GetCart(ctx, session.Token)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, cartCacheKey(session.UserID), snapshot, cartCacheTTL)
	return buildCartView(snapshot), nil
}

func (s *CartService) AddItem(ctx context.Context, session auth.Session, productID string, quantity int) (*CartView, error) {
	snapshot, err := s.cartAPI.AddItem(ctx, session.Token, productID, quantity)
	if err != nil {
		return nil, err
	}
	return s.afterMutation(ctx, session.UserID, snapshot), nil
}

func (s *CartService) UpdateItem(ctx context.Context, session auth.Session, productID string, quantity int) (*CartView, error) {
	snapshot, err := s.cartAPI.UpdateItem(ctx, session.Token, productID, quantity)
	if err != nil {
		return nil, err
	}
	return s.afterMutation(ctx, session.UserID, snapshot), nil
}

func (s *CartService) RemoveItem(ctx context.Context, session auth.Session, productID string) (*CartView, error) {
	snapshot, err := s.cartAPI.RemoveItem(ctx, session.Token, productID)
	if err != nil {
		return nil, err
	}
	return s.afterMutation(ctx, session.UserID, snapshot), nil
}

func (s *CartService) ClearCart(ctx context.Context, session auth.Session) error {
	if err := s.cartAPI.ClearCart(ctx, session.Token); err != nil {
		return err
	}
	s.invalidator.Invalidate(ctx, cache.MutationCartChanged, session.UserID)
	return nil
}

// afterMutation applies the declared invalidation for a cart change and
// re-primes the cache with the snapshot the Cart Service returned.
func (s *CartService) afterMutation(ctx context.Context, userID string, snapshot *models.CartSnapshot) *CartView {
	s.invalidator.Invalidate(ctx, cache.MutationCartChanged, userID)
	s.cache.Set(ctx, cartCacheKey(userID), snapshot, cartCacheTTL)
	return buildCartView(snapshot)
}
