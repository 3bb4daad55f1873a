package cache

import (
	"context"
	"strings"
)

// Mutation names every write path the storefront performs against the
// upstream services. Each one declares the cached reads it stales in the
// dependency table below, so invalidation lives in one place instead of being
// scattered through handlers.
type Mutation string

const (
	MutationCartChanged        Mutation = "cart_changed"
	MutationOrderPlaced        Mutation = "order_placed"
	MutationOrderStatusChanged Mutation = "order_status_changed"
	MutationProductChanged     Mutation = "product_changed"
	MutationReviewPosted       Mutation = "review_posted"
	MutationAddressChanged     Mutation = "address_changed"
	MutationProfileChanged     Mutation = "profile_changed"
)

// Key patterns per mutation. "{scope}" is the user ID for user-scoped reads
// and the product/order ID for entity-scoped ones. Patterns ending in "*"
// sweep paginated listings.
var dependencies = map[Mutation][]string{
	MutationCartChanged:        {"cart:{scope}"},
	MutationOrderPlaced:        {"cart:{scope}", "orders:{scope}:*"},
	MutationOrderStatusChanged: {"order:{scope}:*", "orders:*"},
	MutationProductChanged:     {"product:{scope}", "products:*"},
	MutationReviewPosted:       {"reviews:{scope}:*"},
	MutationAddressChanged:     {"addresses:{scope}"},
	MutationProfileChanged:     {"profile:{scope}"},
}

// KeysFor expands a mutation into the concrete keys and patterns to purge.
func KeysFor(m Mutation, scope string) []string {
	patterns := dependencies[m]
	keys := make([]string, 0, len(patterns))
	for _, p := range patterns {
		keys = append(keys, strings.ReplaceAll(p, "{scope}", scope))
	}
	return keys
}

// Invalidator purges the cached reads a mutation stales.
type Invalidator struct {
	cache *RedisCache
}

func NewInvalidator(cache *RedisCache) *Invalidator {
	return &Invalidator{cache: cache}
}

func (i *Invalidator) Invalidate(ctx context.Context, m Mutation, scope string) error {
	for _, key := range KeysFor(m, scope) {
		var err error
		if strings.Contains(key, "*") {
			err = i.cache.DeletePattern(ctx, key)
		} else {
			err = i.cache.Delete(ctx, key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
