package services

import (
	"context"
	"time"

	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/pkg/cache"
)

// Upstream client interfaces consumed by the services. The concrete
// implementations live in internal/clients; tests substitute fakes.

type CartAPI interface {
	GetCart(ctx context.Context, token string) (*models.CartSnapshot, error)
	AddItem(ctx context.Context, token, productID string, quantity int) (*models.CartSnapshot, error)
	UpdateItem(ctx context.Context, token, productID string, quantity int) (*models.CartSnapshot, error)
	RemoveItem(ctx context.Context, token, productID string) (*models.CartSnapshot, error)
	ClearCart(ctx context.Context, token string) error
}

type OrderAPI interface {
	CreateOrder(ctx context.Context, token string, req *models.CreateOrderRequest) (*models.CreateOrderResponse, error)
	ListOrders(ctx context.Context, token string, page, limit int) (*models.OrderPage, error)
	GetOrder(ctx context.Context, token, orderID string) (*models.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID, status string) (*models.Order, error)
}

type CatalogAPI interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) (*models.ProductPage, error)
	GetProduct(ctx context.Context, productID string) (*models.Product, error)
	CreateProduct(ctx context.Context, token string, product *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, token, productID string, product *models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, token, productID string) error
	ListReviews(ctx context.Context, productID string, page, limit int) (*models.ReviewPage, error)
	CreateReview(ctx context.Context, token, productID string, review *models.Review) (*models.Review, error)
}

type AccountAPI interface {
	VerifyCredentials(ctx context.Context, email, password string) (*models.User, error)
	CreateUser(ctx context.Context, name, email, phone, password string) (*models.User, error)
	GetProfile(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, token string, user *models.User) (*models.User, error)
	ListAddresses(ctx context.Context, token string) ([]models.Address, error)
	CreateAddress(ctx context.Context, token string, address *models.Address) (*models.Address, error)
	UpdateAddress(ctx context.Context, token, addressID string, address *models.Address) (*models.Address, error)
	DeleteAddress(ctx context.Context, token, addressID string) error
}

// Cache is the read-cache surface; *cache.RedisCache satisfies it.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// CacheInvalidator is the mutation side of the cache contract;
// *cache.Invalidator satisfies it.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, m cache.Mutation, scope string) error
}

// EventPublisher is satisfied by *messaging.KafkaProducer.
type EventPublisher interface {
	SendMessage(ctx context.Context, topic, key string, value interface{}) error
}
