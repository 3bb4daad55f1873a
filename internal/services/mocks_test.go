package services

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/pkg/cache"
)

// fakeCartAPI serves a programmable snapshot and counts fetches.
type fakeCartAPI struct {
	snapshot  *models.CartSnapshot
	err       error
	getCalls  int
	lastToken string
}

func (f *fakeCartAPI) GetCart(ctx context.Context, token string) (*models.CartSnapshot, error) {
	f.getCalls++
	f.lastToken = token
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func (f *fakeCartAPI) AddItem(ctx context.Context, token, productID string, quantity int) (*models.CartSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func (f *fakeCartAPI) UpdateItem(ctx context.Context, token, productID string, quantity int) (*models.CartSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func (f *fakeCartAPI) RemoveItem(ctx context.Context, token, productID string) (*models.CartSnapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.snapshot, nil
}

func (f *fakeCartAPI) ClearCart(ctx context.Context, token string) error {
	return f.err
}

// fakeOrderAPI records the order-creation request it received.
type fakeOrderAPI struct {
	createErr   error
	orderID     string
	createCalls int
	lastRequest *models.CreateOrderRequest
}

func (f *fakeOrderAPI) CreateOrder(ctx context.Context, token string, req *models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	f.createCalls++
	f.lastRequest = req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &models.CreateOrderResponse{OrderID: f.orderID}, nil
}

func (f *fakeOrderAPI) ListOrders(ctx context.Context, token string, page, limit int) (*models.OrderPage, error) {
	return &models.OrderPage{}, nil
}

func (f *fakeOrderAPI) GetOrder(ctx context.Context, token, orderID string) (*models.Order, error) {
	return &models.Order{ID: orderID}, nil
}

func (f *fakeOrderAPI) UpdateOrderStatus(ctx context.Context, token, orderID, status string) (*models.Order, error) {
	return &models.Order{ID: orderID, Status: status}, nil
}

// fakeCache is an in-memory Cache backed by JSON, matching the Redis wrapper.
type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) Get(ctx context.Context, key string, dest interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	raw, ok := f.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = raw
	return nil
}

func (f *fakeCache) Delete(ctx context.Context, keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, k := range keys {
		delete(f.data, k)
	}
	return nil
}

// fakeInvalidator records which mutations were invalidated.
type fakeInvalidator struct {
	mutations []cache.Mutation
	scopes    []string
}

func (f *fakeInvalidator) Invalidate(ctx context.Context, m cache.Mutation, scope string) error {
	f.mutations = append(f.mutations, m)
	f.scopes = append(f.scopes, scope)
	return nil
}

// fakePublisher records published events.
type fakePublisher struct {
	topics []string
	keys   []string
	values []interface{}
}

func (f *fakePublisher) SendMessage(ctx context.Context, topic, key string, value interface{}) error {
	f.topics = append(f.topics, topic)
	f.keys = append(f.keys, key)
	f.values = append(f.values, value)
	return nil
}
