package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang-storefront-gateway/internal/models"
)

// OrderClient talks to the Order Service, which owns order lifecycle and the
// authoritative charge. Idempotency of creation is an upstream concern; the
// gateway only prevents duplicate in-flight submits per wizard.
type OrderClient struct {
	client
}

func NewOrderClient(baseURL string, timeout time.Duration) *OrderClient {
	return &OrderClient{client: newClient(baseURL, timeout)}
}

func (c *OrderClient) CreateOrder(ctx context.Context, token string, req *models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	var resp models.CreateOrderResponse
	if err := c.do(ctx, http.MethodPost, "/orders", token, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *OrderClient) ListOrders(ctx context.Context, token string, page, limit int) (*models.OrderPage, error) {
	var resp models.OrderPage
	path := fmt.Sprintf("/orders?page=%d&limit=%d", page, limit)
	if err := c.do(ctx, http.MethodGet, path, token, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *OrderClient) GetOrder(ctx context.Context, token, orderID string) (*models.Order, error) {
	var order models.Order
	path := fmt.Sprintf("/orders/%s", url.PathEscape(orderID))
	if err := c.do(ctx, http.MethodGet, path, token, nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateOrderStatus is the admin console operation; the Order Service rejects
// transitions its own state machine does not allow.
func (c *OrderClient) UpdateOrderStatus(ctx context.Context, token, orderID, status string) (*models.Order, error) {
	var order models.Order
	path := fmt.Sprintf("/orders/%s/status", url.PathEscape(orderID))
	if err := c.do(ctx, http.MethodPut, path, token, updateStatusRequest{Status: status}, &order); err != nil {
		return nil, err
	}
	return &order, nil
}
