package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang-storefront-gateway/internal/models"
)

// CartClient talks to the Cart Service, the owner of cart contents and the
// quantity-vs-stock invariant. The gateway never edits a snapshot locally;
// each mutation returns the fresh cart.
type CartClient struct {
	client
}

func NewCartClient(baseURL string, timeout time.Duration) *CartClient {
	return &CartClient{client: newClient(baseURL, timeout)}
}

func (c *CartClient) GetCart(ctx context.Context, token string) (*models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	if err := c.do(ctx, http.MethodGet, "/cart", token, nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

func (c *CartClient) AddItem(ctx context.Context, token, productID string, quantity int) (*models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	req := addItemRequest{ProductID: productID, Quantity: quantity}
	if err := c.do(ctx, http.MethodPost, "/cart/items", token, req, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (c *CartClient) UpdateItem(ctx context.Context, token, productID string, quantity int) (*models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	path := fmt.Sprintf("/cart/items/%s", url.PathEscape(productID))
	if err := c.do(ctx, http.MethodPut, path, token, updateItemRequest{Quantity: quantity}, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *CartClient) RemoveItem(ctx context.Context, token, productID string) (*models.CartSnapshot, error) {
	var snapshot models.CartSnapshot
	path := fmt.Sprintf("/cart/items/%s", url.PathEscape(productID))
	if err := c.do(ctx, http.MethodDelete, path, token, nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

func (c *CartClient) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodDelete, "/cart", token, nil, nil)
}
