package clients

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang-storefront-gateway/internal/models"
)

// CatalogClient talks to the Catalog Service: product browse/detail for the
// storefront, product management for the admin console, and product reviews.
type CatalogClient struct {
	client
}

func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	return &CatalogClient{client: newClient(baseURL, timeout)}
}

func (c *CatalogClient) ListProducts(ctx context.Context, filter models.ProductFilter) (*models.ProductPage, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.MinPrice != "" {
		query.Set("min_price", filter.MinPrice)
	}
	if filter.MaxPrice != "" {
		query.Set("max_price", filter.MaxPrice)
	}
	query.Set("page", strconv.Itoa(filter.Page))
	query.Set("limit", strconv.Itoa(filter.Limit))

	var page models.ProductPage
	if err := c.do(ctx, http.MethodGet, "/products?"+query.Encode(), "", nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *CatalogClient) GetProduct(ctx context.Context, productID string) (*models.Product, error) {
	var product models.Product
	path := fmt.Sprintf("/products/%s", url.PathEscape(productID))
	if err := c.do(ctx, http.MethodGet, path, "", nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *CatalogClient) CreateProduct(ctx context.Context, token string, product *models.Product) (*models.Product, error) {
	var created models.Product
	if err := c.do(ctx, http.MethodPost, "/products", token, product, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *CatalogClient) UpdateProduct(ctx context.Context, token, productID string, product *models.Product) (*models.Product, error) {
	var updated models.Product
	path := fmt.Sprintf("/products/%s", url.PathEscape(productID))
	if err := c.do(ctx, http.MethodPut, path, token, product, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *CatalogClient) DeleteProduct(ctx context.Context, token, productID string) error {
	path := fmt.Sprintf("/products/%s", url.PathEscape(productID))
	return c.do(ctx, http.MethodDelete, path, token, nil, nil)
}

func (c *CatalogClient) ListReviews(ctx context.Context, productID string, page, limit int) (*models.ReviewPage, error) {
	var reviews models.ReviewPage
	path := fmt.Sprintf("/products/%s/reviews?page=%d&limit=%d", url.PathEscape(productID), page, limit)
	if err := c.do(ctx, http.MethodGet, path, "", nil, &reviews); err != nil {
		return nil, err
	}
	return &reviews, nil
}

func (c *CatalogClient) CreateReview(ctx context.Context, token, productID string, review *models.Review) (*models.Review, error) {
	var created models.Review
	path := fmt.Sprintf("/products/%s/reviews", url.PathEscape(productID))
	if err := c.do(ctx, http.MethodPost, path, token, review, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
