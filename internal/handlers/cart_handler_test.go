package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"golang-storefront-gateway/internal/clients"
	"golang-storefront-gateway/internal/middleware"
	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/internal/pricing"
	"golang-storefront-gateway/internal/services"
	"golang-storefront-gateway/pkg/auth"
)

type fakeCartService struct {
	view *services.CartView
	err  error
}

func (f *fakeCartService) GetCart(ctx context.Context, session auth.Session) (*services.CartView, error) {
	return f.view, f.err
}

func (f *fakeCartService) AddItem(ctx context.Context, session auth.Session, productID string, quantity int) (*services.CartView, error) {
	return f.view, f.err
}

func (f *fakeCartService) UpdateItem(ctx context.Context, session auth.Session, productID string, quantity int) (*services.CartView, error) {
	return f.view, f.err
}

func (f *fakeCartService) RemoveItem(ctx context.Context, session auth.Session, productID string) (*services.CartView, error) {
	return f.view, f.err
}

func (f *fakeCartService) ClearCart(ctx context.Context, session auth.Session) error {
	return f.err
}

func newCartRouter(t *testing.T, svc CartServiceInterface) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := auth.NewJWTManager("test-secret", 1, 7)
	token, err := jwtManager.GenerateToken("u1", "customer", "u1@example.com")
	require.NoError(t, err)

	router := gin.New()
	api := router.Group("/api/v1")
	NewCartHandler(svc).RegisterRoutes(api, middleware.NewAuthMiddleware(jwtManager))
	return router, token
}

func cartViewFixture() *services.CartView {
	snapshot := &models.CartSnapshot{
		Lines: []models.CartLine{
			{ProductID: "p1", ProductName: "Mug", UnitPrice: decimal.RequireFromString("24.99"), Quantity: 3, AvailableStock: 10},
		},
		TotalItemCount: 3,
	}
	return &services.CartView{
		Cart:        snapshot,
		Summary:     pricing.Compute(snapshot.Lines).Rounded(),
		CanCheckout: true,
	}
}

func TestCartGetRequiresAuth(t *testing.T) {
	router, _ := newCartRouter(t, &fakeCartService{})

	rec := doJSON(router, http.MethodGet, "/api/v1/cart", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartGetReturnsSummary(t *testing.T) {
	router, token := newCartRouter(t, &fakeCartService{view: cartViewFixture()})

	rec := doJSON(router, http.MethodGet, "/api/v1/cart", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"subtotal":"74.97"`)
	require.Contains(t, rec.Body.String(), `"can_checkout":true`)
}

func TestCartAddItemRejectsZeroQuantity(t *testing.T) {
	router, token := newCartRouter(t, &fakeCartService{view: cartViewFixture()})

	rec := doJSON(router, http.MethodPost, "/api/v1/cart/items", token, `{"product_id":"p1","quantity":0}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartUpdateMissingProductNotFound(t *testing.T) {
	router, token := newCartRouter(t, &fakeCartService{
		err: &clients.APIError{Kind: clients.KindNotFound, Message: "product not in cart"},
	})

	rec := doJSON(router, http.MethodPut, "/api/v1/cart/items/p9", token, `{"quantity":2}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartClear(t *testing.T) {
	router, token := newCartRouter(t, &fakeCartService{})

	rec := doJSON(router, http.MethodDelete, "/api/v1/cart", token, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
}
