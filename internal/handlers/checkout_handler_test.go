package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"golang-storefront-gateway/internal/checkout"
	"golang-storefront-gateway/internal/clients"
	"golang-storefront-gateway/internal/middleware"
	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/internal/services"
	"golang-storefront-gateway/pkg/auth"
)

type fakeCheckoutService struct {
	view      *services.CheckoutView
	state     checkout.State
	result    *services.PlaceOrderResult
	err       error
	cancelled []string
}

func (f *fakeCheckoutService) Start(ctx context.Context, session auth.Session) (*services.CheckoutView, error) {
	return f.view, f.err
}

func (f *fakeCheckoutService) GetState(ctx context.Context, session auth.Session) (*services.CheckoutView, error) {
	return f.view, f.err
}

func (f *fakeCheckoutService) SubmitShipping(session auth.Session, addr models.ShippingAddress) (checkout.State, error) {
	return f.state, f.err
}

func (f *fakeCheckoutService) SubmitPayment(session auth.Session, sel models.PaymentSelection) (checkout.State, error) {
	return f.state, f.err
}

func (f *fakeCheckoutService) Back(session auth.Session) (checkout.State, error) {
	return f.state, f.err
}

func (f *fakeCheckoutService) Cancel(session auth.Session) {
	f.cancelled = append(f.cancelled, session.UserID)
}

func (f *fakeCheckoutService) PlaceOrder(ctx context.Context, session auth.Session) (*services.PlaceOrderResult, error) {
	return f.result, f.err
}

// newCheckoutRouter wires the handler behind the real auth middleware and
// returns the router plus a valid bearer token.
func newCheckoutRouter(t *testing.T, svc CheckoutServiceInterface) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtManager := auth.NewJWTManager("test-secret", 1, 7)
	token, err := jwtManager.GenerateToken("u1", "customer", "u1@example.com")
	require.NoError(t, err)

	router := gin.New()
	api := router.Group("/api/v1")
	NewCheckoutHandler(svc).RegisterRoutes(api, middleware.NewAuthMiddleware(jwtManager))
	return router, token
}

func doJSON(router *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCheckoutStartRequiresAuth(t *testing.T) {
	router, _ := newCheckoutRouter(t, &fakeCheckoutService{})

	rec := doJSON(router, http.MethodPost, "/api/v1/checkout", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckoutStartEmptyCartConflict(t *testing.T) {
	router, token := newCheckoutRouter(t, &fakeCheckoutService{err: services.ErrEmptyCart})

	rec := doJSON(router, http.MethodPost, "/api/v1/checkout", token, "")
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Contains(t, rec.Body.String(), "Cart is empty")
}

func TestCheckoutStartReturnsShippingStep(t *testing.T) {
	svc := &fakeCheckoutService{
		view: &services.CheckoutView{
			State: checkout.State{
				UserID:     "u1",
				ActiveStep: checkout.StepShipping,
				StepName:   checkout.StepShipping.String(),
			},
		},
	}
	router, token := newCheckoutRouter(t, svc)

	rec := doJSON(router, http.MethodPost, "/api/v1/checkout", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"step_name":"shipping"`)
}

func TestCheckoutGetStateNotFound(t *testing.T) {
	router, token := newCheckoutRouter(t, &fakeCheckoutService{err: services.ErrNoActiveCheckout})

	rec := doJSON(router, http.MethodGet, "/api/v1/checkout", token, "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckoutSubmitShippingBadJSON(t *testing.T) {
	router, token := newCheckoutRouter(t, &fakeCheckoutService{})

	rec := doJSON(router, http.MethodPut, "/api/v1/checkout/shipping", token, "{not json")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutSubmitShippingMissingFields(t *testing.T) {
	router, token := newCheckoutRouter(t, &fakeCheckoutService{err: checkout.ErrMissingFields})

	rec := doJSON(router, http.MethodPut, "/api/v1/checkout/shipping", token, `{"full_name":"Ada"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutSubmitPaymentUnknownMethod(t *testing.T) {
	router, token := newCheckoutRouter(t, &fakeCheckoutService{err: checkout.ErrUnknownMethod})

	rec := doJSON(router, http.MethodPut, "/api/v1/checkout/payment", token, `{"method":"bitcoin"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutPlaceOrderSuccess(t *testing.T) {
	svc := &fakeCheckoutService{
		result: &services.PlaceOrderResult{OrderID: "ord-1", RedirectTo: "/orders/ord-1"},
	}
	router, token := newCheckoutRouter(t, svc)

	rec := doJSON(router, http.MethodPost, "/api/v1/checkout/order", token, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Contains(t, rec.Body.String(), `"redirect_to":"/orders/ord-1"`)
}

func TestCheckoutPlaceOrderDuplicateSubmitConflict(t *testing.T) {
	router, token := newCheckoutRouter(t, &fakeCheckoutService{err: checkout.ErrSubmissionInFlight})

	rec := doJSON(router, http.MethodPost, "/api/v1/checkout/order", token, "")
	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestCheckoutPlaceOrderUpstreamFailureRetryable(t *testing.T) {
	router, token := newCheckoutRouter(t, &fakeCheckoutService{
		err: &clients.APIError{Kind: clients.KindNetwork, Message: "connection refused"},
	})

	rec := doJSON(router, http.MethodPost, "/api/v1/checkout/order", token, "")
	require.Equal(t, http.StatusBadGateway, rec.Code)
	require.Contains(t, rec.Body.String(), `"retryable":true`)
}

func TestCheckoutCancel(t *testing.T) {
	svc := &fakeCheckoutService{}
	router, token := newCheckoutRouter(t, svc)

	rec := doJSON(router, http.MethodDelete, "/api/v1/checkout", token, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, []string{"u1"}, svc.cancelled)
}
