package handlers

import (
	"context"

	"golang-storefront-gateway/internal/checkout"
	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/internal/services"
	"golang-storefront-gateway/pkg/auth"
)

// CheckoutServiceInterface defines the contract for the checkout wizard service
type CheckoutServiceInterface interface {
	Start(ctx context.Context, session auth.Session) (*services.CheckoutView, error)
	GetState(ctx context.Context, session auth.Session) (*services.CheckoutView, error)
	SubmitShipping(session auth.Session, addr models.ShippingAddress) (checkout.State, error)
	SubmitPayment(session auth.Session, sel models.PaymentSelection) (checkout.State, error)
	Back(session auth.Session) (checkout.State, error)
	Cancel(session auth.Session)
	PlaceOrder(ctx context.Context, session auth.Session) (*services.PlaceOrderResult, error)
}
