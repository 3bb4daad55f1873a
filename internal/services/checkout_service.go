package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"golang-storefront-gateway/internal/checkout"
	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/internal/pricing"
	"golang-storefront-gateway/pkg/auth"
	"golang-storefront-gateway/pkg/cache"
	"golang-storefront-gateway/pkg/messaging"
)

var (
	// ErrEmptyCart gates wizard entry and order submission alike.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrNoActiveCheckout means the user has no wizard draft to act on.
	ErrNoActiveCheckout = errors.New("no active checkout")
)

type CheckoutService struct {
	wizards     *checkout.Store
	cartAPI     CartAPI
	orderAPI    OrderAPI
	invalidator CacheInvalidator
	producer    EventPublisher
	eventsTopic string
}

func NewCheckoutService(wizards *checkout.Store, cartAPI CartAPI, orderAPI OrderAPI, invalidator CacheInvalidator, producer EventPublisher, eventsTopic string) *CheckoutService {
	return &CheckoutService{
		wizards:     wizards,
		cartAPI:     cartAPI,
		orderAPI:    orderAPI,
		invalidator: invalidator,
		producer:    producer,
		eventsTopic: eventsTopic,
	}
}

// CheckoutView is the wizard state plus the cart summary panel the checkout
// page renders alongside every step.
type CheckoutView struct {
	checkout.State
	Cart    *models.CartSnapshot `json:"cart"`
	Summary pricing.Summary      `json:"summary"`
}

// PlaceOrderResult tells the caller where to go after a successful submit.
type PlaceOrderResult struct {
	OrderID    string `json:"order_id"`
	RedirectTo string `json:"redirect_to"`
}

// Start opens (or resumes) the user's checkout wizard. An empty cart refuses
// entry; authentication was already enforced by the middleware that built the
// session.
func (s *CheckoutService) Start(ctx context.Context, session auth.Session) (*CheckoutView, error) {
	snapshot, err := s.cartAPI.GetCart(ctx, session.Token)
	if err != nil {
		return nil, err
	}
	if snapshot.IsEmpty() {
		return nil, ErrEmptyCart
	}

	wizard := s.wizards.Start(session.UserID)
	return s.buildView(wizard, snapshot), nil
}

// GetState re-fetches the cart and returns the current wizard view.
func (s *CheckoutService) GetState(ctx context.Context, session auth.Session) (*CheckoutView, error) {
	wizard, ok := s.wizards.Get(session.UserID)
	if !ok {
		return nil, ErrNoActiveCheckout
	}

	snapshot, err := s.cartAPI.GetCart(ctx, session.Token)
	if err != nil {
		return nil, err
	}
	return s.buildView(wizard, snapshot), nil
}

func (s *CheckoutService) SubmitShipping(session auth.Session, addr models.ShippingAddress) (checkout.State, error) {
	wizard, ok := s.wizards.Get(session.UserID)
	if !ok {
		return checkout.State{}, ErrNoActiveCheckout
	}
	if err := wizard.SubmitShipping(addr); err != nil {
		return wizard.State(), err
	}
	return wizard.State(), nil
}

func (s *CheckoutService) SubmitPayment(session auth.Session, sel models.PaymentSelection) (checkout.State, error) {
	wizard, ok := s.wizards.Get(session.UserID)
	if !ok {
		return checkout.State{}, ErrNoActiveCheckout
	}
	if err := wizard.SubmitPayment(sel); err != nil {
		return wizard.State(), err
	}
	return wizard.State(), nil
}

func (s *CheckoutService) Back(session auth.Session) (checkout.State, error) {
	wizard, ok := s.wizards.Get(session.UserID)
	if !ok {
		return checkout.State{}, ErrNoActiveCheckout
	}
	wizard.Back()
	return wizard.State(), nil
}

// Cancel discards the draft without confirmation.
func (s *CheckoutService) Cancel(session auth.Session) {
	s.wizards.Discard(session.UserID)
}

// PlaceOrder submits the order built from the wizard draft and the cart
// snapshot captured now, at press time. While the request is in flight the
// wizard rejects further submits; on failure it stays on the review step with
// the draft intact and the user retries manually.
func (s *CheckoutService) PlaceOrder(ctx context.Context, session auth.Session) (*PlaceOrderResult, error) {
	wizard, ok := s.wizards.Get(session.UserID)
	if !ok {
		return nil, ErrNoActiveCheckout
	}

	addr, method, err := wizard.BeginSubmission()
	if err != nil {
		return nil, err
	}

	snapshot, err := s.cartAPI.GetCart(ctx, session.Token)
	if err != nil {
		wizard.FailSubmission(err.Error())
		return nil, err
	}
	if snapshot.IsEmpty() {
		wizard.FailSubmission(ErrEmptyCart.Error())
		return nil, ErrEmptyCart
	}

	items := make([]models.OrderItem, 0, len(snapshot.Lines))
	for _, line := range snapshot.Lines {
		items = append(items, models.OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice,
		})
	}

	resp, err := s.orderAPI.CreateOrder(ctx, session.Token, &models.CreateOrderRequest{
		ShippingAddress: addr,
		PaymentMethod:   method,
		Items:           items,
	})
	if err != nil {
		wizard.FailSubmission(err.Error())
		return nil, err
	}

	wizard.CompleteSubmission(resp.OrderID)

	// The order changed what the cart and order-history reads would return.
	if err := s.invalidator.Invalidate(ctx, cache.MutationOrderPlaced, session.UserID); err != nil {
		log.Printf("Failed to invalidate caches after order %s: %v", resp.OrderID, err)
	}

	summary := pricing.Compute(snapshot.Lines).Rounded()
	event := messaging.OrderPlacedEvent{
		EventID:       uuid.New().String(),
		OrderID:       resp.OrderID,
		UserID:        session.UserID,
		ItemCount:     snapshot.TotalItemCount,
		Total:         summary.Total.StringFixed(2),
		PaymentMethod: string(method),
		PlacedAt:      time.Now().UTC(),
	}
	if err := s.producer.SendMessage(ctx, s.eventsTopic, resp.OrderID, event); err != nil {
		log.Printf("Failed to publish order placed event for %s: %v", resp.OrderID, err)
	}

	return &PlaceOrderResult{
		OrderID:    resp.OrderID,
		RedirectTo: "/orders/" + resp.OrderID,
	}, nil
}

func (s *CheckoutService) buildView(wizard *checkout.Wizard, snapshot *models.CartSnapshot) *CheckoutView {
	return &CheckoutView{
		State:   wizard.State(),
		Cart:    snapshot,
		Summary: pricing.Compute(snapshot.Lines).Rounded(),
	}
}
