package checkout

import (
	"errors"
	"sync"

	validatorv10 "github.com/go-playground/validator/v10"

	"golang-storefront-gateway/internal/models"
)

// Step is the wizard position. Steps only advance one at a time; backward
// navigation is always allowed and never loses entered data.
type Step int

const (
	StepShipping Step = iota
	StepPayment
	StepReview
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepPayment:
		return "payment"
	case StepReview:
		return "review"
	default:
		return "unknown"
	}
}

// SubmissionState tracks the order-creation request. InFlight blocks a second
// submit; Failed keeps the wizard on the review step for a manual retry.
type SubmissionState string

const (
	SubmissionIdle      SubmissionState = "idle"
	SubmissionInFlight  SubmissionState = "in_flight"
	SubmissionFailed    SubmissionState = "failed"
	SubmissionSucceeded SubmissionState = "succeeded"
)

var (
	ErrWrongStep          = errors.New("action not valid for the current step")
	ErrSubmissionInFlight = errors.New("order submission already in flight")
	ErrAlreadySubmitted   = errors.New("order already submitted")
	ErrMissingFields      = errors.New("required fields missing")
	ErrUnknownMethod      = errors.New("unknown payment method")
)

var validate = newValidator()

func newValidator() *validatorv10.Validate {
	v := validatorv10.New()
	// The card variant is the only one with sub-fields; they are required as a
	// group once the method is card.
	v.RegisterStructValidation(paymentStructValidation, models.PaymentSelection{})
	return v
}

func paymentStructValidation(sl validatorv10.StructLevel) {
	sel := sl.Current().Interface().(models.PaymentSelection)
	if sel.Method != models.PaymentMethodCard {
		return
	}
	if sel.Card == nil {
		sl.ReportError(sel.Card, "card", "Card", "required_for_card", "")
		return
	}
	if sel.Card.CardNumber == "" || sel.Card.CardHolder == "" || sel.Card.ExpiryDate == "" || sel.Card.CVV == "" {
		sl.ReportError(sel.Card, "card", "Card", "required_for_card", "")
	}
}

// Wizard holds one user's checkout draft. It lives only in memory: navigating
// away or restarting the process discards it. The mutex serializes the
// interaction handlers that touch it.
type Wizard struct {
	mu sync.Mutex

	userID        string
	activeStep    Step
	shipping      models.ShippingAddress
	payment       models.PaymentSelection
	submission    SubmissionState
	failureReason string
	orderID       string
}

func NewWizard(userID string) *Wizard {
	return &Wizard{
		userID:     userID,
		activeStep: StepShipping,
		submission: SubmissionIdle,
	}
}

// State is a point-in-time copy of the wizard for rendering. Card sub-fields
// are echoed back so back-navigation re-populates the form.
type State struct {
	UserID        string                  `json:"user_id"`
	ActiveStep    Step                    `json:"active_step"`
	StepName      string                  `json:"step_name"`
	Shipping      models.ShippingAddress  `json:"shipping_address"`
	Payment       models.PaymentSelection `json:"payment_selection"`
	Submission    SubmissionState         `json:"submission"`
	FailureReason string                  `json:"failure_reason,omitempty"`
	OrderID       string                  `json:"order_id,omitempty"`
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return State{
		UserID:        w.userID,
		ActiveStep:    w.activeStep,
		StepName:      w.activeStep.String(),
		Shipping:      w.shipping,
		Payment:       w.payment,
		Submission:    w.submission,
		FailureReason: w.failureReason,
		OrderID:       w.orderID,
	}
}

// SubmitShipping stores the shipping form and advances to the payment step.
// With any required field empty the step does not change and the partial
// draft is kept so the user can fix and resubmit.
func (w *Wizard) SubmitShipping(addr models.ShippingAddress) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.activeStep != StepShipping {
		return ErrWrongStep
	}
	w.shipping = addr
	if err := validate.Struct(addr); err != nil {
		return ErrMissingFields
	}
	w.activeStep = StepPayment
	return nil
}

// SubmitPayment stores the payment selection and advances to the review step.
// paypal and cod carry no extra fields and advance immediately; card requires
// all four sub-fields non-empty.
func (w *Wizard) SubmitPayment(sel models.PaymentSelection) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.activeStep != StepPayment {
		return ErrWrongStep
	}
	switch sel.Method {
	case models.PaymentMethodCard, models.PaymentMethodPaypal, models.PaymentMethodCashOnDelivery:
	default:
		return ErrUnknownMethod
	}
	w.payment = sel
	if err := validate.Struct(sel); err != nil {
		return ErrMissingFields
	}
	w.activeStep = StepReview
	return nil
}

// Back retreats one step. All previously entered values stay intact. On the
// shipping step it is a no-op.
func (w *Wizard) Back() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.activeStep > StepShipping && w.submission != SubmissionInFlight {
		w.activeStep--
	}
}

// BeginSubmission marks the order request in flight and returns the draft
// needed to build it. A submit already in flight or already succeeded is
// rejected; a failed one may be retried any number of times.
func (w *Wizard) BeginSubmission() (models.ShippingAddress, models.PaymentMethod, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.activeStep != StepReview {
		return models.ShippingAddress{}, "", ErrWrongStep
	}
	switch w.submission {
	case SubmissionInFlight:
		return models.ShippingAddress{}, "", ErrSubmissionInFlight
	case SubmissionSucceeded:
		return models.ShippingAddress{}, "", ErrAlreadySubmitted
	}
	w.submission = SubmissionInFlight
	w.failureReason = ""
	return w.shipping, w.payment.Method, nil
}

// FailSubmission records a failed order request. The wizard stays on the
// review step with the whole draft intact; the user retries manually.
func (w *Wizard) FailSubmission(reason string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.submission = SubmissionFailed
	w.failureReason = reason
}

// CompleteSubmission records the created order. The wizard is terminal after
// this; a new checkout starts a fresh wizard.
func (w *Wizard) CompleteSubmission(orderID string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.submission = SubmissionSucceeded
	w.orderID = orderID
}
