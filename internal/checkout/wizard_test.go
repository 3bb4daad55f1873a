package checkout

import (
	"testing"

	"github.com/stretchr/testify/require"

	"golang-storefront-gateway/internal/models"
)

func validAddress() models.ShippingAddress {
	return models.ShippingAddress{
		FullName:     "Jamie Rivera",
		AddressLine1: "12 Elm Street",
		AddressLine2: "Apt 4",
		City:         "Springfield",
		State:        "IL",
		PostalCode:   "62701",
		Country:      "US",
		Phone:        "555-0100",
	}
}

func TestSubmitShippingMissingFieldKeepsStep(t *testing.T) {
	required := []func(*models.ShippingAddress){
		func(a *models.ShippingAddress) { a.FullName = "" },
		func(a *models.ShippingAddress) { a.AddressLine1 = "" },
		func(a *models.ShippingAddress) { a.City = "" },
		func(a *models.ShippingAddress) { a.State = "" },
		func(a *models.ShippingAddress) { a.PostalCode = "" },
		func(a *models.ShippingAddress) { a.Country = "" },
		func(a *models.ShippingAddress) { a.Phone = "" },
	}

	for _, clear := range required {
		w := NewWizard("u1")
		addr := validAddress()
		clear(&addr)

		err := w.SubmitShipping(addr)
		require.ErrorIs(t, err, ErrMissingFields)
		require.Equal(t, StepShipping, w.State().ActiveStep)
	}
}

func TestSubmitShippingOptionalLine2(t *testing.T) {
	w := NewWizard("u1")
	addr := validAddress()
	addr.AddressLine2 = ""

	require.NoError(t, w.SubmitShipping(addr))
	require.Equal(t, StepPayment, w.State().ActiveStep)
}

func TestBackNavigationKeepsDraft(t *testing.T) {
	w := NewWizard("u1")
	addr := validAddress()

	require.NoError(t, w.SubmitShipping(addr))
	require.NoError(t, w.SubmitPayment(models.PaymentSelection{
		Method: models.PaymentMethodCard,
		Card: &models.CardDetails{
			CardNumber: "4111111111111111",
			CardHolder: "Jamie Rivera",
			ExpiryDate: "12/27",
			CVV:        "123",
		},
	}))
	require.Equal(t, StepReview, w.State().ActiveStep)

	w.Back()
	require.Equal(t, StepPayment, w.State().ActiveStep)
	w.Back()
	require.Equal(t, StepShipping, w.State().ActiveStep)

	// No data loss after navigating back twice.
	state := w.State()
	require.Equal(t, addr, state.Shipping)
	require.Equal(t, models.PaymentMethodCard, state.Payment.Method)
	require.Equal(t, "4111111111111111", state.Payment.Card.CardNumber)

	// Back on the first step is a no-op.
	w.Back()
	require.Equal(t, StepShipping, w.State().ActiveStep)
}

func TestCashOnDeliveryNeedsNoCardFields(t *testing.T) {
	w := NewWizard("u1")
	require.NoError(t, w.SubmitShipping(validAddress()))

	err := w.SubmitPayment(models.PaymentSelection{Method: models.PaymentMethodCashOnDelivery})
	require.NoError(t, err)
	require.Equal(t, StepReview, w.State().ActiveStep)
}

func TestCardRequiresAllSubFields(t *testing.T) {
	w := NewWizard("u1")
	require.NoError(t, w.SubmitShipping(validAddress()))

	err := w.SubmitPayment(models.PaymentSelection{
		Method: models.PaymentMethodCard,
		Card:   &models.CardDetails{CardNumber: "4111111111111111"},
	})
	require.ErrorIs(t, err, ErrMissingFields)
	require.Equal(t, StepPayment, w.State().ActiveStep)

	err = w.SubmitPayment(models.PaymentSelection{Method: models.PaymentMethodCard})
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestUnknownPaymentMethodRejected(t *testing.T) {
	w := NewWizard("u1")
	require.NoError(t, w.SubmitShipping(validAddress()))

	err := w.SubmitPayment(models.PaymentSelection{Method: "bank_transfer"})
	require.ErrorIs(t, err, ErrUnknownMethod)
}

func TestNoForwardSkipping(t *testing.T) {
	w := NewWizard("u1")

	err := w.SubmitPayment(models.PaymentSelection{Method: models.PaymentMethodPaypal})
	require.ErrorIs(t, err, ErrWrongStep)

	_, _, err = w.BeginSubmission()
	require.ErrorIs(t, err, ErrWrongStep)
}

func TestSubmissionLifecycle(t *testing.T) {
	w := NewWizard("u1")
	require.NoError(t, w.SubmitShipping(validAddress()))
	require.NoError(t, w.SubmitPayment(models.PaymentSelection{Method: models.PaymentMethodPaypal}))

	addr, method, err := w.BeginSubmission()
	require.NoError(t, err)
	require.Equal(t, validAddress(), addr)
	require.Equal(t, models.PaymentMethodPaypal, method)

	// A second submit while one is in flight is rejected.
	_, _, err = w.BeginSubmission()
	require.ErrorIs(t, err, ErrSubmissionInFlight)

	// Failure keeps the wizard on review with the draft intact, retry allowed.
	w.FailSubmission("order service unavailable")
	state := w.State()
	require.Equal(t, StepReview, state.ActiveStep)
	require.Equal(t, SubmissionFailed, state.Submission)
	require.Equal(t, "order service unavailable", state.FailureReason)
	require.Equal(t, validAddress(), state.Shipping)

	_, _, err = w.BeginSubmission()
	require.NoError(t, err)

	w.CompleteSubmission("ord-42")
	state = w.State()
	require.Equal(t, SubmissionSucceeded, state.Submission)
	require.Equal(t, "ord-42", state.OrderID)

	// Submitted is terminal.
	_, _, err = w.BeginSubmission()
	require.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestStoreStartAndDiscard(t *testing.T) {
	store := NewStore()

	w := store.Start("u1")
	require.NoError(t, w.SubmitShipping(validAddress()))

	// Starting again resumes the active draft.
	again := store.Start("u1")
	require.Same(t, w, again)

	// After a completed flow a new start gets a fresh wizard.
	require.NoError(t, w.SubmitPayment(models.PaymentSelection{Method: models.PaymentMethodCashOnDelivery}))
	_, _, err := w.BeginSubmission()
	require.NoError(t, err)
	w.CompleteSubmission("ord-1")

	fresh := store.Start("u1")
	require.NotSame(t, w, fresh)
	require.Equal(t, StepShipping, fresh.State().ActiveStep)

	store.Discard("u1")
	_, ok := store.Get("u1")
	require.False(t, ok)
}
