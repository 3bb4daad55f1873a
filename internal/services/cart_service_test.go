package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"golang-storefront-gateway/internal/models"
	"golang-storefront-gateway/pkg/cache"
)

func TestGetCartComputesSummary(t *testing.T) {
	svc := NewCartService(&fakeCartAPI{snapshot: testSnapshot()}, newFakeCache(), &fakeInvalidator{})

	view, err := svc.GetCart(context.Background(), testSession())
	require.NoError(t, err)
	require.True(t, view.CanCheckout)
	require.Equal(t, "74.98", view.Summary.Subtotal.StringFixed(2))
	require.Equal(t, "10.00", view.Summary.ShippingFee.StringFixed(2))
	require.Equal(t, "6.00", view.Summary.TaxAmount.StringFixed(2))
	require.Equal(t, "90.98", view.Summary.Total.StringFixed(2))
	require.NotNil(t, view.Summary.AmountToFreeShipping)
	require.Equal(t, "25.02", view.Summary.AmountToFreeShipping.StringFixed(2))
}

func TestGetCartEmptyDisablesCheckout(t *testing.T) {
	svc := NewCartService(&fakeCartAPI{snapshot: &models.CartSnapshot{}}, newFakeCache(), &fakeInvalidator{})

	view, err := svc.GetCart(context.Background(), testSession())
	require.NoError(t, err)
	require.False(t, view.CanCheckout)
	require.True(t, view.Summary.Total.IsZero())
}

func TestGetCartServesCachedSnapshot(t *testing.T) {
	cartAPI := &fakeCartAPI{snapshot: testSnapshot()}
	svc := NewCartService(cartAPI, newFakeCache(), &fakeInvalidator{})
	session := testSession()

	_, err := svc.GetCart(context.Background(), session)
	require.NoError(t, err)
	_, err = svc.GetCart(context.Background(), session)
	require.NoError(t, err)

	require.Equal(t, 1, cartAPI.getCalls, "second read comes from cache")
}

func TestGetCartFetchFailureIsWhole(t *testing.T) {
	svc := NewCartService(&fakeCartAPI{err: errors.New("cart service down")}, newFakeCache(), &fakeInvalidator{})

	view, err := svc.GetCart(context.Background(), testSession())
	require.Error(t, err)
	require.Nil(t, view, "no partial view from a failed fetch")
}

func TestAddItemInvalidatesCartReads(t *testing.T) {
	invalidator := &fakeInvalidator{}
	svc := NewCartService(&fakeCartAPI{snapshot: testSnapshot()}, newFakeCache(), invalidator)

	_, err := svc.AddItem(context.Background(), testSession(), "p1", 1)
	require.NoError(t, err)
	require.Equal(t, []cache.Mutation{cache.MutationCartChanged}, invalidator.mutations)
	require.Equal(t, []string{"u1"}, invalidator.scopes)
}
