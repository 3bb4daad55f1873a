package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKeysForExpandsScope(t *testing.T) {
	require.Equal(t, []string{"cart:u1"}, KeysFor(MutationCartChanged, "u1"))
	require.Equal(t, []string{"cart:u1", "orders:u1:*"}, KeysFor(MutationOrderPlaced, "u1"))
	require.Equal(t, []string{"product:p9", "products:*"}, KeysFor(MutationProductChanged, "p9"))
	require.Equal(t, []string{"reviews:p9:*"}, KeysFor(MutationReviewPosted, "p9"))
}

func TestEveryMutationHasDependencies(t *testing.T) {
	mutations := []Mutation{
		MutationCartChanged,
		MutationOrderPlaced,
		MutationOrderStatusChanged,
		MutationProductChanged,
		MutationReviewPosted,
		MutationAddressChanged,
		MutationProfileChanged,
	}
	for _, m := range mutations {
		require.NotEmpty(t, KeysFor(m, "x"), "mutation %s has no invalidation entry", m)
	}
}
