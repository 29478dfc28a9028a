package checkout

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/royalbee/storefront/internal/backend"
	"github.com/royalbee/storefront/internal/cart"
	"github.com/royalbee/storefront/internal/domain"
	"github.com/royalbee/storefront/internal/storage/memory"
)

var (
	testUser = domain.User{ID: "7", Email: "ada@example.com", Name: "Ada"}
	testForm = domain.CheckoutForm{
		Name:    "Ada",
		Address: "1 Lovelace Way",
		Phone:   "07000 000000",
		Payment: "Credit Card",
	}
	bananas = domain.Product{ID: "1", Name: "Organic Bananas (6 pack)", Category: "Fresh Produce"}
	milk    = domain.Product{ID: "2", Name: "Whole Milk (2L)", Category: "Dairy"}
)

func newTestCart(t *testing.T) (*cart.Store, *memory.Store) {
	t.Helper()
	kv := memory.NewStore()
	store, err := cart.NewStore(context.Background(), kv, zap.NewNop())
	require.NoError(t, err)
	return store, kv
}

func fillCart(t *testing.T, store *cart.Store) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, store.AddItem(ctx, bananas, "Royal Bee", 1.20))
	require.NoError(t, store.AddItem(ctx, bananas, "Royal Bee", 1.20))
	require.NoError(t, store.AddItem(ctx, milk, "Tesco", 1.40))
}

func TestSubmit_EmptyCartMakesNoNetworkCall(t *testing.T) {
	store, _ := newTestCart(t)
	be := &mockBackend{}
	sub := NewSubmitter(store, &mockSession{user: &testUser, token: "tok"}, be, zap.NewNop())

	_, err := sub.Submit(context.Background(), testForm)

	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, be.submitCalls)
}

func TestSubmit_UnauthenticatedMakesNoNetworkCall(t *testing.T) {
	store, _ := newTestCart(t)
	fillCart(t, store)
	be := &mockBackend{}
	sub := NewSubmitter(store, &mockSession{}, be, zap.NewNop())

	_, err := sub.Submit(context.Background(), testForm)

	require.ErrorIs(t, err, ErrUnauthenticated)
	assert.Zero(t, be.submitCalls)
}

func TestSubmit_BuildsPayloadWithCurrentTotal(t *testing.T) {
	store, _ := newTestCart(t)
	fillCart(t, store)
	be := &mockBackend{confirmation: &domain.OrderConfirmation{ID: "ord-1"}}
	sub := NewSubmitter(store, &mockSession{user: &testUser, token: "tok"}, be, zap.NewNop())

	// Mutate after the checkout screen would have rendered its total.
	require.NoError(t, store.AddItem(context.Background(), milk, "Tesco", 1.40))

	_, err := sub.Submit(context.Background(), testForm)
	require.NoError(t, err)

	assert.Equal(t, testUser.ID, be.lastOrder.UserID)
	assert.Equal(t, "Credit Card", be.lastOrder.Payment)
	assert.Equal(t, "1 Lovelace Way", be.lastOrder.Address)
	assert.InDelta(t, 5.20, be.lastOrder.Total, 1e-9)
	require.Len(t, be.lastOrder.Items, 2)
	assert.Equal(t, domain.OrderItem{
		ProductName: "Organic Bananas (6 pack)",
		Quantity:    2,
		Retailer:    "Royal Bee",
		Price:       1.20,
	}, be.lastOrder.Items[0])
}

func TestSubmit_RejectionPreservesCart(t *testing.T) {
	store, _ := newTestCart(t)
	fillCart(t, store)
	before := store.Items()

	be := &mockBackend{submitErr: &backend.RejectedError{Status: 500, Reason: "boom"}}
	sub := NewSubmitter(store, &mockSession{user: &testUser, token: "tok"}, be, zap.NewNop())

	_, err := sub.Submit(context.Background(), testForm)
	require.Error(t, err)

	var rejected *backend.RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, 500, rejected.Status)

	assert.Equal(t, before, store.Items(), "cart must be untouched after a failed attempt")
}

func TestSubmit_SuccessReturnsConfirmationWithoutClearingCart(t *testing.T) {
	store, _ := newTestCart(t)
	fillCart(t, store)

	want := &domain.OrderConfirmation{ID: "ord-42", Total: 3.80}
	be := &mockBackend{confirmation: want}
	sub := NewSubmitter(store, &mockSession{user: &testUser, token: "tok"}, be, zap.NewNop())

	got, err := sub.Submit(context.Background(), testForm)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Clearing is the reconciler's job, after the confirmation is shown.
	assert.Equal(t, 3, store.ItemCount())
}
