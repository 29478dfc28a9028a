package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/royalbee/storefront/internal/config"
	"github.com/royalbee/storefront/internal/domain"
)

func newClientFor(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return NewClient(config.BackendConfig{BaseURL: ts.URL}, zap.NewNop())
}

func TestSubmitOrder_SendsBearerAndPayload(t *testing.T) {
	var gotAuth string
	var gotOrder domain.OrderRequest

	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotOrder))
		json.NewEncoder(w).Encode(domain.OrderConfirmation{ID: "ord-1", Total: gotOrder.Total})
	})

	conf, err := client.SubmitOrder(context.Background(), "tok-abc", domain.OrderRequest{
		UserID: "7",
		Total:  3.80,
		Items:  []domain.OrderItem{{ProductName: "Bananas", Quantity: 2, Retailer: "Royal Bee", Price: 1.20}},
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok-abc", gotAuth)
	assert.Equal(t, "7", gotOrder.UserID)
	assert.Equal(t, "ord-1", conf.ID)
}

func TestSubmitOrder_NonSuccessCarriesReason(t *testing.T) {
	client := newClientFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"total mismatch"}`))
	})

	_, err := client.SubmitOrder(context.Background(), "tok", domain.OrderRequest{})

	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, http.StatusBadRequest, rejected.Status)
	assert.Equal(t, "total mismatch", rejected.Reason)
}

func TestSubmitOrder_TransportFailure(t *testing.T) {
	client := NewClient(config.BackendConfig{BaseURL: "http://127.0.0.1:1"}, zap.NewNop())

	_, err := client.SubmitOrder(context.Background(), "tok", domain.OrderRequest{})
	require.Error(t, err)

	var rejected *RejectedError
	assert.False(t, errors.As(err, &rejected), "transport errors are not rejections")
}
