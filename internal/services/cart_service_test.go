package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"foodexpress-storefront/internal/backend"
	"foodexpress-storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCartService(t *testing.T, handler http.HandlerFunc) (*CartService, *int64) {
	t.Helper()
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	client := backend.NewClient(server.URL, 5*time.Second)
	return NewCartService(client, nil), &calls
}

func TestUpdateQuantityBelowOneSkipsBackend(t *testing.T) {
	service, calls := newCartService(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no backend call expected for quantity < 1")
	})

	for _, quantity := range []int{0, -1, -5} {
		cart, err := service.UpdateQuantity(context.Background(), backend.Identity{}, "item-1", quantity)
		assert.NoError(t, err)
		assert.Nil(t, cart)
	}
	assert.Zero(t, atomic.LoadInt64(calls))
}

func TestUpdateQuantityCallsBackend(t *testing.T) {
	service, calls := newCartService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/cart/items/item-1", r.URL.Path)
		w.Write([]byte(`{"data":{"items":[{"id":"item-1","quantity":2}],"totalItems":2}}`))
	})

	cart, err := service.UpdateQuantity(context.Background(), backend.Identity{}, "item-1", 2)
	require.NoError(t, err)
	require.NotNil(t, cart)
	assert.Equal(t, 2, cart.TotalItems)
	assert.EqualValues(t, 1, atomic.LoadInt64(calls))
}

func TestAddItemToEmptyCart(t *testing.T) {
	service, _ := newCartService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cart/items", r.URL.Path)
		w.Write([]byte(`{"data":{"restaurantId":"r1","restaurantName":"Spice Garden","items":[{"id":"ci1","itemName":"Paneer Tikka","price":220,"quantity":1,"subtotal":220}],"totalItems":1,"totalAmount":220}}`))
	})

	cart, err := service.AddItem(context.Background(), backend.Identity{}, models.AddCartItemRequest{
		RestaurantID: "r1",
		MenuItemID:   "m1",
		ItemName:     "Paneer Tikka",
		Price:        220,
		Quantity:     1,
	})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Paneer Tikka", cart.Items[0].ItemName)
	assert.Equal(t, 1, cart.Items[0].Quantity)
	assert.Equal(t, 1, cart.TotalItems)
}

func TestGetCartMapsNotFoundToEmpty(t *testing.T) {
	service, _ := newCartService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no cart"}`))
	})

	cart, err := service.GetCart(context.Background(), backend.Identity{})
	assert.NoError(t, err)
	assert.Nil(t, cart)
	assert.True(t, cart.Empty())
}

func TestCheckoutPostsFixedPaymentAndAddress(t *testing.T) {
	var gotBody models.PlaceOrderRequest
	service, _ := newCartService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders/place", r.URL.Path)
		require.NoError(t, jsonDecode(r, &gotBody))
		w.Write([]byte(`{"data":{"orderTrackingNumber":"TRK-77"}}`))
	})

	confirmation, err := service.Checkout(context.Background(), backend.Identity{UserID: "1"}, &models.Cart{RestaurantID: "r1", TotalAmount: 220})
	require.NoError(t, err)
	assert.Equal(t, "TRK-77", confirmation.OrderTrackingNumber)
	assert.Equal(t, "UPI", gotBody.PaymentMethod)
	assert.Equal(t, "Flat 402, Tech Park, Hyderabad", gotBody.DeliveryAddress)
}

func TestCheckoutFailurePropagatesMessage(t *testing.T) {
	service, _ := newCartService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"restaurant is closed"}`))
	})

	_, err := service.Checkout(context.Background(), backend.Identity{}, nil)
	require.Error(t, err)
	assert.Equal(t, "restaurant is closed", backend.UserMessage(err, "fallback"))
}

func jsonDecode(r *http.Request, dest interface{}) error {
	return json.NewDecoder(r.Body).Decode(dest)
}

func TestComputeBill(t *testing.T) {
	tests := []struct {
		itemTotal float64
		tax       float64
		grand     float64
	}{
		{itemTotal: 200, tax: 10, grand: 252},
		{itemTotal: 0, tax: 0, grand: 45},
		{itemTotal: 99.99, tax: 5, grand: 149.99},
		{itemTotal: 220, tax: 11, grand: 276},
	}

	for _, tt := range tests {
		bill := ComputeBill(tt.itemTotal)
		assert.Equal(t, tt.itemTotal, bill.ItemTotal)
		assert.Equal(t, 40.0, bill.DeliveryFee)
		assert.Equal(t, 5.0, bill.PlatformFee)
		assert.InDelta(t, tt.tax, bill.Tax, 0.001, "tax for %.2f", tt.itemTotal)
		assert.InDelta(t, tt.grand, bill.GrandTotal, 0.001, "grand total for %.2f", tt.itemTotal)
	}
}
