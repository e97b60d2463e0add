package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodexpress-storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, 5*time.Second)
}

func TestIdentityHeaders(t *testing.T) {
	var gotAuth, gotUserID, gotContentType string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUserID = r.Header.Get("X-User-Id")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"data":{"content":[]}}`))
	})

	_, err := client.SearchRestaurants(context.Background(), Identity{Token: "tok-123", UserID: "42"}, models.SearchFilter{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "42", gotUserID)
	assert.Equal(t, "application/json", gotContentType)
}

func TestAnonymousIdentityDefaults(t *testing.T) {
	var gotAuth, gotUserID string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotUserID = r.Header.Get("X-User-Id")
		w.Write([]byte(`{"data":{"content":[]}}`))
	})

	_, err := client.SearchRestaurants(context.Background(), Identity{}, models.SearchFilter{})
	require.NoError(t, err)
	assert.Empty(t, gotAuth, "no bearer header without a token")
	assert.Equal(t, DefaultUserID, gotUserID)
}

func TestSearchRestaurantsUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/restaurants/search", r.URL.Path)
		w.Write([]byte(`{"data":{"content":[{"id":"r1","name":"Spice Garden","city":"Hyderabad","rating":4.3,"cuisineTypes":["Indian"]}],"totalElements":1}}`))
	})

	page, err := client.SearchRestaurants(context.Background(), Identity{}, models.SearchFilter{})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "Spice Garden", page.Content[0].Name)
	assert.Equal(t, 4.3, page.Content[0].Rating)
}

func TestGetCartNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"no cart found"}`))
	})

	cart, err := client.GetCart(context.Background(), Identity{})
	assert.Nil(t, cart)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestAPIErrorCarriesStatusAndMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"items must belong to one restaurant"}`))
	})

	_, err := client.AddCartItem(context.Background(), Identity{}, models.AddCartItemRequest{})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "items must belong to one restaurant", apiErr.Message)
	assert.Equal(t, "items must belong to one restaurant", UserMessage(err, "fallback"))
}

func TestAPIErrorFallbackMessage(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.GetRestaurant(context.Background(), Identity{}, "r1")
	require.Error(t, err)
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "fallback", UserMessage(err, "fallback"))
}

func TestClearCartAcceptsEmptyBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/cart", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, client.ClearCart(context.Background(), Identity{}))
}

func TestLoginDecodesTokenAndUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		w.Write([]byte(`{"data":{"access_token":"tok-9","user":{"id":"7","email":"a@b.c","first_name":"Asha"}}}`))
	})

	resp, err := client.Login(context.Background(), Identity{}, models.LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "tok-9", resp.AccessToken)
	assert.Equal(t, "7", resp.User.ID)
	assert.Equal(t, "Asha", resp.User.FirstName)
}
