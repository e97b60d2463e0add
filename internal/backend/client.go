package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"foodexpress-storefront/internal/models"
)

// DefaultUserID is substituted when no user has logged in, making
// authentication advisory for read/write cart operations.
const DefaultUserID = "1"

// Identity is attached to every outgoing request: the bearer token when one
// exists and the X-User-Id header always.
type Identity struct {
	Token  string
	UserID string
}

// Client is the typed HTTP client for the food-ordering backend API.
// It performs no retries and no response caching; failures propagate to the
// caller as *APIError.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// SearchRestaurants posts a search filter; the zero filter returns the full
// paginated listing.
func (c *Client) SearchRestaurants(ctx context.Context, id Identity, filter models.SearchFilter) (*models.RestaurantPage, error) {
	var page models.RestaurantPage
	if err := c.do(ctx, http.MethodPost, "/restaurants/search", id, filter, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) GetRestaurant(ctx context.Context, id Identity, restaurantID string) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := c.do(ctx, http.MethodGet, "/restaurants/"+restaurantID, id, nil, &restaurant); err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (c *Client) GetFullMenu(ctx context.Context, id Identity, restaurantID string) (*models.FullMenu, error) {
	var menu models.FullMenu
	if err := c.do(ctx, http.MethodGet, "/restaurants/"+restaurantID+"/menu-items/full-menu", id, nil, &menu); err != nil {
		return nil, err
	}
	return &menu, nil
}

// GetCart fetches the cart for the current identity. A backend 404 is
// translated to ErrCartNotFound so callers can render the empty-cart state.
func (c *Client) GetCart(ctx context.Context, id Identity) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodGet, "/cart", id, nil, &cart); err != nil {
		if IsNotFound(err) {
			return nil, ErrCartNotFound
		}
		return nil, err
	}
	return &cart, nil
}

func (c *Client) AddCartItem(ctx context.Context, id Identity, req models.AddCartItemRequest) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodPost, "/cart/items", id, req, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) UpdateCartItem(ctx context.Context, id Identity, itemID string, quantity int) (*models.Cart, error) {
	body := map[string]int{"quantity": quantity}
	var cart models.Cart
	if err := c.do(ctx, http.MethodPut, "/cart/items/"+itemID, id, body, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) RemoveCartItem(ctx context.Context, id Identity, itemID string) (*models.Cart, error) {
	var cart models.Cart
	if err := c.do(ctx, http.MethodDelete, "/cart/items/"+itemID, id, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (c *Client) ClearCart(ctx context.Context, id Identity) error {
	return c.do(ctx, http.MethodDelete, "/cart", id, nil, nil)
}

func (c *Client) PlaceOrder(ctx context.Context, id Identity, req models.PlaceOrderRequest) (*models.OrderConfirmation, error) {
	var confirmation models.OrderConfirmation
	if err := c.do(ctx, http.MethodPost, "/orders/place", id, req, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

func (c *Client) Login(ctx context.Context, id Identity, req models.LoginRequest) (*models.LoginResponse, error) {
	var login models.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", id, req, &login); err != nil {
		return nil, err
	}
	return &login, nil
}

// do performs one backend request, attaching identity headers and unwrapping
// the {data: ...} envelope into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path string, id Identity, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if id.Token != "" {
		req.Header.Set("Authorization", "Bearer "+id.Token)
	}
	userID := id.UserID
	if userID == "" {
		userID = DefaultUserID
	}
	req.Header.Set("X-User-Id", userID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach backend: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %v", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		// Best effort: the backend wraps errors as {"message": "..."}.
		_ = json.Unmarshal(respBody, apiErr)
		return apiErr
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(respBody, &envelope); err != nil {
		return fmt.Errorf("failed to unmarshal response envelope: %v", err)
	}
	if len(envelope.Data) == 0 || string(envelope.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("failed to unmarshal response data: %v", err)
	}
	return nil
}
