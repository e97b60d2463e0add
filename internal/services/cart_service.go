package services

import (
	"context"
	"errors"
	"math"

	"foodexpress-storefront/internal/backend"
	"foodexpress-storefront/internal/models"
	"foodexpress-storefront/pkg/messaging"
)

// Checkout posts a fixed payment method and delivery address; the storefront
// collects neither.
const (
	checkoutPaymentMethod   = "UPI"
	checkoutDeliveryAddress = "Flat 402, Tech Park, Hyderabad"

	deliveryFee = 40.0
	platformFee = 5.0
	taxRate     = 0.05
)

type CartService struct {
	client    *backend.Client
	publisher *messaging.Publisher
}

func NewCartService(client *backend.Client, publisher *messaging.Publisher) *CartService {
	return &CartService{
		client:    client,
		publisher: publisher,
	}
}

// GetCart returns the current cart, or nil when none exists yet.
func (s *CartService) GetCart(ctx context.Context, id backend.Identity) (*models.Cart, error) {
	cart, err := s.client.GetCart(ctx, id)
	if errors.Is(err, backend.ErrCartNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// AddItem posts the normalized line item and returns the server's updated
// cart, which replaces any local copy wholesale.
func (s *CartService) AddItem(ctx context.Context, id backend.Identity, req models.AddCartItemRequest) (*models.Cart, error) {
	if req.Quantity < 1 {
		req.Quantity = 1
	}
	return s.client.AddCartItem(ctx, id, req)
}

// UpdateQuantity sets a line item's quantity. A target below 1 is rejected
// locally: no backend call is made and the prior cart state stands, signalled
// by a nil cart with a nil error.
func (s *CartService) UpdateQuantity(ctx context.Context, id backend.Identity, itemID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, nil
	}
	return s.client.UpdateCartItem(ctx, id, itemID, quantity)
}

func (s *CartService) RemoveItem(ctx context.Context, id backend.Identity, itemID string) (*models.Cart, error) {
	return s.client.RemoveCartItem(ctx, id, itemID)
}

func (s *CartService) ClearCart(ctx context.Context, id backend.Identity) error {
	return s.client.ClearCart(ctx, id)
}

// Checkout places the order for the current cart. The 2xx response is trusted
// as confirmation; the cart passed in is only used to enrich the published
// activity event.
func (s *CartService) Checkout(ctx context.Context, id backend.Identity, cart *models.Cart) (*models.OrderConfirmation, error) {
	confirmation, err := s.client.PlaceOrder(ctx, id, models.PlaceOrderRequest{
		PaymentMethod:   checkoutPaymentMethod,
		DeliveryAddress: checkoutDeliveryAddress,
	})
	if err != nil {
		return nil, err
	}

	event := messaging.OrderPlacedEvent{
		Type:                "order_placed",
		UserID:              id.UserID,
		OrderTrackingNumber: confirmation.OrderTrackingNumber,
	}
	if cart != nil {
		event.RestaurantID = cart.RestaurantID
		event.TotalAmount = cart.TotalAmount
	}
	s.publisher.Publish(id.UserID, event)

	return confirmation, nil
}

// BillSummary is the display-only bill breakdown. Only ItemTotal comes from
// the server; the fees and tax are storefront display constants.
type BillSummary struct {
	ItemTotal   float64
	DeliveryFee float64
	PlatformFee float64
	Tax         float64
	GrandTotal  float64
}

// ComputeBill derives the displayed breakdown from the server's item total:
// flat delivery and platform fees plus 5% tax, rounded to 2 decimals.
func ComputeBill(itemTotal float64) BillSummary {
	tax := round2(itemTotal * taxRate)
	return BillSummary{
		ItemTotal:   itemTotal,
		DeliveryFee: deliveryFee,
		PlatformFee: platformFee,
		Tax:         tax,
		GrandTotal:  round2(itemTotal + deliveryFee + platformFee + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
