package handlers

import (
	"log"
	"net/http"
	"strconv"

	"foodexpress-storefront/internal/backend"
	"foodexpress-storefront/internal/middleware"
	"foodexpress-storefront/internal/services"
	"foodexpress-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartService *services.CartService
	store       session.Store
}

func NewCartHandler(cartService *services.CartService, store session.Store) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		store:       store,
	}
}

func (h *CartHandler) RegisterRoutes(router *gin.Engine) {
	cart := router.Group("/cart")
	{
		cart.GET("", h.ShowCart)
		cart.POST("/items/:item_id/quantity", h.UpdateQuantity)
		cart.POST("/items/:item_id/remove", h.RemoveItem)
		cart.POST("/clear", h.ClearCart)
		cart.POST("/checkout", h.Checkout)
	}
}

// ShowCart renders the current cart with the display bill breakdown. A
// missing cart renders the empty state; other fetch failures are logged and
// also render the empty state rather than an error page.
func (h *CartHandler) ShowCart(c *gin.Context) {
	sess := middleware.GetSession(c)

	cart, err := h.cartService.GetCart(c.Request.Context(), sess.Identity())
	if err != nil {
		log.Printf("Failed to fetch cart: %v", err)
	}

	data := gin.H{
		"Title": "Cart",
		"Cart":  cart,
	}
	if !cart.Empty() {
		data["Bill"] = services.ComputeBill(cart.TotalAmount)
	}

	c.HTML(http.StatusOK, "cart", viewData(c, h.store, data))
}

// UpdateQuantity sets a line item's quantity. Targets below 1 never reach the
// backend; the redirect simply re-renders the unchanged cart.
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	sess := middleware.GetSession(c)
	itemID := c.Param("item_id")

	quantity, err := strconv.Atoi(c.PostForm("quantity"))
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	if _, err := h.cartService.UpdateQuantity(c.Request.Context(), sess.Identity(), itemID, quantity); err != nil {
		log.Printf("Failed to update quantity for item %s: %v", itemID, err)
		flash(c, h.store, "error", "Failed to update quantity")
	}

	c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	sess := middleware.GetSession(c)
	itemID := c.Param("item_id")

	if _, err := h.cartService.RemoveItem(c.Request.Context(), sess.Identity(), itemID); err != nil {
		log.Printf("Failed to remove item %s: %v", itemID, err)
		flash(c, h.store, "error", "Failed to remove item")
	} else {
		flash(c, h.store, "success", "Item removed")
	}

	c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	sess := middleware.GetSession(c)

	if err := h.cartService.ClearCart(c.Request.Context(), sess.Identity()); err != nil {
		log.Printf("Failed to clear cart: %v", err)
		flash(c, h.store, "error", "Failed to clear cart")
	} else {
		flash(c, h.store, "success", "Cart cleared")
	}

	c.Redirect(http.StatusSeeOther, "/cart")
}

// Checkout places the order with the fixed payment method and delivery
// address. Success celebrates and returns to the listing; failure returns to
// the cart with the backend's message.
func (h *CartHandler) Checkout(c *gin.Context) {
	sess := middleware.GetSession(c)

	// Current cart enriches the published order event; checkout proceeds
	// even if this read fails.
	cart, err := h.cartService.GetCart(c.Request.Context(), sess.Identity())
	if err != nil {
		log.Printf("Failed to fetch cart before checkout: %v", err)
	}

	confirmation, err := h.cartService.Checkout(c.Request.Context(), sess.Identity(), cart)
	if err != nil {
		log.Printf("Checkout failed: %v", err)
		flash(c, h.store, "error", "Order Failed: "+backend.UserMessage(err, "please try again"))
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	message := "Order Placed Successfully! 🎉"
	if confirmation != nil && confirmation.OrderTrackingNumber != "" {
		message += " Tracking number: " + confirmation.OrderTrackingNumber
	}
	flash(c, h.store, "success", message)
	c.Redirect(http.StatusSeeOther, "/")
}
