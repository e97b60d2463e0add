package handlers

import (
	"log"
	"net/http"
	"strconv"

	"foodexpress-storefront/internal/backend"
	"foodexpress-storefront/internal/middleware"
	"foodexpress-storefront/internal/models"
	"foodexpress-storefront/internal/services"
	"foodexpress-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	catalogService *services.CatalogService
	cartService    *services.CartService
	store          session.Store
}

func NewRestaurantHandler(catalogService *services.CatalogService, cartService *services.CartService, store session.Store) *RestaurantHandler {
	return &RestaurantHandler{
		catalogService: catalogService,
		cartService:    cartService,
		store:          store,
	}
}

func (h *RestaurantHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/restaurants/:id", h.ShowDetail)
	router.POST("/restaurants/:id/cart-items", h.AddToCart)
}

// ShowDetail renders a restaurant with its categorized menu and the current
// cart. The three fetches run concurrently; a missing cart is a normal state,
// any other failure flashes an error, and absent metadata falls back to the
// not-found page.
func (h *RestaurantHandler) ShowDetail(c *gin.Context) {
	sess := middleware.GetSession(c)
	restaurantID := c.Param("id")

	detail, err := h.catalogService.LoadRestaurantDetail(c.Request.Context(), sess.Identity(), restaurantID)
	if err != nil {
		log.Printf("Failed to load restaurant %s: %v", restaurantID, err)
		flash(c, h.store, "error", "Failed to load restaurant details")
	}

	if detail == nil || detail.Restaurant == nil {
		c.HTML(http.StatusNotFound, "notfound", viewData(c, h.store, gin.H{
			"Title": "Not found",
		}))
		return
	}

	menu := detail.Menu
	if menu == nil {
		menu = &models.FullMenu{}
	}

	c.HTML(http.StatusOK, "restaurant", viewData(c, h.store, gin.H{
		"Title":      detail.Restaurant.Name,
		"Restaurant": detail.Restaurant,
		"Menu":       menu,
		"Cart":       detail.Cart,
	}))
}

// AddToCart posts one unit of a menu item as a normalized line item and
// redirects back to the menu. The next render re-reads the server's cart.
func (h *RestaurantHandler) AddToCart(c *gin.Context) {
	sess := middleware.GetSession(c)
	restaurantID := c.Param("id")

	itemName := c.PostForm("itemName")
	price, _ := strconv.ParseFloat(c.PostForm("price"), 64)

	req := models.AddCartItemRequest{
		RestaurantID: restaurantID,
		MenuItemID:   c.PostForm("menuItemId"),
		ItemName:     itemName,
		Price:        price,
		Quantity:     1,
		ImageUrl:     c.PostForm("imageUrl"),
	}

	if _, err := h.cartService.AddItem(c.Request.Context(), sess.Identity(), req); err != nil {
		log.Printf("Failed to add item to cart: %v", err)
		flash(c, h.store, "error", backend.UserMessage(err, "Failed to add item"))
	} else {
		flash(c, h.store, "success", "Added "+itemName+" to cart")
	}

	c.Redirect(http.StatusSeeOther, "/restaurants/"+restaurantID)
}
