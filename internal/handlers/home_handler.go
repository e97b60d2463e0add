package handlers

import (
	"log"
	"net/http"

	"foodexpress-storefront/internal/middleware"
	"foodexpress-storefront/internal/models"
	"foodexpress-storefront/internal/services"
	"foodexpress-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	catalogService *services.CatalogService
	store          session.Store
}

func NewHomeHandler(catalogService *services.CatalogService, store session.Store) *HomeHandler {
	return &HomeHandler{
		catalogService: catalogService,
		store:          store,
	}
}

func (h *HomeHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/", h.ShowListing)
}

// ShowListing renders the restaurant listing. A search failure renders the
// page with an error banner instead of a silently empty grid.
func (h *HomeHandler) ShowListing(c *gin.Context) {
	sess := middleware.GetSession(c)

	var errorBanner string
	restaurants, err := h.catalogService.SearchRestaurants(c.Request.Context(), sess.Identity())
	if err != nil {
		log.Printf("Failed to fetch restaurants: %v", err)
		errorBanner = "Could not load restaurants right now. Please try again."
		restaurants = []models.Restaurant{}
	}

	c.HTML(http.StatusOK, "home", viewData(c, h.store, gin.H{
		"Title":       "Restaurants",
		"Restaurants": restaurants,
		"Error":       errorBanner,
	}))
}
