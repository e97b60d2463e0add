package handlers

import (
	"log"
	"net/http"

	"foodexpress-storefront/internal/backend"
	"foodexpress-storefront/internal/middleware"
	"foodexpress-storefront/internal/services"
	"foodexpress-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *services.AuthService
	store       session.Store
}

func NewAuthHandler(authService *services.AuthService, store session.Store) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		store:       store,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/login", h.ShowLogin)
	router.POST("/login", h.Login)
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login", viewData(c, h.store, gin.H{
		"Title": "Login",
	}))
}

// Login submits credentials to the backend. Success persists the issued
// identity in the session store and lands on the listing; failure persists
// nothing and returns to the form with the server's message.
func (h *AuthHandler) Login(c *gin.Context) {
	sess := middleware.GetSession(c)
	sessionID := middleware.GetSessionID(c)

	email := c.PostForm("email")
	password := c.PostForm("password")

	user, err := h.authService.Login(c.Request.Context(), sessionID, sess, email, password)
	if err != nil {
		log.Printf("Login failed for %s: %v", email, err)
		flash(c, h.store, "error", backend.UserMessage(err, "Login failed. Check credentials!"))
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	name := user.FirstName
	if name == "" {
		name = "User"
	}
	flash(c, h.store, "success", "Welcome back, "+name+"!")
	c.Redirect(http.StatusSeeOther, "/")
}
