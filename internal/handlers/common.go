package handlers

import (
	"log"

	"foodexpress-storefront/internal/middleware"
	"foodexpress-storefront/internal/session"

	"github.com/gin-gonic/gin"
)

// viewData merges the per-request session bits every page needs (pending
// flashes, identity display) into the page's own data. Flashes are drained
// here so each shows exactly once.
func viewData(c *gin.Context, store session.Store, data gin.H) gin.H {
	sess := middleware.GetSession(c)
	flashes := sess.TakeFlashes()
	if len(flashes) > 0 {
		if err := store.Save(c.Request.Context(), middleware.GetSessionID(c), sess); err != nil {
			log.Printf("Failed to save session after draining flashes: %v", err)
		}
	}
	data["Flashes"] = flashes
	data["UserEmail"] = sess.UserEmail
	return data
}

// flash queues a one-shot notification for the next rendered page.
func flash(c *gin.Context, store session.Store, level, message string) {
	sess := middleware.GetSession(c)
	sess.AddFlash(level, message)
	if err := store.Save(c.Request.Context(), middleware.GetSessionID(c), sess); err != nil {
		log.Printf("Failed to save session flash: %v", err)
	}
}
