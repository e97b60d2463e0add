package middleware

import (
	"log"
	"net/http"

	"foodexpress-storefront/internal/session"
	"foodexpress-storefront/pkg/auth"

	"github.com/gin-gonic/gin"
)

const (
	sessionKey   = "session"
	sessionIDKey = "session_id"
)

type SessionMiddleware struct {
	store      session.Store
	cookies    *auth.CookieManager
	cookieName string
}

func NewSessionMiddleware(store session.Store, cookies *auth.CookieManager, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		store:      store,
		cookies:    cookies,
		cookieName: cookieName,
	}
}

// Attach resolves the browser session on every request. First-time visitors
// get a fresh signed cookie; a missing or forged cookie is replaced rather
// than rejected, since an anonymous session is always acceptable.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := ""
		if cookieValue, err := c.Cookie(m.cookieName); err == nil {
			if id, err := m.cookies.Validate(cookieValue); err == nil {
				sessionID = id
			}
		}

		if sessionID == "" {
			id, cookieValue, err := m.cookies.Issue()
			if err != nil {
				log.Printf("Failed to issue session cookie: %v", err)
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			sessionID = id
			c.SetCookie(m.cookieName, cookieValue, int(m.cookies.TTL().Seconds()), "/", "", false, true)
		}

		sess, err := m.store.Load(c.Request.Context(), sessionID)
		if err != nil {
			// A session-store outage must not take the storefront down;
			// the request proceeds anonymously.
			log.Printf("Failed to load session %s: %v", sessionID, err)
			sess = &session.Session{}
		}

		c.Set(sessionIDKey, sessionID)
		c.Set(sessionKey, sess)
		c.Next()
	}
}

// GetSession returns the session attached to the request. Handlers run behind
// Attach, so a missing session only happens in misconfigured tests.
func GetSession(c *gin.Context) *session.Session {
	if v, exists := c.Get(sessionKey); exists {
		if sess, ok := v.(*session.Session); ok {
			return sess
		}
	}
	return &session.Session{}
}

// GetSessionID returns the session id attached to the request.
func GetSessionID(c *gin.Context) string {
	if v, exists := c.Get(sessionIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}
