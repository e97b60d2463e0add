package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CookieManager signs the session-reference cookie. The cookie only carries a
// session id; the session data itself lives in the session store.
type CookieManager struct {
	secretKey string
	ttlHours  int
}

type cookieClaims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

func NewCookieManager(secretKey string, ttlHours int) *CookieManager {
	return &CookieManager{
		secretKey: secretKey,
		ttlHours:  ttlHours,
	}
}

// Issue mints a fresh session id and the signed cookie value referencing it.
func (m *CookieManager) Issue() (sessionID, cookieValue string, err error) {
	sessionID = uuid.New().String()
	claims := &cookieClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour * time.Duration(m.ttlHours))),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	cookieValue, err = token.SignedString([]byte(m.secretKey))
	if err != nil {
		return "", "", err
	}
	return sessionID, cookieValue, nil
}

// Validate returns the session id embedded in a cookie value, or an error for
// forged, malformed or expired cookies.
func (m *CookieManager) Validate(cookieValue string) (string, error) {
	token, err := jwt.ParseWithClaims(cookieValue, &cookieClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(m.secretKey), nil
	})
	if err != nil {
		return "", err
	}

	if claims, ok := token.Claims.(*cookieClaims); ok && token.Valid && claims.SessionID != "" {
		return claims.SessionID, nil
	}
	return "", errors.New("invalid session cookie")
}

// TTL is the cookie and session lifetime.
func (m *CookieManager) TTL() time.Duration {
	return time.Hour * time.Duration(m.ttlHours)
}
