package session

import (
	"catalog-service/pkg/config"
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

var (
	signingKey []byte
	expiration time.Duration
	cookieName = "admin_session"
)

// ErrNoSession indicates the request carries no session cookie
var ErrNoSession = errors.New("no session cookie")

// AdminClaims represents the signed admin session payload
type AdminClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Initialize configures the session signing key and cookie parameters
func Initialize(cfg *config.SessionConfig) {
	signingKey = []byte(cfg.SigningKey)
	expiration = time.Duration(cfg.ExpirationHours) * time.Hour
	if cfg.CookieName != "" {
		cookieName = cfg.CookieName
	}
}

// CookieName returns the name of the session cookie
func CookieName() string {
	return cookieName
}

// Issue creates a signed session token for an authenticated admin
func Issue(username string) (string, error) {
	now := time.Now()
	claims := AdminClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey)
}

// Validate parses and verifies a session token
func Validate(tokenString string) (*AdminClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AdminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*AdminClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrSignatureInvalid
}

// Begin sets the session cookie for an authenticated admin
func Begin(c echo.Context, username string) error {
	token, err := Issue(username)
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(expiration),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// End clears the session cookie
func End(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest reads and validates the session cookie on a request
func FromRequest(c echo.Context) (*AdminClaims, error) {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}
	return Validate(cookie.Value)
}
