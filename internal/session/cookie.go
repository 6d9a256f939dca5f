// Package session carries the refresh token between client and server as a
// protected cookie. It is a pure encode/decode boundary: the rest of the
// core only ever sees the extracted token value.
package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieName is the fixed name of the session cookie.
const CookieName = "jwt"

// Transport writes and reads the session cookie with a fixed set of
// protective flags: not readable by page scripts, sent only over TLS, and
// allowed cross-site. The max-age is configured independently of the
// refresh token's own expiry.
type Transport struct {
	maxAge time.Duration
}

// NewTransport builds a transport with the given cookie lifetime.
func NewTransport(maxAge time.Duration) *Transport {
	return &Transport{maxAge: maxAge}
}

// Attach sets the session cookie on the response.
func (t *Transport) Attach(c *fiber.Ctx, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    refreshToken,
		MaxAge:   int(t.maxAge.Seconds()),
		Expires:  time.Now().Add(t.maxAge),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}

// Extract returns the refresh token carried by the request, or ok=false
// when no session cookie is present.
func (t *Transport) Extract(c *fiber.Ctx) (string, bool) {
	value := c.Cookies(CookieName)
	return value, value != ""
}

// Clear expires the session cookie. Browsers only drop a cookie when the
// clearing Set-Cookie matches the original attributes, so the protective
// flags are repeated here. Clearing an absent cookie is a no-op.
func (t *Transport) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		MaxAge:   -1,
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   true,
		SameSite: fiber.CookieSameSiteNoneMode,
	})
}
