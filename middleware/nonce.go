package middleware

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"
)

type contextKey string

const NonceKey contextKey = "csp_nonce"

// Third-party origins the landing page loads from
var (
	// htmx and the Spline viewer
	scriptSources = []string{"https://unpkg.com"}
	// Spline scene download
	connectSources = []string{"https://prod.spline.design", "https://unpkg.com"}
	// Testimonial avatars are arbitrary https URLs from the backend
	imageSources = []string{"https:"}
)

// GenerateNonce creates a random nonce string
func GenerateNonce() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

// ContentSecurityPolicy builds the CSP header value for a nonce
func ContentSecurityPolicy(nonce string) string {
	return fmt.Sprintf("default-src 'self'; script-src 'self' 'nonce-%s' %s; style-src 'self' 'unsafe-inline'; img-src 'self' data: %s; connect-src 'self' %s; worker-src 'self' blob:; frame-ancestors 'none'",
		nonce,
		strings.Join(scriptSources, " "),
		strings.Join(imageSources, " "),
		strings.Join(connectSources, " "),
	)
}

// CSPNonce middleware generates a nonce for each request and adds it to the context
func CSPNonce() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			nonce, err := GenerateNonce()
			if err != nil {
				c.Logger().Errorf("Failed to generate nonce: %v", err)
				nonce = "fallback-nonce-value"
			}

			// Echo context for handlers, request context for views
			c.Set(string(NonceKey), nonce)
			ctx := context.WithValue(c.Request().Context(), NonceKey, nonce)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set("Content-Security-Policy", ContentSecurityPolicy(nonce))

			return next(c)
		}
	}
}

// GetNonce retrieves the nonce from the context
func GetNonce(ctx context.Context) string {
	if val, ok := ctx.Value(NonceKey).(string); ok {
		return val
	}
	return ""
}
