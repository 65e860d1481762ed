package handlers

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHTTPErrorHandler(t *testing.T) {
	t.Run("Browser gets the not found page", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/missing", nil)
		c.Request().Header.Set(echo.HeaderAccept, "text/html,application/xhtml+xml")

		HTTPErrorHandler(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "<!doctype html>")
		assert.Contains(t, rec.Body.String(), `content="noindex`)
	})

	t.Run("API client gets JSON", func(t *testing.T) {
		_, c, rec := setupEcho(http.MethodGet, "/missing", nil)
		c.Request().Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)

		HTTPErrorHandler(echo.ErrNotFound, c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), `"message"`)
	})
}
