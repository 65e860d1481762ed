package handlers

import (
	"errors"
	"net/http"
	"strings"

	"nebula_web/templates/pages"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders a 404 page for browsers and falls back to echo's
// default JSON errors for everything else.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) && he.Code == http.StatusNotFound && wantsHTML(c) {
		ctx := c.Request().Context()
		seo := landingSEO(ctx, getConfig(c)).WithNoIndex()
		if renderErr := render(c, http.StatusNotFound, pages.NotFound(ctx, seo)); renderErr != nil {
			c.Logger().Error(renderErr)
		}
		return
	}

	c.Echo().DefaultHTTPErrorHandler(err, c)
}

func wantsHTML(c echo.Context) bool {
	return c.Request().Method == http.MethodGet &&
		!isHTMX(c) &&
		strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMETextHTML)
}
