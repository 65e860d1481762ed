package handlers

import (
	"net/http"
	"time"

	"nebula_web/middleware"
	"nebula_web/services"
	"nebula_web/templates/pages"
	"nebula_web/templates/partials"

	"github.com/labstack/echo/v4"
)

// LandingHandler mounts the fetch-bound sections and renders the full page.
// A section whose fetch fails renders empty; the page itself never fails.
func LandingHandler(c echo.Context) error {
	cfg := getConfig(c)
	ctx := c.Request().Context()

	sections := services.NewLandingSections(services.Backend)
	for name, err := range sections.MountAll(ctx) {
		c.Logger().Warnf("Failed to load %s section: %v", name, err)
	}

	component := pages.Landing(ctx, pages.LandingData{
		SEO:      landingSEO(ctx, cfg),
		Sections: sections,
		Contact: partials.ContactFormData{
			Form:            services.NewContactForm(),
			CSRFToken:       middleware.GetCSRFToken(c),
			SubmissionToken: services.NewSubmissionToken(),
		},
		SplineSceneURL: cfg.SplineSceneURL,
		Now:            time.Now(),
	})
	return render(c, http.StatusOK, component)
}
