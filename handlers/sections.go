package handlers

import (
	"net/http"

	"nebula_web/services"
	"nebula_web/templates/partials"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// SectionHandler re-mounts one section and returns it as an HTMX partial.
// If the fetch fails it answers 204 so the browser keeps what it shows.
func SectionHandler(c echo.Context) error {
	ctx := c.Request().Context()
	sections := services.NewLandingSections(services.Backend)

	var (
		component templ.Component
		err       error
	)
	switch name := c.Param("name"); name {
	case services.SectionPricing:
		err = sections.Pricing.Mount(ctx)
		component = partials.PricingSection(ctx, sections.Pricing)
	case services.SectionTestimonials:
		err = sections.Testimonials.Mount(ctx)
		component = partials.TestimonialsSection(ctx, sections.Testimonials)
	case services.SectionBlog:
		err = sections.Blog.Mount(ctx)
		component = partials.BlogSection(ctx, sections.Blog)
	default:
		return echo.NewHTTPError(http.StatusNotFound, "Section not found")
	}

	if err != nil {
		c.Logger().Warnf("Failed to refresh %s section: %v", c.Param("name"), err)
		return c.NoContent(http.StatusNoContent)
	}
	return render(c, http.StatusOK, component)
}
