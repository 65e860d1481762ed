package pages

import (
	"context"
	"time"

	"nebula_web/models"
	"nebula_web/services"
	"nebula_web/templates/components"
	"nebula_web/templates/partials"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LandingData is everything the landing page renders
type LandingData struct {
	SEO            *models.SEO
	Sections       *services.LandingSections
	Contact        partials.ContactFormData
	SplineSceneURL string
	Now            time.Time
}

// Landing renders the full marketing page
func Landing(ctx context.Context, data LandingData) templ.Component {
	return components.Component(document(ctx, data.SEO,
		components.Navbar(ctx),
		components.Hero(ctx, data.SplineSceneURL),
		h.Main(
			h.Class("relative z-10"),
			partials.PricingSectionNode(ctx, data.Sections.Pricing),
			partials.TestimonialsSectionNode(ctx, data.Sections.Testimonials),
			partials.BlogSectionNode(ctx, data.Sections.Blog),
			partials.ContactSectionNode(ctx, data.Contact),
		),
		components.Footer(ctx, data.Now),
	))
}

// NotFound renders a minimal page for unknown routes
func NotFound(ctx context.Context, seo *models.SEO) templ.Component {
	return components.Component(document(ctx, seo,
		components.Navbar(ctx),
		h.Main(
			h.Class("min-h-[60vh] flex items-center justify-center"),
			h.H1(h.Class("text-4xl font-semibold text-white"), g.Text("404")),
		),
	))
}
