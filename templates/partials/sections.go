package partials

import (
	"context"

	"nebula_web/models"
	"nebula_web/services"
	"nebula_web/services/i18n"
	"nebula_web/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// sectionAttrs marks a section root so /sections/{name} can replace it in place
func sectionAttrs(name string) g.Group {
	return g.Group{
		h.ID(name),
		h.Data("section", name),
		components.HX("get", "/sections/"+name),
		components.HX("trigger", "refresh-"+name+" from:body"),
		components.HX("swap", "outerHTML"),
	}
}

// PricingSectionNode renders the plans grid. An empty list renders no cards.
func PricingSectionNode(ctx context.Context, s *services.Section[models.PricingPlan]) g.Node {
	return h.Section(
		sectionAttrs(services.SectionPricing),
		h.Class("relative py-24"),
		h.Div(h.Class("absolute inset-0 pointer-events-none bg-[radial-gradient(ellipse_at_center,rgba(255,255,255,0.06),transparent_60%)]")),
		h.Div(
			h.Class("relative max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(
				h.Class("text-center mb-12"),
				h.H2(h.Class("text-3xl sm:text-4xl font-semibold text-white"), g.Text(i18n.T(ctx, "pricing.title"))),
				h.P(h.Class("text-white/60 mt-2"), g.Text(i18n.T(ctx, "pricing.subtitle"))),
			),
			h.Div(h.Class("grid md:grid-cols-3 gap-6"),
				components.Each(s.Cards(), func(p models.PricingPlan) g.Node {
					return components.PricingCard(ctx, p)
				}),
			),
		),
	)
}

// TestimonialsSectionNode renders the quotes grid
func TestimonialsSectionNode(ctx context.Context, s *services.Section[models.Testimonial]) g.Node {
	return h.Section(
		sectionAttrs(services.SectionTestimonials),
		h.Class("relative py-24"),
		h.Div(h.Class("absolute inset-0 pointer-events-none bg-[radial-gradient(ellipse_at_bottom_right,rgba(34,211,238,0.15),transparent_40%)]")),
		h.Div(
			h.Class("relative max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(h.Class("grid md:grid-cols-3 gap-6"), components.Each(s.Cards(), components.TestimonialCard)),
		),
	)
}

// BlogSectionNode renders the blog teaser grid
func BlogSectionNode(ctx context.Context, s *services.Section[models.BlogPost]) g.Node {
	return h.Section(
		sectionAttrs(services.SectionBlog),
		h.Class("relative py-24"),
		h.Div(
			h.Class("relative max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(
				h.Class("flex items-end justify-between mb-8"),
				h.Div(
					h.H3(h.Class("text-3xl text-white font-semibold"), g.Text(i18n.T(ctx, "blog.title"))),
					h.P(h.Class("text-white/60"), g.Text(i18n.T(ctx, "blog.subtitle"))),
				),
				h.A(h.Class("text-cyan-300/80 hover:text-cyan-200"), h.Href("#blog"), g.Text(i18n.T(ctx, "blog.view_all"))),
			),
			h.Div(h.Class("grid md:grid-cols-3 gap-6"), components.Each(s.Cards(), components.BlogCard)),
		),
	)
}

// PricingSection is the HTMX partial for the pricing section
func PricingSection(ctx context.Context, s *services.Section[models.PricingPlan]) templ.Component {
	return components.Component(PricingSectionNode(ctx, s))
}

// TestimonialsSection is the HTMX partial for the testimonials section
func TestimonialsSection(ctx context.Context, s *services.Section[models.Testimonial]) templ.Component {
	return components.Component(TestimonialsSectionNode(ctx, s))
}

// BlogSection is the HTMX partial for the blog section
func BlogSection(ctx context.Context, s *services.Section[models.BlogPost]) templ.Component {
	return components.Component(BlogSectionNode(ctx, s))
}
