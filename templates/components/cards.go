package components

import (
	"context"

	"nebula_web/models"
	"nebula_web/services/i18n"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const glassCard = "rounded-2xl backdrop-blur-xl bg-white/5 ring-1 ring-white/10"

// PricingCard renders one plan; highlighted plans get the popular badge
func PricingCard(ctx context.Context, p models.PricingPlan) g.Node {
	class := glassCard + " p-6"
	if p.Highlight {
		class += " shadow-[0_0_0_1px_rgba(255,255,255,0.15)]"
	}

	features := make(g.Group, 0, len(p.Features))
	for _, f := range p.Features {
		features = append(features, h.Li(
			h.Class("flex items-center gap-2"),
			h.Span(h.Class("w-1.5 h-1.5 rounded-full bg-cyan-400")),
			g.Text(f),
		))
	}

	return h.Div(
		h.Class(class),
		h.Data("card", "pricing"),
		h.Div(
			h.Class("flex items-baseline justify-between mb-4"),
			h.H3(h.Class("text-xl text-white"), g.Text(p.Name)),
			g.If(p.Highlight, h.Span(
				h.Class("px-2 py-0.5 text-xs rounded-full bg-gradient-to-r from-cyan-400/40 to-fuchsia-500/40 text-black ring-1 ring-white/20"),
				g.Text(i18n.T(ctx, "pricing.popular")),
			)),
		),
		h.Div(
			h.Class("text-white"),
			h.Span(h.Class("text-4xl font-semibold"), g.Text("$"+p.FormattedPrice())),
			g.Text("/"),
			h.Span(h.Class("text-white/60"), g.Text(p.Period)),
		),
		h.Ul(h.Class("mt-6 space-y-2 text-white/80"), features),
		h.Button(h.Class("mt-6 w-full px-4 py-2 rounded-xl bg-white/10 hover:bg-white/20 text-white ring-1 ring-white/20"), g.Text(p.CTA)),
	)
}

// TestimonialCard renders one quote with its author
func TestimonialCard(t models.Testimonial) g.Node {
	return h.Div(
		h.Class(glassCard+" p-6"),
		h.Data("card", "testimonial"),
		h.Div(
			h.Class("flex items-center gap-3"),
			g.If(t.Avatar != "", h.Img(h.Src(t.Avatar), h.Alt(t.Name), h.Class("w-10 h-10 rounded-full ring-2 ring-white/20"))),
			h.Div(
				h.Div(h.Class("text-white"), g.Text(t.Name)),
				h.Div(h.Class("text-white/60 text-sm"), g.Text(t.Role)),
			),
		),
		h.P(h.Class("text-white/80 mt-4"), g.Text("“"+t.Quote+"”")),
	)
}

// BlogCard renders one post teaser
func BlogCard(p models.BlogPost) g.Node {
	return h.Div(
		h.Class("rounded-2xl overflow-hidden backdrop-blur-xl bg-white/5 ring-1 ring-white/10"),
		h.Data("card", "blog"),
		h.Data("post-id", p.ID),
		h.Div(h.Class("h-40 bg-gradient-to-br from-white/10 to-white/0")),
		h.Div(
			h.Class("p-6"),
			h.Span(h.Class("text-xs px-2 py-1 rounded-full bg-white/10 ring-1 ring-white/20 text-white/70"), g.Text(p.Tag)),
			h.H4(h.Class("text-xl text-white mt-3"), g.Text(p.Title)),
			h.P(h.Class("text-white/70 mt-2"), g.Text(p.Excerpt)),
		),
	)
}
