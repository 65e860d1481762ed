package components

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"nebula_web/services/i18n"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// navAnchors are the in-page links shown in the navbar, in order
var navAnchors = []struct{ href, key string }{
	{"#features", "nav.features"},
	{"#pricing", "nav.pricing"},
	{"#blog", "nav.blog"},
	{"#contact", "nav.contact"},
}

// Navbar renders the fixed top bar with a toggleable mobile menu
func Navbar(ctx context.Context) g.Node {
	links := func(class string) g.Group {
		var nodes g.Group
		for _, a := range navAnchors {
			nodes = append(nodes, h.A(h.Href(a.href), h.Class(class), g.Text(i18n.T(ctx, a.key))))
		}
		return nodes
	}

	return h.Div(
		h.Class("fixed top-0 left-0 right-0 z-50 backdrop-blur-xl bg-white/5 border-b border-white/10"),
		h.Div(
			h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 py-4 flex items-center justify-between"),
			h.Div(
				h.Class("flex items-center gap-3"),
				h.Div(h.Class("w-9 h-9 rounded-xl bg-gradient-to-br from-cyan-400/70 to-violet-500/70 ring-1 ring-white/20 shadow-inner")),
				h.Span(h.Class("font-semibold text-white/90 text-lg"), g.Text(i18n.T(ctx, "brand"))),
			),
			h.Div(h.Class("hidden md:flex items-center gap-8 text-white/70"), links("hover:text-white transition")),
			h.Div(
				h.Class("hidden md:flex items-center gap-3"),
				h.Button(h.Class("px-4 py-2 rounded-lg text-white/80 hover:text-white"), g.Text(i18n.T(ctx, "nav.sign_in"))),
				h.Button(h.Class("px-4 py-2 rounded-lg bg-white/10 hover:bg-white/20 text-white ring-1 ring-white/20"), g.Text(i18n.T(ctx, "nav.create_account"))),
			),
			h.Button(
				h.Type("button"),
				h.Class("md:hidden p-2 text-white/80"),
				h.Aria("label", i18n.T(ctx, "nav.menu")),
				h.Aria("controls", "mobile-menu"),
				h.Aria("expanded", "false"),
				h.Data("menu-toggle", ""),
				g.Text("☰"),
			),
		),
		h.Div(
			h.ID("mobile-menu"),
			h.Class("md:hidden px-4 pb-4 text-white/80 space-y-2 hidden"),
			links("block"),
			h.Div(
				h.Class("pt-2 flex gap-2"),
				h.Button(h.Class("flex-1 px-4 py-2 rounded-lg text-white/80 hover:text-white ring-1 ring-white/10"), g.Text(i18n.T(ctx, "nav.sign_in"))),
				h.Button(h.Class("flex-1 px-4 py-2 rounded-lg bg-white/10 hover:bg-white/20 text-white ring-1 ring-white/20"), g.Text(i18n.T(ctx, "nav.create_account"))),
			),
		),
	)
}

// Hero renders the headline block over the 3D scene
func Hero(ctx context.Context, sceneURL string) g.Node {
	avatars := make(g.Group, 0, 5)
	for i := 0; i < 5; i++ {
		avatars = append(avatars, h.Img(
			h.Src(fmt.Sprintf("https://i.pravatar.cc/48?img=%d", i+10)),
			h.Alt(""),
			h.Class("w-8 h-8 rounded-full ring-2 ring-white/20"),
		))
	}

	return h.Section(
		h.ID("features"),
		h.Class("relative min-h-[90vh] flex items-center overflow-hidden"),
		h.Div(h.Class("absolute inset-0 bg-[radial-gradient(ellipse_at_top_right,rgba(99,102,241,0.35),transparent_40%),radial-gradient(ellipse_at_bottom_left,rgba(34,211,238,0.35),transparent_35%)]")),
		g.If(sceneURL != "",
			h.Div(h.Class("absolute inset-0"),
				g.El("spline-viewer", g.Attr("url", sceneURL), h.Class("w-full h-full")),
			),
		),
		h.Div(
			h.Class("relative z-10 max-w-7xl mx-auto px-4 sm:px-6 lg:px-8 w-full"),
			h.Div(
				h.Class("grid lg:grid-cols-2 gap-8 items-center"),
				h.Div(
					h.Class("space-y-6 py-24"),
					h.Span(
						h.Class("inline-flex items-center gap-2 px-3 py-1 rounded-full bg-white/10 text-white/80 ring-1 ring-white/20 backdrop-blur"),
						h.Span(h.Class("w-2 h-2 rounded-full bg-emerald-400 animate-pulse")),
						g.Text(i18n.T(ctx, "hero.badge")),
					),
					h.H1(h.Class("text-4xl sm:text-6xl font-semibold tracking-tight text-white drop-shadow-md"), g.Text(i18n.T(ctx, "hero.title"))),
					h.P(h.Class("text-white/70 text-lg max-w-xl"), g.Text(i18n.T(ctx, "hero.subtitle"))),
					h.Div(
						h.Class("flex flex-col sm:flex-row gap-3"),
						h.A(h.Href("#pricing"), h.Class("px-5 py-3 rounded-xl bg-white/15 hover:bg-white/25 text-white ring-1 ring-white/20 text-center"), g.Text(i18n.T(ctx, "hero.start_free"))),
						h.A(h.Href("#contact"), h.Class("px-5 py-3 rounded-xl bg-gradient-to-r from-cyan-400/80 to-fuchsia-500/80 text-black font-semibold ring-1 ring-white/30 text-center"), g.Text(i18n.T(ctx, "hero.book_demo"))),
					),
					h.Div(
						h.Class("flex items-center gap-4 text-white/60"),
						h.Div(h.Class("flex -space-x-2"), avatars),
						h.Span(g.Text(i18n.T(ctx, "hero.trusted"))),
					),
				),
				h.Div(h.Class("hidden lg:block")),
			),
		),
	)
}

// Footer renders the copyright line for the given time
func Footer(ctx context.Context, now time.Time) g.Node {
	return h.Footer(
		h.Class("py-12 text-center text-white/50"),
		h.Div(
			h.Class("max-w-7xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(h.Class("h-px bg-gradient-to-r from-transparent via-white/10 to-transparent mb-8")),
			h.P(g.Text(i18n.T(ctx, "footer.rights", map[string]interface{}{"year": strconv.Itoa(now.Year())}))),
		),
	)
}
