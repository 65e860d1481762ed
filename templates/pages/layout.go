package pages

import (
	"context"

	"nebula_web/middleware"
	"nebula_web/models"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Script sources loaded by every page; must match the CSP in middleware
const (
	htmxSrc         = "https://unpkg.com/htmx.org@2.0.4"
	splineViewerSrc = "https://unpkg.com/@splinetool/viewer@1.9.82/build/spline-viewer.js"
)

func head(ctx context.Context, seo *models.SEO) g.Node {
	nonce := middleware.GetNonce(ctx)
	alternates := make(g.Group, 0, len(seo.AltLocales))
	for _, l := range seo.AltLocales {
		alternates = append(alternates, h.Link(h.Rel("alternate"), g.Attr("hreflang", l), h.Href(seo.Canonical+"?lang="+l)))
	}

	return h.Head(
		h.Meta(h.Charset("utf-8")),
		h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
		h.TitleEl(g.Text(seo.Title)),
		h.Meta(h.Name("description"), h.Content(seo.Description)),
		g.If(seo.NoIndex, h.Meta(h.Name("robots"), h.Content("noindex"))),
		g.If(seo.Canonical != "", h.Link(h.Rel("canonical"), h.Href(seo.Canonical))),
		alternates,
		h.Meta(g.Attr("property", "og:title"), h.Content(seo.Title)),
		h.Meta(g.Attr("property", "og:description"), h.Content(seo.Description)),
		h.Meta(g.Attr("property", "og:type"), h.Content("website")),
		g.If(seo.OGImage != "", h.Meta(g.Attr("property", "og:image"), h.Content(seo.OGImage))),
		h.Link(h.Rel("icon"), h.Type("image/svg+xml"), h.Href(middleware.AssetURL(ctx, middleware.AssetFavicon))),
		h.Link(h.Rel("stylesheet"), h.Href(middleware.AssetURL(ctx, middleware.AssetStyleCSS))),
		h.Script(h.Src(htmxSrc), g.Attr("nonce", nonce), h.Defer()),
		h.Script(h.Type("module"), h.Src(splineViewerSrc), g.Attr("nonce", nonce)),
		h.Script(h.Src(middleware.AssetURL(ctx, middleware.AssetAppJS)), g.Attr("nonce", nonce), h.Defer()),
	)
}

// document wraps body content in the full HTML page
func document(ctx context.Context, seo *models.SEO, body ...g.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Lang(seo.Locale),
			head(ctx, seo),
			h.Body(
				h.Class("min-h-screen bg-[#0B0F1A] text-white"),
				g.Group(body),
			),
		),
	)
}
