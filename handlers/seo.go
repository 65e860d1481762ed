package handlers

import (
	"context"

	"nebula_web/config"
	"nebula_web/models"
	"nebula_web/services/i18n"
)

const defaultOGImage = "/static/images/og-image.png"

// landingSEO builds the metadata for the landing page in the request locale
func landingSEO(ctx context.Context, cfg *config.Config) *models.SEO {
	return models.NewSEO(i18n.T(ctx, "seo.title"), i18n.T(ctx, "seo.description"), i18n.GetLocale(ctx)).
		WithCanonical(cfg.AppURL + "/").
		WithOGImage(cfg.AppURL + defaultOGImage).
		WithAltLocales(i18n.Supported())
}
