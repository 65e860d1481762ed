package services

import (
	"net/url"
	"strings"

	"nebula_web/models"
)

// SanitizeURL returns the URL only if it is an absolute http(s) or a
// root-relative link, and "" otherwise.
func SanitizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "/") && !strings.HasPrefix(raw, "//") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	return u.String()
}

// sanitizeTestimonials drops avatar links that could not be used as an
// image source. Text fields are kept as received; they are escaped when
// rendered.
func sanitizeTestimonials(items []models.Testimonial) []models.Testimonial {
	out := make([]models.Testimonial, 0, len(items))
	for _, t := range items {
		t.Avatar = SanitizeURL(t.Avatar)
		out = append(out, t)
	}
	return out
}
