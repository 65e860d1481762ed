package models

// SEO contains metadata for search engines and social sharing
type SEO struct {
	Title       string
	Description string
	Canonical   string   // Absolute URL of the page
	OGImage     string   // Open Graph image URL
	Locale      string   // Current locale (e.g. "en")
	AltLocales  []string // Other locales offered through ?lang=
	NoIndex     bool
}

// NewSEO returns SEO metadata for the given locale
func NewSEO(title, description, locale string) *SEO {
	return &SEO{
		Title:       title,
		Description: description,
		Locale:      locale,
	}
}

// WithCanonical sets the canonical URL
func (s *SEO) WithCanonical(url string) *SEO {
	s.Canonical = url
	return s
}

// WithOGImage sets the Open Graph image
func (s *SEO) WithOGImage(imageURL string) *SEO {
	s.OGImage = imageURL
	return s
}

// WithAltLocales lists the locales other than the current one
func (s *SEO) WithAltLocales(all []string) *SEO {
	s.AltLocales = s.AltLocales[:0]
	for _, l := range all {
		if l != s.Locale {
			s.AltLocales = append(s.AltLocales, l)
		}
	}
	return s
}

// WithNoIndex sets the noindex directive
func (s *SEO) WithNoIndex() *SEO {
	s.NoIndex = true
	return s
}
