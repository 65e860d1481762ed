package services

import (
	"context"

	"nebula_web/models"

	"golang.org/x/sync/errgroup"
)

// LandingSections groups the three fetch-bound regions of the landing page.
// A value is created per page render and dropped with it.
type LandingSections struct {
	Pricing      *Section[models.PricingPlan]
	Testimonials *Section[models.Testimonial]
	Blog         *Section[models.BlogPost]
}

// NewLandingSections wires each section to its endpoint on src.
// Testimonial avatars are checked before they reach the section state.
func NewLandingSections(src ContentSource) *LandingSections {
	return &LandingSections{
		Pricing:      NewSection(SectionPricing, src.FetchPricing),
		Testimonials: NewSection(SectionTestimonials, sanitized(src.FetchTestimonials, sanitizeTestimonials)),
		Blog:         NewSection(SectionBlog, src.FetchBlog),
	}
}

// MountAll mounts every section concurrently. Failures are independent:
// a failed section keeps its previous list and does not cancel the others.
// The returned map holds the error of each failed section, keyed by name.
func (l *LandingSections) MountAll(ctx context.Context) map[string]error {
	var (
		g    errgroup.Group
		errs [3]error
	)
	g.Go(func() error { errs[0] = l.Pricing.Mount(ctx); return nil })
	g.Go(func() error { errs[1] = l.Testimonials.Mount(ctx); return nil })
	g.Go(func() error { errs[2] = l.Blog.Mount(ctx); return nil })
	g.Wait()

	failed := make(map[string]error)
	for i, name := range []string{SectionPricing, SectionTestimonials, SectionBlog} {
		if errs[i] != nil {
			failed[name] = errs[i]
		}
	}
	return failed
}

func sanitized[T any](fetch FetchFunc[T], clean func([]T) []T) FetchFunc[T] {
	return func(ctx context.Context) ([]T, error) {
		items, err := fetch(ctx)
		if err != nil {
			return nil, err
		}
		return clean(items), nil
	}
}
