package services

import (
	"context"
	"errors"
	"slices"
	"testing"

	"nebula_web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetch returns scripted results in order and counts calls
type stubFetch[T any] struct {
	results [][]T
	errs    []error
	calls   int
}

func (s *stubFetch[T]) fetch(ctx context.Context) ([]T, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return nil, s.errs[i]
	}
	if i < len(s.results) {
		return s.results[i], nil
	}
	return nil, nil
}

func TestSectionMount(t *testing.T) {
	t.Run("Initial state is empty", func(t *testing.T) {
		s := NewSection(SectionBlog, (&stubFetch[models.BlogPost]{}).fetch)
		assert.Empty(t, s.Items())
		assert.False(t, s.Loaded())
		assert.Empty(t, slices.Collect(s.Cards()))
	})

	t.Run("N items render N cards in order", func(t *testing.T) {
		posts := []models.BlogPost{{ID: "1", Title: "A"}, {ID: "2", Title: "B"}, {ID: "3", Title: "C"}}
		stub := &stubFetch[models.BlogPost]{results: [][]models.BlogPost{posts}}
		s := NewSection(SectionBlog, stub.fetch)

		require.NoError(t, s.Mount(context.Background()))
		assert.Equal(t, 1, stub.calls)
		assert.True(t, s.Loaded())
		assert.Equal(t, posts, slices.Collect(s.Cards()))
	})

	t.Run("Nil result is an empty list", func(t *testing.T) {
		stub := &stubFetch[models.Testimonial]{results: [][]models.Testimonial{nil}}
		s := NewSection(SectionTestimonials, stub.fetch)

		require.NoError(t, s.Mount(context.Background()))
		assert.NotNil(t, s.Items())
		assert.Equal(t, 0, s.Len())
	})

	t.Run("Failure keeps prior state", func(t *testing.T) {
		first := []models.PricingPlan{{Name: "Starter"}, {Name: "Pro"}}
		stub := &stubFetch[models.PricingPlan]{
			results: [][]models.PricingPlan{first},
			errs:    []error{nil, &NetworkError{Op: "GET /api/pricing", Err: errors.New("connection refused")}},
		}
		s := NewSection(SectionPricing, stub.fetch)

		require.NoError(t, s.Mount(context.Background()))
		err := s.Mount(context.Background())
		assert.Error(t, err)
		assert.Equal(t, first, s.Items())
	})

	t.Run("Failure on first mount stays empty", func(t *testing.T) {
		stub := &stubFetch[models.PricingPlan]{errs: []error{&ApplicationError{Status: 500}}}
		s := NewSection(SectionPricing, stub.fetch)

		assert.Error(t, s.Mount(context.Background()))
		assert.Empty(t, s.Items())
		assert.False(t, s.Loaded())
	})

	t.Run("Remount replaces instead of merging", func(t *testing.T) {
		stub := &stubFetch[models.BlogPost]{results: [][]models.BlogPost{
			{{ID: "1"}, {ID: "2"}},
			{{ID: "3"}},
		}}
		s := NewSection(SectionBlog, stub.fetch)

		require.NoError(t, s.Mount(context.Background()))
		require.NoError(t, s.Mount(context.Background()))
		assert.Equal(t, 2, stub.calls)
		assert.Equal(t, []models.BlogPost{{ID: "3"}}, s.Items())
	})

	t.Run("Canceled context does not publish late data", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		s := NewSection(SectionBlog, func(context.Context) ([]models.BlogPost, error) {
			cancel()
			return []models.BlogPost{{ID: "late"}}, nil
		})

		err := s.Mount(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, s.Items())
	})
}

func TestSectionCards(t *testing.T) {
	stub := &stubFetch[models.BlogPost]{results: [][]models.BlogPost{{{ID: "1"}, {ID: "2"}, {ID: "3"}}}}
	s := NewSection(SectionBlog, stub.fetch)
	require.NoError(t, s.Mount(context.Background()))

	t.Run("Restartable", func(t *testing.T) {
		assert.Equal(t, slices.Collect(s.Cards()), slices.Collect(s.Cards()))
	})

	t.Run("Stops early", func(t *testing.T) {
		var seen []string
		for post := range s.Cards() {
			seen = append(seen, post.ID)
			if len(seen) == 2 {
				break
			}
		}
		assert.Equal(t, []string{"1", "2"}, seen)
	})

	t.Run("Items is a copy", func(t *testing.T) {
		items := s.Items()
		items[0].ID = "changed"
		assert.Equal(t, "1", s.Items()[0].ID)
	})
}
