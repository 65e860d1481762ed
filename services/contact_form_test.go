package services

import (
	"context"
	"errors"
	"testing"

	"nebula_web/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// senderFunc adapts a function to ContactSender
type senderFunc func(ctx context.Context, req models.ContactRequest) error

func (f senderFunc) SendContact(ctx context.Context, req models.ContactRequest) error {
	return f(ctx, req)
}

func filledForm() *ContactForm {
	f := NewContactForm()
	f.Name = "Ada"
	f.Email = "ada@example.com"
	f.Message = "Hello"
	return f
}

func TestContactFormStates(t *testing.T) {
	t.Run("New form is idle", func(t *testing.T) {
		f := NewContactForm()
		assert.Equal(t, Idle{}, f.State())
		assert.False(t, f.SubmitDisabled())
	})

	t.Run("Zero value behaves as idle", func(t *testing.T) {
		var f ContactForm
		assert.Equal(t, Idle{}, f.State())
	})

	t.Run("Submit moves to pending before the request completes", func(t *testing.T) {
		f := filledForm()
		var seen SubmissionState
		var disabled bool

		err := f.Submit(context.Background(), senderFunc(func(ctx context.Context, req models.ContactRequest) error {
			seen = f.State()
			disabled = f.SubmitDisabled()
			assert.Equal(t, models.ContactRequest{Name: "Ada", Email: "ada@example.com", Message: "Hello"}, req)
			return nil
		}))

		require.NoError(t, err)
		assert.Equal(t, Pending{}, seen)
		assert.True(t, disabled)
	})

	t.Run("Success clears fields and shows fixed message", func(t *testing.T) {
		f := filledForm()
		err := f.Submit(context.Background(), senderFunc(func(context.Context, models.ContactRequest) error { return nil }))

		require.NoError(t, err)
		assert.Equal(t, Succeeded{Message: ContactSuccessMessage}, f.State())
		assert.Empty(t, f.Name)
		assert.Empty(t, f.Email)
		assert.Empty(t, f.Message)
		assert.False(t, f.SubmitDisabled())
	})

	t.Run("Failure with detail keeps fields", func(t *testing.T) {
		f := filledForm()
		err := f.Submit(context.Background(), senderFunc(func(context.Context, models.ContactRequest) error {
			return &ApplicationError{Op: "POST /api/contact", Status: 422, Detail: "Invalid email"}
		}))

		assert.Error(t, err)
		assert.Equal(t, Failed{Message: "Invalid email"}, f.State())
		assert.Equal(t, "Ada", f.Name)
		assert.Equal(t, "ada@example.com", f.Email)
		assert.Equal(t, "Hello", f.Message)
	})

	t.Run("Failure without detail uses fallback", func(t *testing.T) {
		f := filledForm()
		f.Submit(context.Background(), senderFunc(func(context.Context, models.ContactRequest) error {
			return &ApplicationError{Status: 500}
		}))
		assert.Equal(t, Failed{Message: ContactFallbackMessage, Fallback: true}, f.State())
	})

	t.Run("Network failure uses fallback", func(t *testing.T) {
		f := filledForm()
		f.Submit(context.Background(), senderFunc(func(context.Context, models.ContactRequest) error {
			return &NetworkError{Op: "POST /api/contact", Err: errors.New("connection reset")}
		}))
		assert.Equal(t, Failed{Message: ContactFallbackMessage, Fallback: true}, f.State())
	})

	t.Run("Resubmit after failure", func(t *testing.T) {
		f := filledForm()
		f.Submit(context.Background(), senderFunc(func(context.Context, models.ContactRequest) error {
			return &ApplicationError{Status: 500}
		}))
		require.IsType(t, Failed{}, f.State())

		err := f.Submit(context.Background(), senderFunc(func(context.Context, models.ContactRequest) error { return nil }))
		assert.NoError(t, err)
		assert.IsType(t, Succeeded{}, f.State())
	})

	t.Run("Submit while pending is rejected without a request", func(t *testing.T) {
		f := filledForm()
		_, err := f.Begin()
		require.NoError(t, err)

		calls := 0
		err = f.Submit(context.Background(), senderFunc(func(context.Context, models.ContactRequest) error {
			calls++
			return nil
		}))
		assert.ErrorIs(t, err, ErrSubmissionPending)
		assert.Equal(t, 0, calls)
		assert.Equal(t, Pending{}, f.State())
	})

	t.Run("Complete outside pending is ignored", func(t *testing.T) {
		f := filledForm()
		f.Complete(nil)
		assert.Equal(t, Idle{}, f.State())
		assert.Equal(t, "Ada", f.Name)
	})
}

func TestFailedState(t *testing.T) {
	assert.Equal(t, Failed{Message: "Invalid email"}, FailedState(&ApplicationError{Detail: "Invalid email"}))
	assert.Equal(t, Failed{Message: ContactFallbackMessage, Fallback: true}, FailedState(&ApplicationError{Detail: "  "}))
	assert.Equal(t, Failed{Message: ContactFallbackMessage, Fallback: true}, FailedState(errors.New("boom")))

	// A detail that reads like the fallback is still the backend's own text
	assert.Equal(t, Failed{Message: ContactFallbackMessage}, FailedState(&ApplicationError{Detail: ContactFallbackMessage}))
}
