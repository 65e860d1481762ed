package services

import (
	"context"
	"errors"
	"strings"

	"nebula_web/models"
)

// Fixed user-facing messages. Handlers localize them through i18n keys.
const (
	ContactSuccessMessage  = "Thanks! We will get back to you soon."
	ContactFallbackMessage = "Failed to submit"
)

// ErrSubmissionPending is returned when a submit arrives while one is in flight
var ErrSubmissionPending = errors.New("contact submission already pending")

// SubmissionState is the lifecycle of a contact submission.
// It is one of Idle, Pending, Succeeded or Failed.
type SubmissionState interface {
	submissionState()
}

// Idle means nothing has been submitted since the form was created
type Idle struct{}

// Pending means a submission is in flight
type Pending struct{}

// Succeeded carries the confirmation shown after a 2xx response
type Succeeded struct {
	Message string
}

// Failed carries the error shown after a rejected or broken submission.
// Fallback is set when the backend gave no detail and Message is the
// generic text.
type Failed struct {
	Message  string
	Fallback bool
}

func (Idle) submissionState()      {}
func (Pending) submissionState()   {}
func (Succeeded) submissionState() {}
func (Failed) submissionState()    {}

// ContactForm owns the field values and submission state of one form
type ContactForm struct {
	Name    string
	Email   string
	Message string

	state SubmissionState
}

// NewContactForm returns an empty form in the Idle state
func NewContactForm() *ContactForm {
	return &ContactForm{state: Idle{}}
}

// State returns the current submission state
func (f *ContactForm) State() SubmissionState {
	if f.state == nil {
		return Idle{}
	}
	return f.state
}

// SubmitDisabled is true while a submission is in flight
func (f *ContactForm) SubmitDisabled() bool {
	_, pending := f.State().(Pending)
	return pending
}

// Begin moves the form to Pending and returns the payload to send.
// It fails with ErrSubmissionPending if a submission is already in flight.
func (f *ContactForm) Begin() (models.ContactRequest, error) {
	if f.SubmitDisabled() {
		return models.ContactRequest{}, ErrSubmissionPending
	}
	f.state = Pending{}
	return models.ContactRequest{
		Name:    f.Name,
		Email:   f.Email,
		Message: f.Message,
	}, nil
}

// Complete resolves a pending submission. A nil error clears the fields and
// moves to Succeeded; anything else moves to Failed and keeps the fields.
func (f *ContactForm) Complete(err error) {
	if !f.SubmitDisabled() {
		return
	}
	if err != nil {
		f.state = FailedState(err)
		return
	}
	f.Name, f.Email, f.Message = "", "", ""
	f.state = Succeeded{Message: ContactSuccessMessage}
}

// Submit sends the form through sender and returns the send error, if any.
// The form state reflects the outcome either way.
func (f *ContactForm) Submit(ctx context.Context, sender ContactSender) error {
	req, err := f.Begin()
	if err != nil {
		return err
	}
	err = sender.SendContact(ctx, req)
	f.Complete(err)
	return err
}

// FailedState builds the Failed state for a send error: the backend detail
// when present, the generic fallback otherwise.
func FailedState(err error) Failed {
	var appErr *ApplicationError
	if errors.As(err, &appErr) && strings.TrimSpace(appErr.Detail) != "" {
		return Failed{Message: appErr.Detail}
	}
	return Failed{Message: ContactFallbackMessage, Fallback: true}
}
