package handlers

import (
	"errors"
	"html"
	"net/http"

	"nebula_web/middleware"
	"nebula_web/models"
	"nebula_web/services"
	"nebula_web/services/i18n"
	"nebula_web/templates/partials"

	"github.com/labstack/echo/v4"
)

// ContactPostHandler forwards the contact form to the backend.
// HTMX requests get the re-rendered form; other clients get JSON.
func ContactPostHandler(c echo.Context) error {
	ctx := c.Request().Context()

	form := services.NewContactForm()
	form.Name = c.FormValue(partials.FieldName)
	form.Email = c.FormValue(partials.FieldEmail)
	form.Message = c.FormValue(partials.FieldMessage)
	token := c.FormValue(partials.FieldSubmissionToken)

	release, err := services.ContactGuard.Acquire(token)
	if err != nil {
		return rejectSubmission(c, err)
	}

	sendErr := form.Submit(ctx, services.Backend)
	release(sendErr == nil)
	services.Metrics.ObserveSubmission(services.Outcome(sendErr))

	if sendErr != nil {
		c.Logger().Warnf("Contact submission failed: %v", sendErr)
	} else {
		// The cleared form is a new form and gets a new token
		token = services.NewSubmissionToken()
	}

	if isHTMX(c) {
		// Always 200 so htmx swaps the form; the outcome is in the form state
		return render(c, http.StatusOK, partials.ContactForm(ctx, partials.ContactFormData{
			Form:            form,
			CSRFToken:       middleware.GetCSRFToken(c),
			SubmissionToken: token,
		}))
	}

	message, _ := partials.StatusMessage(ctx, form.State())
	switch form.State().(type) {
	case services.Succeeded:
		return c.JSON(http.StatusOK, models.ContactResult{Status: "succeeded", Message: message})
	default:
		return c.JSON(failureStatus(sendErr), models.ContactResult{Status: "failed", Message: message})
	}
}

// rejectSubmission answers a submission that never reached the backend
func rejectSubmission(c echo.Context, err error) error {
	ctx := c.Request().Context()
	services.Metrics.ObserveSubmission(services.OutcomeDuplicate)

	status := http.StatusConflict
	message := i18n.T(ctx, "contact.duplicate")
	if errors.Is(err, services.ErrInvalidSubmissionToken) {
		status = http.StatusBadRequest
		message = i18n.T(ctx, "contact.fallback")
	}

	if isHTMX(c) {
		// Keep the form the user is looking at and only update the status slot
		c.Response().Header().Set("HX-Retarget", "#contact-status")
		c.Response().Header().Set("HX-Reswap", "innerHTML")
		return c.HTML(status, `<span class="text-rose-300/90">`+html.EscapeString(message)+`</span>`)
	}
	return c.JSON(status, models.ContactResult{Status: "failed", Message: message})
}

// failureStatus mirrors backend rejections and reports transport failures as 502
func failureStatus(err error) int {
	var appErr *services.ApplicationError
	if errors.As(err, &appErr) && appErr.Status >= 400 && appErr.Status < 500 {
		return appErr.Status
	}
	return http.StatusBadGateway
}
