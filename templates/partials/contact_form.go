package partials

import (
	"context"

	"nebula_web/services"
	"nebula_web/services/i18n"
	"nebula_web/templates/components"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Form field names shared with the contact handler
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldMessage         = "message"
	FieldSubmissionToken = "submission_token"
	FieldCSRF            = "_csrf"
)

// ContactFormData is what the contact form partial needs to render
type ContactFormData struct {
	Form            *services.ContactForm
	CSRFToken       string
	SubmissionToken string
}

const inputClass = "w-full px-4 py-3 rounded-xl bg-white/10 text-white placeholder-white/50 ring-1 ring-white/10 focus:outline-none focus:ring-white/30"

// StatusMessage returns the localized text for the current submission state,
// or "" when nothing should be shown. A backend detail is shown verbatim.
func StatusMessage(ctx context.Context, state services.SubmissionState) (text string, failed bool) {
	switch s := state.(type) {
	case services.Succeeded:
		return i18n.T(ctx, "contact.success"), false
	case services.Failed:
		if s.Fallback {
			return i18n.T(ctx, "contact.fallback"), true
		}
		return s.Message, true
	default:
		return "", false
	}
}

// ContactFormNode renders the form. While pending the submit button is
// disabled; htmx also disables it before the request is dispatched.
func ContactFormNode(ctx context.Context, data ContactFormData) g.Node {
	form := data.Form
	if form == nil {
		form = services.NewContactForm()
	}
	pending := form.SubmitDisabled()
	message, failed := StatusMessage(ctx, form.State())

	label := i18n.T(ctx, "contact.submit")
	if pending {
		label = i18n.T(ctx, "contact.sending")
	}

	statusClass := "text-emerald-300/90"
	if failed {
		statusClass = "text-rose-300/90"
	}

	return h.Form(
		h.ID("contact-form"),
		h.Class("mt-6 space-y-4"),
		h.Method("post"),
		h.Action("/contact"),
		components.HX("post", "/contact"),
		components.HX("swap", "outerHTML"),
		components.HX("disabled-elt", "find button[type='submit']"),
		components.HX("headers", components.JSON(map[string]string{"X-CSRF-Token": data.CSRFToken})),
		h.Data("state", stateName(form.State())),
		h.Input(h.Type("hidden"), h.Name(FieldCSRF), h.Value(data.CSRFToken)),
		h.Input(h.Type("hidden"), h.Name(FieldSubmissionToken), h.Value(data.SubmissionToken)),
		h.Div(
			h.Class("grid md:grid-cols-2 gap-4"),
			h.Input(h.Name(FieldName), h.Value(form.Name), h.Placeholder(i18n.T(ctx, "contact.name")), h.Class(inputClass)),
			h.Input(h.Name(FieldEmail), h.Type("email"), h.Value(form.Email), h.Placeholder(i18n.T(ctx, "contact.email")), h.Class(inputClass)),
		),
		h.Textarea(h.Name(FieldMessage), h.Placeholder(i18n.T(ctx, "contact.message")), h.Rows("5"), h.Class(inputClass), g.Text(form.Message)),
		h.Div(
			h.Class("flex items-center gap-3"),
			h.Button(
				h.Type("submit"),
				h.Class("px-5 py-3 rounded-xl bg-gradient-to-r from-cyan-400/80 to-fuchsia-500/80 text-black font-semibold ring-1 ring-white/30 disabled:opacity-60"),
				h.Data("sending-label", i18n.T(ctx, "contact.sending")),
				g.If(pending, h.Disabled()),
				g.Text(label),
			),
			h.Span(
				h.ID("contact-status"),
				h.Role("status"),
				g.If(message != "", h.Class(statusClass)),
				g.Text(message),
			),
		),
	)
}

// ContactSectionNode wraps the form in the contact card
func ContactSectionNode(ctx context.Context, data ContactFormData) g.Node {
	return h.Section(
		h.ID("contact"),
		h.Class("relative py-24"),
		h.Div(h.Class("absolute inset-0 pointer-events-none bg-[radial-gradient(ellipse_at_top_left,rgba(168,85,247,0.18),transparent_40%)]")),
		h.Div(
			h.Class("relative max-w-3xl mx-auto px-4 sm:px-6 lg:px-8"),
			h.Div(
				h.Class("rounded-2xl p-6 md:p-8 backdrop-blur-2xl bg-white/5 ring-1 ring-white/10"),
				h.H3(h.Class("text-3xl text-white font-semibold"), g.Text(i18n.T(ctx, "contact.title"))),
				h.P(h.Class("text-white/70 mt-1"), g.Text(i18n.T(ctx, "contact.subtitle"))),
				ContactFormNode(ctx, data),
			),
		),
	)
}

// ContactForm is the HTMX partial returned after a submission
func ContactForm(ctx context.Context, data ContactFormData) templ.Component {
	return components.Component(ContactFormNode(ctx, data))
}

func stateName(state services.SubmissionState) string {
	switch state.(type) {
	case services.Pending:
		return "pending"
	case services.Succeeded:
		return "succeeded"
	case services.Failed:
		return "failed"
	default:
		return "idle"
	}
}
