package models

// ContactRequest is the JSON body sent to POST /api/contact
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ErrorResponse is the optional JSON body of a failed backend call
type ErrorResponse struct {
	Detail string `json:"detail,omitempty"`
}

// ContactResult is the JSON reply of POST /contact for non-HTMX clients
type ContactResult struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
