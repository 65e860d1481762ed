package models

// Testimonial is a customer quote shown in the testimonials section
type Testimonial struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"` // Image URL
	Quote  string `json:"quote"`
}

// TestimonialsResponse is the body returned by GET /api/testimonials
type TestimonialsResponse struct {
	Testimonials []Testimonial `json:"testimonials"`
}
