package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nebula_web/models"

	"github.com/google/uuid"
)

// Backend endpoint paths, relative to the configured origin
const (
	PricingPath      = "/api/pricing"
	TestimonialsPath = "/api/testimonials"
	BlogPath         = "/api/blog"
	ContactPath      = "/api/contact"
)

// maxErrorBody caps how much of a failed response is read looking for "detail"
const maxErrorBody = 64 << 10

// NetworkError means the request never produced a usable response:
// the transport failed or the body was not valid JSON.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ApplicationError is a non-2xx answer from the backend.
// Detail holds the server supplied "detail" field, if any.
type ApplicationError struct {
	Op     string
	Status int
	Detail string
}

func (e *ApplicationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.Status)
}

// ContentSource is the read side of the backend used by the landing sections
type ContentSource interface {
	FetchPricing(ctx context.Context) ([]models.PricingPlan, error)
	FetchTestimonials(ctx context.Context) ([]models.Testimonial, error)
	FetchBlog(ctx context.Context) ([]models.BlogPost, error)
}

// ContactSender is the write side of the backend used by the contact form
type ContactSender interface {
	SendContact(ctx context.Context, req models.ContactRequest) error
}

// BackendAPI is everything the handlers need from the backend
type BackendAPI interface {
	ContentSource
	ContactSender
	Ping(ctx context.Context) error
}

// Backend is the shared client, set up in main
var Backend BackendAPI

// BackendClient talks to the external content API over HTTP
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewBackendClient creates a client for the given origin.
// The timeout bounds every single request.
func NewBackendClient(baseURL string, timeout time.Duration) *BackendClient {
	return &BackendClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured backend origin
func (b *BackendClient) BaseURL() string {
	return b.baseURL
}

// FetchPricing loads the pricing plans. A missing "plans" field yields an empty list.
func (b *BackendClient) FetchPricing(ctx context.Context) ([]models.PricingPlan, error) {
	var resp models.PricingResponse
	if err := b.getJSON(ctx, PricingPath, &resp); err != nil {
		return nil, err
	}
	return orEmpty(resp.Plans), nil
}

// FetchTestimonials loads the customer testimonials
func (b *BackendClient) FetchTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	var resp models.TestimonialsResponse
	if err := b.getJSON(ctx, TestimonialsPath, &resp); err != nil {
		return nil, err
	}
	return orEmpty(resp.Testimonials), nil
}

// FetchBlog loads the blog teasers
func (b *BackendClient) FetchBlog(ctx context.Context) ([]models.BlogPost, error) {
	var resp models.BlogResponse
	if err := b.getJSON(ctx, BlogPath, &resp); err != nil {
		return nil, err
	}
	return orEmpty(resp.Posts), nil
}

// SendContact posts the contact form as JSON.
// Any 2xx is success; other statuses return *ApplicationError.
func (b *BackendClient) SendContact(ctx context.Context, req models.ContactRequest) error {
	op := "POST " + ContactPath
	payload, err := json.Marshal(req)
	if err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("failed to encode contact request: %w", err)}
	}

	httpReq, err := b.newRequest(ctx, http.MethodPost, ContactPath, bytes.NewReader(payload))
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return applicationError(op, resp)
	}

	// Success bodies carry nothing we use, but they must still be JSON.
	// An empty body is fine.
	var body json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return &NetworkError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

// Ping checks that the backend answers at all; used by the readiness probe
func (b *BackendClient) Ping(ctx context.Context) error {
	req, err := b.newRequest(ctx, http.MethodGet, PricingPath, nil)
	if err != nil {
		return err
	}
	resp, err := b.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("backend unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

func (b *BackendClient) getJSON(ctx context.Context, path string, out interface{}) error {
	op := "GET " + path
	req, err := b.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return &NetworkError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return applicationError(op, resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	return nil
}

func (b *BackendClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.New().String())
	return req, nil
}

// applicationError extracts the optional "detail" string from a failed response.
// An unreadable or non-JSON body simply leaves Detail empty.
func applicationError(op string, resp *http.Response) *ApplicationError {
	appErr := &ApplicationError{Op: op, Status: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return appErr
	}
	var payload models.ErrorResponse
	if err := json.Unmarshal(body, &payload); err == nil {
		appErr.Detail = payload.Detail
	}
	return appErr
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
