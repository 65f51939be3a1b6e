// Package core provides the shared types, error taxonomy and interfaces
// for the unichat gateway.
package core

import (
	"fmt"
	"net/http"
)

// ErrorType represents the type of error that occurred
type ErrorType string

const (
	// ErrorTypeConfig indicates a missing vendor credential
	ErrorTypeConfig ErrorType = "config_error"
	// ErrorTypeProvider indicates an upstream vendor failure (non-2xx status,
	// transport error, or a response body missing the expected reply path)
	ErrorTypeProvider ErrorType = "provider_error"
	// ErrorTypeDispatch indicates a provider tag outside the closed set
	ErrorTypeDispatch ErrorType = "dispatch_error"
	// ErrorTypeInvalidRequest indicates a malformed client request (4xx)
	ErrorTypeInvalidRequest ErrorType = "invalid_request_error"
)

// GatewayError is the base error type for all gateway errors. Message is the
// text surfaced in the response envelope; Err carries the original cause for
// logs only.
type GatewayError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	StatusCode int       `json:"status_code"`
	Provider   Provider  `json:"provider,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *GatewayError) Error() string {
	if e.Provider != "" {
		return fmt.Sprintf("[%s] %s: %s", e.Provider, e.Type, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the error unwrapping interface
func (e *GatewayError) Unwrap() error {
	return e.Err
}

// HTTPStatusCode returns the HTTP status for this error. Only invalid-request
// errors ever reach the wire as a status code; everything else is converted
// to the 200 envelope at the service boundary.
func (e *GatewayError) HTTPStatusCode() int {
	if e.StatusCode != 0 {
		return e.StatusCode
	}
	if e.Type == ErrorTypeInvalidRequest {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ToJSON converts the error to a JSON-compatible map for non-envelope
// (client error) responses.
func (e *GatewayError) ToJSON() map[string]interface{} {
	return map[string]interface{}{
		"error": map[string]interface{}{
			"type":    e.Type,
			"message": e.Message,
		},
	}
}

// NewConfigError reports a missing vendor API key.
func NewConfigError(provider Provider) *GatewayError {
	return &GatewayError{
		Type:     ErrorTypeConfig,
		Message:  fmt.Sprintf("%s API key not configured", provider.DisplayName()),
		Provider: provider,
	}
}

// NewUpstreamError reports a non-success status from a vendor. The raw body
// is included verbatim; the gateway targets operators, not untrusted users.
func NewUpstreamError(provider Provider, statusCode int, body []byte) *GatewayError {
	return &GatewayError{
		Type:       ErrorTypeProvider,
		Message:    fmt.Sprintf("%s API error: %d - %s", provider.DisplayName(), statusCode, body),
		StatusCode: statusCode,
		Provider:   provider,
	}
}

// NewMalformedResponseError reports a 2xx vendor response missing the
// expected reply path. Surfaced identically to an HTTP error.
func NewMalformedResponseError(provider Provider, path string) *GatewayError {
	return &GatewayError{
		Type:     ErrorTypeProvider,
		Message:  fmt.Sprintf("%s API error: malformed response - missing %s", provider.DisplayName(), path),
		Provider: provider,
	}
}

// NewTransportError reports a failure to complete the outbound vendor call.
func NewTransportError(provider Provider, err error) *GatewayError {
	return &GatewayError{
		Type:     ErrorTypeProvider,
		Message:  fmt.Sprintf("%s request failed: %v", provider.DisplayName(), err),
		Provider: provider,
		Err:      err,
	}
}

// NewDispatchError reports a provider tag outside the closed set. Boundary
// validation normally makes this unreachable.
func NewDispatchError(provider Provider) *GatewayError {
	return &GatewayError{
		Type:     ErrorTypeDispatch,
		Message:  fmt.Sprintf("Unsupported provider: %s", provider),
		Provider: provider,
	}
}

// NewInvalidRequestError creates a new invalid request error (400)
func NewInvalidRequestError(message string, err error) *GatewayError {
	return &GatewayError{
		Type:       ErrorTypeInvalidRequest,
		Message:    message,
		StatusCode: http.StatusBadRequest,
		Err:        err,
	}
}
