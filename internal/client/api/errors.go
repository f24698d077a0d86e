package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrUnavailable wraps transport failures: connection refused, DNS errors,
// timeouts. The server was never reached or never answered.
var ErrUnavailable = errors.New("server unavailable")

// APIError is a non-2xx HTTP response. Message and Fields are best-effort
// parsed from the structured error body `{message, errors?}`; when the body
// is not structured, Body keeps the raw text.
type APIError struct {
	StatusCode int
	Message    string
	Fields     map[string][]string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	if e.Body != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// errorBody mirrors the server's structured error payload.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

// parseAPIError builds an APIError from a non-2xx response body. A JSON
// object with a message field wins; anything else is kept verbatim. A body
// that is just a JSON-quoted string is unquoted so callers can match it.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil && eb.Message != "" {
		apiErr.Message = eb.Message
		apiErr.Fields = eb.Errors
		return apiErr
	}

	raw := strings.TrimSpace(string(body))
	var quoted string
	if err := json.Unmarshal(body, &quoted); err == nil {
		raw = quoted
	}
	apiErr.Body = raw
	return apiErr
}
