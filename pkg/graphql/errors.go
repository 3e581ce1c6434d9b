package graphql

import (
	"fmt"
	"strings"
)

// Error is an entry of the top-level "errors" array of a GraphQL response.
type Error struct {
	Message    string                 `json:"message"`
	Path       []interface{}          `json:"path,omitempty"`
	Extensions map[string]interface{} `json:"extensions,omitempty"`
}

// ResponseError is returned when the API rejected the whole operation.
// Field errors reported inside mutation payloads are data, not errors.
type ResponseError struct {
	Operation string
	Errors    []Error
}

func (e *ResponseError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, err := range e.Errors {
		msgs = append(msgs, err.Message)
	}
	return fmt.Sprintf("%s: graphql: %s", e.Operation, strings.Join(msgs, "; "))
}

// StatusError is returned for a non-2xx response that carried no GraphQL
// errors.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > 256 {
		body = body[:256] + "..."
	}
	return fmt.Sprintf("%s: http status=%d body=%s", e.Operation, e.StatusCode, body)
}
