package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/iota-uz/commerce-admin/pkg/composables"
)

var tracer = otel.Tracer("commerce-admin-graphql")

// Request is a single GraphQL operation. OperationName must match the
// operation declared in Query.
type Request struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName,omitempty"`
	Variables     map[string]interface{} `json:"variables,omitempty"`
}

// Doer executes an operation and decodes its data into out.
type Doer interface {
	Do(ctx context.Context, req *Request, out interface{}) error
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []Error         `json:"errors"`
}

type Client struct {
	endpoint        string
	token           string
	requestIDHeader string
	httpClient      *http.Client
}

type Option func(*Client)

func WithToken(token string) Option {
	return func(c *Client) { c.token = strings.TrimSpace(token) }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithRequestIDHeader(header string) Option {
	return func(c *Client) { c.requestIDHeader = header }
}

func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:        endpoint,
		requestIDHeader: "X-Request-ID",
		httpClient:      &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Do(ctx context.Context, req *Request, out interface{}) (err error) {
	start := time.Now()
	op := req.OperationName
	if op == "" {
		op = "anonymous"
	}
	ctx, span := tracer.Start(ctx, "graphql."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("graphql.operation.name", op),
			attribute.String("http.url", c.endpoint),
		),
	)
	defer func() {
		outcome := outcomeOK
		var respErr *ResponseError
		switch {
		case errors.As(err, &respErr):
			outcome = outcomeGraphQLError
		case err != nil:
			outcome = outcomeTransportError
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		observe(op, outcome, time.Since(start))
	}()

	body, err := json.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "marshal request")
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.requestIDHeader != "" {
		requestID := composables.UseRequestID(ctx)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		httpReq.Header.Set(c.requestIDHeader, requestID)
	}
	propagation.TraceContext{}.Inject(ctx, propagation.HeaderCarrier(httpReq.Header))

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrapf(err, "%s: http do", op)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "%s: read body", op)
	}
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	var decoded response
	if jsonErr := json.Unmarshal(raw, &decoded); jsonErr != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return &StatusError{Operation: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
		}
		return errors.Wrapf(jsonErr, "%s: decode response", op)
	}
	if len(decoded.Errors) > 0 {
		return &ResponseError{Operation: op, Errors: decoded.Errors}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Operation: op, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}
	if out == nil || len(decoded.Data) == 0 || string(decoded.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(decoded.Data, out); err != nil {
		return errors.Wrapf(err, "%s: decode data", op)
	}
	return nil
}
