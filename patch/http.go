package patch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// ContentType is the media type of the PATCH bodies this client sends.
const ContentType = "application/sparql-update"

// StatusError reports a non-2xx response to a patch request.
type StatusError struct {
	// Resource is the patched resource URI.
	Resource string

	// StatusCode is the HTTP status code.
	StatusCode int

	// Body is a truncated copy of the response body.
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("patch %s: unexpected status %d", e.Resource, e.StatusCode)
}

// HTTPClient patches LDP resources with SPARQL Update requests, the
// write protocol Solid pods accept.
type HTTPClient struct {
	client  *http.Client
	limiter *rate.Limiter
	token   string
	logger  *slog.Logger
}

// Option configures the HTTP client.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) { c.client = client }
}

// WithRateLimit caps outgoing requests at rps requests per second with
// the given burst.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *HTTPClient) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

// WithBearerToken sends token in the Authorization header of every
// request.
func WithBearerToken(token string) Option {
	return func(c *HTTPClient) { c.token = token }
}

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *HTTPClient) { c.logger = logger }
}

// NewHTTPClient creates a patch client with a 30 second request
// timeout and no rate limit.
func NewHTTPClient(opts ...Option) *HTTPClient {
	c := &HTTPClient{
		client: &http.Client{Timeout: 30 * time.Second},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Patch sends one SPARQL Update request to resource. A change set with
// no deletions and no insertions is a no-op and sends nothing.
func (c *HTTPClient) Patch(ctx context.Context, resource string, deletions, insertions []string) error {
	if len(deletions) == 0 && len(insertions) == 0 {
		return nil
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("patch %s: %w", resource, err)
		}
	}

	body := SPARQLUpdate(deletions, insertions)
	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, resource, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("patch %s: %w", resource, err)
	}
	req.Header.Set("Content-Type", ContentType)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("patch %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{
			Resource:   resource,
			StatusCode: resp.StatusCode,
			Body:       string(snippet),
		}
	}

	c.logger.Debug("patched resource",
		"resource", resource,
		"deletions", len(deletions),
		"insertions", len(insertions))
	return nil
}

// SPARQLUpdate renders a change set as a SPARQL Update document with a
// DELETE DATA block followed by an INSERT DATA block. Statements are
// expected in single-statement N-Triples form.
func SPARQLUpdate(deletions, insertions []string) string {
	var sb strings.Builder
	writeBlock := func(keyword string, statements []string) {
		if len(statements) == 0 {
			return
		}
		sb.WriteString(keyword)
		sb.WriteString(" DATA {\n")
		for _, statement := range statements {
			sb.WriteString("  ")
			sb.WriteString(statement)
			sb.WriteString("\n")
		}
		sb.WriteString("};\n")
	}
	writeBlock("DELETE", deletions)
	writeBlock("INSERT", insertions)
	return sb.String()
}
