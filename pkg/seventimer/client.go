package seventimer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/wesleyorama2/skycast/pkg/xmltree"
)

const defaultTimeout = 30 * time.Second

// Client is a 7timer API client. The zero set of options gives HTTPS,
// a 30 second timeout and a lazily created default HTTP client.
//
// A Client is safe to reuse sequentially. It is not specified as safe
// for concurrent use: the timeout of the underlying HTTP client is
// reapplied on every call.
type Client struct {
	httpClient *http.Client
	scheme     Scheme
	timeout    time.Duration
	userAgent  string
	baseURL    string
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// NewClient creates a new client with the given options. Construction
// performs no I/O.
func NewClient(options ...ClientOption) *Client {
	client := &Client{
		scheme:  SchemeHTTPS,
		timeout: defaultTimeout,
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// WithScheme sets the transport scheme (http or https).
func WithScheme(scheme Scheme) ClientOption {
	return func(c *Client) {
		c.scheme = scheme
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(agent string) ClientOption {
	return func(c *Client) {
		c.userAgent = agent
	}
}

// WithHTTPClient supplies a pre-configured HTTP client. The client's
// timeout is still overwritten on every call.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithBaseURL replaces the scheme and fixed API host with the given
// base URL, e.g. "http://127.0.0.1:8080". Useful for testing.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// Do validates the parameters, issues a single GET and returns the
// response untouched, with no decoding and no success or failure
// interpretation. Callers that want their own error handling use this
// entry point and inspect the Response themselves.
//
// Invalid parameters fail with *ValidationError before any network I/O.
// Transport errors are returned exactly as the HTTP client produced them.
func (c *Client) Do(ctx context.Context, p *Params) (*Response, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	httpClient := c.ensureHTTPClient()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.requestURL(p), nil)
	if err != nil {
		return nil, err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode:   resp.StatusCode,
		Status:       resp.Status,
		Headers:      resp.Header,
		Body:         resp.Body,
		ResponseTime: time.Since(start),
	}, nil
}

// FetchRaw issues the request and returns the exact body string on
// success. A response with a non-success status fails with
// *RequestFailedError carrying the status line; no retry is attempted.
func (c *Client) FetchRaw(ctx context.Context, p *Params) (string, error) {
	resp, err := c.Do(ctx, p)
	if err != nil {
		return "", err
	}
	// Read the body before checking the status so the connection is
	// released even on the failure path.
	body, err := resp.GetBodyAsString()
	if err != nil {
		return "", err
	}
	if !resp.IsSuccess() {
		return "", &RequestFailedError{Status: resp.Status, StatusCode: resp.StatusCode}
	}
	return body, nil
}

// Fetch issues the request and decodes the body according to the
// requested output format: json and xml decode into a loosely-typed
// Document; any other format, including internal, returns the body
// wrapped as Document{"data": body}. Failure semantics match FetchRaw.
func (c *Client) Fetch(ctx context.Context, p *Params) (Document, error) {
	body, err := c.FetchRaw(ctx, p)
	if err != nil {
		return nil, err
	}

	switch p.OutputFormat() {
	case OutputJSON:
		var doc Document
		if err := json.Unmarshal([]byte(body), &doc); err != nil {
			return nil, fmt.Errorf("decoding json response: %w", err)
		}
		return doc, nil
	case OutputXML:
		doc, err := xmltree.Decode([]byte(body))
		if err != nil {
			return nil, fmt.Errorf("decoding xml response: %w", err)
		}
		return Document(doc), nil
	default:
		return Document{"data": body}, nil
	}
}

// ensureHTTPClient lazily creates the default HTTP client and keeps
// its timeout in line with the configured value.
func (c *Client) ensureHTTPClient() *http.Client {
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	c.httpClient.Timeout = c.timeout
	return c.httpClient
}

// requestURL resolves the URL for the given parameters, honoring a
// base URL override when one was configured.
func (c *Client) requestURL(p *Params) string {
	if c.baseURL != "" {
		return fmt.Sprintf("%s/bin/%s.php?%s", c.baseURL, p.Product, p.Query().Encode())
	}
	return BuildURL(c.scheme, p)
}
