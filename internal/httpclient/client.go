package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/muurk/segtimer/internal/logging"
)

const (
	// DefaultTimeout is the default HTTP request timeout
	DefaultTimeout = 10 * time.Second

	// ContentTypeJSON is sent on every request unless a caller overrides it
	ContentTypeJSON = "application/json"
)

// Doer sends a single HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues JSON requests against a fixed base URL.
// A Client is immutable after New and safe for concurrent use.
type Client struct {
	baseURL string
	headers map[string]string
	doer    Doer
	timeout time.Duration
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the transport used to send requests.
func WithHTTPClient(d Doer) Option {
	return func(c *Client) {
		if d != nil {
			c.doer = d
		}
	}
}

// WithTimeout sets the timeout of the default transport. A Doer supplied
// with WithHTTPClient keeps its own timeout and is never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHeaders adds headers to every request. They override the default
// Content-Type and are themselves overridden by per-call RequestOptions.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		if c.headers == nil {
			c.headers = make(map[string]string, len(headers))
		}
		for k, v := range headers {
			c.headers[k] = v
		}
	}
}

// New creates a client for the given base URL (e.g. "http://192.168.1.40").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.doer == nil {
		c.doer = &http.Client{Timeout: c.timeout}
	}
	return c
}

// BaseURL returns the base URL the client was constructed with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RequestOptions are per-call settings. A nil *RequestOptions means none.
type RequestOptions struct {
	// Headers are overlaid onto the defaults; caller values win on collision.
	Headers map[string]string
}

// Request describes exactly one outbound call.
type Request struct {
	Method  string
	URL     string
	Header  http.Header
	Body    []byte
	HasBody bool
}

// Response is the status and complete text body of one call.
type Response struct {
	StatusCode int
	Status     string
	Body       string
}

// Result is the outcome of a successful call. When the body is valid JSON for
// T, Parsed is true and Value holds it. Otherwise Raw holds the body text and
// Value is the zero T.
type Result[T any] struct {
	Value  T
	Raw    string
	Parsed bool
}

// Get issues a GET with no body.
func Get[T any](ctx context.Context, c *Client, path string, opts *RequestOptions) (Result[T], error) {
	return execute[T](ctx, c, http.MethodGet, path, nil, opts)
}

// Post issues a POST. A nil payload sends no body.
func Post[T any](ctx context.Context, c *Client, path string, payload any, opts *RequestOptions) (Result[T], error) {
	var body *any
	if payload != nil {
		body = &payload
	}
	return execute[T](ctx, c, http.MethodPost, path, body, opts)
}

// Put issues a PUT. The payload is always serialized; nil encodes as null.
func Put[T any](ctx context.Context, c *Client, path string, payload any, opts *RequestOptions) (Result[T], error) {
	return execute[T](ctx, c, http.MethodPut, path, &payload, opts)
}

// Delete issues a DELETE with no body.
func Delete[T any](ctx context.Context, c *Client, path string, opts *RequestOptions) (Result[T], error) {
	return execute[T](ctx, c, http.MethodDelete, path, nil, opts)
}

// execute builds one Request, sends it, and decodes the Response into T.
// payload is nil when the request has no body.
func execute[T any](ctx context.Context, c *Client, method, path string, payload *any, opts *RequestOptions) (Result[T], error) {
	var result Result[T]

	req, err := c.NewRequest(method, path, payload, opts)
	if err != nil {
		return result, err
	}

	resp, err := c.Send(ctx, req)
	if err != nil {
		return result, err
	}

	if !IsSuccess(resp.StatusCode) {
		return result, newRequestError(resp.StatusCode, resp.Status)
	}

	return Decode[T](resp.Body), nil
}

// NewRequest builds the descriptor for one call without sending it.
func (c *Client) NewRequest(method, path string, payload *any, opts *RequestOptions) (*Request, error) {
	var callerHeaders map[string]string
	if opts != nil {
		callerHeaders = opts.Headers
	}

	req := &Request{
		Method: method,
		URL:    JoinURL(c.baseURL, path),
		Header: MergeHeaders(DefaultHeaders(), c.headers, callerHeaders),
	}

	if payload != nil {
		body, err := json.Marshal(*payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s payload: %w", method, path, err)
		}
		req.Body = body
		req.HasBody = true
	}

	return req, nil
}

// Send performs the request and reads the complete body. Transport errors are
// returned unchanged.
func (c *Client) Send(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.HasBody {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header = req.Header.Clone()

	logging.LogHTTPRequest(req.Method, req.URL, httpReq.Header, len(req.Body))

	httpResp, err := c.doer.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer func() { _ = httpResp.Body.Close() }()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	logging.LogHTTPResponse(req.Method, req.URL, httpResp.StatusCode, len(data))

	return &Response{
		StatusCode: httpResp.StatusCode,
		Status:     httpResp.Status,
		Body:       string(data),
	}, nil
}

// Decode parses body as JSON into T, falling back to the raw text when the
// body is empty, not JSON, or not shaped like T.
func Decode[T any](body string) Result[T] {
	var result Result[T]
	if err := json.Unmarshal([]byte(body), &result.Value); err != nil {
		var zero T
		return Result[T]{Value: zero, Raw: body}
	}
	result.Raw = body
	result.Parsed = true
	return result
}

// IsSuccess reports whether a status code is in [200, 300).
func IsSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// JoinURL concatenates base and path with exactly one "/" at the junction.
func JoinURL(base, path string) string {
	baseSlash := strings.HasSuffix(base, "/")
	pathSlash := strings.HasPrefix(path, "/")

	switch {
	case baseSlash && pathSlash:
		return base + path[1:]
	case !baseSlash && !pathSlash:
		return base + "/" + path
	default:
		return base + path
	}
}

// DefaultHeaders returns the header set every request starts from.
func DefaultHeaders() map[string]string {
	return map[string]string{"Content-Type": ContentTypeJSON}
}

// MergeHeaders overlays each layer in order onto an empty header set.
// Keys are canonicalized, so a later "content-type" replaces an earlier
// "Content-Type".
func MergeHeaders(layers ...map[string]string) http.Header {
	merged := http.Header{}
	for _, layer := range layers {
		for k, v := range layer {
			merged.Set(k, v)
		}
	}
	return merged
}
