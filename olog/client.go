package olog

import (
	"context"
	"crypto/tls"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	defaultClientInfo = "Go Olog Client"
	defaultTimeout    = 30 * time.Second

	clientInfoHeader = "X-Olog-Client-Info"
	requestIDHeader  = "X-Request-Id"
)

// Client is a session to a single Olog service instance. All requests issued
// through the same Client share its base URL, identification header, TLS
// policy, timeout and credentials.
type Client struct {
	baseURL    string
	clientInfo string
	username   string
	password   string
	hc         *http.Client
}

// Option configures a Client at construction time.
type Option func(*Client)

// WithClientInfo sets the value of the X-Olog-Client-Info header.
func WithClientInfo(info string) Option {
	return func(c *Client) { c.clientInfo = info }
}

// WithTimeout sets the per-request timeout. The default is 30 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.hc.Timeout = d }
}

// WithInsecureTLS disables server certificate verification.
func WithInsecureTLS() Option {
	return func(c *Client) {
		c.hc.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
}

// WithBasicAuth sets Basic credentials for the session.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithHTTPClient replaces the underlying HTTP client entirely. Timeout and
// TLS options applied earlier are discarded.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.hc = hc }
}

// New creates a Client for the service at baseURL, e.g.
// "http://localhost:8080". A trailing slash is trimmed.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		clientInfo: defaultClientInfo,
		hc:         &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetBasicAuth sets the credential pair used for subsequent requests. It is
// session configuration: call it before issuing requests, not concurrently
// with one.
func (c *Client) SetBasicAuth(username, password string) {
	c.username = username
	c.password = password
}

// Close releases idle connections held by the session.
func (c *Client) Close() {
	c.hc.CloseIdleConnections()
}

// payload is a request body with its content type. Multipart encoders
// produce the boundary-carrying multipart/form-data value here, so the
// default JSON content type never leaks onto a multipart request.
type payload struct {
	body        io.Reader
	contentType string
}

// do issues a single HTTP request and returns the raw response. Failures to
// obtain a response surface as *TransportError; status codes are not
// inspected here.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, p *payload) (*http.Response, error) {
	op := method + " " + path

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var body io.Reader
	if p != nil {
		body = p.body
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}

	if p != nil {
		req.Header.Set("Content-Type", p.contentType)
	}
	req.Header.Set(clientInfoHeader, c.clientInfo)
	req.Header.Set(requestIDHeader, uuid.NewString())
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	return resp, nil
}
