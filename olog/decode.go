package olog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// maxErrorBody caps how much of a failing response body is kept for the
// APIError diagnostic text.
const maxErrorBody = 64 * 1024

// checkStatus maps any non-2xx response to *APIError. The body is consumed
// either way.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{StatusCode: resp.StatusCode, Body: string(b)}
}

// decodeJSON closes the response body and unmarshals it into out. A 2xx
// response with an empty body leaves out untouched, so callers observe an
// explicit zero value rather than a decode error. Pass nil to discard the
// body.
func decodeJSON(resp *http.Response, out any) error {
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}
	if out == nil || len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// decodeBytes closes the response body and returns it unparsed. Used for
// attachment downloads and help text.
func decodeBytes(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return b, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

// sendJSON issues method with in marshalled as a JSON body (nil means no
// body) and decodes the response into out.
func (c *Client) sendJSON(ctx context.Context, method, path string, query url.Values, in, out any) error {
	var p *payload
	if in != nil {
		var err error
		p, err = jsonBody(in)
		if err != nil {
			return err
		}
	}
	resp, err := c.do(ctx, method, path, query, p)
	if err != nil {
		return err
	}
	return decodeJSON(resp, out)
}

// deleteResource issues a DELETE and discards the (normally empty) body.
func (c *Client) deleteResource(ctx context.Context, path string) error {
	resp, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	if err != nil {
		return err
	}
	return decodeJSON(resp, nil)
}
