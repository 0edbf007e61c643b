package olog

import (
	"context"
	"net/http"
	"net/url"
)

// GetLogbooks lists all logbooks.
func (c *Client) GetLogbooks(ctx context.Context) ([]Logbook, error) {
	var out []Logbook
	if err := c.getJSON(ctx, "/Olog/logbooks", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLogbook returns the logbook with the given name.
func (c *Client) GetLogbook(ctx context.Context, name string) (*Logbook, error) {
	var out Logbook
	if err := c.getJSON(ctx, "/Olog/logbooks/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLogbook creates the logbook, or replaces it in place when one with
// the same name already exists. The service treats the name as the identity,
// so this is an upsert by convention, not a duplicate error.
func (c *Client) CreateLogbook(ctx context.Context, lb Logbook) (*Logbook, error) {
	if lb.State == "" {
		lb.State = StateActive
	}
	var out Logbook
	err := c.sendJSON(ctx, http.MethodPut, "/Olog/logbooks/"+url.PathEscape(lb.Name), nil, lb, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateLogbooks creates or replaces several logbooks in one call.
func (c *Client) UpdateLogbooks(ctx context.Context, lbs []Logbook) ([]Logbook, error) {
	var out []Logbook
	if err := c.sendJSON(ctx, http.MethodPut, "/Olog/logbooks", nil, lbs, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteLogbook deletes the logbook with the given name.
func (c *Client) DeleteLogbook(ctx context.Context, name string) error {
	return c.deleteResource(ctx, "/Olog/logbooks/"+url.PathEscape(name))
}
