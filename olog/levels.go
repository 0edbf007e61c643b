package olog

import (
	"context"
	"net/http"
	"net/url"
)

// GetLevels lists all levels.
func (c *Client) GetLevels(ctx context.Context) ([]Level, error) {
	var out []Level
	if err := c.getJSON(ctx, "/Olog/levels", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetLevel returns the level with the given name.
func (c *Client) GetLevel(ctx context.Context, name string) (*Level, error) {
	var out Level
	if err := c.getJSON(ctx, "/Olog/levels/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLevel creates or replaces the level (upsert by name).
func (c *Client) CreateLevel(ctx context.Context, l Level) (*Level, error) {
	var out Level
	if err := c.sendJSON(ctx, http.MethodPut, "/Olog/levels/"+url.PathEscape(l.Name), nil, l, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLevels creates or replaces several levels in one call.
func (c *Client) CreateLevels(ctx context.Context, levels []Level) ([]Level, error) {
	var out []Level
	if err := c.sendJSON(ctx, http.MethodPut, "/Olog/levels", nil, levels, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteLevel deletes the level with the given name.
func (c *Client) DeleteLevel(ctx context.Context, name string) error {
	return c.deleteResource(ctx, "/Olog/levels/"+url.PathEscape(name))
}
