package olog

import (
	"context"
	"net/http"
	"net/url"
)

// GetTags lists all tags.
func (c *Client) GetTags(ctx context.Context) ([]Tag, error) {
	var out []Tag
	if err := c.getJSON(ctx, "/Olog/tags", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTag returns the tag with the given name.
func (c *Client) GetTag(ctx context.Context, name string) (*Tag, error) {
	var out Tag
	if err := c.getJSON(ctx, "/Olog/tags/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTag creates or replaces the tag (upsert by name).
func (c *Client) CreateTag(ctx context.Context, t Tag) (*Tag, error) {
	if t.State == "" {
		t.State = StateActive
	}
	var out Tag
	if err := c.sendJSON(ctx, http.MethodPut, "/Olog/tags/"+url.PathEscape(t.Name), nil, t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTags creates or replaces several tags in one call.
func (c *Client) UpdateTags(ctx context.Context, tags []Tag) ([]Tag, error) {
	var out []Tag
	if err := c.sendJSON(ctx, http.MethodPut, "/Olog/tags", nil, tags, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteTag deletes the tag with the given name.
func (c *Client) DeleteTag(ctx context.Context, name string) error {
	return c.deleteResource(ctx, "/Olog/tags/"+url.PathEscape(name))
}
