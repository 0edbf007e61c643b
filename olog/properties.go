package olog

import (
	"context"
	"net/http"
	"net/url"
)

// GetProperties lists all properties. When includeInactive is true,
// soft-deleted properties are included as well.
func (c *Client) GetProperties(ctx context.Context, includeInactive bool) ([]Property, error) {
	var q url.Values
	if includeInactive {
		q = url.Values{"inactive": []string{"true"}}
	}
	var out []Property
	if err := c.getJSON(ctx, "/Olog/properties", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetProperty returns the property with the given name.
func (c *Client) GetProperty(ctx context.Context, name string) (*Property, error) {
	var out Property
	if err := c.getJSON(ctx, "/Olog/properties/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateProperty creates or replaces the property (upsert by name) together
// with its attribute list.
func (c *Client) CreateProperty(ctx context.Context, p Property) (*Property, error) {
	if p.State == "" {
		p.State = StateActive
	}
	if p.Attributes == nil {
		p.Attributes = []Attribute{}
	}
	var out Property
	err := c.sendJSON(ctx, http.MethodPut, "/Olog/properties/"+url.PathEscape(p.Name), nil, p, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateProperties creates or replaces several properties in one call.
func (c *Client) UpdateProperties(ctx context.Context, props []Property) ([]Property, error) {
	var out []Property
	if err := c.sendJSON(ctx, http.MethodPut, "/Olog/properties", nil, props, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteProperty deletes the property with the given name.
func (c *Client) DeleteProperty(ctx context.Context, name string) error {
	return c.deleteResource(ctx, "/Olog/properties/"+url.PathEscape(name))
}
