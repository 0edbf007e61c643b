package olog

import (
	"context"
	"net/http"
	"net/url"
)

// GetTemplates lists all log templates.
func (c *Client) GetTemplates(ctx context.Context) ([]Template, error) {
	var out []Template
	if err := c.getJSON(ctx, "/Olog/templates", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetTemplate returns the template with the given service-assigned id.
func (c *Client) GetTemplate(ctx context.Context, id string) (*Template, error) {
	var out Template
	if err := c.getJSON(ctx, "/Olog/templates/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTemplate creates a template. Unlike the name-keyed resources the
// identity is assigned by the service, so the record goes to the collection
// route and the returned Template carries the new id.
func (c *Client) CreateTemplate(ctx context.Context, t Template) (*Template, error) {
	if t.Logbooks == nil {
		t.Logbooks = []Logbook{}
	}
	if t.Tags == nil {
		t.Tags = []Tag{}
	}
	if t.Properties == nil {
		t.Properties = []Property{}
	}
	var out Template
	if err := c.sendJSON(ctx, http.MethodPut, "/Olog/templates", nil, t, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTemplate deletes the template with the given id.
func (c *Client) DeleteTemplate(ctx context.Context, id string) error {
	return c.deleteResource(ctx, "/Olog/templates/"+url.PathEscape(id))
}
