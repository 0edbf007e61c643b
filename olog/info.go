package olog

import "context"

// ServiceInfo returns the service's identification and health document.
func (c *Client) ServiceInfo(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.getJSON(ctx, "/Olog", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ServiceConfiguration returns the service's configuration document.
func (c *Client) ServiceConfiguration(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := c.getJSON(ctx, "/Olog/configuration", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
