package olog

import (
	"context"
	"net/http"
	"net/url"
)

// GetHelp returns the help document for a topic as text. The language
// parameter is sent only when it differs from the service default "en".
func (c *Client) GetHelp(ctx context.Context, topic, language string) (string, error) {
	var q url.Values
	if language != "" && language != "en" {
		q = url.Values{"lang": []string{language}}
	}
	resp, err := c.do(ctx, http.MethodGet, "/Olog/help/"+url.PathEscape(topic), q, nil)
	if err != nil {
		return "", err
	}
	b, err := decodeBytes(resp)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
