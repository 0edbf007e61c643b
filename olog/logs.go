package olog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateLogOptions carries the optional query parameters of the log creation
// routes. The zero value sends neither.
type CreateLogOptions struct {
	// Markup selects the markup scheme used to render the description.
	Markup string
	// InReplyTo references the parent entry when the new entry is a reply.
	InReplyTo int64
}

func (o *CreateLogOptions) values() url.Values {
	if o == nil {
		return nil
	}
	v := url.Values{}
	if o.Markup != "" {
		v.Set("markup", o.Markup)
	}
	if o.InReplyTo != 0 {
		v.Set("inReplyTo", strconv.FormatInt(o.InReplyTo, 10))
	}
	return v
}

// CreateLog submits a new log entry. The service assigns the id, owner and
// timestamps; the returned record carries them.
func (c *Client) CreateLog(ctx context.Context, entry LogEntry, opts *CreateLogOptions) (*LogEntry, error) {
	normalizeEntry(&entry)
	var out LogEntry
	if err := c.sendJSON(ctx, http.MethodPut, "/Olog/logs", opts.values(), entry, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateLogWithFiles submits a new log entry together with file attachments
// in a single multipart call. Files missing on disk are skipped; the
// remaining files are attached.
func (c *Client) CreateLogWithFiles(ctx context.Context, entry LogEntry, paths []string, opts *CreateLogOptions) (*LogEntry, error) {
	normalizeEntry(&entry)
	p, err := logMultipart(&entry, paths)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, http.MethodPut, "/Olog/logs/multipart", opts.values(), p)
	if err != nil {
		return nil, err
	}
	var out LogEntry
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLog returns the log entry with the given id.
func (c *Client) GetLog(ctx context.Context, id int64) (*LogEntry, error) {
	var out LogEntry
	if err := c.getJSON(ctx, "/Olog/logs/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetArchivedLog returns the archived (pre-update) revision of the log entry
// with the given id.
func (c *Client) GetArchivedLog(ctx context.Context, id int64) (*LogEntry, error) {
	var out LogEntry
	if err := c.getJSON(ctx, "/Olog/logs/archived/"+strconv.FormatInt(id, 10), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LogUpdate selects the fields UpdateLog overwrites. Nil pointer and nil
// slice fields are left as the server currently has them; a non-nil empty
// slice clears the field.
type LogUpdate struct {
	Title       *string
	Description *string
	Level       *string
	Tags        []Tag
	Properties  []Property
	Markup      string
}

// UpdateLog modifies an existing entry by fetching the current record,
// overlaying the supplied fields and submitting the merged record. The wire
// operation is a full-record replace, so two concurrent updates can silently
// lose one side's change; callers needing stronger guarantees must serialize
// updates themselves. If the read fails the update stops before any write.
func (c *Client) UpdateLog(ctx context.Context, id int64, upd LogUpdate) (*LogEntry, error) {
	cur, err := c.GetLog(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Title != nil {
		cur.Title = *upd.Title
	}
	if upd.Description != nil {
		cur.Description = *upd.Description
	}
	if upd.Level != nil {
		cur.Level = *upd.Level
	}
	if upd.Tags != nil {
		cur.Tags = upd.Tags
	}
	if upd.Properties != nil {
		cur.Properties = upd.Properties
	}

	var q url.Values
	if upd.Markup != "" {
		q = url.Values{"markup": []string{upd.Markup}}
	}

	var out LogEntry
	err = c.sendJSON(ctx, http.MethodPost, "/Olog/logs/"+strconv.FormatInt(id, 10), q, cur, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchLogs returns one page of entries matching the query plus the total
// hit count.
func (c *Client) SearchLogs(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	var out SearchResult
	if err := c.getJSON(ctx, "/Olog/logs/search", q.values(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GroupLogs links the given existing entries as one group. The operation is
// all-or-nothing: a nil error means the whole set was grouped.
func (c *Client) GroupLogs(ctx context.Context, ids []int64) error {
	return c.sendJSON(ctx, http.MethodPost, "/Olog/logs/group", nil, ids, nil)
}

// normalizeEntry fills the slice fields the service requires to be present
// even when empty.
func normalizeEntry(e *LogEntry) {
	if e.Logbooks == nil {
		e.Logbooks = []Logbook{}
	}
	if e.Tags == nil {
		e.Tags = []Tag{}
	}
	if e.Properties == nil {
		e.Properties = []Property{}
	}
}
