package olog

import (
	"net/url"
	"strconv"
)

// SearchQuery is a filter set for the log search route. Known fields map to
// the service's native query parameters; Extra passes any other filter
// through verbatim so new server-side filters work without client changes.
// A known field wins over an Extra entry with the same key.
type SearchQuery struct {
	Text    string // full-text search
	Logbook string
	Tag     string
	Owner   string
	Level   string

	// From and To bound the entry date, e.g. "2024-01-31" or the
	// service's relative forms like "8 hours".
	From string
	To   string

	// Start and Size control pagination. Zero means "not set" and is
	// omitted; use Extra for an explicit start=0.
	Start int
	Size  int

	Extra map[string]string
}

func (q SearchQuery) values() url.Values {
	v := url.Values{}
	for k, val := range q.Extra {
		if val != "" {
			v.Set(k, val)
		}
	}
	set := func(k, val string) {
		if val != "" {
			v.Set(k, val)
		}
	}
	set("text", q.Text)
	set("logbook", q.Logbook)
	set("tag", q.Tag)
	set("owner", q.Owner)
	set("level", q.Level)
	set("from", q.From)
	set("to", q.To)
	if q.Start > 0 {
		v.Set("start", strconv.Itoa(q.Start))
	}
	if q.Size > 0 {
		v.Set("size", strconv.Itoa(q.Size))
	}
	return v
}
