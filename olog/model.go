package olog

// State marks a named resource as active or (soft-)deleted.
type State string

const (
	StateActive   State = "Active"
	StateInactive State = "Inactive"
)

// Logbook is a named category log entries are filed under.
type Logbook struct {
	Name  string `json:"name"`
	Owner string `json:"owner,omitempty"`
	State State  `json:"state,omitempty"`
}

// Tag is a free-form label attachable to a log entry.
type Tag struct {
	Name  string `json:"name"`
	State State  `json:"state,omitempty"`
}

// Level classifies a log entry; one level may be marked as the default.
type Level struct {
	Name         string `json:"name"`
	DefaultLevel bool   `json:"defaultLevel"`
}

// Attribute is a single key/value pair of a Property.
type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	State State  `json:"state,omitempty"`
}

// Property is a named bag of attributes attachable to a log entry or
// template.
type Property struct {
	Name       string      `json:"name"`
	Owner      string      `json:"owner,omitempty"`
	State      State       `json:"state,omitempty"`
	Attributes []Attribute `json:"attributes"`
}

// Attachment is the metadata of a binary file associated with a log entry.
// ID is assigned by the service once the file is persisted.
type Attachment struct {
	ID                      string `json:"id,omitempty"`
	Filename                string `json:"filename,omitempty"`
	FileMetadataDescription string `json:"fileMetadataDescription,omitempty"`
}

// LogEntry is a single logbook entry. ID, Owner, State and the date fields
// are assigned by the service; clients leave them zero on creation.
type LogEntry struct {
	ID          int64        `json:"id,omitempty"`
	Owner       string       `json:"owner,omitempty"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Source      string       `json:"source,omitempty"`
	Level       string       `json:"level,omitempty"`
	State       State        `json:"state,omitempty"`
	CreatedDate int64        `json:"createdDate,omitempty"`
	ModifyDate  int64        `json:"modifyDate,omitempty"`
	Logbooks    []Logbook    `json:"logbooks"`
	Tags        []Tag        `json:"tags,omitempty"`
	Properties  []Property   `json:"properties,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Template is a reusable skeleton for pre-populating new log entries. ID is
// assigned by the service at creation time.
type Template struct {
	ID           string     `json:"id,omitempty"`
	Name         string     `json:"name"`
	Owner        string     `json:"owner,omitempty"`
	Title        string     `json:"title"`
	Source       string     `json:"source,omitempty"`
	Level        string     `json:"level,omitempty"`
	Logbooks     []Logbook  `json:"logbooks"`
	Tags         []Tag      `json:"tags,omitempty"`
	Properties   []Property `json:"properties,omitempty"`
	CreatedDate  int64      `json:"createdDate,omitempty"`
	ModifiedDate int64      `json:"modifiedDate,omitempty"`
}

// SearchResult is one page of matching log entries plus the total hit count
// across all pages.
type SearchResult struct {
	HitCount int64      `json:"hitCount"`
	Logs     []LogEntry `json:"logs"`
}

// LogbookNames builds logbook references from bare names, the shape log
// entry payloads embed.
func LogbookNames(names ...string) []Logbook {
	out := make([]Logbook, len(names))
	for i, n := range names {
		out[i] = Logbook{Name: n}
	}
	return out
}

// TagNames builds tag references from bare names.
func TagNames(names ...string) []Tag {
	out := make([]Tag, len(names))
	for i, n := range names {
		out[i] = Tag{Name: n}
	}
	return out
}
