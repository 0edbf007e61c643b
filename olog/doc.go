// Package olog is a Go client for the Phoebus Olog logbook service.
//
// # Overview
//
// The package provides:
//  1. A Client that owns the HTTP session: base URL, client identification
//     header, TLS verification policy, timeout and optional Basic
//     credentials.
//  2. Typed operations for every Olog resource kind: logbooks, tags, levels,
//     properties, templates, log entries and attachments, plus service info
//     and help topics.
//  3. An attachment subsystem covering the three multipart wire shapes the
//     service expects: log creation with embedded files, single-file attach
//     with metadata parts, and bulk attach with repeated file parts.
//
// # Error Handling
//
// Failures surface as one of three kinds that callers can match with
// errors.As / errors.Is:
//
//   - *TransportError — no HTTP response was obtained (DNS, connect, reset,
//     timeout); wraps the underlying cause.
//   - *APIError — the service answered with a non-2xx status; carries the
//     status code and the diagnostic body.
//   - ErrFileNotFound — a local file scheduled for a single-attachment
//     upload does not exist; raised before any network I/O.
//
// Concurrency & Contexts
//
// A Client is safe for concurrent use once configured. Credentials and
// headers are session state: set them before issuing requests, not while a
// request is in flight. All operations accept context.Context and honor
// cancellation on top of the configured timeout.
//
// See Also
//
//   - Session:     Client, New, Option
//   - Errors:      TransportError, APIError, ErrFileNotFound
//   - Search:      SearchQuery, SearchResult
//   - Attachments: UploadAttachment, UploadAttachments, DownloadAttachment,
//     DownloadAttachmentByID
package olog
