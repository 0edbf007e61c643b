package olog

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/ologgo/internal/filex"
)

// UploadAttachment attaches one local file to an existing log entry,
// optionally with a free-text description. If the file does not exist the
// call fails with ErrFileNotFound before any network I/O.
func (c *Client) UploadAttachment(ctx context.Context, logID int64, path, description string) (*LogEntry, error) {
	p, err := attachMultipart(path, description)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, http.MethodPost, "/Olog/logs/attachments/"+strconv.FormatInt(logID, 10), nil, p)
	if err != nil {
		return nil, err
	}
	var out LogEntry
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UploadAttachments attaches several local files to an existing log entry in
// one call. Files missing on disk are skipped so one bad path does not abort
// the rest of the batch; all other failures are all-or-nothing.
func (c *Client) UploadAttachments(ctx context.Context, logID int64, paths []string) (*LogEntry, error) {
	p, err := attachMultiMultipart(paths)
	if err != nil {
		return nil, err
	}
	resp, err := c.do(ctx, http.MethodPost, "/Olog/logs/attachments-multi/"+strconv.FormatInt(logID, 10), nil, p)
	if err != nil {
		return nil, err
	}
	var out LogEntry
	if err := decodeJSON(resp, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DownloadAttachment fetches an attachment by log id and filename. The bytes
// are returned; when savePath is non-empty they are also written there,
// creating intermediate directories as needed.
func (c *Client) DownloadAttachment(ctx context.Context, logID int64, filename, savePath string) ([]byte, error) {
	path := "/Olog/logs/attachments/" + strconv.FormatInt(logID, 10) + "/" + url.PathEscape(filename)
	return c.downloadTo(ctx, path, savePath)
}

// DownloadAttachmentByID fetches an attachment by its global id. This is a
// distinct service route from DownloadAttachment; the two identifier spaces
// are not interchangeable.
func (c *Client) DownloadAttachmentByID(ctx context.Context, attachmentID, savePath string) ([]byte, error) {
	return c.downloadTo(ctx, "/Olog/attachment/"+url.PathEscape(attachmentID), savePath)
}

func (c *Client) downloadTo(ctx context.Context, path, savePath string) ([]byte, error) {
	resp, err := c.do(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	b, err := decodeBytes(resp)
	if err != nil {
		return nil, err
	}
	if savePath != "" {
		if err := filex.SaveFile(savePath, b); err != nil {
			return nil, err
		}
	}
	return b, nil
}
